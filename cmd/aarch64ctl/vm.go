/*
Copyright © 2025 aarch64.com contributors
*/
package main

import (
	"errors"
	"fmt"

	"github.com/natesales/ansible-module-aarch64-vm/internal/module"

	"github.com/spf13/cobra"
)

var vmCmd = &cobra.Command{
	Use:   "vm",
	Short: "Manage VMs",
}

var (
	vmCreateHostname string
	vmCreatePOP      string
	vmCreateProject  string
	vmCreatePlan     string
	vmCreateOS       string
)

var vmCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a VM",
	Long: `Create a VM in a project.

The target project must exist and be visible to the API key; creation is
refused otherwise. This follows the same verify-then-create flow as the
aarch64_vm playbook module.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := newClient()
		if err != nil {
			return err
		}

		result := module.Run(cmd.Context(), client, &module.Params{
			APIKey:   cfg.APIKey,
			State:    module.StatePresent,
			Project:  vmCreateProject,
			Hostname: vmCreateHostname,
			Plan:     vmCreatePlan,
			OS:       vmCreateOS,
			POP:      vmCreatePOP,
		})
		if result.Failed {
			return errors.New(result.Msg)
		}

		fmt.Println(result.Message)
		if len(result.VM) > 0 {
			return renderPayload(result.VM)
		}
		return nil
	},
}

var vmDeleteCmd = &cobra.Command{
	Use:   "delete <vm-id>",
	Short: "Delete a VM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, err := newClient()
		if err != nil {
			return err
		}

		result := module.Run(cmd.Context(), client, &module.Params{
			APIKey: cfg.APIKey,
			State:  module.StateAbsent,
			ID:     args[0],
		})
		if result.Failed {
			return errors.New(result.Msg)
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	vmCreateCmd.Flags().StringVar(&vmCreateHostname, "hostname", "", "VM hostname")
	vmCreateCmd.Flags().StringVar(&vmCreatePOP, "pop", "", "point of presence")
	vmCreateCmd.Flags().StringVar(&vmCreateProject, "project", "", "project id")
	vmCreateCmd.Flags().StringVar(&vmCreatePlan, "plan", "", "VM plan")
	vmCreateCmd.Flags().StringVar(&vmCreateOS, "os", "", "operating system")
	vmCreateCmd.MarkFlagRequired("hostname")
	vmCreateCmd.MarkFlagRequired("pop")
	vmCreateCmd.MarkFlagRequired("project")
	vmCreateCmd.MarkFlagRequired("plan")
	vmCreateCmd.MarkFlagRequired("os")

	vmCmd.AddCommand(vmCreateCmd)
	vmCmd.AddCommand(vmDeleteCmd)
	rootCmd.AddCommand(vmCmd)
}
