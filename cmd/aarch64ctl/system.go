/*
Copyright © 2025 aarch64.com contributors
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Show platform system information",
	Long:  `Show the platform inventory: points of presence, plans, and available operating systems.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := newClient()
		if err != nil {
			return err
		}

		data, err := client.GetSystem(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get system information: %w", err)
		}

		return renderPayload(data)
	},
}

func init() {
	rootCmd.AddCommand(systemCmd)
}
