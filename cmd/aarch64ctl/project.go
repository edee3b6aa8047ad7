/*
Copyright © 2025 aarch64.com contributors
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := newClient()
		if err != nil {
			return err
		}

		project, err := client.CreateProject(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		return renderPayload(project)
	},
}

var (
	addUserProject string
	addUserEmail   string
)

var projectAddUserCmd = &cobra.Command{
	Use:   "adduser",
	Short: "Add a user to a project",
	Long:  `Add an existing console user to a project by email address.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := newClient()
		if err != nil {
			return err
		}

		if _, err := client.AddUser(cmd.Context(), addUserProject, addUserEmail); err != nil {
			return fmt.Errorf("failed to add user: %w", err)
		}

		fmt.Printf("Added %s to project %s\n", addUserEmail, addUserProject)
		return nil
	},
}

func init() {
	projectAddUserCmd.Flags().StringVar(&addUserProject, "project", "", "project id")
	projectAddUserCmd.Flags().StringVar(&addUserEmail, "email", "", "user email address")
	projectAddUserCmd.MarkFlagRequired("project")
	projectAddUserCmd.MarkFlagRequired("email")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectAddUserCmd)
	rootCmd.AddCommand(projectCmd)
}
