/*
Copyright © 2025 aarch64.com contributors
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects visible to the API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := newClient()
		if err != nil {
			return err
		}

		projects, err := client.ListProjects(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		if outputFormat != "" {
			return renderPayload(projects)
		}

		for _, project := range projects {
			fmt.Printf("%s\t%s\n", project.ID, project.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}
