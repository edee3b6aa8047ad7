/*
Copyright © 2025 aarch64.com contributors
*/
package main

import (
	"fmt"
	"os"

	"github.com/natesales/ansible-module-aarch64-vm/internal/aarch64"
	"github.com/natesales/ansible-module-aarch64-vm/internal/config"
	"github.com/natesales/ansible-module-aarch64-vm/internal/logging"
	"github.com/natesales/ansible-module-aarch64-vm/internal/output"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "unknown"
)

var (
	configPath   string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "aarch64ctl",
	Short: "aarch64ctl - aarch64.com platform CLI",
	Long: `aarch64ctl manages projects and VMs on the aarch64.com platform
through the console API.

Credentials come from an aarch64.yaml config file or the AARCH64_API_KEY
environment variable.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Initialize logger
	if err := logging.InitLogger(); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	err := rootCmd.Execute()

	if syncErr := logging.Sync(); syncErr != nil {
		logging.Logger().Error("failed to sync logger on exit", zap.Error(syncErr))
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default aarch64.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (json or yaml)")
}

// newClient builds the API client from CLI configuration. Interactive use
// goes through a retrying transport, unlike the module binary.
func newClient() (*config.Config, *aarch64.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.Logger = nil

	client := aarch64.NewClient(cfg.APIKey,
		aarch64.WithServer(cfg.Server),
		aarch64.WithHTTPClient(retryClient.StandardClient()))
	return cfg, client, nil
}

// renderPayload prints v in the selected output format, defaulting to JSON
func renderPayload(v any) error {
	format := output.FormatJSON
	if outputFormat != "" {
		var err error
		format, err = output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
	}

	rendered, err := output.Render(v, format)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}
