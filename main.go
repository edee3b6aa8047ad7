/*
Copyright © 2025 aarch64.com contributors
*/
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/natesales/ansible-module-aarch64-vm/internal/aarch64"
	"github.com/natesales/ansible-module-aarch64-vm/internal/logging"
	"github.com/natesales/ansible-module-aarch64-vm/internal/module"

	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	if err := logging.InitLogger(); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		if err := logging.Sync(); err != nil {
			// Log sync error, but don't fail the application
			logging.Logger().Error("failed to sync logger on exit", zap.Error(err))
		}
	}()

	os.Exit(runModule(os.Args, os.Stdout))
}

// runModule executes one module invocation. args[1] is the path to the
// JSON parameter file the host writes; the result document goes to out as
// a single JSON object. Everything else the module prints goes to stderr.
func runModule(args []string, out io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: aarch64_vm <args-file>")
		return 1
	}
	argsPath := args[1]

	data, err := os.ReadFile(argsPath)
	if err != nil {
		return writeResult(out, module.Fail("Could not read configuration file: %s", argsPath))
	}
	if !json.Valid(data) {
		return writeResult(out, module.Fail("Configuration file not valid JSON: %s", argsPath))
	}

	params, err := module.ParseArgs(data)
	if err != nil {
		return writeResult(out, module.Fail("%v", err))
	}

	logging.Logger().Debug("Parsed module parameters",
		zap.String("state", params.State),
		zap.String("hostname", params.Hostname),
		zap.String("id", params.ID))

	var opts []aarch64.Option
	if server := os.Getenv("AARCH64_SERVER"); server != "" {
		opts = append(opts, aarch64.WithServer(server))
	}
	client := aarch64.NewClient(params.APIKey, opts...)

	return writeResult(out, module.Run(context.Background(), client, params))
}

// writeResult prints the result document and reports the exit code the
// host expects: 0 for success, 1 for failure.
func writeResult(out io.Writer, result *module.Result) int {
	data, err := json.Marshal(result)
	if err != nil {
		logging.Logger().Error("failed to encode module result", zap.Error(err))
		fmt.Fprintln(out, `{"changed": false, "failed": true, "msg": "Failed to encode module result"}`)
		return 1
	}

	fmt.Fprintln(out, string(data))
	if result.Failed {
		return 1
	}
	return 0
}
