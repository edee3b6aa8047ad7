package module

import (
	"context"
	"encoding/json"

	"github.com/natesales/ansible-module-aarch64-vm/internal/aarch64"
	"github.com/natesales/ansible-module-aarch64-vm/internal/logging"

	"go.uber.org/zap"
)

// consoleClient is the slice of the API client the handler consumes
type consoleClient interface {
	ListProjects(ctx context.Context) ([]aarch64.Project, error)
	CreateVM(ctx context.Context, hostname, pop, projectID, plan, os string) (json.RawMessage, string, error)
	DeleteVM(ctx context.Context, vmID string) (string, error)
}

// Run executes one declarative pass for params against the console API.
// It issues at most one mutating call and never returns changed=true
// alongside a failure.
func Run(ctx context.Context, client *aarch64.Client, params *Params) *Result {
	return run(ctx, client, params)
}

func run(ctx context.Context, client consoleClient, params *Params) *Result {
	if params.State == StateAbsent {
		return runAbsent(ctx, client, params)
	}
	return runPresent(ctx, client, params)
}

// runPresent creates the VM after verifying the target project exists.
func runPresent(ctx context.Context, client consoleClient, params *Params) *Result {
	logging.Logger().Debug("Ensuring VM present",
		zap.String("hostname", params.Hostname),
		zap.String("project", params.Project))

	projects, err := client.ListProjects(ctx)
	if err != nil {
		return Fail("Unable to get projects: %v", err)
	}

	found := false
	for _, project := range projects {
		if project.ID == params.Project {
			found = true
			break
		}
	}
	if !found {
		ids := make([]string, 0, len(projects))
		for _, project := range projects {
			ids = append(ids, project.ID)
		}
		logging.Logger().Debug("Project not found",
			zap.String("project", params.Project),
			zap.Strings("visible", logging.TruncateSlice(ids, 10)))
		return Fail("Unable to find project with id %s", params.Project)
	}

	vm, message, err := client.CreateVM(ctx, params.Hostname, params.POP, params.Project, params.Plan, params.OS)
	if err != nil {
		return Fail("Unable to create VM: %v", err)
	}

	logging.Logger().Info("Created VM",
		zap.String("hostname", params.Hostname),
		zap.String("project", params.Project),
		zap.String("message", logging.Truncate(message)))

	return &Result{
		Changed: true,
		Message: message,
		VM:      vm,
	}
}

// runAbsent deletes the VM by id.
func runAbsent(ctx context.Context, client consoleClient, params *Params) *Result {
	logging.Logger().Debug("Ensuring VM absent", zap.String("id", params.ID))

	message, err := client.DeleteVM(ctx, params.ID)
	if err != nil {
		return Fail("Unable to delete VM: %v", err)
	}

	logging.Logger().Info("Deleted VM",
		zap.String("id", params.ID),
		zap.String("message", logging.Truncate(message)))

	return &Result{
		Changed: true,
		Message: message,
	}
}
