package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/registry"
	"github.com/vk/geoflowgo/internal/script"
	"github.com/vk/geoflowgo/internal/session"
)

// Driver interprets one script against a registry and a session context.
type Driver struct {
	registry *registry.Registry
	session  *session.Context
}

// New creates a driver. The session context is injected so tests and callers
// control its lifetime and observe its state after a run.
func New(reg *registry.Registry, sc *session.Context) *Driver {
	return &Driver{registry: reg, session: sc}
}

// Run executes the script's command lines in file order and returns the
// per-line outcomes. Failing lines never stop the run; the returned error is
// reserved for teardown problems.
func (d *Driver) Run(ctx context.Context, s *script.Script) (Results, error) {
	logger := ctxlog.FromContext(ctx)

	// Setup
	commands := s.Commands()
	logger.Info("Session starting.", "script", s.Path, "commands", len(commands))

	// Running
	results := make(Results, 0, len(commands))
	for _, line := range commands {
		res := d.runLine(ctx, line)
		results = append(results, res)

		switch res.Status {
		case StatusSuccess:
			logger.Info("Command succeeded.", "line", res.Line, "command", res.Command)
		case StatusWarning:
			logger.Warn("Command completed with warnings.", "line", res.Line, "command", res.Command, "error", res.Err)
		case StatusFailure:
			logger.Error("Command failed.", "line", res.Line, "command", res.Command, "error", res.Err)
		}
	}

	// Teardown
	logger.Info("Session finished.",
		"succeeded", results.Successes(),
		"warnings", results.Warnings(),
		"failed", results.Failures(),
		"layers", d.session.Layers().Len(),
	)
	if err := d.session.Close(ctx); err != nil {
		return results, fmt.Errorf("session teardown: %w", err)
	}
	return results, nil
}

// runLine drives one command line through parse → lookup → resolve →
// configure → execute. Every stage's failure is captured in the result
// instead of propagating.
func (d *Driver) runLine(ctx context.Context, line script.Line) LineResult {
	call, err := script.ParseCall(line.Raw, line.Num)
	if err != nil {
		return LineResult{Line: line.Num, Status: StatusFailure, Err: err}
	}

	spec, ok := d.registry.Lookup(call.Name)
	if !ok {
		return LineResult{
			Line:    line.Num,
			Command: call.Name,
			Status:  StatusFailure,
			Err:     fmt.Errorf("unrecognized command %q", call.Name),
		}
	}

	params, err := command.Resolve(call, spec.ParameterNames, spec.Defaults, d.session.ExpandProperties)
	if err != nil {
		return LineResult{Line: line.Num, Command: call.Name, Status: StatusFailure, Err: err}
	}

	cmd := spec.New()
	if err := cmd.Configure(params); err != nil {
		return LineResult{
			Line:    line.Num,
			Command: call.Name,
			Status:  StatusFailure,
			Err:     fmt.Errorf("invalid parameters: %w", err),
		}
	}

	if err := cmd.Execute(ctx, d.session); err != nil {
		status := StatusFailure
		if errors.Is(err, command.ErrWarnings) {
			status = StatusWarning
		}
		return LineResult{Line: line.Num, Command: call.Name, Status: status, Err: err}
	}

	return LineResult{Line: line.Num, Command: call.Name, Status: StatusSuccess}
}
