package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vk/geoflowgo/internal/ctxlog"
)

// ErrWarnings marks an error produced solely by recorded warnings. The
// driver uses it to tell a warning-level line apart from a hard failure.
var ErrWarnings = errors.New("command completed with warnings")

// Status records per-command warnings during a run. Commands log warnings
// through it as they go; a nonzero count turns into an error after Execute
// finishes, so the line is marked as failed while the run itself continues.
type Status struct {
	command  string
	logger   *slog.Logger
	warnings int
}

// NewStatus creates a recorder for one command execution.
func NewStatus(ctx context.Context, commandName string) *Status {
	return &Status{
		command: commandName,
		logger:  ctxlog.FromContext(ctx).With("command", commandName),
	}
}

// Warnf logs a warning and counts it against the command.
func (s *Status) Warnf(format string, args ...any) {
	s.warnings++
	s.logger.Warn(fmt.Sprintf(format, args...))
}

// Warnings returns the number of warnings recorded so far.
func (s *Status) Warnings() int {
	return s.warnings
}

// Err returns nil when no warnings were recorded, otherwise an error
// summarizing the count.
func (s *Status) Err() error {
	if s.warnings == 0 {
		return nil
	}
	return fmt.Errorf("%w: command %s finished with %d warning(s)", ErrWarnings, s.command, s.warnings)
}
