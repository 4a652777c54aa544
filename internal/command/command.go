package command

import (
	"context"

	"github.com/vk/geoflowgo/internal/session"
)

// Command is the single explicit interface all workflow commands implement.
type Command interface {
	// Configure decodes and validates the command's resolved parameter set.
	// Missing required values and out-of-range choices are reported here, so
	// a bad line never reaches Execute.
	Configure(params ParamSet) error

	// Execute performs the command's operation against the session context.
	// Failures of delegated toolkit calls are caught at this boundary and
	// returned, never panicked; the driver logs the error and moves on to the
	// next line.
	Execute(ctx context.Context, sc *session.Context) error
}
