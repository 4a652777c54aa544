package util

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/session"
)

// createTempFile creates an empty file in the session temp directory,
// registers it for removal at Teardown, and publishes its path as a session
// property so later lines can reference it with ${name}.
type createTempFile struct {
	property string
	suffix   string
}

func (c *createTempFile) Configure(params command.ParamSet) error {
	var err error
	if c.property, err = params.RequiredString("PropertyName"); err != nil {
		return err
	}
	c.suffix, err = params.String("Suffix")
	return err
}

func (c *createTempFile) Execute(ctx context.Context, sc *session.Context) error {
	path := sc.NewTempFile(c.suffix)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	sc.SetProperty(c.property, path)
	ctxlog.FromContext(ctx).Info("Created temp file.", "path", path, "property", c.property)
	return nil
}
