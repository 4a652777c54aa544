package util

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/session"
)

// setWorkingDir changes the directory later relative paths resolve against.
type setWorkingDir struct {
	dir string
}

func (c *setWorkingDir) Configure(params command.ParamSet) error {
	var err error
	c.dir, err = params.RequiredString("WorkingDir")
	return err
}

func (c *setWorkingDir) Execute(ctx context.Context, sc *session.Context) error {
	dir := sc.ResolvePath(c.dir)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("working directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("working directory %q is not a directory", dir)
	}

	sc.SetWorkingDir(dir)
	ctxlog.FromContext(ctx).Info("Set working directory.", "dir", dir)
	return nil
}
