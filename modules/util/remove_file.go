package util

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/session"
)

// removeFile deletes a file from disk. What happens when the file does not
// exist is the user's choice via IfSourceFileNotFound.
type removeFile struct {
	sourceFile string
	ifMissing  command.NotFoundPolicy
}

func (c *removeFile) Configure(params command.ParamSet) error {
	var err error
	if c.sourceFile, err = params.RequiredString("SourceFile"); err != nil {
		return err
	}
	policy, err := params.String("IfSourceFileNotFound")
	if err != nil {
		return err
	}
	c.ifMissing, err = command.ParseNotFoundPolicy(policy)
	return err
}

func (c *removeFile) Execute(ctx context.Context, sc *session.Context) error {
	st := command.NewStatus(ctx, "RemoveFile")

	path := sc.ResolvePath(c.sourceFile)
	err := os.Remove(path)
	if err == nil {
		ctxlog.FromContext(ctx).Info("Removed file.", "path", path)
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	switch c.ifMissing {
	case command.FailNotFound:
		return fmt.Errorf("file %q not found", path)
	case command.WarnNotFound:
		st.Warnf("file %q not found", path)
	}
	return st.Err()
}
