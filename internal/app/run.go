package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/driver"
	"github.com/vk/geoflowgo/internal/fsutil"
	"github.com/vk/geoflowgo/internal/script"
	"github.com/vk/geoflowgo/internal/session"
)

// ScriptExtension is the workflow script file extension looked for when
// ScriptPath names a directory.
const ScriptExtension = ".gfs"

// Run executes every script named by the configuration, one session per
// script, strictly in order. Failing lines inside a script never stop that
// script; a nonzero total failure count is reported through the returned
// error once all scripts have run.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	scripts, err := findScripts(cfg.ScriptPath)
	if err != nil {
		return err
	}
	a.logger.Info("Commands registered.", "count", a.registry.Len())
	a.logger.Info("Scripts found.", "count", len(scripts))

	totalFailures := 0
	for _, path := range scripts {
		s, err := script.Load(path)
		if err != nil {
			return err
		}

		workDir := cfg.WorkingDir
		if workDir == "" {
			workDir = filepath.Dir(path)
		}
		sc := session.NewContext(workDir, cfg.TempDir)

		results, err := driver.New(a.registry, sc).Run(ctx, s)
		if err != nil {
			return fmt.Errorf("script %s: %w", path, err)
		}
		totalFailures += results.Failures()
	}

	a.logger.Debug("App.Run method finished.")
	if totalFailures > 0 {
		return fmt.Errorf("run completed with %d failed command line(s)", totalFailures)
	}
	return nil
}

// findScripts expands a script path into the ordered list of script files:
// the path itself for a file, or every script in the tree for a directory.
func findScripts(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("script path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	scripts, err := fsutil.FindFilesByExtension(path, ScriptExtension)
	if err != nil {
		return nil, fmt.Errorf("failed to scan script directory: %w", err)
	}
	if len(scripts) == 0 {
		return nil, fmt.Errorf("no %s scripts found under %s", ScriptExtension, path)
	}
	return scripts, nil
}
