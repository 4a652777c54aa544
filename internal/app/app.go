package app

import (
	"io"
	"log/slog"

	"github.com/vk/geoflowgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a registered,
// validated command registry.
func NewApp(outW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All command modules registered.", "modules", len(modules), "commands", reg.Len())

	// A registry inconsistency is a programmer error (a module declaring a
	// default for an undeclared parameter), so we panic; the entrypoint
	// recovers and reports it as a startup failure.
	if err := reg.Validate(); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
