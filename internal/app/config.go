package app

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds everything an App instance needs to run.
type Config struct {
	// ScriptPath is a single workflow script or a directory of them.
	ScriptPath string
	// ConfigFile is an optional HCL settings file; empty means flags only.
	ConfigFile string

	// WorkingDir is where relative paths in scripts resolve. Empty defaults
	// to each script's own directory.
	WorkingDir string
	// TempDir is where session temp files are created. Empty uses the OS
	// default.
	TempDir string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies the optional settings file.
// CLI-provided values win over file values.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScriptPath == "" {
		return nil, errors.New("ScriptPath is a required configuration field and cannot be empty")
	}

	if cfg.ConfigFile != "" {
		fileCfg, err := loadConfigFile(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		if cfg.LogLevel == "" {
			cfg.LogLevel = fileCfg.LogLevel
		}
		if cfg.LogFormat == "" {
			cfg.LogFormat = fileCfg.LogFormat
		}
		if cfg.WorkingDir == "" {
			cfg.WorkingDir = fileCfg.WorkingDir
		}
		if cfg.TempDir == "" {
			cfg.TempDir = fileCfg.TempDir
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	// Validation runs after the merge so file-supplied values are held to the
	// same standard as flags.
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	return &cfg, nil
}
