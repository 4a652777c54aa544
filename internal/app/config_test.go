package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(Config{ScriptPath: "workflow.gfs"})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestNewConfig_MissingScriptPath(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)
}

func TestNewConfig_FileValuesApplyWhenFlagsAreEmpty(t *testing.T) {
	path := writeConfigFile(t, "log_level = \"debug\"\nlog_format = \"json\"\n")

	cfg, err := NewConfig(Config{ScriptPath: "workflow.gfs", ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	// The merged level reaches the logger.
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, &bytes.Buffer{})
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewConfig_FlagsWinOverFile(t *testing.T) {
	path := writeConfigFile(t, "log_level = \"debug\"\nworking_dir = \"/from/file\"\n")

	cfg, err := NewConfig(Config{
		ScriptPath: "workflow.gfs",
		ConfigFile: path,
		LogLevel:   "warn",
		WorkingDir: "/from/flag",
	})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/from/flag", cfg.WorkingDir)
}

func TestNewConfig_RejectsInvalidMergedValues(t *testing.T) {
	t.Run("bad log level from file", func(t *testing.T) {
		path := writeConfigFile(t, "log_level = \"verbose\"\n")
		_, err := NewConfig(Config{ScriptPath: "workflow.gfs", ConfigFile: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "verbose")
	})

	t.Run("bad log format from flag", func(t *testing.T) {
		_, err := NewConfig(Config{ScriptPath: "workflow.gfs", LogFormat: "xml"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "xml")
	})
}
