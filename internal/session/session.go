package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"

	"github.com/vk/geoflowgo/internal/ctxlog"
)

// propertyRef matches ${name} references inside parameter values.
var propertyRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Context is the per-run session state. It is created by the driver during
// Setup, passed to every command's Execute, and closed during Teardown.
type Context struct {
	layers    *LayerStore
	props     map[string]string
	tempFiles []string
	workDir   string
	tempDir   string
}

// NewContext creates a session rooted at workDir. Temp files created through
// the session land in tempDir; an empty tempDir falls back to the OS default.
func NewContext(workDir, tempDir string) *Context {
	if workDir == "" {
		workDir, _ = os.Getwd()
	}
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Context{
		layers:  NewLayerStore(),
		props:   make(map[string]string),
		workDir: workDir,
		tempDir: tempDir,
	}
}

// Layers returns the session layer store.
func (c *Context) Layers() *LayerStore {
	return c.layers
}

// SetProperty sets a named session property.
func (c *Context) SetProperty(name, value string) {
	c.props[name] = value
}

// Property looks up a session property.
func (c *Context) Property(name string) (string, bool) {
	v, ok := c.props[name]
	return v, ok
}

// ExpandProperties substitutes ${name} references in s with session property
// values. Unknown references are left as-is so the failure surfaces in the
// consuming command rather than silently becoming an empty string.
func (c *Context) ExpandProperties(s string) string {
	return propertyRef.ReplaceAllStringFunc(s, func(ref string) string {
		name := propertyRef.FindStringSubmatch(ref)[1]
		if v, ok := c.props[name]; ok {
			return v
		}
		return ref
	})
}

// WorkingDir returns the session working directory.
func (c *Context) WorkingDir() string {
	return c.workDir
}

// SetWorkingDir changes the directory relative paths resolve against.
func (c *Context) SetWorkingDir(dir string) {
	c.workDir = dir
}

// ResolvePath resolves p against the session working directory. Absolute
// paths pass through untouched.
func (c *Context) ResolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.workDir, p)
}

// NewTempFile reserves a unique path in the session temp directory and
// registers it for removal at Teardown. The file itself is not created.
func (c *Context) NewTempFile(suffix string) string {
	path := filepath.Join(c.tempDir, "gf-"+uuid.NewString()+suffix)
	c.RegisterTempFile(path)
	return path
}

// RegisterTempFile marks path for removal when the session closes.
func (c *Context) RegisterTempFile(path string) {
	c.tempFiles = append(c.tempFiles, path)
}

// TempFiles returns the registered temp-file paths.
func (c *Context) TempFiles() []string {
	return c.tempFiles
}

// Close removes every registered temp file. Files that were never created
// are skipped silently; removal failures are logged and collected.
func (c *Context) Close(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var failed int
	for _, path := range c.tempFiles {
		err := os.Remove(path)
		if err == nil {
			logger.Debug("Removed session temp file.", "path", path)
			continue
		}
		if os.IsNotExist(err) {
			continue
		}
		logger.Warn("Failed to remove session temp file.", "path", path, "error", err)
		failed++
	}
	c.tempFiles = nil

	if failed > 0 {
		return fmt.Errorf("failed to remove %d session temp file(s)", failed)
	}
	return nil
}
