package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoflowgo/internal/command"
)

// Module is the interface a package of commands implements to contribute its
// specs to a registry.
type Module interface {
	Register(r *Registry)
}

// Spec is the class-level metadata of one command: everything the resolver
// needs before an instance exists.
type Spec struct {
	// Name is the command name as written in script files.
	Name string
	// ParameterNames is the declared parameter order. Positional arguments
	// resolve against it.
	ParameterNames []string
	// Defaults maps optional parameter names to their default values.
	// Parameters absent from Defaults are required.
	Defaults map[string]cty.Value
	// New constructs a fresh, unconfigured command instance.
	New func() command.Command
}

// Registry holds all registered command specs for one application instance.
type Registry struct {
	specs map[string]*Spec
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{specs: make(map[string]*Spec)}
}

// Register adds a command spec. Registering the same name twice is a
// programmer error and panics.
func (r *Registry) Register(spec *Spec) {
	if _, exists := r.specs[spec.Name]; exists {
		panic(fmt.Sprintf("command %q already registered", spec.Name))
	}
	slog.Debug("Registering command.", "name", spec.Name)
	r.specs[spec.Name] = spec
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (*Spec, bool) {
	spec, ok := r.specs[name]
	return spec, ok
}

// Valid reports whether name is a registered command name.
func (r *Registry) Valid(name string) bool {
	_, ok := r.specs[name]
	return ok
}

// ParameterNames returns the declared parameter order for name.
func (r *Registry) ParameterNames(name string) []string {
	if spec, ok := r.specs[name]; ok {
		return spec.ParameterNames
	}
	return nil
}

// Defaults returns the default-value mapping for name.
func (r *Registry) Defaults(name string) map[string]cty.Value {
	if spec, ok := r.specs[name]; ok {
		return spec.Defaults
	}
	return nil
}

// Names returns all registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.specs)
}
