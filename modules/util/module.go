// Package util provides the housekeeping commands of a workflow: logging a
// message, setting the working directory and session properties, and
// creating or removing files.
package util

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/registry"
)

// Module implements registry.Module for this package.
type Module struct{}

// Register contributes the utility command specs.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Spec{
		Name:           "Message",
		ParameterNames: []string{"Message"},
		New:            func() command.Command { return &message{} },
	})
	r.Register(&registry.Spec{
		Name:           "SetWorkingDir",
		ParameterNames: []string{"WorkingDir"},
		New:            func() command.Command { return &setWorkingDir{} },
	})
	r.Register(&registry.Spec{
		Name:           "SetProperty",
		ParameterNames: []string{"PropertyName", "PropertyValue"},
		New:            func() command.Command { return &setProperty{} },
	})
	r.Register(&registry.Spec{
		Name:           "CreateTempFile",
		ParameterNames: []string{"PropertyName", "Suffix"},
		Defaults: map[string]cty.Value{
			"Suffix": cty.StringVal(""),
		},
		New: func() command.Command { return &createTempFile{} },
	})
	r.Register(&registry.Spec{
		Name:           "RemoveFile",
		ParameterNames: []string{"SourceFile", "IfSourceFileNotFound"},
		Defaults: map[string]cty.Value{
			"IfSourceFileNotFound": cty.StringVal("Warn"),
		},
		New: func() command.Command { return &removeFile{} },
	})
}
