// Package layerio provides the commands that move layers between session
// state and files on disk: GeoJSON and shapefile readers and writers.
package layerio

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/registry"
)

// Module implements registry.Module for this package.
type Module struct{}

// Register contributes the layer I/O command specs.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Spec{
		Name:           "ReadGeoLayerFromGeoJSON",
		ParameterNames: []string{"InputFile", "GeoLayerID", "IfGeoLayerIDExists"},
		Defaults: map[string]cty.Value{
			"GeoLayerID":         cty.StringVal(""),
			"IfGeoLayerIDExists": cty.StringVal("Replace"),
		},
		New: func() command.Command { return &readGeoJSON{} },
	})
	r.Register(&registry.Spec{
		Name:           "ReadGeoLayerFromShapefile",
		ParameterNames: []string{"InputFile", "GeoLayerID", "IfGeoLayerIDExists"},
		Defaults: map[string]cty.Value{
			"GeoLayerID":         cty.StringVal(""),
			"IfGeoLayerIDExists": cty.StringVal("Replace"),
		},
		New: func() command.Command { return &readShapefile{} },
	})
	r.Register(&registry.Spec{
		Name:           "WriteGeoLayerToGeoJSON",
		ParameterNames: []string{"GeoLayerID", "OutputFile", "OutputPrecision"},
		Defaults: map[string]cty.Value{
			"OutputPrecision": cty.StringVal("5"),
		},
		New: func() command.Command { return &writeGeoJSON{} },
	})
	r.Register(&registry.Spec{
		Name:           "WriteGeoLayerToShapefile",
		ParameterNames: []string{"GeoLayerID", "OutputFile"},
		New:            func() command.Command { return &writeShapefile{} },
	})
}
