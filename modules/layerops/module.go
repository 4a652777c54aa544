// Package layerops provides the commands that operate on layers already in
// session state: copying, renaming, freeing, CRS and attribute edits, and
// the geometry operations delegated to the toolkit.
package layerops

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/registry"
)

// Module implements registry.Module for this package.
type Module struct{}

// Register contributes the layer operation command specs.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Spec{
		Name:           "CopyGeoLayer",
		ParameterNames: []string{"GeoLayerID", "CopiedGeoLayerID", "IfGeoLayerIDExists"},
		Defaults: map[string]cty.Value{
			"CopiedGeoLayerID":   cty.StringVal(""),
			"IfGeoLayerIDExists": cty.StringVal("Replace"),
		},
		New: func() command.Command { return &copyLayer{} },
	})
	r.Register(&registry.Spec{
		Name:           "RenameGeoLayerID",
		ParameterNames: []string{"GeoLayerID", "NewGeoLayerID", "IfGeoLayerIDExists"},
		Defaults: map[string]cty.Value{
			"IfGeoLayerIDExists": cty.StringVal("Replace"),
		},
		New: func() command.Command { return &renameLayer{} },
	})
	r.Register(&registry.Spec{
		Name:           "FreeGeoLayers",
		ParameterNames: []string{"GeoLayerIDs"},
		New:            func() command.Command { return &freeLayers{} },
	})
	r.Register(&registry.Spec{
		Name:           "SetGeoLayerCRS",
		ParameterNames: []string{"GeoLayerID", "CRS"},
		New:            func() command.Command { return &setCRS{} },
	})
	r.Register(&registry.Spec{
		Name:           "SimplifyGeoLayer",
		ParameterNames: []string{"GeoLayerID", "Tolerance", "SimplifiedGeoLayerID", "IfGeoLayerIDExists"},
		Defaults: map[string]cty.Value{
			"SimplifiedGeoLayerID": cty.StringVal(""),
			"IfGeoLayerIDExists":   cty.StringVal("Replace"),
		},
		New: func() command.Command { return &simplifyLayer{} },
	})
	r.Register(&registry.Spec{
		Name:           "ClipGeoLayer",
		ParameterNames: []string{"GeoLayerID", "ClipExtent", "ClippedGeoLayerID", "IfGeoLayerIDExists"},
		Defaults: map[string]cty.Value{
			"ClippedGeoLayerID":  cty.StringVal(""),
			"IfGeoLayerIDExists": cty.StringVal("Replace"),
		},
		New: func() command.Command { return &clipLayer{} },
	})
	r.Register(&registry.Spec{
		Name:           "MergeGeoLayers",
		ParameterNames: []string{"GeoLayerIDs", "MergedGeoLayerID", "IfGeoLayerIDExists"},
		Defaults: map[string]cty.Value{
			"IfGeoLayerIDExists": cty.StringVal("Replace"),
		},
		New: func() command.Command { return &mergeLayers{} },
	})
	r.Register(&registry.Spec{
		Name:           "AddGeoLayerS2Tokens",
		ParameterNames: []string{"GeoLayerID", "Level", "AttributeName"},
		Defaults: map[string]cty.Value{
			"Level":         cty.StringVal("10"),
			"AttributeName": cty.StringVal("s2_token"),
		},
		New: func() command.Command { return &addS2Tokens{} },
	})
	r.Register(&registry.Spec{
		Name:           "RemoveGeoLayerAttributes",
		ParameterNames: []string{"GeoLayerID", "AttributeNames"},
		New:            func() command.Command { return &removeAttributes{} },
	})
}
