package geo

import (
	"encoding/json"
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

// DefaultCRS is assumed for layers whose source does not declare one.
const DefaultCRS = "EPSG:4326"

// Layer is a named, in-memory vector layer: a feature collection plus the
// metadata the workflow commands care about. Layers live in the session layer
// store under their ID and are shared by reference between commands.
type Layer struct {
	// ID is the session identifier later commands use to reference the layer.
	ID string
	// SourcePath is the file the layer was read from, empty for derived layers.
	SourcePath string
	// CRS is the coordinate reference system, e.g. "EPSG:4326".
	CRS string
	// Features holds the layer's geometry and attributes.
	Features *geojson.FeatureCollection
}

// NewLayer returns an empty layer with the default CRS.
func NewLayer(id string) *Layer {
	return &Layer{
		ID:       id,
		CRS:      DefaultCRS,
		Features: geojson.NewFeatureCollection(),
	}
}

// NumFeatures returns the number of features in the layer.
func (l *Layer) NumFeatures() int {
	if l.Features == nil {
		return 0
	}
	return len(l.Features.Features)
}

// Copy deep-copies the layer under a new ID. The copy shares no state with
// the original, so mutating commands on one never leak into the other.
func (l *Layer) Copy(newID string) (*Layer, error) {
	data, err := json.Marshal(l.Features)
	if err != nil {
		return nil, fmt.Errorf("failed to copy layer %q: %w", l.ID, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to copy layer %q: %w", l.ID, err)
	}
	return &Layer{
		ID:         newID,
		SourcePath: l.SourcePath,
		CRS:        l.CRS,
		Features:   fc,
	}, nil
}
