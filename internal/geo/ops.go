package geo

import (
	"fmt"

	"github.com/golang/geo/s2"
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

// Simplify returns a new feature collection with every geometry simplified
// using Douglas-Peucker at the given tolerance (in coordinate units).
// Feature properties are carried over untouched.
func Simplify(fc *geojson.FeatureCollection, tolerance float64) (*geojson.FeatureCollection, error) {
	out := geojson.NewFeatureCollection()
	for i, f := range fc.Features {
		g, err := ToOrb(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		simplified := simplify.DouglasPeucker(tolerance).Simplify(g)
		ng, err := FromOrb(simplified)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		nf := geojson.NewFeature(ng)
		nf.Properties = f.Properties
		out.AddFeature(nf)
	}
	return out, nil
}

// Clip cuts every geometry to the given bounding box. Features that fall
// entirely outside the box are dropped from the result.
func Clip(fc *geojson.FeatureCollection, bound orb.Bound) (*geojson.FeatureCollection, error) {
	out := geojson.NewFeatureCollection()
	for i, f := range fc.Features {
		g, err := ToOrb(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		clipped := clip.Geometry(bound, g)
		if clipped == nil {
			continue
		}
		ng, err := FromOrb(clipped)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		nf := geojson.NewFeature(ng)
		nf.Properties = f.Properties
		out.AddFeature(nf)
	}
	return out, nil
}

// CellToken computes the S2 cell token of a geometry's centroid at the given
// level. Coordinates are assumed to be lon/lat degrees (EPSG:4326).
func CellToken(g *geojson.Geometry, level int) (string, error) {
	if level < 0 || level > 30 {
		return "", fmt.Errorf("s2 level %d out of range 0..30", level)
	}
	og, err := ToOrb(g)
	if err != nil {
		return "", err
	}

	var center orb.Point
	if p, ok := og.(orb.Point); ok {
		center = p
	} else {
		center, _ = planar.CentroidArea(og)
	}

	ll := s2.LatLngFromDegrees(center[1], center[0])
	return s2.CellIDFromLatLng(ll).Parent(level).ToToken(), nil
}
