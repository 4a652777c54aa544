package geo

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

// ToOrb converts a GeoJSON geometry into its orb equivalent so the orb
// operation packages (simplify, clip, planar) can work on it.
func ToOrb(g *geojson.Geometry) (orb.Geometry, error) {
	if g == nil {
		return nil, fmt.Errorf("nil geometry")
	}
	switch g.Type {
	case geojson.GeometryPoint:
		return toOrbPoint(g.Point), nil
	case geojson.GeometryMultiPoint:
		mp := make(orb.MultiPoint, 0, len(g.MultiPoint))
		for _, c := range g.MultiPoint {
			mp = append(mp, toOrbPoint(c))
		}
		return mp, nil
	case geojson.GeometryLineString:
		return toOrbLine(g.LineString), nil
	case geojson.GeometryMultiLineString:
		mls := make(orb.MultiLineString, 0, len(g.MultiLineString))
		for _, line := range g.MultiLineString {
			mls = append(mls, toOrbLine(line))
		}
		return mls, nil
	case geojson.GeometryPolygon:
		return toOrbPolygon(g.Polygon), nil
	case geojson.GeometryMultiPolygon:
		mpoly := make(orb.MultiPolygon, 0, len(g.MultiPolygon))
		for _, poly := range g.MultiPolygon {
			mpoly = append(mpoly, toOrbPolygon(poly))
		}
		return mpoly, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %q", g.Type)
	}
}

// FromOrb converts an orb geometry back into its GeoJSON form.
func FromOrb(g orb.Geometry) (*geojson.Geometry, error) {
	switch v := g.(type) {
	case orb.Point:
		return geojson.NewPointGeometry(fromOrbPoint(v)), nil
	case orb.MultiPoint:
		coords := make([][]float64, 0, len(v))
		for _, p := range v {
			coords = append(coords, fromOrbPoint(p))
		}
		return geojson.NewMultiPointGeometry(coords...), nil
	case orb.LineString:
		return geojson.NewLineStringGeometry(fromOrbLine(v)), nil
	case orb.MultiLineString:
		lines := make([][][]float64, 0, len(v))
		for _, line := range v {
			lines = append(lines, fromOrbLine(line))
		}
		return geojson.NewMultiLineStringGeometry(lines...), nil
	case orb.Polygon:
		return geojson.NewPolygonGeometry(fromOrbPolygon(v)), nil
	case orb.MultiPolygon:
		polys := make([][][][]float64, 0, len(v))
		for _, poly := range v {
			polys = append(polys, fromOrbPolygon(poly))
		}
		return geojson.NewMultiPolygonGeometry(polys...), nil
	default:
		return nil, fmt.Errorf("unsupported orb geometry type %T", g)
	}
}

func toOrbPoint(c []float64) orb.Point {
	var p orb.Point
	if len(c) > 0 {
		p[0] = c[0]
	}
	if len(c) > 1 {
		p[1] = c[1]
	}
	return p
}

func toOrbLine(coords [][]float64) orb.LineString {
	line := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		line = append(line, toOrbPoint(c))
	}
	return line
}

func toOrbPolygon(rings [][][]float64) orb.Polygon {
	poly := make(orb.Polygon, 0, len(rings))
	for _, ring := range rings {
		r := make(orb.Ring, 0, len(ring))
		for _, c := range ring {
			r = append(r, toOrbPoint(c))
		}
		poly = append(poly, r)
	}
	return poly
}

func fromOrbPoint(p orb.Point) []float64 {
	return []float64{p[0], p[1]}
}

func fromOrbLine(line orb.LineString) [][]float64 {
	coords := make([][]float64, 0, len(line))
	for _, p := range line {
		coords = append(coords, fromOrbPoint(p))
	}
	return coords
}

func fromOrbPolygon(poly orb.Polygon) [][][]float64 {
	rings := make([][][]float64, 0, len(poly))
	for _, ring := range poly {
		coords := make([][]float64, 0, len(ring))
		for _, p := range ring {
			coords = append(coords, fromOrbPoint(p))
		}
		rings = append(rings, coords)
	}
	return rings
}
