package geo

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	geojson "github.com/paulmach/go.geojson"
)

// ReadGeoJSON reads a feature collection from a GeoJSON file.
func ReadGeoJSON(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read geojson file: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geojson file %s: %w", path, err)
	}
	return fc, nil
}

// WriteGeoJSON writes a layer to a GeoJSON file. Coordinates are rounded to
// precision decimal places; precision < 0 writes them untouched.
func WriteGeoJSON(l *Layer, path string, precision int) error {
	fc := l.Features
	if precision >= 0 {
		copied, err := l.Copy(l.ID)
		if err != nil {
			return err
		}
		fc = copied.Features
		for _, f := range fc.Features {
			roundGeometry(f.Geometry, precision)
		}
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("failed to encode layer %q: %w", l.ID, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write geojson file: %w", err)
	}
	return nil
}

// LayerIDFromPath derives a default layer identifier from a file path, e.g.
// "data/parks.geojson" becomes "parks".
func LayerIDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func roundGeometry(g *geojson.Geometry, precision int) {
	if g == nil {
		return
	}
	switch g.Type {
	case geojson.GeometryPoint:
		roundCoords(g.Point, precision)
	case geojson.GeometryMultiPoint:
		for _, c := range g.MultiPoint {
			roundCoords(c, precision)
		}
	case geojson.GeometryLineString:
		for _, c := range g.LineString {
			roundCoords(c, precision)
		}
	case geojson.GeometryMultiLineString:
		for _, line := range g.MultiLineString {
			for _, c := range line {
				roundCoords(c, precision)
			}
		}
	case geojson.GeometryPolygon:
		for _, ring := range g.Polygon {
			for _, c := range ring {
				roundCoords(c, precision)
			}
		}
	case geojson.GeometryMultiPolygon:
		for _, poly := range g.MultiPolygon {
			for _, ring := range poly {
				for _, c := range ring {
					roundCoords(c, precision)
				}
			}
		}
	case geojson.GeometryCollection:
		for _, sub := range g.Geometries {
			roundGeometry(sub, precision)
		}
	}
}

func roundCoords(c []float64, precision int) {
	scale := math.Pow10(precision)
	for i, v := range c {
		c[i] = math.Round(v*scale) / scale
	}
}
