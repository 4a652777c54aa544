package geo

import (
	"fmt"
	"sort"

	shp "github.com/jonas-p/go-shp"
	geojson "github.com/paulmach/go.geojson"
)

// ReadShapefile reads a shapefile into a feature collection. Point, polyline,
// and polygon shapes are supported; DBF attributes become feature properties.
func ReadShapefile(path string) (*geojson.FeatureCollection, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shapefile: %w", err)
	}
	defer r.Close()

	fields := r.Fields()
	fc := geojson.NewFeatureCollection()

	for r.Next() {
		row, shape := r.Shape()
		g, err := shapeToGeometry(shape)
		if err != nil {
			return nil, fmt.Errorf("shapefile %s, record %d: %w", path, row, err)
		}

		f := geojson.NewFeature(g)
		for i, field := range fields {
			f.Properties[field.String()] = r.ReadAttribute(row, i)
		}
		fc.AddFeature(f)
	}
	return fc, nil
}

// WriteShapefile writes a layer to a shapefile. All features must share one
// of the supported geometry types; mixed-type layers are rejected because the
// shapefile format cannot represent them.
func WriteShapefile(l *Layer, path string) error {
	features := l.Features.Features
	if len(features) == 0 {
		return fmt.Errorf("layer %q has no features to write", l.ID)
	}

	shapeType, err := shapeTypeFor(features[0].Geometry)
	if err != nil {
		return fmt.Errorf("layer %q: %w", l.ID, err)
	}

	w, err := shp.Create(path, shapeType)
	if err != nil {
		return fmt.Errorf("failed to create shapefile: %w", err)
	}
	defer w.Close()

	fields := attributeFields(features)
	w.SetFields(fields)

	for row, f := range features {
		st, err := shapeTypeFor(f.Geometry)
		if err != nil {
			return fmt.Errorf("layer %q, feature %d: %w", l.ID, row, err)
		}
		if st != shapeType {
			return fmt.Errorf("layer %q has mixed geometry types, cannot write shapefile", l.ID)
		}

		shape, err := geometryToShape(f.Geometry)
		if err != nil {
			return fmt.Errorf("layer %q, feature %d: %w", l.ID, row, err)
		}
		w.Write(shape)

		for i, field := range fields {
			val, ok := f.Properties[field.String()]
			if !ok {
				val = ""
			}
			if err := w.WriteAttribute(row, i, fmt.Sprint(val)); err != nil {
				return fmt.Errorf("failed to write attribute %q: %w", field.String(), err)
			}
		}
	}
	return nil
}

func shapeTypeFor(g *geojson.Geometry) (shp.ShapeType, error) {
	if g == nil {
		return 0, fmt.Errorf("feature has no geometry")
	}
	switch g.Type {
	case geojson.GeometryPoint:
		return shp.POINT, nil
	case geojson.GeometryLineString, geojson.GeometryMultiLineString:
		return shp.POLYLINE, nil
	case geojson.GeometryPolygon:
		return shp.POLYGON, nil
	default:
		return 0, fmt.Errorf("geometry type %q is not representable in a shapefile", g.Type)
	}
}

func shapeToGeometry(shape shp.Shape) (*geojson.Geometry, error) {
	switch s := shape.(type) {
	case *shp.Point:
		return geojson.NewPointGeometry([]float64{s.X, s.Y}), nil
	case *shp.PolyLine:
		parts := splitParts(s.Parts, s.Points)
		if len(parts) == 1 {
			return geojson.NewLineStringGeometry(parts[0]), nil
		}
		return geojson.NewMultiLineStringGeometry(parts...), nil
	case *shp.Polygon:
		rings := splitParts(s.Parts, s.Points)
		return geojson.NewPolygonGeometry(rings), nil
	default:
		return nil, fmt.Errorf("unsupported shape type %T", shape)
	}
}

func geometryToShape(g *geojson.Geometry) (shp.Shape, error) {
	switch g.Type {
	case geojson.GeometryPoint:
		p := toOrbPoint(g.Point)
		return &shp.Point{X: p[0], Y: p[1]}, nil
	case geojson.GeometryLineString:
		return shp.NewPolyLine(joinParts([][][]float64{g.LineString})), nil
	case geojson.GeometryMultiLineString:
		return shp.NewPolyLine(joinParts(g.MultiLineString)), nil
	case geojson.GeometryPolygon:
		return (*shp.Polygon)(shp.NewPolyLine(joinParts(g.Polygon))), nil
	default:
		return nil, fmt.Errorf("geometry type %q is not representable in a shapefile", g.Type)
	}
}

// splitParts slices a flat shapefile point array into its per-part
// coordinate lists using the part start offsets.
func splitParts(parts []int32, points []shp.Point) [][][]float64 {
	if len(parts) == 0 {
		parts = []int32{0}
	}
	out := make([][][]float64, 0, len(parts))
	for i, start := range parts {
		end := len(points)
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}
		coords := make([][]float64, 0, end-int(start))
		for _, p := range points[start:end] {
			coords = append(coords, []float64{p.X, p.Y})
		}
		out = append(out, coords)
	}
	return out
}

func joinParts(parts [][][]float64) [][]shp.Point {
	out := make([][]shp.Point, 0, len(parts))
	for _, part := range parts {
		pts := make([]shp.Point, 0, len(part))
		for _, c := range part {
			p := toOrbPoint(c)
			pts = append(pts, shp.Point{X: p[0], Y: p[1]})
		}
		out = append(out, pts)
	}
	return out
}

// attributeFields derives the DBF schema from the union of feature property
// names, in sorted order. Everything is written as a string field; the
// shapefile output here exists for interchange, not fidelity.
func attributeFields(features []*geojson.Feature) []shp.Field {
	seen := map[string]struct{}{}
	var names []string
	for _, f := range features {
		for name := range f.Properties {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)

	fields := make([]shp.Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, shp.StringField(name, 64))
	}
	return fields
}
