package geo

import (
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOrbFromOrb_Roundtrip(t *testing.T) {
	testCases := []struct {
		name string
		g    *geojson.Geometry
	}{
		{
			name: "point",
			g:    geojson.NewPointGeometry([]float64{13.4, 52.5}),
		},
		{
			name: "multipoint",
			g:    geojson.NewMultiPointGeometry([]float64{0, 0}, []float64{1, 1}),
		},
		{
			name: "linestring",
			g:    geojson.NewLineStringGeometry([][]float64{{0, 0}, {1, 1}, {2, 0}}),
		},
		{
			name: "multilinestring",
			g: geojson.NewMultiLineStringGeometry(
				[][]float64{{0, 0}, {1, 1}},
				[][]float64{{2, 2}, {3, 3}},
			),
		},
		{
			name: "polygon",
			g: geojson.NewPolygonGeometry([][][]float64{
				{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
			}),
		},
		{
			name: "multipolygon",
			g: geojson.NewMultiPolygonGeometry(
				[][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
				[][][]float64{{{5, 5}, {6, 5}, {6, 6}, {5, 5}}},
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			og, err := ToOrb(tc.g)
			require.NoError(t, err)

			back, err := FromOrb(og)
			require.NoError(t, err)
			assert.Equal(t, tc.g, back)
		})
	}
}

func TestToOrb_NilGeometry(t *testing.T) {
	_, err := ToOrb(nil)
	require.Error(t, err)
}
