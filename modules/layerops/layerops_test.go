package layerops

import (
	"context"
	"errors"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/geo"
	"github.com/vk/geoflowgo/internal/session"
)

func strList(items ...string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, 0, len(items))
	for _, s := range items {
		vals = append(vals, cty.StringVal(s))
	}
	return cty.ListVal(vals)
}

// pointLayer builds a layer with one point feature per coordinate pair.
func pointLayer(id string, coords ...[]float64) *geo.Layer {
	l := geo.NewLayer(id)
	for _, c := range coords {
		f := geojson.NewFeature(geojson.NewPointGeometry(c))
		f.Properties = map[string]any{"name": id}
		l.Features.AddFeature(f)
	}
	return l
}

func TestCopyGeoLayer(t *testing.T) {
	newSession := func(t *testing.T) *session.Context {
		sc := session.NewContext(t.TempDir(), t.TempDir())
		sc.Layers().Set(pointLayer("roads", []float64{1, 1}))
		return sc
	}

	t.Run("default copy ID appends _copy", func(t *testing.T) {
		sc := newSession(t)
		cmd := &copyLayer{}
		require.NoError(t, cmd.Configure(command.ParamSet{
			"GeoLayerID":         cty.StringVal("roads"),
			"CopiedGeoLayerID":   cty.StringVal(""),
			"IfGeoLayerIDExists": cty.StringVal("Replace"),
		}))
		require.NoError(t, cmd.Execute(context.Background(), sc))

		copied, ok := sc.Layers().Get("roads_copy")
		require.True(t, ok)
		assert.Equal(t, 1, copied.NumFeatures())
	})

	t.Run("copy is deep", func(t *testing.T) {
		sc := newSession(t)
		cmd := &copyLayer{}
		require.NoError(t, cmd.Configure(command.ParamSet{
			"GeoLayerID":         cty.StringVal("roads"),
			"CopiedGeoLayerID":   cty.StringVal("roads2"),
			"IfGeoLayerIDExists": cty.StringVal("Replace"),
		}))
		require.NoError(t, cmd.Execute(context.Background(), sc))

		copied, _ := sc.Layers().Get("roads2")
		copied.Features.Features[0].Properties["name"] = "mutated"

		original, _ := sc.Layers().Get("roads")
		assert.Equal(t, "roads", original.Features.Features[0].Properties["name"])
	})

	t.Run("Fail policy rejects an existing target ID", func(t *testing.T) {
		sc := newSession(t)
		sc.Layers().Set(pointLayer("taken", []float64{2, 2}))

		cmd := &copyLayer{}
		require.NoError(t, cmd.Configure(command.ParamSet{
			"GeoLayerID":         cty.StringVal("roads"),
			"CopiedGeoLayerID":   cty.StringVal("taken"),
			"IfGeoLayerIDExists": cty.StringVal("Fail"),
		}))

		err := cmd.Execute(context.Background(), sc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "taken")
	})

	t.Run("Warn policy keeps the existing layer", func(t *testing.T) {
		sc := newSession(t)
		existing := pointLayer("taken", []float64{2, 2}, []float64{3, 3})
		sc.Layers().Set(existing)

		cmd := &copyLayer{}
		require.NoError(t, cmd.Configure(command.ParamSet{
			"GeoLayerID":         cty.StringVal("roads"),
			"CopiedGeoLayerID":   cty.StringVal("taken"),
			"IfGeoLayerIDExists": cty.StringVal("Warn"),
		}))

		err := cmd.Execute(context.Background(), sc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, command.ErrWarnings))

		kept, _ := sc.Layers().Get("taken")
		assert.Equal(t, 2, kept.NumFeatures(), "the existing layer must survive")
	})

	t.Run("missing source layer is a failure", func(t *testing.T) {
		sc := session.NewContext(t.TempDir(), t.TempDir())
		cmd := &copyLayer{}
		require.NoError(t, cmd.Configure(command.ParamSet{
			"GeoLayerID":         cty.StringVal("ghost"),
			"CopiedGeoLayerID":   cty.StringVal(""),
			"IfGeoLayerIDExists": cty.StringVal("Replace"),
		}))

		err := cmd.Execute(context.Background(), sc)
		require.Error(t, err)
		assert.False(t, errors.Is(err, command.ErrWarnings))
	})
}

func TestRenameGeoLayerID(t *testing.T) {
	sc := session.NewContext(t.TempDir(), t.TempDir())
	sc.Layers().Set(pointLayer("old", []float64{1, 1}))

	cmd := &renameLayer{}
	require.NoError(t, cmd.Configure(command.ParamSet{
		"GeoLayerID":         cty.StringVal("old"),
		"NewGeoLayerID":      cty.StringVal("new"),
		"IfGeoLayerIDExists": cty.StringVal("Replace"),
	}))
	require.NoError(t, cmd.Execute(context.Background(), sc))

	assert.False(t, sc.Layers().Contains("old"))
	renamed, ok := sc.Layers().Get("new")
	require.True(t, ok)
	assert.Equal(t, "new", renamed.ID)
}

func TestRenameGeoLayerID_ExistingTarget(t *testing.T) {
	newSession := func(t *testing.T) *session.Context {
		sc := session.NewContext(t.TempDir(), t.TempDir())
		sc.Layers().Set(pointLayer("src", []float64{1, 1}))
		sc.Layers().Set(pointLayer("dst", []float64{2, 2}, []float64{3, 3}))
		return sc
	}
	configure := func(t *testing.T, policy string) *renameLayer {
		cmd := &renameLayer{}
		require.NoError(t, cmd.Configure(command.ParamSet{
			"GeoLayerID":         cty.StringVal("src"),
			"NewGeoLayerID":      cty.StringVal("dst"),
			"IfGeoLayerIDExists": cty.StringVal(policy),
		}))
		return cmd
	}

	t.Run("Warn keeps both the source and the target", func(t *testing.T) {
		sc := newSession(t)

		err := configure(t, "Warn").Execute(context.Background(), sc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, command.ErrWarnings))

		src, ok := sc.Layers().Get("src")
		require.True(t, ok, "the source layer must survive a kept-target rename")
		assert.Equal(t, "src", src.ID)

		dst, ok := sc.Layers().Get("dst")
		require.True(t, ok)
		assert.Equal(t, 2, dst.NumFeatures(), "the existing target must be untouched")
	})

	t.Run("Fail keeps both the source and the target", func(t *testing.T) {
		sc := newSession(t)

		err := configure(t, "Fail").Execute(context.Background(), sc)
		require.Error(t, err)
		assert.False(t, errors.Is(err, command.ErrWarnings))

		assert.True(t, sc.Layers().Contains("src"))
		dst, _ := sc.Layers().Get("dst")
		assert.Equal(t, 2, dst.NumFeatures())
	})

	t.Run("ReplaceAndWarn replaces the target and drops the source", func(t *testing.T) {
		sc := newSession(t)

		err := configure(t, "ReplaceAndWarn").Execute(context.Background(), sc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, command.ErrWarnings))

		assert.False(t, sc.Layers().Contains("src"))
		dst, ok := sc.Layers().Get("dst")
		require.True(t, ok)
		assert.Equal(t, 1, dst.NumFeatures(), "the renamed source replaces the target")
	})
}

func TestRenameGeoLayerID_SameIDFails(t *testing.T) {
	sc := session.NewContext(t.TempDir(), t.TempDir())
	sc.Layers().Set(pointLayer("same", []float64{1, 1}))

	cmd := &renameLayer{}
	require.NoError(t, cmd.Configure(command.ParamSet{
		"GeoLayerID":         cty.StringVal("same"),
		"NewGeoLayerID":      cty.StringVal("same"),
		"IfGeoLayerIDExists": cty.StringVal("Replace"),
	}))

	require.Error(t, cmd.Execute(context.Background(), sc))
	assert.True(t, sc.Layers().Contains("same"))
}

func TestFreeGeoLayers(t *testing.T) {
	sc := session.NewContext(t.TempDir(), t.TempDir())
	sc.Layers().Set(pointLayer("a", []float64{1, 1}))
	sc.Layers().Set(pointLayer("b", []float64{2, 2}))

	cmd := &freeLayers{}
	require.NoError(t, cmd.Configure(command.ParamSet{
		"GeoLayerIDs": strList("a", "missing"),
	}))

	err := cmd.Execute(context.Background(), sc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, command.ErrWarnings), "a missing ID downgrades to a warning")
	assert.Equal(t, []string{"b"}, sc.Layers().IDs())
}

func TestMergeGeoLayers(t *testing.T) {
	t.Run("combines features", func(t *testing.T) {
		sc := session.NewContext(t.TempDir(), t.TempDir())
		sc.Layers().Set(pointLayer("a", []float64{1, 1}))
		sc.Layers().Set(pointLayer("b", []float64{2, 2}, []float64{3, 3}))

		cmd := &mergeLayers{}
		require.NoError(t, cmd.Configure(command.ParamSet{
			"GeoLayerIDs":        strList("a", "b"),
			"MergedGeoLayerID":   cty.StringVal("ab"),
			"IfGeoLayerIDExists": cty.StringVal("Replace"),
		}))
		require.NoError(t, cmd.Execute(context.Background(), sc))

		merged, ok := sc.Layers().Get("ab")
		require.True(t, ok)
		assert.Equal(t, 3, merged.NumFeatures())
	})

	t.Run("CRS mismatch is a warning, not a failure", func(t *testing.T) {
		sc := session.NewContext(t.TempDir(), t.TempDir())
		sc.Layers().Set(pointLayer("a", []float64{1, 1}))
		projected := pointLayer("b", []float64{2, 2})
		projected.CRS = "EPSG:3857"
		sc.Layers().Set(projected)

		cmd := &mergeLayers{}
		require.NoError(t, cmd.Configure(command.ParamSet{
			"GeoLayerIDs":        strList("a", "b"),
			"MergedGeoLayerID":   cty.StringVal("ab"),
			"IfGeoLayerIDExists": cty.StringVal("Replace"),
		}))

		err := cmd.Execute(context.Background(), sc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, command.ErrWarnings))

		merged, ok := sc.Layers().Get("ab")
		require.True(t, ok)
		assert.Equal(t, geo.DefaultCRS, merged.CRS, "merged layer takes the first input's CRS")
	})

	t.Run("fewer than two inputs is a configure error", func(t *testing.T) {
		cmd := &mergeLayers{}
		err := cmd.Configure(command.ParamSet{
			"GeoLayerIDs":        strList("only"),
			"MergedGeoLayerID":   cty.StringVal("out"),
			"IfGeoLayerIDExists": cty.StringVal("Replace"),
		})
		require.Error(t, err)
	})
}

func TestClipGeoLayer(t *testing.T) {
	sc := session.NewContext(t.TempDir(), t.TempDir())
	sc.Layers().Set(pointLayer("pts", []float64{1, 1}, []float64{50, 50}))

	cmd := &clipLayer{}
	require.NoError(t, cmd.Configure(command.ParamSet{
		"GeoLayerID":         cty.StringVal("pts"),
		"ClipExtent":         strList("0", "0", "10", "10"),
		"ClippedGeoLayerID":  cty.StringVal(""),
		"IfGeoLayerIDExists": cty.StringVal("Replace"),
	}))
	require.NoError(t, cmd.Execute(context.Background(), sc))

	clipped, ok := sc.Layers().Get("pts_clipped")
	require.True(t, ok)
	assert.Equal(t, 1, clipped.NumFeatures())

	// The source layer is untouched.
	src, _ := sc.Layers().Get("pts")
	assert.Equal(t, 2, src.NumFeatures())
}

func TestClipGeoLayer_ConfigureErrors(t *testing.T) {
	testCases := []struct {
		name   string
		extent cty.Value
	}{
		{name: "wrong item count", extent: strList("0", "0", "10")},
		{name: "non-numeric item", extent: strList("0", "0", "ten", "10")},
		{name: "min not below max", extent: strList("10", "0", "0", "10")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := &clipLayer{}
			err := cmd.Configure(command.ParamSet{
				"GeoLayerID":         cty.StringVal("pts"),
				"ClipExtent":         tc.extent,
				"ClippedGeoLayerID":  cty.StringVal(""),
				"IfGeoLayerIDExists": cty.StringVal("Replace"),
			})
			require.Error(t, err)
		})
	}
}

func TestSimplifyGeoLayer(t *testing.T) {
	sc := session.NewContext(t.TempDir(), t.TempDir())
	l := geo.NewLayer("track")
	l.Features.AddFeature(geojson.NewFeature(geojson.NewLineStringGeometry([][]float64{
		{0, 0}, {1, 0.0001}, {2, 0}, {3, 0.0001}, {4, 0},
	})))
	sc.Layers().Set(l)

	cmd := &simplifyLayer{}
	require.NoError(t, cmd.Configure(command.ParamSet{
		"GeoLayerID":           cty.StringVal("track"),
		"Tolerance":            cty.StringVal("0.01"),
		"SimplifiedGeoLayerID": cty.StringVal(""),
		"IfGeoLayerIDExists":   cty.StringVal("Replace"),
	}))
	require.NoError(t, cmd.Execute(context.Background(), sc))

	simplified, ok := sc.Layers().Get("track_simplified")
	require.True(t, ok)
	assert.Less(t, len(simplified.Features.Features[0].Geometry.LineString), 5)
}

func TestSimplifyGeoLayer_ToleranceMustBePositive(t *testing.T) {
	cmd := &simplifyLayer{}
	err := cmd.Configure(command.ParamSet{
		"GeoLayerID":           cty.StringVal("track"),
		"Tolerance":            cty.StringVal("0"),
		"SimplifiedGeoLayerID": cty.StringVal(""),
		"IfGeoLayerIDExists":   cty.StringVal("Replace"),
	})
	require.Error(t, err)
}

func TestAddGeoLayerS2Tokens(t *testing.T) {
	sc := session.NewContext(t.TempDir(), t.TempDir())
	sc.Layers().Set(pointLayer("pts", []float64{13.4, 52.5}))

	cmd := &addS2Tokens{}
	require.NoError(t, cmd.Configure(command.ParamSet{
		"GeoLayerID":    cty.StringVal("pts"),
		"Level":         cty.StringVal("10"),
		"AttributeName": cty.StringVal("s2_token"),
	}))
	require.NoError(t, cmd.Execute(context.Background(), sc))

	l, _ := sc.Layers().Get("pts")
	token, ok := l.Features.Features[0].Properties["s2_token"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, token)
}

func TestAddGeoLayerS2Tokens_NilGeometryIsAWarning(t *testing.T) {
	sc := session.NewContext(t.TempDir(), t.TempDir())
	l := geo.NewLayer("pts")
	l.Features.AddFeature(geojson.NewFeature(nil))
	sc.Layers().Set(l)

	cmd := &addS2Tokens{}
	require.NoError(t, cmd.Configure(command.ParamSet{
		"GeoLayerID":    cty.StringVal("pts"),
		"Level":         cty.StringVal("10"),
		"AttributeName": cty.StringVal("s2_token"),
	}))

	err := cmd.Execute(context.Background(), sc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, command.ErrWarnings))
}

func TestAddGeoLayerS2Tokens_LevelOutOfRange(t *testing.T) {
	cmd := &addS2Tokens{}
	err := cmd.Configure(command.ParamSet{
		"GeoLayerID":    cty.StringVal("pts"),
		"Level":         cty.StringVal("31"),
		"AttributeName": cty.StringVal("s2_token"),
	})
	require.Error(t, err)
}

func TestRemoveGeoLayerAttributes(t *testing.T) {
	sc := session.NewContext(t.TempDir(), t.TempDir())
	l := pointLayer("pts", []float64{1, 1})
	l.Features.Features[0].Properties["drop_me"] = "x"
	sc.Layers().Set(l)

	cmd := &removeAttributes{}
	require.NoError(t, cmd.Configure(command.ParamSet{
		"GeoLayerID":     cty.StringVal("pts"),
		"AttributeNames": strList("drop_me"),
	}))
	require.NoError(t, cmd.Execute(context.Background(), sc))

	props := l.Features.Features[0].Properties
	assert.NotContains(t, props, "drop_me")
	assert.Contains(t, props, "name", "other attributes survive")
}
