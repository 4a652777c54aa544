package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoflowgo/internal/script"
)

var copyNames = []string{"GeoLayerID", "CopiedGeoLayerID", "IfGeoLayerIDExists"}

var copyDefaults = map[string]cty.Value{
	"CopiedGeoLayerID":   cty.StringVal(""),
	"IfGeoLayerIDExists": cty.StringVal("Replace"),
}

func TestResolve_CoversEveryDeclaredParameter(t *testing.T) {
	call, err := script.ParseCall(`CopyGeoLayer(GeoLayerID="L1")`, 0)
	require.NoError(t, err)

	params, err := Resolve(call, copyNames, copyDefaults, nil)
	require.NoError(t, err)

	// The set always has exactly the declared names, defaults applied.
	require.Len(t, params, len(copyNames))
	for _, name := range copyNames {
		_, ok := params[name]
		assert.True(t, ok, "declared parameter %q missing from set", name)
	}
	assert.Equal(t, cty.StringVal("L1"), params["GeoLayerID"])
	assert.Equal(t, cty.StringVal(""), params["CopiedGeoLayerID"])
	assert.Equal(t, cty.StringVal("Replace"), params["IfGeoLayerIDExists"])
}

func TestResolve_PositionalArgumentsFollowDeclaredOrder(t *testing.T) {
	call, err := script.ParseCall(`CopyGeoLayer("L1", "L2")`, 0)
	require.NoError(t, err)

	params, err := Resolve(call, copyNames, copyDefaults, nil)
	require.NoError(t, err)
	assert.Equal(t, cty.StringVal("L1"), params["GeoLayerID"])
	assert.Equal(t, cty.StringVal("L2"), params["CopiedGeoLayerID"])
}

func TestResolve_ListValue(t *testing.T) {
	call, err := script.ParseCall(`Free(GeoLayerIDs=['a','b','c'])`, 0)
	require.NoError(t, err)

	params, err := Resolve(call, []string{"GeoLayerIDs"}, nil, nil)
	require.NoError(t, err)

	items, err := params.StringList("GeoLayerIDs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items)
}

func TestResolve_OmittedRequiredParameterIsNullNotError(t *testing.T) {
	// Omitting a required parameter is not a resolve-time failure; it
	// surfaces when the command's Configure asks for the value.
	call, err := script.ParseCall(`CopyGeoLayer()`, 0)
	require.NoError(t, err)

	params, err := Resolve(call, copyNames, copyDefaults, nil)
	require.NoError(t, err)
	assert.True(t, params["GeoLayerID"].IsNull())

	_, err = params.RequiredString("GeoLayerID")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GeoLayerID")
}

func TestResolve_Errors(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "unknown parameter name", raw: `CopyGeoLayer(NoSuchParam="x")`},
		{name: "too many positional arguments", raw: `CopyGeoLayer("a", "b", "c", "d")`},
		{name: "duplicate assignment", raw: `CopyGeoLayer(GeoLayerID="a", GeoLayerID="b")`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			call, err := script.ParseCall(tc.raw, 0)
			require.NoError(t, err)

			_, err = Resolve(call, copyNames, copyDefaults, nil)
			require.Error(t, err)
		})
	}
}

func TestResolve_AppliesPropertyExpansion(t *testing.T) {
	call, err := script.ParseCall(`CopyGeoLayer(GeoLayerID="${base}_roads")`, 0)
	require.NoError(t, err)

	expand := func(s string) string {
		if s == "${base}_roads" {
			return "osm_roads"
		}
		return s
	}
	params, err := Resolve(call, copyNames, copyDefaults, expand)
	require.NoError(t, err)
	assert.Equal(t, cty.StringVal("osm_roads"), params["GeoLayerID"])
}
