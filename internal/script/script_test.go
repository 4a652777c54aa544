package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PartitionsLines(t *testing.T) {
	input := strings.Join([]string{
		"# workflow header comment",
		"",
		`ReadGeoLayerFromGeoJSON(InputFile="a.geojson", GeoLayerID="L1")`,
		"   ",
		"   # indented comment",
		`CopyGeoLayer(GeoLayerID="L1", CopiedGeoLayerID="L2")`,
	}, "\n")

	s, err := Parse(strings.NewReader(input), "test.gfs")
	require.NoError(t, err)

	require.Len(t, s.Lines, 6)
	assert.Equal(t, LineComment, s.Lines[0].Kind)
	assert.Equal(t, LineBlank, s.Lines[1].Kind)
	assert.Equal(t, LineCommand, s.Lines[2].Kind)
	assert.Equal(t, LineBlank, s.Lines[3].Kind)
	assert.Equal(t, LineComment, s.Lines[4].Kind)
	assert.Equal(t, LineCommand, s.Lines[5].Kind)

	cmds := s.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, 3, cmds[0].Num)
	assert.Equal(t, 6, cmds[1].Num)
}

func TestParse_EmptyScript(t *testing.T) {
	s, err := Parse(strings.NewReader(""), "empty.gfs")
	require.NoError(t, err)
	assert.Empty(t, s.Lines)
	assert.Empty(t, s.Commands())
}
