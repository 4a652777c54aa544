package layerops

import (
	"context"
	"fmt"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/geo"
	"github.com/vk/geoflowgo/internal/session"
)

// addS2Tokens writes each feature's S2 cell token into an attribute. The
// layer must be in geographic coordinates for the tokens to be meaningful.
type addS2Tokens struct {
	layerID   string
	level     int
	attribute string
}

func (c *addS2Tokens) Configure(params command.ParamSet) error {
	var err error
	if c.layerID, err = params.RequiredString("GeoLayerID"); err != nil {
		return err
	}
	if c.level, err = params.Int("Level"); err != nil {
		return err
	}
	if c.level < 0 || c.level > 30 {
		return fmt.Errorf("Level must be between 0 and 30, got %d", c.level)
	}
	c.attribute, err = params.RequiredString("AttributeName")
	return err
}

func (c *addS2Tokens) Execute(ctx context.Context, sc *session.Context) error {
	st := command.NewStatus(ctx, "AddGeoLayerS2Tokens")

	layer, ok := sc.Layers().Get(c.layerID)
	if !ok {
		return fmt.Errorf("layer ID %q not found in the session", c.layerID)
	}

	tagged := 0
	for i, f := range layer.Features.Features {
		token, err := geo.CellToken(f.Geometry, c.level)
		if err != nil {
			st.Warnf("feature %d: %v", i, err)
			continue
		}
		if f.Properties == nil {
			f.Properties = map[string]interface{}{}
		}
		f.Properties[c.attribute] = token
		tagged++
	}

	ctxlog.FromContext(ctx).Info("Added S2 tokens.", "id", c.layerID, "level", c.level, "features", tagged)
	return st.Err()
}
