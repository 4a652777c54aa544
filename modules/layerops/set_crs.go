package layerops

import (
	"context"
	"fmt"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/session"
)

// setCRS assigns a coordinate reference system to a layer. It only updates
// the metadata; coordinates are not reprojected.
type setCRS struct {
	layerID string
	crs     string
}

func (c *setCRS) Configure(params command.ParamSet) error {
	var err error
	if c.layerID, err = params.RequiredString("GeoLayerID"); err != nil {
		return err
	}
	c.crs, err = params.RequiredString("CRS")
	return err
}

func (c *setCRS) Execute(ctx context.Context, sc *session.Context) error {
	layer, ok := sc.Layers().Get(c.layerID)
	if !ok {
		return fmt.Errorf("layer ID %q not found in the session", c.layerID)
	}

	old := layer.CRS
	layer.CRS = c.crs
	ctxlog.FromContext(ctx).Info("Set layer CRS.", "id", c.layerID, "from", old, "to", c.crs)
	return nil
}
