package layerops

import (
	"context"
	"fmt"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/geo"
	"github.com/vk/geoflowgo/internal/session"
)

// clipLayer cuts a layer to a bounding box, dropping features that fall
// entirely outside it.
type clipLayer struct {
	layerID  string
	bound    orb.Bound
	outID    string
	ifExists command.ExistsPolicy
}

func (c *clipLayer) Configure(params command.ParamSet) error {
	var err error
	if c.layerID, err = params.RequiredString("GeoLayerID"); err != nil {
		return err
	}

	extent, err := params.RequiredStringList("ClipExtent")
	if err != nil {
		return err
	}
	if len(extent) != 4 {
		return fmt.Errorf("ClipExtent must have 4 items (minX, minY, maxX, maxY), got %d", len(extent))
	}
	coords := make([]float64, 4)
	for i, s := range extent {
		if coords[i], err = strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("ClipExtent item %q is not a number", s)
		}
	}
	if coords[0] >= coords[2] || coords[1] >= coords[3] {
		return fmt.Errorf("ClipExtent min corner must be below max corner")
	}
	c.bound = orb.Bound{
		Min: orb.Point{coords[0], coords[1]},
		Max: orb.Point{coords[2], coords[3]},
	}

	if c.outID, err = params.String("ClippedGeoLayerID"); err != nil {
		return err
	}
	policy, err := params.String("IfGeoLayerIDExists")
	if err != nil {
		return err
	}
	c.ifExists, err = command.ParseExistsPolicy(policy)
	return err
}

func (c *clipLayer) Execute(ctx context.Context, sc *session.Context) error {
	st := command.NewStatus(ctx, "ClipGeoLayer")

	layer, ok := sc.Layers().Get(c.layerID)
	if !ok {
		return fmt.Errorf("layer ID %q not found in the session", c.layerID)
	}

	fc, err := geo.Clip(layer.Features, c.bound)
	if err != nil {
		return fmt.Errorf("failed to clip layer %q: %w", c.layerID, err)
	}

	outID := c.outID
	if outID == "" {
		outID = c.layerID + "_clipped"
	}
	out := geo.NewLayer(outID)
	out.CRS = layer.CRS
	out.Features = fc

	if err := command.RegisterLayer(sc, st, out, c.ifExists); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Clipped layer.",
		"from", c.layerID, "to", outID,
		"features_in", layer.NumFeatures(), "features_out", out.NumFeatures())
	return st.Err()
}
