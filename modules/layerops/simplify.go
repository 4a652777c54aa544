package layerops

import (
	"context"
	"fmt"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/geo"
	"github.com/vk/geoflowgo/internal/session"
)

// simplifyLayer produces a Douglas-Peucker-simplified copy of a layer.
type simplifyLayer struct {
	layerID   string
	tolerance float64
	outID     string
	ifExists  command.ExistsPolicy
}

func (c *simplifyLayer) Configure(params command.ParamSet) error {
	var err error
	if c.layerID, err = params.RequiredString("GeoLayerID"); err != nil {
		return err
	}
	if c.tolerance, err = params.Float("Tolerance"); err != nil {
		return err
	}
	if c.tolerance <= 0 {
		return fmt.Errorf("Tolerance must be positive, got %v", c.tolerance)
	}
	if c.outID, err = params.String("SimplifiedGeoLayerID"); err != nil {
		return err
	}
	policy, err := params.String("IfGeoLayerIDExists")
	if err != nil {
		return err
	}
	c.ifExists, err = command.ParseExistsPolicy(policy)
	return err
}

func (c *simplifyLayer) Execute(ctx context.Context, sc *session.Context) error {
	st := command.NewStatus(ctx, "SimplifyGeoLayer")

	layer, ok := sc.Layers().Get(c.layerID)
	if !ok {
		return fmt.Errorf("layer ID %q not found in the session", c.layerID)
	}

	fc, err := geo.Simplify(layer.Features, c.tolerance)
	if err != nil {
		return fmt.Errorf("failed to simplify layer %q: %w", c.layerID, err)
	}

	outID := c.outID
	if outID == "" {
		outID = c.layerID + "_simplified"
	}
	out := geo.NewLayer(outID)
	out.CRS = layer.CRS
	out.Features = fc

	if err := command.RegisterLayer(sc, st, out, c.ifExists); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Simplified layer.", "from", c.layerID, "to", outID, "tolerance", c.tolerance)
	return st.Err()
}
