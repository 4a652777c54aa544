package layerops

import (
	"context"
	"fmt"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/session"
)

// copyLayer deep-copies an existing layer under a new ID.
type copyLayer struct {
	layerID  string
	copyID   string
	ifExists command.ExistsPolicy
}

func (c *copyLayer) Configure(params command.ParamSet) error {
	var err error
	if c.layerID, err = params.RequiredString("GeoLayerID"); err != nil {
		return err
	}
	if c.copyID, err = params.String("CopiedGeoLayerID"); err != nil {
		return err
	}
	policy, err := params.String("IfGeoLayerIDExists")
	if err != nil {
		return err
	}
	c.ifExists, err = command.ParseExistsPolicy(policy)
	return err
}

func (c *copyLayer) Execute(ctx context.Context, sc *session.Context) error {
	st := command.NewStatus(ctx, "CopyGeoLayer")

	layer, ok := sc.Layers().Get(c.layerID)
	if !ok {
		return fmt.Errorf("layer ID %q not found in the session", c.layerID)
	}

	copyID := c.copyID
	if copyID == "" {
		copyID = c.layerID + "_copy"
	}
	copied, err := layer.Copy(copyID)
	if err != nil {
		return err
	}

	if err := command.RegisterLayer(sc, st, copied, c.ifExists); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Copied layer.", "from", c.layerID, "to", copyID)
	return st.Err()
}
