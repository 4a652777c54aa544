package layerops

import (
	"context"
	"fmt"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/session"
)

// renameLayer re-registers a layer under a new ID and drops the old entry.
type renameLayer struct {
	layerID  string
	newID    string
	ifExists command.ExistsPolicy
}

func (c *renameLayer) Configure(params command.ParamSet) error {
	var err error
	if c.layerID, err = params.RequiredString("GeoLayerID"); err != nil {
		return err
	}
	if c.newID, err = params.RequiredString("NewGeoLayerID"); err != nil {
		return err
	}
	policy, err := params.String("IfGeoLayerIDExists")
	if err != nil {
		return err
	}
	c.ifExists, err = command.ParseExistsPolicy(policy)
	return err
}

func (c *renameLayer) Execute(ctx context.Context, sc *session.Context) error {
	st := command.NewStatus(ctx, "RenameGeoLayerID")

	layer, ok := sc.Layers().Get(c.layerID)
	if !ok {
		return fmt.Errorf("layer ID %q not found in the session", c.layerID)
	}
	if c.newID == c.layerID {
		return fmt.Errorf("new layer ID %q is the same as the current ID", c.newID)
	}

	// The exists-policy is handled inline rather than through RegisterLayer:
	// a rename that keeps the existing target must leave the source entry
	// untouched too, so nothing may be mutated before the policy decision.
	if sc.Layers().Contains(c.newID) {
		switch c.ifExists {
		case command.Fail:
			return fmt.Errorf("layer ID %q already exists in the session", c.newID)
		case command.Warn:
			st.Warnf("layer ID %q already exists, keeping the existing layer", c.newID)
			return st.Err()
		case command.ReplaceAndWarn:
			st.Warnf("layer ID %q already exists, replacing it", c.newID)
		}
	}

	layer.ID = c.newID
	sc.Layers().Set(layer)
	sc.Layers().Remove(c.layerID)

	ctxlog.FromContext(ctx).Info("Renamed layer.", "from", c.layerID, "to", c.newID)
	return st.Err()
}
