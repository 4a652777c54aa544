package layerops

import (
	"context"
	"fmt"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/geo"
	"github.com/vk/geoflowgo/internal/session"
)

// mergeLayers concatenates the features of several layers into a new one.
// The merged layer takes the CRS of the first input; inputs with a different
// CRS are merged anyway but recorded as warnings.
type mergeLayers struct {
	layerIDs []string
	mergedID string
	ifExists command.ExistsPolicy
}

func (c *mergeLayers) Configure(params command.ParamSet) error {
	var err error
	if c.layerIDs, err = params.RequiredStringList("GeoLayerIDs"); err != nil {
		return err
	}
	if len(c.layerIDs) < 2 {
		return fmt.Errorf("GeoLayerIDs must name at least 2 layers, got %d", len(c.layerIDs))
	}
	if c.mergedID, err = params.RequiredString("MergedGeoLayerID"); err != nil {
		return err
	}
	policy, err := params.String("IfGeoLayerIDExists")
	if err != nil {
		return err
	}
	c.ifExists, err = command.ParseExistsPolicy(policy)
	return err
}

func (c *mergeLayers) Execute(ctx context.Context, sc *session.Context) error {
	st := command.NewStatus(ctx, "MergeGeoLayers")

	merged := geo.NewLayer(c.mergedID)
	for i, id := range c.layerIDs {
		layer, ok := sc.Layers().Get(id)
		if !ok {
			return fmt.Errorf("layer ID %q not found in the session", id)
		}
		if i == 0 {
			merged.CRS = layer.CRS
		} else if layer.CRS != merged.CRS {
			st.Warnf("layer %q has CRS %s, merged layer uses %s", id, layer.CRS, merged.CRS)
		}

		// Deep-copy so later edits to the inputs don't alias into the merge.
		copied, err := layer.Copy(id)
		if err != nil {
			return err
		}
		merged.Features.Features = append(merged.Features.Features, copied.Features.Features...)
	}

	if err := command.RegisterLayer(sc, st, merged, c.ifExists); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Merged layers.", "inputs", c.layerIDs, "to", c.mergedID, "features", merged.NumFeatures())
	return st.Err()
}
