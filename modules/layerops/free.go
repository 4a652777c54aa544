package layerops

import (
	"context"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/session"
)

// freeLayers removes layers from session state. This is the only implicit-
// deletion-free way session entries go away before Teardown.
type freeLayers struct {
	layerIDs []string
}

func (c *freeLayers) Configure(params command.ParamSet) error {
	var err error
	c.layerIDs, err = params.RequiredStringList("GeoLayerIDs")
	return err
}

func (c *freeLayers) Execute(ctx context.Context, sc *session.Context) error {
	st := command.NewStatus(ctx, "FreeGeoLayers")
	logger := ctxlog.FromContext(ctx)

	for _, id := range c.layerIDs {
		if !sc.Layers().Contains(id) {
			st.Warnf("layer ID %q not found in the session", id)
			continue
		}
		sc.Layers().Remove(id)
		logger.Info("Freed layer.", "id", id)
	}
	return st.Err()
}
