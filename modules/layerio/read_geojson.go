package layerio

import (
	"context"
	"fmt"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/geo"
	"github.com/vk/geoflowgo/internal/session"
)

// readGeoJSON reads a GeoJSON file into a new session layer.
type readGeoJSON struct {
	inputFile string
	layerID   string
	ifExists  command.ExistsPolicy
}

func (c *readGeoJSON) Configure(params command.ParamSet) error {
	var err error
	if c.inputFile, err = params.RequiredString("InputFile"); err != nil {
		return err
	}
	if c.layerID, err = params.String("GeoLayerID"); err != nil {
		return err
	}
	policy, err := params.String("IfGeoLayerIDExists")
	if err != nil {
		return err
	}
	c.ifExists, err = command.ParseExistsPolicy(policy)
	return err
}

func (c *readGeoJSON) Execute(ctx context.Context, sc *session.Context) error {
	st := command.NewStatus(ctx, "ReadGeoLayerFromGeoJSON")

	path := sc.ResolvePath(c.inputFile)
	fc, err := geo.ReadGeoJSON(path)
	if err != nil {
		return fmt.Errorf("failed to read layer: %w", err)
	}

	id := c.layerID
	if id == "" {
		id = geo.LayerIDFromPath(path)
	}
	layer := geo.NewLayer(id)
	layer.SourcePath = path
	layer.Features = fc

	if err := command.RegisterLayer(sc, st, layer, c.ifExists); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Read GeoJSON layer.", "id", id, "features", layer.NumFeatures(), "path", path)
	return st.Err()
}
