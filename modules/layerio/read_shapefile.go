package layerio

import (
	"context"
	"fmt"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/geo"
	"github.com/vk/geoflowgo/internal/session"
)

// readShapefile reads a shapefile into a new session layer.
type readShapefile struct {
	inputFile string
	layerID   string
	ifExists  command.ExistsPolicy
}

func (c *readShapefile) Configure(params command.ParamSet) error {
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

func (c *readShapefile) Execute(ctx context.Context, sc *session.Context) error {
	st := command.NewStatus(ctx, "ReadGeoLayerFromShapefile")

	path := sc.ResolvePath(c.inputFile)
	fc, err := geo.ReadShapefile(path)
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
	ctxlog.FromContext(ctx).Info("Read shapefile layer.", "id", id, "features", layer.NumFeatures(), "path", path)
	return st.Err()
}
