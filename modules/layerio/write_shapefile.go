package layerio

import (
	"context"
	"fmt"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/geo"
	"github.com/vk/geoflowgo/internal/session"
)

// writeShapefile writes a session layer to a shapefile.
type writeShapefile struct {
	layerID    string
	outputFile string
}

func (c *writeShapefile) Configure(params command.ParamSet) error {
	var err error
	if c.layerID, err = params.RequiredString("GeoLayerID"); err != nil {
		return err
	}
	c.outputFile, err = params.RequiredString("OutputFile")
	return err
}

func (c *writeShapefile) Execute(ctx context.Context, sc *session.Context) error {
	layer, ok := sc.Layers().Get(c.layerID)
	if !ok {
		return fmt.Errorf("layer ID %q not found in the session", c.layerID)
	}

	path := sc.ResolvePath(c.outputFile)
	if err := geo.WriteShapefile(layer, path); err != nil {
		return fmt.Errorf("failed to write layer %q: %w", c.layerID, err)
	}
	ctxlog.FromContext(ctx).Info("Wrote shapefile layer.", "id", c.layerID, "features", layer.NumFeatures(), "path", path)
	return nil
}
