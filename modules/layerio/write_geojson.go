package layerio

import (
	"context"
	"fmt"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/geo"
	"github.com/vk/geoflowgo/internal/session"
)

// writeGeoJSON writes a session layer to a GeoJSON file.
type writeGeoJSON struct {
	layerID    string
	outputFile string
	precision  int
}

func (c *writeGeoJSON) Configure(params command.ParamSet) error {
	var err error
	if c.layerID, err = params.RequiredString("GeoLayerID"); err != nil {
		return err
	}
	if c.outputFile, err = params.RequiredString("OutputFile"); err != nil {
		return err
	}
	if c.precision, err = params.Int("OutputPrecision"); err != nil {
		return err
	}
	if c.precision < 0 || c.precision > 15 {
		return fmt.Errorf("OutputPrecision must be between 0 and 15, got %d", c.precision)
	}
	return nil
}

func (c *writeGeoJSON) Execute(ctx context.Context, sc *session.Context) error {
	layer, ok := sc.Layers().Get(c.layerID)
	if !ok {
		return fmt.Errorf("layer ID %q not found in the session", c.layerID)
	}

	path := sc.ResolvePath(c.outputFile)
	if err := geo.WriteGeoJSON(layer, path, c.precision); err != nil {
		return fmt.Errorf("failed to write layer %q: %w", c.layerID, err)
	}
	ctxlog.FromContext(ctx).Info("Wrote GeoJSON layer.", "id", c.layerID, "features", layer.NumFeatures(), "path", path)
	return nil
}
