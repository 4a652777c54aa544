package layerops

import (
	"context"
	"fmt"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/session"
)

// removeAttributes deletes named attributes from every feature of a layer.
type removeAttributes struct {
	layerID    string
	attributes []string
}

func (c *removeAttributes) Configure(params command.ParamSet) error {
	var err error
	if c.layerID, err = params.RequiredString("GeoLayerID"); err != nil {
		return err
	}
	c.attributes, err = params.RequiredStringList("AttributeNames")
	return err
}

func (c *removeAttributes) Execute(ctx context.Context, sc *session.Context) error {
	layer, ok := sc.Layers().Get(c.layerID)
	if !ok {
		return fmt.Errorf("layer ID %q not found in the session", c.layerID)
	}

	for _, f := range layer.Features.Features {
		for _, name := range c.attributes {
			delete(f.Properties, name)
		}
	}
	ctxlog.FromContext(ctx).Info("Removed attributes.", "id", c.layerID, "attributes", c.attributes)
	return nil
}
