package util

import (
	"context"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/session"
)

// setProperty stores a named session property for ${name} expansion in later
// command lines.
type setProperty struct {
	name  string
	value string
}

func (c *setProperty) Configure(params command.ParamSet) error {
	var err error
	if c.name, err = params.RequiredString("PropertyName"); err != nil {
		return err
	}
	c.value, err = params.String("PropertyValue")
	return err
}

func (c *setProperty) Execute(ctx context.Context, sc *session.Context) error {
	sc.SetProperty(c.name, c.value)
	ctxlog.FromContext(ctx).Info("Set property.", "name", c.name, "value", c.value)
	return nil
}
