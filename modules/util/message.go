package util

import (
	"context"

	"github.com/vk/geoflowgo/internal/command"
	"github.com/vk/geoflowgo/internal/ctxlog"
	"github.com/vk/geoflowgo/internal/session"
)

// message logs a user-authored message. Property references in the text are
// already expanded by the resolver, so this doubles as a debugging aid for
// session properties.
type message struct {
	text string
}

func (c *message) Configure(params command.ParamSet) error {
	var err error
	c.text, err = params.RequiredString("Message")
	return err
}

func (c *message) Execute(ctx context.Context, sc *session.Context) error {
	ctxlog.FromContext(ctx).Info(c.text)
	return nil
}
