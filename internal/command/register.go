package command

import (
	"fmt"

	"github.com/vk/geoflowgo/internal/geo"
	"github.com/vk/geoflowgo/internal/session"
)

// RegisterLayer places a layer into the session store, honoring the
// command's exists-policy when the ID is already taken. Shared by every
// command that produces a layer.
func RegisterLayer(sc *session.Context, st *Status, layer *geo.Layer, policy ExistsPolicy) error {
	if sc.Layers().Contains(layer.ID) {
		switch policy {
		case Fail:
			return fmt.Errorf("layer ID %q already exists in the session", layer.ID)
		case Warn:
			st.Warnf("layer ID %q already exists, keeping the existing layer", layer.ID)
			return nil
		case ReplaceAndWarn:
			st.Warnf("layer ID %q already exists, replacing it", layer.ID)
		}
	}
	sc.Layers().Set(layer)
	return nil
}
