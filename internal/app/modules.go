package app

import (
	"github.com/vk/geoflowgo/internal/registry"
	"github.com/vk/geoflowgo/modules/layerio"
	"github.com/vk/geoflowgo/modules/layerops"
	"github.com/vk/geoflowgo/modules/util"
)

// coreModules is the definitive list of command modules compiled into the
// geoflow binary.
var coreModules = []registry.Module{
	&layerio.Module{},
	&layerops.Module{},
	&util.Module{},
}
