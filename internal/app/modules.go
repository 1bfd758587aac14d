package app

import (
	"github.com/vk/webforge/internal/resolver"
	"github.com/vk/webforge/modules/proxy"
	"github.com/vk/webforge/modules/redirects"
	"github.com/vk/webforge/modules/sitemap"
	"github.com/vk/webforge/modules/telemetry"
)

// coreModules is the definitive list of all modules that are compiled into
// the webforge binary.
var coreModules = []resolver.Module{
	&sitemap.Module{},
	&proxy.Module{},
	&redirects.Module{},
	&telemetry.Module{},
}
