package container

import (
	"context"

	"github.com/vk/webforge/internal/chainfn"
	"github.com/vk/webforge/internal/config"
	"github.com/vk/webforge/internal/ctxlog"
)

// ExtendBuild chains fn onto the build.extend slot. Previously registered
// callbacks run before fn. The slot always holds the composed function, even
// on the first registration.
func (c *Container) ExtendBuild(fn config.ExtendBuildFunc) {
	c.options.Build.Extend = chainfn.Chain(c.options.Build.Extend, fn)
}

// ExtendRoutes chains fn onto the router.extendRoutes slot with the same
// ordering guarantees as ExtendBuild.
func (c *Container) ExtendRoutes(fn config.ExtendRoutesFunc) {
	c.options.Router.ExtendRoutes = chainfn.Chain(c.options.Router.ExtendRoutes, fn)
}

// AddVendor is deprecated and has no effect. It remains on the public surface
// so older modules keep loading; each call logs one warning.
func (c *Container) AddVendor(ctx context.Context, _ ...any) {
	ctxlog.FromContext(ctx).Warn("AddVendor has been removed and is a no-op; delete the call.")
}
