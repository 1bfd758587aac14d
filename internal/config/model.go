package config

import "context"

// PluginMode selects which build target a plugin is injected into.
type PluginMode string

const (
	PluginModeClient PluginMode = "client"
	PluginModeServer PluginMode = "server"
	PluginModeAll    PluginMode = "all"
)

// Template describes one generated build artifact: a source file and the
// destination name it is written under inside the build directory.
type Template struct {
	Src     string
	Dst     string
	Options map[string]any
}

// Plugin is one entry in the ordered plugin list consumed by the bundler.
type Plugin struct {
	Src  string
	SSR  bool
	Mode PluginMode
}

// Route is one entry in the application route table. Redirect, when set,
// names the path the route forwards to instead of rendering Component.
type Route struct {
	Name      string
	Path      string
	Component string
	Redirect  string
}

// BuildContext carries the state handed to build.extend callbacks.
type BuildContext struct {
	BuildDir string
	IsDev    bool
	Env      map[string]string
}

// ExtendBuildFunc mutates the build context before bundling.
type ExtendBuildFunc func(ctx context.Context, b *BuildContext) error

// ExtendRoutesFunc mutates the route table before it is written out.
type ExtendRoutesFunc func(ctx context.Context, routes *[]Route) error

// BuildOptions is the `build` subtree of the configuration.
type BuildOptions struct {
	// Templates accumulates registered templates in registration order.
	// Order affects build output determinism.
	Templates []*Template
	// Extend holds the composed build.extend callback chain.
	Extend ExtendBuildFunc
}

// RouterOptions is the `router` subtree of the configuration.
type RouterOptions struct {
	// ExtendRoutes holds the composed route-extension callback chain.
	ExtendRoutes ExtendRoutesFunc
}

// Options is the mutable build configuration shared by the host process and
// every registered module for the duration of one build.
type Options struct {
	RootDir  string
	BuildDir string

	// Modules is the declared module list in declaration order. Entries are
	// module specifiers in any of the accepted shapes (see the container's
	// specifier normalization).
	Modules []any

	Plugins          []Plugin
	Layouts          map[string]string
	ErrorPage        string
	ServerMiddleware []any

	Build  BuildOptions
	Router RouterOptions
}
