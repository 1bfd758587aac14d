package container

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/webforge/internal/config"
	"github.com/vk/webforge/internal/ctxlog"
	"github.com/vk/webforge/internal/fsutil"
	"github.com/vk/webforge/internal/hashutil"
	"github.com/vk/webforge/internal/hooks"
	"github.com/vk/webforge/internal/version"
)

// Lifecycle hook names emitted by Ready.
const (
	HookModulesBefore = "modules:before"
	HookModulesDone   = "modules:done"
)

// Resolver turns a path-like module specifier into an executable handler.
// The second return value is false when the specifier is unknown.
type Resolver interface {
	Resolve(specifier string) (*Handler, bool)
}

// Config holds the collaborators a Container needs. Options is required;
// every other field has a working default.
type Config struct {
	Options  *config.Options
	Resolver Resolver
	Hooks    *hooks.Emitter

	// Exists reports whether a template source path is present. Defaults to
	// fsutil.FileExists.
	Exists func(path string) bool
	// Hash derives the stable short digest embedded in generated template
	// destinations. Defaults to hashutil.Short.
	Hash func(s string) string
	// Version is the host version checked against module compatibility
	// constraints. Defaults to version.Version.
	Version string
}

// moduleRecord is one entry in the required-modules registry.
type moduleRecord struct {
	Src     any
	Options map[string]any
	Handler *Handler
}

// Container mediates all structured mutation of the build configuration on
// behalf of registered modules. It is created once per build and stays alive
// for the build's duration.
type Container struct {
	options  *config.Options
	resolver Resolver
	hooks    *hooks.Emitter
	exists   func(string) bool
	hash     func(string) string
	version  string

	requiredModules map[string]*moduleRecord
}

// New creates a Container for one build. It panics when cfg.Options is nil,
// as that is a wiring error in the host.
func New(cfg Config) *Container {
	if cfg.Options == nil {
		panic("container: Config.Options must not be nil")
	}
	if cfg.Hooks == nil {
		cfg.Hooks = hooks.NewEmitter()
	}
	if cfg.Exists == nil {
		cfg.Exists = fsutil.FileExists
	}
	if cfg.Hash == nil {
		cfg.Hash = hashutil.Short
	}
	if cfg.Version == "" {
		cfg.Version = version.Version
	}

	return &Container{
		options:         cfg.Options,
		resolver:        cfg.Resolver,
		hooks:           cfg.Hooks,
		exists:          cfg.Exists,
		hash:            cfg.Hash,
		version:         cfg.Version,
		requiredModules: make(map[string]*moduleRecord),
	}
}

// Options returns the shared build configuration. Modules may read custom
// fields directly; structured subtrees should be mutated through the
// container's methods.
func (c *Container) Options() *config.Options {
	return c.options
}

// RequiredKeys returns the sorted keys of all modules registered so far.
func (c *Container) RequiredKeys() []string {
	keys := make([]string, 0, len(c.requiredModules))
	for key := range c.requiredModules {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Ready emits the "modules:before" signal, processes the declared module list
// in declaration order, and emits "modules:done". The first failure aborts
// remaining processing.
func (c *Container) Ready(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Container ready sequence started.", "declared_modules", len(c.options.Modules))

	if err := c.hooks.Emit(ctx, HookModulesBefore, c, c.options.Modules); err != nil {
		return err
	}

	for i, spec := range c.options.Modules {
		if _, err := c.AddModule(ctx, spec, false); err != nil {
			return fmt.Errorf("processing declared module %d: %w", i, err)
		}
	}

	if err := c.hooks.Emit(ctx, HookModulesDone, c); err != nil {
		return err
	}

	logger.Debug("Container ready sequence finished.", "registered_keys", len(c.requiredModules))
	return nil
}
