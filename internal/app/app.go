package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vk/webforge/internal/config"
	"github.com/vk/webforge/internal/container"
	"github.com/vk/webforge/internal/ctxlog"
	"github.com/vk/webforge/internal/hooks"
	"github.com/vk/webforge/internal/resolver"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	buildID   string
	registry  *resolver.Registry
	options   *config.Options
	hooks     *hooks.Emitter
	container *container.Container
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger, resolver
// registry, and module container.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...resolver.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, appConfig.LogFile, outW)
	buildID := uuid.NewString()
	logger = logger.With("build_id", buildID)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the project's build configuration into the agnostic model first.
	rawOpts, err := loader.Load(ctx, appConfig.ProjectPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load build configuration: %w", err))
	}
	opts, err := config.NewOptions(*rawOpts)
	if err != nil {
		panic(fmt.Errorf("invalid build configuration: %w", err))
	}
	logger.Debug("Build configuration loaded and normalized.", "root_dir", opts.RootDir, "build_dir", opts.BuildDir)

	// Create and populate the resolver registry with module handlers.
	reg := resolver.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All compiled-in modules registered.", "count", len(modules), "names", reg.Names())

	em := hooks.NewEmitter()
	cont := container.New(container.Config{
		Options:  opts,
		Resolver: reg,
		Hooks:    em,
	})

	return &App{
		outW:      outW,
		logger:    logger,
		buildID:   buildID,
		registry:  reg,
		options:   opts,
		hooks:     em,
		container: cont,
	}
}

// Container returns the application's module container. This is primarily
// for testing.
func (a *App) Container() *container.Container {
	return a.container
}

// Options returns the shared build configuration. This is primarily for
// testing.
func (a *App) Options() *config.Options {
	return a.options
}
