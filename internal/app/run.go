package app

import (
	"context"
	"fmt"

	"github.com/vk/webforge/internal/container"
	"github.com/vk/webforge/internal/ctxlog"
)

// Run processes the declared module list through the container and reports
// the resulting configuration state.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.hooks.Hook(container.HookModulesBefore, func(ctx context.Context, args ...any) error {
		a.logger.Info("Module processing starting.", "declared", len(a.options.Modules))
		return nil
	})
	a.hooks.Hook(container.HookModulesDone, func(ctx context.Context, args ...any) error {
		a.logger.Info("Module processing finished.", "registered", a.container.RequiredKeys())
		return nil
	})

	if err := a.container.Ready(ctx); err != nil {
		return fmt.Errorf("module processing failed: %w", err)
	}

	a.logger.Info("Build configuration assembled.",
		"templates", len(a.options.Build.Templates),
		"plugins", len(a.options.Plugins),
		"layouts", len(a.options.Layouts),
		"server_middleware", len(a.options.ServerMiddleware),
	)

	a.logger.Debug("App.Run method finished.")
	return nil
}
