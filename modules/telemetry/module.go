// Package telemetry is a first-party module that injects a client-side
// page-load beacon plugin and stamps the telemetry endpoint into the build
// environment.
package telemetry

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"

	"github.com/vk/webforge/internal/config"
	"github.com/vk/webforge/internal/container"
	"github.com/vk/webforge/internal/ctxlog"
	"github.com/vk/webforge/internal/resolver"
)

//go:embed templates/telemetry.client.js.tmpl
var pluginTemplate []byte

// Module implements the resolver.Module interface for this package.
type Module struct{}

// Options are the declared options for the telemetry module.
type Options struct {
	Endpoint string `mapstructure:"endpoint"`
	Disabled bool   `mapstructure:"disabled"`
}

var optionsSchema = resolver.MustCompileSchema(`{
	"type": "object",
	"required": ["endpoint"],
	"properties": {
		"endpoint": {"type": "string", "minLength": 1},
		"disabled": {"type": "boolean"}
	},
	"additionalProperties": false
}`)

// Install is the handler for the 'telemetry' module.
func Install(ctx context.Context, mc *container.Container, opts map[string]any) (any, error) {
	logger := ctxlog.FromContext(ctx)

	var o Options
	if err := mapstructure.Decode(opts, &o); err != nil {
		return nil, fmt.Errorf("decoding telemetry options: %w", err)
	}
	if o.Disabled {
		logger.Debug("Telemetry module disabled by options.")
		return nil, nil
	}

	src, err := stageTemplate(mc.Options().BuildDir)
	if err != nil {
		return nil, err
	}

	if err := mc.AddPlugin(&container.PluginInput{
		Src:     src,
		Options: map[string]any{"endpoint": o.Endpoint},
		SSR:     false,
		Mode:    config.PluginModeClient,
	}); err != nil {
		return nil, err
	}

	endpoint := o.Endpoint
	mc.ExtendBuild(func(ctx context.Context, b *config.BuildContext) error {
		if b.Env == nil {
			b.Env = make(map[string]string)
		}
		b.Env["WEBFORGE_TELEMETRY_ENDPOINT"] = endpoint
		return nil
	})

	logger.Debug("Telemetry plugin registered.", "endpoint", endpoint)
	return nil, nil
}

// stageTemplate writes the embedded plugin source under the build directory.
func stageTemplate(buildDir string) (string, error) {
	dir := filepath.Join(buildDir, "modules", "telemetry")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("staging telemetry plugin: %w", err)
	}
	src := filepath.Join(dir, "telemetry.client.js.tmpl")
	if err := os.WriteFile(src, pluginTemplate, 0o644); err != nil {
		return "", fmt.Errorf("staging telemetry plugin: %w", err)
	}
	return src, nil
}

// Register registers the handler with the resolver.
func (m *Module) Register(r *resolver.Registry) {
	r.Register("telemetry", &container.Handler{
		Meta: container.Meta{
			Name:          "telemetry",
			Version:       "0.2.0",
			Requires:      ">= 0.1.0",
			OptionsSchema: optionsSchema,
		},
		Fn: Install,
	})
}
