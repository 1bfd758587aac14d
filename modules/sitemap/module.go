// Package sitemap is a first-party module that registers a sitemap.xml
// template rendered from the configured hostname and route list.
package sitemap

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"

	"github.com/vk/webforge/internal/container"
	"github.com/vk/webforge/internal/ctxlog"
	"github.com/vk/webforge/internal/resolver"
)

//go:embed templates/sitemap.xml.tmpl
var sitemapTemplate []byte

// Module implements the resolver.Module interface for this package.
type Module struct{}

// Options are the declared options for the sitemap module.
type Options struct {
	Hostname string   `mapstructure:"hostname"`
	Routes   []string `mapstructure:"routes"`
	FileName string   `mapstructure:"file_name"`
}

var optionsSchema = resolver.MustCompileSchema(`{
	"type": "object",
	"required": ["hostname"],
	"properties": {
		"hostname": {"type": "string", "minLength": 1},
		"routes": {"type": "array", "items": {"type": "string"}},
		"file_name": {"type": "string"}
	},
	"additionalProperties": false
}`)

// Install is the handler for the 'sitemap' module. It stages the embedded
// template source into the build directory and registers it.
func Install(ctx context.Context, mc *container.Container, opts map[string]any) (any, error) {
	logger := ctxlog.FromContext(ctx)

	var o Options
	if err := mapstructure.Decode(opts, &o); err != nil {
		return nil, fmt.Errorf("decoding sitemap options: %w", err)
	}
	if len(o.Routes) == 0 {
		o.Routes = []string{"/"}
	}

	src, err := stageTemplate(mc.Options().BuildDir)
	if err != nil {
		return nil, err
	}

	tmpl, err := mc.AddTemplate(&container.TemplateInput{
		Src:      src,
		FileName: o.FileName,
		Options: map[string]any{
			"hostname": o.Hostname,
			"routes":   o.Routes,
		},
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Sitemap template registered.", "dst", tmpl.Dst, "routes", len(o.Routes))
	return tmpl, nil
}

// stageTemplate writes the embedded template source under the build
// directory so the registrar's existence check can see it.
func stageTemplate(buildDir string) (string, error) {
	dir := filepath.Join(buildDir, "modules", "sitemap")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("staging sitemap template: %w", err)
	}
	src := filepath.Join(dir, "sitemap.xml.tmpl")
	if err := os.WriteFile(src, sitemapTemplate, 0o644); err != nil {
		return "", fmt.Errorf("staging sitemap template: %w", err)
	}
	return src, nil
}

// Register registers the handler with the resolver.
func (m *Module) Register(r *resolver.Registry) {
	r.Register("sitemap", &container.Handler{
		Meta: container.Meta{
			Name:          "sitemap",
			Version:       "0.3.0",
			Requires:      ">= 0.1.0",
			OptionsSchema: optionsSchema,
		},
		Fn: Install,
	})
}
