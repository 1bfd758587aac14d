package container

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/webforge/internal/config"
	"github.com/vk/webforge/internal/ctxlog"
)

// templateNamespace prefixes every derived template destination name.
const templateNamespace = "webforge"

// TemplateInput is the explicit form accepted by AddTemplate. FileName, when
// set, is used verbatim as the destination; otherwise the destination is
// derived from Src.
type TemplateInput struct {
	Src      string
	FileName string
	Options  map[string]any
}

// PluginInput describes a plugin registration: a template source plus the
// injection flags copied onto the resulting plugin entry.
type PluginInput struct {
	Src      string
	FileName string
	Options  map[string]any
	SSR      bool
	Mode     config.PluginMode
}

// AddTemplate registers a template source with the build. input is either a
// path string or a *TemplateInput. The resulting descriptor is appended to
// the ordered template list and returned.
func (c *Container) AddTemplate(input any) (*config.Template, error) {
	var in TemplateInput
	switch v := input.(type) {
	case string:
		in.Src = v
	case TemplateInput:
		in = v
	case *TemplateInput:
		if v != nil {
			in = *v
		}
	}

	if in.Src == "" {
		return nil, &InvalidTemplateError{Input: input}
	}
	if !c.exists(in.Src) {
		return nil, &TemplateNotFoundError{Src: in.Src}
	}

	dst := in.FileName
	if dst == "" {
		// Derived destinations are deterministic: the same src always maps
		// to the same dst within a build.
		base := filepath.Base(in.Src)
		ext := filepath.Ext(base)
		name := strings.TrimSuffix(base, ext)
		dst = fmt.Sprintf("%s.%s.%s%s", templateNamespace, name, c.hash(in.Src), ext)
	}

	tmpl := &config.Template{Src: in.Src, Dst: dst, Options: in.Options}
	c.options.Build.Templates = append(c.options.Build.Templates, tmpl)
	return tmpl, nil
}

// AddPlugin registers the plugin's template and appends a plugin entry
// pointing at the generated file inside the build directory. An empty Mode
// defaults to "all".
func (c *Container) AddPlugin(p *PluginInput) error {
	if p == nil {
		return &InvalidTemplateError{Input: p}
	}

	tmpl, err := c.AddTemplate(&TemplateInput{Src: p.Src, FileName: p.FileName, Options: p.Options})
	if err != nil {
		return err
	}

	mode := p.Mode
	if mode == "" {
		mode = config.PluginModeAll
	}

	c.options.Plugins = append(c.options.Plugins, config.Plugin{
		Src:  filepath.Join(c.options.BuildDir, tmpl.Dst),
		SSR:  p.SSR,
		Mode: mode,
	})
	return nil
}

// AddLayout registers the layout's template and maps name to the generated
// file. An empty name is derived from the source basename. Re-registering an
// existing name logs a warning and overwrites; the name "error" additionally
// sets the error page via AddErrorLayout.
func (c *Container) AddLayout(ctx context.Context, input any, name string) error {
	tmpl, err := c.AddTemplate(input)
	if err != nil {
		return err
	}

	if name == "" {
		base := filepath.Base(tmpl.Src)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if existing, ok := c.options.Layouts[name]; ok {
		ctxlog.FromContext(ctx).Warn("Duplicate layout registration, overwriting.",
			"name", name, "previous", existing, "new", "./"+tmpl.Dst)
	}
	c.options.Layouts[name] = "./" + tmpl.Dst

	if name == "error" {
		c.AddErrorLayout(tmpl.Dst)
	}
	return nil
}

// AddErrorLayout points the error-page setting at a generated layout file,
// as a root-relative reference into the build directory.
func (c *Container) AddErrorLayout(dst string) {
	c.options.ErrorPage = "~/" + filepath.Base(c.options.BuildDir) + "/" + dst
}

// AddServerMiddleware appends middleware to the server middleware list. The
// entry is opaque to the container: no deduplication, no validation.
func (c *Container) AddServerMiddleware(middleware any) {
	c.options.ServerMiddleware = append(c.options.ServerMiddleware, middleware)
}
