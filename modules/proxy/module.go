// Package proxy is a first-party module that mounts a reverse proxy as
// server middleware under a configurable path prefix.
package proxy

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/vk/webforge/internal/container"
	"github.com/vk/webforge/internal/ctxlog"
	"github.com/vk/webforge/internal/resolver"
)

// Module implements the resolver.Module interface for this package.
type Module struct{}

// Options are the declared options for the proxy module.
type Options struct {
	Prefix string `mapstructure:"prefix"`
	Target string `mapstructure:"target"`
}

var optionsSchema = resolver.MustCompileSchema(`{
	"type": "object",
	"required": ["target"],
	"properties": {
		"prefix": {"type": "string"},
		"target": {"type": "string", "minLength": 1}
	},
	"additionalProperties": false
}`)

// Middleware is the server middleware entry appended by this module. The
// handler strips the mount prefix before forwarding.
type Middleware struct {
	Prefix  string
	Handler http.Handler
}

// Install is the handler for the 'proxy' module.
func Install(ctx context.Context, mc *container.Container, opts map[string]any) (any, error) {
	var o Options
	if err := mapstructure.Decode(opts, &o); err != nil {
		return nil, fmt.Errorf("decoding proxy options: %w", err)
	}
	if o.Prefix == "" {
		o.Prefix = "/proxy"
	}

	target, err := url.Parse(o.Target)
	if err != nil {
		return nil, fmt.Errorf("proxy target %q: %w", o.Target, err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("proxy target %q: scheme and host are required", o.Target)
	}

	upstream := httputil.NewSingleHostReverseProxy(target)
	prefix := o.Prefix
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = "/" + strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, prefix), "/")
		upstream.ServeHTTP(w, r)
	})

	mw := &Middleware{Prefix: prefix, Handler: handler}
	mc.AddServerMiddleware(mw)

	ctxlog.FromContext(ctx).Debug("Proxy middleware registered.", "prefix", prefix, "target", target.String())
	return mw, nil
}

// Register registers the handler with the resolver.
func (m *Module) Register(r *resolver.Registry) {
	r.Register("proxy", &container.Handler{
		Meta: container.Meta{
			Name:          "proxy",
			Version:       "0.2.1",
			Requires:      ">= 0.1.0",
			OptionsSchema: optionsSchema,
		},
		Fn: Install,
	})
}
