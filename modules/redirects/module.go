// Package redirects is a first-party module that extends the route table
// with redirect entries from the declared rule set.
package redirects

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/vk/webforge/internal/config"
	"github.com/vk/webforge/internal/container"
	"github.com/vk/webforge/internal/ctxlog"
	"github.com/vk/webforge/internal/resolver"
)

// Module implements the resolver.Module interface for this package.
type Module struct{}

// Rule maps one request path to its redirect target.
type Rule struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// Options are the declared options for the redirects module.
type Options struct {
	Rules []Rule `mapstructure:"rules"`
}

var optionsSchema = resolver.MustCompileSchema(`{
	"type": "object",
	"required": ["rules"],
	"properties": {
		"rules": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["from", "to"],
				"properties": {
					"from": {"type": "string", "minLength": 1},
					"to": {"type": "string", "minLength": 1}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`)

// Install is the handler for the 'redirects' module. The rules are applied
// when the composed route-extension chain runs, not at registration time.
func Install(ctx context.Context, mc *container.Container, opts map[string]any) (any, error) {
	var o Options
	if err := mapstructure.Decode(opts, &o); err != nil {
		return nil, fmt.Errorf("decoding redirects options: %w", err)
	}

	rules := o.Rules
	mc.ExtendRoutes(func(ctx context.Context, routes *[]config.Route) error {
		for _, rule := range rules {
			*routes = append(*routes, config.Route{
				Name:     "redirect:" + rule.From,
				Path:     rule.From,
				Redirect: rule.To,
			})
		}
		return nil
	})

	ctxlog.FromContext(ctx).Debug("Redirect rules registered.", "rules", len(rules))
	return len(rules), nil
}

// Register registers the handler with the resolver.
func (m *Module) Register(r *resolver.Registry) {
	r.Register("redirects", &container.Handler{
		Meta: container.Meta{
			Name:          "redirects",
			Version:       "0.1.2",
			Requires:      ">= 0.1.0",
			OptionsSchema: optionsSchema,
		},
		Fn: Install,
	})
}
