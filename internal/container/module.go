package container

import (
	"context"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/vk/webforge/internal/ctxlog"
)

// HandlerFunc is the callable invoked to apply a module's effects. It
// receives the container and the module's declared options.
type HandlerFunc func(ctx context.Context, c *Container, opts map[string]any) (any, error)

// Meta is the metadata a handler declares about itself. Name doubles as the
// dedup registry key; Requires is a semver constraint on the host version;
// OptionsSchema, when set, validates the options map before invocation.
type Meta struct {
	Name          string
	Version       string
	Requires      string
	OptionsSchema *jsonschema.Schema
}

// Handler couples a module callable with its declared metadata.
type Handler struct {
	Meta Meta
	Fn   HandlerFunc
}

// ModuleSpec is the fully explicit descriptor form of a module specifier.
// Handler, when nil, is resolved from Src.
type ModuleSpec struct {
	Src     string
	Options map[string]any
	Handler *Handler
}

// AddModule normalizes spec, registers it in the required-modules registry,
// and invokes its handler with the container and the declared options.
//
// When requireOnce is true and a module with the same key was already
// registered, the handler is not invoked and AddModule returns (nil, nil).
// Registration happens before the handler body runs, so a handler that
// re-enters AddModule with its own key sees itself as already applied.
func (c *Container) AddModule(ctx context.Context, spec any, requireOnce bool) (any, error) {
	logger := ctxlog.FromContext(ctx)

	src, opts, handler, err := c.normalizeModule(spec)
	if err != nil {
		return nil, err
	}

	key := moduleKey(handler, src)
	if key != "" && requireOnce {
		if _, registered := c.requiredModules[key]; registered {
			logger.Debug("Module already required, skipping.", "key", key)
			return nil, nil
		}
	}

	if err := c.checkCompatibility(handler); err != nil {
		return nil, err
	}
	if err := checkOptions(handler, opts); err != nil {
		return nil, err
	}

	// Register before invoking so re-entrant requireOnce calls with the same
	// key resolve instead of recursing.
	if key != "" {
		c.requiredModules[key] = &moduleRecord{Src: src, Options: opts, Handler: handler}
		logger.Debug("Module registered.", "key", key)
	} else {
		logger.Debug("Module has no usable key, invoking without dedup tracking.")
	}

	return handler.Fn(ctx, c, opts)
}

// RequireModule is sugar for AddModule(ctx, spec, true).
func (c *Container) RequireModule(ctx context.Context, spec any) (any, error) {
	return c.AddModule(ctx, spec, true)
}

// normalizeModule reduces the four accepted specifier shapes to a canonical
// (src, options, handler) tuple. The handler must be callable or the
// specifier is invalid.
func (c *Container) normalizeModule(spec any) (src any, opts map[string]any, handler *Handler, err error) {
	switch s := spec.(type) {
	case string:
		src = s
		handler = c.resolve(s)

	case []any:
		// Pair shape: [path, options]. This is what the config loader
		// produces for a module block carrying options.
		if len(s) == 0 {
			return nil, nil, nil, &InvalidModuleError{Spec: spec}
		}
		path, ok := s[0].(string)
		if !ok {
			return nil, nil, nil, &InvalidModuleError{Spec: spec}
		}
		src = path
		handler = c.resolve(path)
		if len(s) > 1 && s[1] != nil {
			opts, ok = s[1].(map[string]any)
			if !ok {
				return nil, nil, nil, &InvalidModuleError{Spec: spec}
			}
		}

	case *Handler:
		src = s
		handler = s

	case Handler:
		src = &s
		handler = &s

	case HandlerFunc:
		h := &Handler{Fn: s}
		src = h
		handler = h

	case func(ctx context.Context, c *Container, opts map[string]any) (any, error):
		h := &Handler{Fn: HandlerFunc(s)}
		src = h
		handler = h

	case *ModuleSpec:
		if s == nil {
			return nil, nil, nil, &InvalidModuleError{Spec: spec}
		}
		src = s.Src
		opts = s.Options
		handler = s.Handler
		if handler == nil {
			handler = c.resolve(s.Src)
		}

	case ModuleSpec:
		src = s.Src
		opts = s.Options
		handler = s.Handler
		if handler == nil {
			handler = c.resolve(s.Src)
		}

	default:
		return nil, nil, nil, &InvalidModuleError{Spec: spec}
	}

	if handler == nil || handler.Fn == nil {
		return nil, nil, nil, &InvalidModuleError{Spec: spec}
	}
	return src, opts, handler, nil
}

// resolve asks the external resolver for a handler. A nil return means the
// specifier is unknown; the caller turns that into InvalidModule.
func (c *Container) resolve(specifier string) *Handler {
	if c.resolver == nil || specifier == "" {
		return nil
	}
	handler, ok := c.resolver.Resolve(specifier)
	if !ok {
		return nil
	}
	return handler
}

// moduleKey derives the registry key: declared meta name first, then the
// string src. An empty key disables deduplication for that module.
func moduleKey(handler *Handler, src any) string {
	if handler != nil && handler.Meta.Name != "" {
		return handler.Meta.Name
	}
	if s, ok := src.(string); ok {
		return s
	}
	return ""
}

// checkCompatibility enforces the handler's declared host version constraint.
func (c *Container) checkCompatibility(handler *Handler) error {
	requires := handler.Meta.Requires
	if requires == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(requires)
	if err != nil {
		return &IncompatibleModuleError{Name: handler.Meta.Name, Requires: requires, Version: c.version, Err: err}
	}
	host, err := semver.NewVersion(strings.TrimPrefix(c.version, "v"))
	if err != nil {
		return &IncompatibleModuleError{Name: handler.Meta.Name, Requires: requires, Version: c.version, Err: err}
	}
	if !constraint.Check(host) {
		return &IncompatibleModuleError{Name: handler.Meta.Name, Requires: requires, Version: c.version}
	}
	return nil
}

// checkOptions validates the options map against the handler's declared
// schema, when it declares one.
func checkOptions(handler *Handler, opts map[string]any) error {
	schema := handler.Meta.OptionsSchema
	if schema == nil || opts == nil {
		return nil
	}
	if err := schema.Validate(normalizeForSchema(opts)); err != nil {
		return &InvalidOptionsError{Name: handler.Meta.Name, Err: err}
	}
	return nil
}

// normalizeForSchema rewrites an options value into the shapes the JSON
// schema validator accepts: map[string]any maps, []any lists, and float64
// numbers.
func normalizeForSchema(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeForSchema(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeForSchema(item)
		}
		return out
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case float32:
		return float64(val)
	default:
		return val
	}
}
