package resolver

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/vk/webforge/internal/container"
)

// Module is the interface that all compiled-in modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the named module handlers for a single application
// instance. It implements the container's Resolver port.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]*container.Handler
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{handlers: make(map[string]*container.Handler)}
}

// Register stores handler under name. Registering the same name twice is a
// programmer error and panics. A handler without a declared meta name adopts
// the registration name, so the container's dedup key matches the specifier.
func (r *Registry) Register(name string, handler *container.Handler) {
	if name == "" || handler == nil || handler.Fn == nil {
		panic(fmt.Sprintf("module handler %q is not registrable", name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		panic(fmt.Sprintf("module handler with name '%s' already registered", name))
	}
	if handler.Meta.Name == "" {
		handler.Meta.Name = name
	}
	slog.Debug("Registering module handler.", "name", name)
	r.handlers[name] = handler
}

// Resolve returns the handler registered under specifier, or false when the
// specifier is unknown.
func (r *Registry) Resolve(specifier string) (*container.Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, ok := r.handlers[specifier]
	return handler, ok
}

// Names returns all registered specifier names in sorted order, for
// diagnostics.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
