// Package hooks implements a minimal named-hook emitter used for build
// lifecycle signals. Callbacks are invoked in registration order and the
// first error aborts emission.
package hooks

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/webforge/internal/ctxlog"
)

// Func is a hook callback. The args carried by an emission are hook-specific.
type Func func(ctx context.Context, args ...any) error

// Emitter dispatches named lifecycle signals to subscribed callbacks.
type Emitter struct {
	mu    sync.Mutex
	hooks map[string][]Func
}

// NewEmitter creates an empty Emitter.
func NewEmitter() *Emitter {
	return &Emitter{hooks: make(map[string][]Func)}
}

// Hook subscribes fn to the named signal. Multiple callbacks for the same
// name run in subscription order.
func (e *Emitter) Hook(name string, fn Func) {
	if fn == nil {
		panic("hooks: nil callback registered for " + name)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks[name] = append(e.hooks[name], fn)
}

// Emit invokes every callback subscribed to name, in order, stopping at the
// first error. Emitting a name with no subscribers is a no-op.
func (e *Emitter) Emit(ctx context.Context, name string, args ...any) error {
	e.mu.Lock()
	fns := make([]Func, len(e.hooks[name]))
	copy(fns, e.hooks[name])
	e.mu.Unlock()

	if len(fns) == 0 {
		return nil
	}

	ctxlog.FromContext(ctx).Debug("Emitting hook.", "name", name, "callbacks", len(fns))
	for _, fn := range fns {
		if err := fn(ctx, args...); err != nil {
			return fmt.Errorf("hook %q failed: %w", name, err)
		}
	}
	return nil
}
