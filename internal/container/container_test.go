package container

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/vk/webforge/internal/config"
	"github.com/vk/webforge/internal/ctxlog"
	"github.com/vk/webforge/internal/hooks"
)

// stubResolver is an in-memory Resolver for tests.
type stubResolver map[string]*Handler

func (r stubResolver) Resolve(specifier string) (*Handler, bool) {
	h, ok := r[specifier]
	return h, ok
}

// countingResolver records how many times Resolve is consulted.
type countingResolver struct {
	inner stubResolver
	calls int
}

func (r *countingResolver) Resolve(specifier string) (*Handler, bool) {
	r.calls++
	return r.inner.Resolve(specifier)
}

// testContext returns a context carrying a debug logger that writes into the
// returned buffer.
func testContext() (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), buf
}

// newTestContainer builds a container over a fresh options model with
// deterministic collaborators: every path exists and every hash is "h".
func newTestContainer(t *testing.T, r Resolver) *Container {
	t.Helper()

	opts, err := config.NewOptions(config.Options{RootDir: "/project"})
	if err != nil {
		t.Fatalf("building options: %v", err)
	}

	return New(Config{
		Options:  opts,
		Resolver: r,
		Hooks:    hooks.NewEmitter(),
		Exists:   func(string) bool { return true },
		Hash:     func(string) string { return "h" },
		Version:  "0.4.0",
	})
}

// recordedCall captures one handler invocation.
type recordedCall struct {
	name string
	opts map[string]any
}

// recordingHandler returns a handler that appends its invocations to calls.
func recordingHandler(name string, calls *[]recordedCall) *Handler {
	return &Handler{
		Meta: Meta{Name: name},
		Fn: func(ctx context.Context, c *Container, opts map[string]any) (any, error) {
			*calls = append(*calls, recordedCall{name: name, opts: opts})
			return name, nil
		},
	}
}
