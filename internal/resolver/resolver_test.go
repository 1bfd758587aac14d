package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/webforge/internal/container"
)

func noopHandler() *container.Handler {
	return &container.Handler{
		Fn: func(ctx context.Context, c *container.Container, opts map[string]any) (any, error) {
			return nil, nil
		},
	}
}

func TestRegisterAndResolve(t *testing.T) {
	r := New()
	h := noopHandler()

	r.Register("sitemap", h)

	resolved, ok := r.Resolve("sitemap")
	require.True(t, ok)
	assert.Same(t, h, resolved)

	_, ok = r.Resolve("unknown")
	assert.False(t, ok)
}

func TestRegister_AdoptsRegistrationName(t *testing.T) {
	r := New()
	h := noopHandler()

	r.Register("sitemap", h)

	assert.Equal(t, "sitemap", h.Meta.Name)
}

func TestRegister_KeepsDeclaredName(t *testing.T) {
	r := New()
	h := noopHandler()
	h.Meta.Name = "sitemap-v2"

	r.Register("sitemap", h)

	assert.Equal(t, "sitemap-v2", h.Meta.Name)
}

func TestRegister_DuplicatePanics(t *testing.T) {
	r := New()
	r.Register("sitemap", noopHandler())

	require.Panics(t, func() {
		r.Register("sitemap", noopHandler())
	})
}

func TestRegister_RejectsUnregistrableHandlers(t *testing.T) {
	r := New()

	require.Panics(t, func() { r.Register("", noopHandler()) })
	require.Panics(t, func() { r.Register("sitemap", nil) })
	require.Panics(t, func() { r.Register("sitemap", &container.Handler{}) })
}

func TestNames_Sorted(t *testing.T) {
	r := New()
	r.Register("telemetry", noopHandler())
	r.Register("proxy", noopHandler())
	r.Register("sitemap", noopHandler())

	assert.Equal(t, []string{"proxy", "sitemap", "telemetry"}, r.Names())
}

func TestMustCompileSchema(t *testing.T) {
	schema := MustCompileSchema(`{"type": "object", "required": ["x"]}`)
	require.NotNil(t, schema)

	assert.Error(t, schema.Validate(map[string]any{}))
	assert.NoError(t, schema.Validate(map[string]any{"x": float64(1)}))
}

func TestMustCompileSchema_PanicsOnMalformedSchema(t *testing.T) {
	require.Panics(t, func() { MustCompileSchema(`{not json`) })
}
