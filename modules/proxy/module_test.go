package proxy

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/webforge/internal/config"
	"github.com/vk/webforge/internal/container"
)

func newTestContainer(t *testing.T) *container.Container {
	t.Helper()
	opts, err := config.NewOptions(config.Options{RootDir: t.TempDir()})
	require.NoError(t, err)
	return container.New(container.Config{Options: opts})
}

func TestInstall_AppendsMiddleware(t *testing.T) {
	mc := newTestContainer(t)

	result, err := Install(context.Background(), mc, map[string]any{
		"prefix": "/api",
		"target": "https://upstream.example",
	})
	require.NoError(t, err)

	mw, ok := result.(*Middleware)
	require.True(t, ok)
	assert.Equal(t, "/api", mw.Prefix)

	require.Len(t, mc.Options().ServerMiddleware, 1)
	assert.Same(t, mw, mc.Options().ServerMiddleware[0])
}

func TestInstall_DefaultsPrefix(t *testing.T) {
	mc := newTestContainer(t)

	result, err := Install(context.Background(), mc, map[string]any{
		"target": "https://upstream.example",
	})
	require.NoError(t, err)

	assert.Equal(t, "/proxy", result.(*Middleware).Prefix)
}

func TestInstall_RejectsBadTargets(t *testing.T) {
	mc := newTestContainer(t)

	testCases := []struct {
		name   string
		target string
	}{
		{"relative target", "upstream.example/path"},
		{"missing host", "https://"},
		{"unparsable", "://bad"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Install(context.Background(), mc, map[string]any{"target": tc.target})
			require.Error(t, err)
		})
	}
}

func TestMiddleware_StripsPrefixAndForwards(t *testing.T) {
	var gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, "ok")
	}))
	defer backend.Close()

	mc := newTestContainer(t)
	result, err := Install(context.Background(), mc, map[string]any{
		"prefix": "/api",
		"target": backend.URL,
	})
	require.NoError(t, err)
	mw := result.(*Middleware)

	rec := httptest.NewRecorder()
	mw.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/users/7", gotPath)
}
