package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/webforge/internal/config"
)

// writeProject lays out a temp project directory with the given webforge.hcl
// content and returns its path.
func writeProject(t *testing.T, configHCL string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "webforge.hcl"), []byte(configHCL), 0o644))
	return dir
}

func TestRun_AssemblesConfigurationFromDeclaredModules(t *testing.T) {
	projectDir := writeProject(t, `
module "sitemap" {
  options = {
    hostname = "https://example.org"
    routes   = ["/", "/about"]
  }
}

module "telemetry" {
  options = {
    endpoint = "https://collect.example/v1"
  }
}

module "proxy" {
  options = {
    prefix = "/api"
    target = "https://upstream.example"
  }
}

module "redirects" {
  options = {
    rules = [{ from = "/old", to = "/new" }]
  }
}
`)

	testApp, _ := SetupAppTest(t, &Config{ProjectPath: projectDir, LogFormat: "text"})
	require.NoError(t, testApp.Run(context.Background()))

	opts := testApp.Options()
	assert.Len(t, opts.Build.Templates, 2, "sitemap template + telemetry plugin template")
	assert.Len(t, opts.Plugins, 1)
	assert.Len(t, opts.ServerMiddleware, 1)

	assert.Equal(t,
		[]string{"proxy", "redirects", "sitemap", "telemetry"},
		testApp.Container().RequiredKeys(),
	)

	var routes []config.Route
	require.NotNil(t, opts.Router.ExtendRoutes)
	require.NoError(t, opts.Router.ExtendRoutes(context.Background(), &routes))
	require.Len(t, routes, 1)
	assert.Equal(t, "/new", routes[0].Redirect)
}

func TestRun_DeclarationOrderIsPreserved(t *testing.T) {
	projectDir := writeProject(t, `
module "telemetry" {
  options = { endpoint = "https://collect.example/v1" }
}

module "sitemap" {
  options = { hostname = "https://example.org" }
}
`)

	testApp, logBuf := SetupAppTest(t, &Config{ProjectPath: projectDir, LogFormat: "text"})
	require.NoError(t, testApp.Run(context.Background()))

	logs := logBuf.String()
	telemetryAt := indexOf(t, logs, "Telemetry plugin registered.")
	sitemapAt := indexOf(t, logs, "Sitemap template registered.")
	assert.Less(t, telemetryAt, sitemapAt, "modules must run in declaration order")
}

func TestRun_FailsOnUnknownDeclaredModule(t *testing.T) {
	projectDir := writeProject(t, `module "no-such-module" {}`)

	testApp, _ := SetupAppTest(t, &Config{ProjectPath: projectDir, LogFormat: "text"})
	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-module")
}

func TestRun_FailsOnSchemaRejectedOptions(t *testing.T) {
	projectDir := writeProject(t, `
module "sitemap" {
  options = { routes = ["/"] }
}
`)

	testApp, _ := SetupAppTest(t, &Config{ProjectPath: projectDir, LogFormat: "text"})
	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sitemap")
}

func TestNewApp_PanicsOnMissingProject(t *testing.T) {
	cfg := &Config{ProjectPath: filepath.Join(t.TempDir(), "absent"), LogFormat: "text", LogLevel: "debug"}

	require.Panics(t, func() {
		SetupAppTest(t, cfg)
	})
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "expected log output to contain %q", needle)
	return idx
}
