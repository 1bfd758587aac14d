package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NoArgsPrintsUsageAndExits(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_PositionalProjectPath(t *testing.T) {
	cfg, shouldExit, err := Parse([]string{"./site"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "./site", cfg.ProjectPath)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_ProjectFlagWinsOverPositional(t *testing.T) {
	cfg, _, err := Parse([]string{"-project", "./a", "./b"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "./a", cfg.ProjectPath)
}

func TestParse_Shorthand(t *testing.T) {
	cfg, _, err := Parse([]string{"-p", "./site"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "./site", cfg.ProjectPath)
}

func TestParse_InvalidLogFormat(t *testing.T) {
	_, _, err := Parse([]string{"-log-format", "xml", "./site"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogLevel(t *testing.T) {
	_, _, err := Parse([]string{"-log-level", "loud", "./site"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_VersionFlag(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-version"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "webforge")
}

func TestParse_LogFilePassedThrough(t *testing.T) {
	cfg, _, err := Parse([]string{"-log-file", "/tmp/webforge.log", "./site"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "/tmp/webforge.log", cfg.LogFile)
}
