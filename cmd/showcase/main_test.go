package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/BrandonKowalski/showcase/pkg/showcase/linking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", t.TempDir() + "/missing.toml"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestRoutesCommand(t *testing.T) {
	out, err := execute(t, "routes", "--platform", "linux")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "NAME")
	assert.Regexp(t, `^Home\s+/\s+Reanimated examples\s+default\s+default$`, lines[1])
	assert.Regexp(t, `^Fade\s+/Fade\s+Fade in and out\s+default\s+default$`, lines[2])
}

func TestRoutesCommand_WebReducedMotion(t *testing.T) {
	out, err := execute(t, "routes", "--platform", "web", "--reduce-motion")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Regexp(t, `^Home\s+/\s+Reanimated examples\s+default\s+hidden$`, lines[1])
	for _, line := range lines[2:] {
		assert.Regexp(t, `\sfade\s+home$`, line)
	}
}

func TestResolveCommand(t *testing.T) {
	out, err := execute(t, "resolve", "showcase://Spring/?from=test")
	require.NoError(t, err)
	assert.Equal(t, "Spring\n", out)

	out, err = execute(t, "resolve", "/")
	require.NoError(t, err)
	assert.Equal(t, "Home\n", out)
}

func TestResolveCommand_Unknown(t *testing.T) {
	_, err := execute(t, "resolve", "showcase://Nope")
	assert.ErrorIs(t, err, linking.ErrUnknownLink)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}
