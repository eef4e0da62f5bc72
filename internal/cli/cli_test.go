package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AllFlags(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{
		"-grid", "matrices/",
		"-matrix", "py",
		"-output", "json",
		"-log-level", "debug",
		"-log-format", "json",
	}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "matrices/", cfg.GridPath)
	assert.Equal(t, "py", cfg.MatrixName)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_PositionalPath(t *testing.T) {
	cfg, shouldExit, err := Parse([]string{"matrices.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "matrices.hcl", cfg.GridPath)
	assert.Equal(t, "text", cfg.Output)
}

func TestParse_ShorthandFlag(t *testing.T) {
	cfg, _, err := Parse([]string{"-g", "m.yaml"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "m.yaml", cfg.GridPath)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
}

func TestParse_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		args []string
		text string
	}{
		{"unknown flag", []string{"--nope"}, "flag provided but not defined"},
		{"bad output", []string{"-output", "xml", "m.hcl"}, "invalid output format"},
		{"bad log-format", []string{"-log-format", "csv", "m.hcl"}, "invalid log-format"},
		{"bad log-level", []string{"-log-level", "loud", "m.hcl"}, "invalid log-level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.text)
		})
	}
}
