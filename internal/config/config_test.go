package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"edgedemo/internal/edge"
	"edgedemo/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("EDGEDEMO_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)

	opts, err := c.Options()
	require.NoError(t, err)
	assert.Equal(t, state.Defaults(), opts)

	mode, err := c.EffectsMode()
	require.NoError(t, err)
	assert.Equal(t, edge.ModeAuto, mode)
	assert.Equal(t, "edgedemo", c.Telemetry.ServiceName)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
[view]
top_style = "hard"
bottom_style = "automatic"
large_title = false
floating_bar = false
card_count = 120

[edge]
effects = "off"
`)
	c, err := Load(path)
	require.NoError(t, err)

	opts, err := c.Options()
	require.NoError(t, err)
	assert.Equal(t, edge.Hard, opts.TopStyle)
	assert.Equal(t, edge.Automatic, opts.BottomStyle)
	assert.False(t, opts.LargeTitle)
	assert.False(t, opts.FloatingBar)
	assert.Equal(t, 120, opts.CardCount)

	mode, err := c.EffectsMode()
	require.NoError(t, err)
	assert.Equal(t, edge.ModeOff, mode)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "[view]\ncard_count = 20\n")
	t.Setenv("EDGEDEMO_VIEW_CARD_COUNT", "70")
	t.Setenv("EDGEDEMO_VIEW_TOP_STYLE", "Hard")

	c, err := Load(path)
	require.NoError(t, err)
	opts, err := c.Options()
	require.NoError(t, err)
	assert.Equal(t, 70, opts.CardCount)
	assert.Equal(t, edge.Hard, opts.TopStyle)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestOptions_Invalid(t *testing.T) {
	path := writeConfig(t, "[view]\ncard_count = 125\n")
	c, err := Load(path)
	require.NoError(t, err)
	_, err = c.Options()
	require.Error(t, err)
	assert.True(t, errors.Is(err, state.ErrCardCount))

	path = writeConfig(t, "[view]\ntop_style = \"blurred\"\n")
	c, err = Load(path)
	require.NoError(t, err)
	_, err = c.Options()
	assert.True(t, errors.Is(err, edge.ErrUnknownStyle))

	path = writeConfig(t, "[edge]\neffects = \"maybe\"\n")
	c, err = Load(path)
	require.NoError(t, err)
	_, err = c.EffectsMode()
	assert.Error(t, err)
}
