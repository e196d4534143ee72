package gowire3d

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	testCases := []struct {
		in   string
		want color.RGBA
	}{
		{"blue", color.RGBA{B: 255, A: 255}},
		{"White", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{" black ", color.RGBA{A: 255}},
		{"#ff8000", color.RGBA{R: 255, G: 128, A: 255}},
		{"#0f0", color.RGBA{G: 255, A: 255}},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "blurple", "#12", "#gggggg"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, "%q", bad)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, color.RGBA{B: 255, A: 255}, cfg.LineColor())
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, cfg.BackgroundColor())
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "example.toml"))
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, cfg.LineColor())
	assert.Equal(t, color.RGBA{A: 255}, cfg.BackgroundColor())
	assert.Equal(t, 12, cfg.Frames)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.Caption)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	name := filepath.Join(t.TempDir(), "partial.toml")
	require.NoError(t, os.WriteFile(name, []byte("width = 320\n"), 0o644))

	cfg, err := LoadConfig(name)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, DefaultConfig().Height, cfg.Height)
	assert.Equal(t, "blue", cfg.Color)
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"unknown key", "colour = \"red\"\n"},
		{"wrong type", "width = \"wide\"\n"},
		{"invalid value", "frames = 0\n"},
		{"unknown colour", "background = \"sparkly\"\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			name := filepath.Join(t.TempDir(), "bad.toml")
			require.NoError(t, os.WriteFile(name, []byte(tc.body), 0o644))
			_, err := LoadConfig(name)
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigValidate(t *testing.T) {
	for _, mutate := range []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Height = -1 },
		func(c *Config) { c.Workers = 0 },
		func(c *Config) { c.Color = "nope" },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)
		assert.Error(t, cfg.Validate())
	}
}
