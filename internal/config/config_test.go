package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/nonexistent")
	orig := fsys
	fsys = afero.NewMemMapFs()
	defer func() { fsys = orig }()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Playback.Volume)
	assert.Equal(t, "auto-safe", cfg.Playback.HWDec)
	assert.Equal(t, 1280, cfg.UI.Width)
	assert.Equal(t, "Space", cfg.Keybinds.PlayPause)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	orig := fsys
	fsys = afero.NewMemMapFs()
	defer func() { fsys = orig }()

	path := filepath.Join("/cfg", "matinee", "config.toml")
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte("[playback]\nvolume = 120\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Playback.Volume)
	assert.Equal(t, "auto-safe", cfg.Playback.HWDec)
	assert.Equal(t, "Liberation Sans", cfg.Subtitles.Font)
}

func TestLoadMalformedFileErrors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	orig := fsys
	fsys = afero.NewMemMapFs()
	defer func() { fsys = orig }()

	path := filepath.Join("/cfg", "matinee", "config.toml")
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte("not [valid toml"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	orig := fsys
	fsys = afero.NewMemMapFs()
	defer func() { fsys = orig }()

	cfg := DefaultConfig()
	cfg.Playback.Volume = 80
	cfg.Keybinds.Fullscreen = "F"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 80, loaded.Playback.Volume)
	assert.Equal(t, "F", loaded.Keybinds.Fullscreen)
}
