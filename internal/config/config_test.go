package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	xdg.Reload()
	return dir
}

func TestLoadWithoutFilesReturnsDefaults(t *testing.T) {
	chdirTemp(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLocalFileOverridesDefaults(t *testing.T) {
	dir := chdirTemp(t)
	data := "fps = 60\nseed = 9\n[waves]\nopacity = 0.4\nregenerate_on_resize = true\n[nav]\ncompact_threshold = 50\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folio.toml"), []byte(data), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.InDelta(t, 0.4, cfg.Waves.Opacity, 1e-9)
	assert.True(t, cfg.Waves.RegenerateOnResize)
	assert.Equal(t, 50.0, cfg.Nav.CompactThreshold)
	assert.Equal(t, "#050505", cfg.Waves.Background, "unset keys keep defaults")
	assert.Equal(t, 100.0, cfg.Progress.Stiffness)
}

func TestExplicitFileWins(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folio.toml"), []byte("fps = 60\n"), 0o644))
	explicit := filepath.Join(dir, "other.toml")
	require.NoError(t, os.WriteFile(explicit, []byte("fps = 24\n"), 0o644))

	cfg, err := Load(explicit)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.FPS)
}

func TestMissingExplicitFileFails(t *testing.T) {
	chdirTemp(t)
	_, err := Load("does-not-exist.toml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMalformedFileFails(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folio.toml"), []byte("fps = [\n"), 0o644))
	_, err := Load("")
	assert.Error(t, err)
}

func TestNormalizeRejectsOutOfRange(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folio.toml"), []byte("fps = -1\n[waves]\nopacity = 3.0\n"), 0o644))
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.InDelta(t, 0.22, cfg.Waves.Opacity, 1e-9)
}
