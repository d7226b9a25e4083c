package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "# comment\n\nSHOWCASE_TEST_A=\"quoted\"\nexport SHOWCASE_TEST_B = plain\nnoequals\nSHOWCASE_TEST_C=from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	t.Setenv("SHOWCASE_TEST_C", "from-process")
	t.Setenv("SHOWCASE_TEST_A", "")
	os.Unsetenv("SHOWCASE_TEST_A")
	t.Setenv("SHOWCASE_TEST_B", "")
	os.Unsetenv("SHOWCASE_TEST_B")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "quoted", os.Getenv("SHOWCASE_TEST_A"))
	assert.Equal(t, "plain", os.Getenv("SHOWCASE_TEST_B"))
	assert.Equal(t, "from-process", os.Getenv("SHOWCASE_TEST_C"))
}

func TestLoadDotEnvMissing(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing")))
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultPath, PathFromEnv())
	t.Setenv(EnvConfigPath, "custom.yaml")
	assert.Equal(t, "custom.yaml", PathFromEnv())
}

func TestPathFromEnvExpandsHome(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigPath, "~/showcase.yaml")
	assert.Equal(t, filepath.Join(home, "showcase.yaml"), PathFromEnv())

	cfg := Default()
	cfg.Assets.Dir = "~/assets"
	assert.Equal(t, filepath.Join(home, "assets", "models", "camping.glb"), cfg.AssetPath("models/camping.glb"))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvFullscreen, "true")
	t.Setenv(EnvPreset, "night")
	cfg := Default()
	cfg.ApplyEnv()
	assert.True(t, cfg.Window.Fullscreen)
	assert.Equal(t, "night", cfg.Environment.Preset)

	t.Setenv(EnvFullscreen, "maybe")
	cfg = Default()
	cfg.ApplyEnv()
	assert.False(t, cfg.Window.Fullscreen)
}
