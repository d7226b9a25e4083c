package main

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camping-showcase/internal/commands"
	"camping-showcase/internal/config"
	"camping-showcase/internal/debug"
	"camping-showcase/internal/logger"
	"camping-showcase/internal/terminal"
)

func fontConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Assets.Dir = t.TempDir()
	path := filepath.Join(cfg.Assets.Dir, cfg.Assets.Font)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("ttf"), 0644))
	return cfg
}

func TestOverlayFontReachesOverlays(t *testing.T) {
	cfg := fontConfig(t)
	log := logger.New(filepath.Join(t.TempDir(), "log.txt"))
	dbg := debug.New()
	term := terminal.New(log, commands.NewRegistry())

	var loaded string
	load := func(path string) (rl.Font, bool) {
		loaded = path
		return rl.Font{Texture: rl.Texture2D{ID: 9}}, true
	}
	font, ok := overlayFont(cfg, load, log, dbg, term)
	require.True(t, ok)
	assert.Equal(t, cfg.AssetPath(cfg.Assets.Font), loaded)
	assert.Equal(t, uint32(9), font.Texture.ID)
	assert.Equal(t, uint32(9), dbg.Font().Texture.ID)
	assert.Equal(t, uint32(9), term.Font().Texture.ID)
}

func TestOverlayFontLoadFailureKeepsDefault(t *testing.T) {
	cfg := fontConfig(t)
	log := logger.New(filepath.Join(t.TempDir(), "log.txt"))
	dbg := debug.New()

	_, ok := overlayFont(cfg, func(string) (rl.Font, bool) { return rl.Font{}, false }, log, dbg)
	assert.False(t, ok)
	assert.Zero(t, dbg.Font().Texture.ID)

	lines := log.Lines()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "WARN overlay font")
}
