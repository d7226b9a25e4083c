package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camping-showcase/internal/commands"
	"camping-showcase/internal/config"
	"camping-showcase/internal/debug"
	"camping-showcase/internal/logger"
	"camping-showcase/internal/scene"
)

func newConsole(t *testing.T) (*commands.Registry, *console) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	log := logger.New(filepath.Join(dir, "log.txt"))
	dbg := debug.New()
	c := &console{
		log:     log,
		scene:   scene.New(cfg, log, dbg, func() float32 { return 1.5 }),
		debug:   dbg,
		cfg:     cfg,
		cfgPath: filepath.Join(dir, "showcase.yaml"),
	}
	reg := commands.NewRegistry()
	registerCommands(reg, c)
	return reg, c
}

func run(t *testing.T, reg *commands.Registry, line string) error {
	t.Helper()
	args, err := commands.Parse(line)
	require.NoError(t, err)
	return reg.Execute(args)
}

func TestToggleCommands(t *testing.T) {
	reg, c := newConsole(t)
	require.NoError(t, run(t, reg, "grid"))
	require.NoError(t, run(t, reg, "fps -on"))
	require.NoError(t, run(t, reg, "mem -on=true"))
	assert.True(t, c.debug.ShowGrid)
	assert.True(t, c.debug.ShowFPS)
	assert.True(t, c.debug.ShowMemAlloc)

	require.NoError(t, run(t, reg, "grid -on=false"))
	assert.False(t, c.debug.ShowGrid)

	require.NoError(t, run(t, reg, "sky"))
	assert.True(t, c.scene.Background())
}

func TestEnvCommand(t *testing.T) {
	reg, c := newConsole(t)
	require.NoError(t, run(t, reg, "env -preset night"))
	assert.Equal(t, "night", c.scene.Environment().Name)

	assert.Error(t, run(t, reg, "env -preset nowhere"))
	assert.Equal(t, "night", c.scene.Environment().Name)

	require.NoError(t, run(t, reg, "env"))
	lines := c.log.Lines()
	assert.Contains(t, lines[len(lines)-1], "available:")
}

func TestIntroNeedsMount(t *testing.T) {
	reg, _ := newConsole(t)
	assert.ErrorIs(t, run(t, reg, "intro"), scene.ErrNotMounted)
}

func TestDescribeCommand(t *testing.T) {
	reg, c := newConsole(t)
	require.NoError(t, run(t, reg, "describe"))
	joined := strings.Join(c.log.Lines(), "\n")
	assert.Contains(t, joined, "fit target")
	assert.Contains(t, joined, "floor: 50x50")
}

func TestSaveCommand(t *testing.T) {
	reg, c := newConsole(t)
	require.NoError(t, run(t, reg, "env -preset dawn"))
	require.NoError(t, run(t, reg, "camera"))
	require.NoError(t, run(t, reg, "save"))

	saved, err := config.Load(c.cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "dawn", saved.Environment.Preset)
	assert.True(t, saved.Debug.ShowCamera)
}

func TestHelpListsCommands(t *testing.T) {
	reg, c := newConsole(t)
	require.NoError(t, run(t, reg, "help"))
	joined := strings.Join(c.log.Lines(), "\n")
	for _, name := range []string{"intro", "fit", "env", "grid", "fps", "camera", "mem", "sky", "describe", "save"} {
		assert.Contains(t, joined, name)
	}
}

func TestReloadAppliesLiveSettings(t *testing.T) {
	t.Setenv(config.EnvPreset, "")
	_, c := newConsole(t)
	cfg := config.Default()
	cfg.Environment.Preset = "forest"
	cfg.Environment.Background = true
	cfg.Debug.Grid = true
	c.reload(config.Reload{Config: cfg})

	assert.Equal(t, "forest", c.scene.Environment().Name)
	assert.True(t, c.scene.Background())
	assert.True(t, c.debug.ShowGrid)
	assert.Equal(t, "forest", c.cfg.Environment.Preset)

	cfg.Environment.Preset = "nowhere"
	c.reload(config.Reload{Config: cfg})
	assert.Equal(t, "forest", c.scene.Environment().Name)
	assert.Equal(t, "forest", c.cfg.Environment.Preset)
}

func TestReloadKeepsEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvPreset, "night")
	_, c := newConsole(t)
	cfg := config.Default()
	cfg.Environment.Preset = "forest"
	c.reload(config.Reload{Config: cfg})

	assert.Equal(t, "night", c.scene.Environment().Name)
	assert.Equal(t, "night", c.cfg.Environment.Preset)
}

func TestReloadError(t *testing.T) {
	_, c := newConsole(t)
	c.reload(config.Reload{Config: config.Default(), Err: assert.AnError})
	lines := c.log.Lines()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "ERROR")
	assert.Equal(t, "sunset", c.scene.Environment().Name)
}
