package main

import (
	"strings"

	"camping-showcase/internal/commands"
	"camping-showcase/internal/config"
	"camping-showcase/internal/debug"
	"camping-showcase/internal/environment"
	"camping-showcase/internal/logger"
	"camping-showcase/internal/scene"
)

// console is the state the dev console commands act on.
type console struct {
	log     *logger.Logger
	scene   *scene.Scene
	debug   *debug.Debug
	cfg     config.Config
	cfgPath string
}

func registerCommands(reg *commands.Registry, c *console) {
	reg.Register("help", "", nil, func() error {
		for _, line := range reg.Usage() {
			c.log.Log(line)
		}
		return nil
	})
	reg.Register("intro", "replay the camera intro", nil, c.scene.Intro)
	reg.Register("fit", "frame the scene", nil, func() error {
		c.scene.Rig().FitToTarget()
		return nil
	})

	envFS := commands.NewFlagSet("env")
	preset := envFS.String("preset", "", "preset name")
	reg.Register("env", "-preset NAME", envFS, func() error {
		if *preset == "" {
			c.log.Infof("env: %s (available: %s)", c.scene.Environment().Name, strings.Join(environment.Names(), ", "))
			return nil
		}
		if err := c.scene.SetEnvironment(*preset); err != nil {
			return err
		}
		c.log.Infof("env: %s", *preset)
		return nil
	})

	registerToggle(reg, "sky", "draw the preset's sky", c.scene.SetBackground)
	registerToggle(reg, "grid", "grid, axes and bounds helpers", c.debug.SetShowGrid)
	registerToggle(reg, "fps", "FPS overlay", c.debug.SetShowFPS)
	registerToggle(reg, "camera", "camera overlay", c.debug.SetShowCamera)
	registerToggle(reg, "mem", "heap overlay", c.debug.SetShowMemAlloc)

	reg.Register("describe", "print the scene tree", nil, func() error {
		d, err := c.scene.Description()
		if err != nil {
			return err
		}
		for _, line := range d.Summary() {
			c.log.Log(line)
		}
		return nil
	})

	reg.Register("save", "write the current settings to the config file", nil, func() error {
		cfg := c.cfg
		cfg.Environment.Preset = c.scene.Environment().Name
		cfg.Environment.Background = c.scene.Background()
		cfg.Debug.ShowFPS = c.debug.ShowFPS
		cfg.Debug.ShowCamera = c.debug.ShowCamera
		cfg.Debug.Grid = c.debug.ShowGrid
		if err := config.Save(c.cfgPath, cfg); err != nil {
			return err
		}
		c.cfg = cfg
		c.log.Infof("config saved to %s", c.cfgPath)
		return nil
	})
}

// reload applies the live-reloadable settings of an edited config file: preset, sky and
// overlays. Environment overrides still win over the file. Window, camera and asset
// settings need a restart.
func (c *console) reload(r config.Reload) {
	if r.Err != nil {
		c.log.Errorf("%v", r.Err)
		return
	}
	cfg := r.Config
	cfg.ApplyEnv()
	if err := c.scene.SetEnvironment(cfg.Environment.Preset); err != nil {
		c.log.Warnf("config reload: %v", err)
		cfg.Environment.Preset = c.scene.Environment().Name
	}
	c.scene.SetBackground(cfg.Environment.Background)
	c.debug.SetShowFPS(cfg.Debug.ShowFPS)
	c.debug.SetShowCamera(cfg.Debug.ShowCamera)
	c.debug.SetShowGrid(cfg.Debug.Grid)
	c.cfg = cfg
	c.log.Infof("config reloaded from %s", c.cfgPath)
}

// registerToggle adds a command with a single -on flag that defaults to true.
func registerToggle(reg *commands.Registry, name, usage string, set func(bool)) {
	fs := commands.NewFlagSet(name)
	on := fs.Bool("on", true, usage)
	reg.Register(name, "-on=BOOL  "+usage, fs, func() error {
		set(*on)
		return nil
	})
}
