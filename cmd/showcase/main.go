package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"camping-showcase/internal/commands"
	"camping-showcase/internal/config"
	"camping-showcase/internal/debug"
	"camping-showcase/internal/graphics"
	"camping-showcase/internal/logger"
	"camping-showcase/internal/scene"
	"camping-showcase/internal/terminal"
)

func main() {
	dotEnvErr := config.LoadDotEnv(".env")
	cfgPath := config.PathFromEnv()
	cfg, cfgErr := config.Load(cfgPath)
	cfg.ApplyEnv()

	log := logger.New(cfg.LogPath())
	if dotEnvErr != nil {
		log.Warnf("env: %v", dotEnvErr)
	}
	if cfgErr != nil {
		log.Errorf("%v, using defaults", cfgErr)
	}
	log.Infof("config: %s", cfgPath)

	dbg := debug.New()
	dbg.SetShowFPS(cfg.Debug.ShowFPS)
	dbg.SetShowCamera(cfg.Debug.ShowCamera)
	dbg.SetShowGrid(cfg.Debug.Grid)

	host := graphics.NewHost()
	scn := scene.New(cfg, log, dbg, graphics.Aspect)

	con := &console{log: log, scene: scn, debug: dbg, cfg: cfg, cfgPath: cfgPath}
	reg := commands.NewRegistry()
	registerCommands(reg, con)
	term := terminal.New(log, reg)

	watcher, err := config.Watch(cfgPath)
	if err != nil {
		log.Infof("config: not watching: %v", err)
	} else {
		defer watcher.Close()
	}

	var (
		font    rl.Font
		hasFont bool
	)
	graphics.Run(cfg.Window, host, graphics.Loop{
		Start: func() {
			font, hasFont = overlayFont(cfg, loadFont, log, dbg, term)
			scn.Mount(host)
		},
		Update: func(dt float32) {
			if watcher != nil {
				if r, ok := watcher.Poll(); ok {
					con.reload(r)
				}
			}
			term.Update()
			scn.InputEnabled = !term.IsOpen()
			scn.Update(dt)
		},
		Draw: func() {
			scn.Draw()
			dbg.Draw(scn.Camera())
			term.Draw()
		},
		Stop: func() {
			scn.Unmount()
			scn.Unload()
			if hasFont {
				rl.UnloadFont(font)
			}
		},
	})
}
