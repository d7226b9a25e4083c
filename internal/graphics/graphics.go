package graphics

import (
	"camping-showcase/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Loop is the set of callbacks Run drives. Start runs once after the window and GL
// context exist; Stop runs once before the window closes so GPU resources can be freed.
// Any of them may be nil.
type Loop struct {
	Start  func()
	Update func(dt float32)
	Draw   func()
	Stop   func()
}

// Run opens the window described by win and runs the frame loop until the window is closed.
// Each frame: resize notifications (when the framebuffer size changed), Update with the
// frame time, then Draw between BeginDrawing and EndDrawing. Draw owns clearing the
// screen because the scene renders off-screen passes before its main pass.
func Run(win config.WindowConfig, host *Host, loop Loop) {
	rl.SetConfigFlags(windowFlags(win))
	width, height := win.Width, win.Height
	rl.InitWindow(width, height, win.Title)
	defer rl.CloseWindow()
	if win.Fullscreen {
		monitor := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor))
		rl.ToggleFullscreen()
	}

	rl.SetExitKey(rl.KeyNull) // ESC toggles the console; close via window button
	rl.SetTargetFPS(win.TargetFPS)

	if loop.Start != nil {
		loop.Start()
	}
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			host.NotifyResize()
		}
		if loop.Update != nil {
			loop.Update(rl.GetFrameTime())
		}

		rl.BeginDrawing()
		if loop.Draw != nil {
			loop.Draw()
		}
		rl.EndDrawing()
	}
	if loop.Stop != nil {
		loop.Stop()
	}
}

func windowFlags(win config.WindowConfig) uint32 {
	var flags uint32
	if win.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if win.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	return flags
}

// Aspect returns the current screen width/height, or 1 before the window has a size.
func Aspect() float32 {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	if w <= 0 || h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}
