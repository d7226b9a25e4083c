package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem/camera text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging features. All overlays and helpers are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowCamera   bool
	// ShowGrid enables the floor grid and axes helpers drawn by the scene.
	ShowGrid bool

	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastCamText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetShowCamera sets whether the camera position and target are drawn.
func (d *Debug) SetShowCamera(show bool) {
	d.ShowCamera = show
}

// SetShowGrid sets whether the grid and axes helpers are drawn.
func (d *Debug) SetShowGrid(show bool) {
	d.ShowGrid = show
}

// SetFont sets the font used to draw overlays. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Font returns the overlay font; a zero texture ID means raylib's default.
func (d *Debug) Font() rl.Font {
	return d.font
}

// CameraText formats a camera for the overlay.
func CameraText(cam rl.Camera3D) string {
	p, t := cam.Position, cam.Target
	return fmt.Sprintf("Cam: (%.2f, %.2f, %.2f) -> (%.2f, %.2f, %.2f)", p.X, p.Y, p.Z, t.X, t.Y, t.Z)
}

// Draw renders any enabled overlays at the top-right, one per line: FPS, heap allocation,
// camera. Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(cam rl.Camera3D) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if (d.ShowFPS && d.lastFpsText == "") || (d.ShowMemAlloc && d.lastMemText == "") || (d.ShowCamera && d.lastCamText == "") {
		update = true
	}

	y := int32(fpsPadding)
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.lastFpsText, y)
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawRight(d.lastMemText, y)
		y += fpsLineHeight
	}
	if d.ShowCamera {
		if update {
			d.lastCamText = CameraText(cam)
		}
		d.drawRight(d.lastCamText, y)
	}
}

// drawRight draws text right-aligned at row y.
func (d *Debug) drawRight(text string, y int32) {
	if text == "" {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fpsFontSize)
		pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(d.font, text, sz, 1).X-float32(fpsPadding), float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, rl.Green)
		return
	}
	w := rl.MeasureText(text, fpsFontSize)
	rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, rl.Green)
}
