// Package rendertexture renders a nested scene into an offscreen texture that other
// materials sample.
package rendertexture

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Target is an offscreen colour+depth buffer. The GPU target is created on the first Render
// so a Target can be built before the window exists.
type Target struct {
	Width, Height int32
	// Frames limits how many frames are rendered; 0 renders every frame.
	Frames   int
	rendered int
	rt       rl.RenderTexture2D
	ready    bool
}

// New returns a w×h target rendered every frame.
func New(w, h int32) *Target {
	return &Target{Width: w, Height: h}
}

// ShouldRender reports whether a target that has rendered `rendered` frames renders again
// under a limit of frames (0 means no limit).
func ShouldRender(frames, rendered int) bool {
	return frames <= 0 || rendered < frames
}

// Rendered returns how many frames have been drawn into the target.
func (t *Target) Rendered() int {
	return t.rendered
}

func (t *Target) ensure() bool {
	if t.ready {
		return true
	}
	if t.Width <= 0 || t.Height <= 0 {
		return false
	}
	t.rt = rl.LoadRenderTexture(t.Width, t.Height)
	if !rl.IsRenderTextureValid(t.rt) {
		return false
	}
	rl.SetTextureFilter(t.rt.Texture, rl.FilterBilinear)
	t.ready = true
	return true
}

// Render draws into the target: draw runs between BeginTextureMode and EndTextureMode and is
// responsible for clearing. It must be called outside any other texture or 3D mode.
func (t *Target) Render(draw func()) {
	if !ShouldRender(t.Frames, t.rendered) || !t.ensure() {
		return
	}
	rl.BeginTextureMode(t.rt)
	draw()
	rl.EndTextureMode()
	t.rendered++
}

// Texture returns the colour attachment. Its rows are bottom-up (OpenGL order), so sample it
// with v flipped.
func (t *Target) Texture() (rl.Texture2D, bool) {
	return t.rt.Texture, t.ready
}

// Aspect is width over height.
func (t *Target) Aspect() float32 {
	if t.Height == 0 {
		return 1
	}
	return float32(t.Width) / float32(t.Height)
}

// Unload frees the GPU target; the next Render recreates it.
func (t *Target) Unload() {
	if !t.ready {
		return
	}
	rl.UnloadRenderTexture(t.rt)
	t.ready = false
	t.rendered = 0
}
