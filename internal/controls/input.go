package controls

import rl "github.com/gen2brain/raylib-go/raylib"

// ReadInput samples this frame's mouse state: left drag rotates, the wheel dollies.
func ReadInput() Input {
	var in Input
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		in.Drag = rl.GetMouseDelta()
	}
	in.Wheel = rl.GetMouseWheelMove()
	in.ViewportHeight = float32(rl.GetScreenHeight())
	return in
}
