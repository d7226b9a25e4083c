package controls

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// DefaultSmoothTime is the transition time used until SetSmoothTime is called.
	DefaultSmoothTime = 0.25
	// DefaultDraggingSmoothTime is used for transitions started by mouse input.
	DefaultDraggingSmoothTime = 0.125

	polarEpsilon = 1e-3
	quarterTurn  = math32.Pi / 2
)

// Controls is an orbit camera controller: the camera circles a target at a radius and
// every change is first applied to an end state, then reached through a smoothed
// transition or a snap.
//
// The camera is only rewritten when the orbit state changes, so edits made directly to
// Camera().Position (e.g. a floor clamp) stick until the next movement.
type Controls struct {
	camera  rl.Camera3D
	current orbit
	end     orbit
	aspect  func() float32

	smoothTime         float32
	draggingSmoothTime float32
	trans              *transition
	dirty              bool

	MinDistance float32
	MaxDistance float32
	MinPolar    float32
	MaxPolar    float32
	// RotateSpeed scales drag rotation; a full viewport-height drag is one turn at 1.
	RotateSpeed float32
	// DollySpeed scales wheel dolly; each wheel step multiplies the radius by 0.95^DollySpeed.
	DollySpeed float32
}

// New returns controls driving cam. aspect reports the viewport aspect ratio used by
// FitToBox; nil means 1.
func New(cam rl.Camera3D, aspect func() float32) *Controls {
	if aspect == nil {
		aspect = func() float32 { return 1 }
	}
	if cam.Up == (rl.Vector3{}) {
		cam.Up = rl.NewVector3(0, 1, 0)
	}
	o := orbitFrom(cam.Position, cam.Target)
	return &Controls{
		camera:             cam,
		current:            o,
		end:                o,
		aspect:             aspect,
		smoothTime:         DefaultSmoothTime,
		draggingSmoothTime: DefaultDraggingSmoothTime,
		MinDistance:        polarEpsilon,
		MaxDistance:        math32.Inf(1),
		MinPolar:           polarEpsilon,
		MaxPolar:           math32.Pi - polarEpsilon,
		RotateSpeed:        1,
		DollySpeed:         1,
	}
}

// Camera returns the controlled camera. Callers may edit it in place.
func (c *Controls) Camera() *rl.Camera3D {
	return &c.camera
}

// SmoothTime returns the duration of programmatic transitions, in seconds.
func (c *Controls) SmoothTime() float32 {
	return c.smoothTime
}

// SetSmoothTime sets the duration of programmatic transitions. Zero or less snaps.
func (c *Controls) SetSmoothTime(seconds float32) {
	c.smoothTime = max(seconds, 0)
}

// Distance returns the radius the camera is moving toward.
func (c *Controls) Distance() float32 {
	return c.end.Radius
}

// Target returns the point the camera is moving to look at.
func (c *Controls) Target() rl.Vector3 {
	return c.end.Target
}

// Transitioning reports whether a smoothed move is in progress.
func (c *Controls) Transitioning() bool {
	return c.trans != nil
}

// Dolly moves the camera along its view axis. Positive distance moves toward the target;
// negative moves away.
func (c *Controls) Dolly(distance float32, transition bool) {
	c.end.Radius = c.clampRadius(c.end.Radius - distance)
	c.commit(transition, c.smoothTime)
}

// Rotate turns the camera around the target by the given azimuth and polar deltas (radians).
func (c *Controls) Rotate(azimuth, polar float32, transition bool) {
	c.end.Azimuth += azimuth
	c.end.Polar = clamp(c.end.Polar+polar, c.MinPolar, c.MaxPolar)
	c.commit(transition, c.smoothTime)
}

// FitToBox reframes the camera so box fills the view. The view angles snap to the nearest
// quarter turn, the box is measured in that view's axes, and the radius is chosen so the
// box's front face fits the viewport. immediate skips the transition.
func (c *Controls) FitToBox(box rl.BoundingBox, immediate bool) {
	if box.Min.X > box.Max.X || box.Min.Y > box.Max.Y || box.Min.Z > box.Max.Z {
		return
	}
	azimuth := roundToStep(c.end.Azimuth, quarterTurn)
	polar := clamp(roundToStep(c.end.Polar, quarterTurn), c.MinPolar, c.MaxPolar)
	right, up, normal := basis(azimuth, polar)

	lo := rl.NewVector3(math32.Inf(1), math32.Inf(1), math32.Inf(1))
	hi := rl.NewVector3(math32.Inf(-1), math32.Inf(-1), math32.Inf(-1))
	for _, p := range corners(box) {
		x, y, z := rl.Vector3DotProduct(p, right), rl.Vector3DotProduct(p, up), rl.Vector3DotProduct(p, normal)
		lo = rl.NewVector3(min(lo.X, x), min(lo.Y, y), min(lo.Z, z))
		hi = rl.NewVector3(max(hi.X, x), max(hi.Y, y), max(hi.Z, z))
	}
	size := rl.Vector3Subtract(hi, lo)
	mid := rl.Vector3Scale(rl.Vector3Add(lo, hi), 0.5)
	center := rl.Vector3Add(rl.Vector3Add(rl.Vector3Scale(right, mid.X), rl.Vector3Scale(up, mid.Y)), rl.Vector3Scale(normal, mid.Z))

	c.end = orbit{
		Target:  center,
		Azimuth: azimuth,
		Polar:   polar,
		Radius:  c.clampRadius(DistanceToFit(size.X, size.Y, size.Z, c.camera.Fovy, c.aspect())),
	}
	c.commit(!immediate, c.smoothTime)
}

// DistanceToFit returns the camera distance at which a width×height rectangle, depth deep,
// fits a perspective view with vertical field of view fovy (degrees) and the given aspect.
func DistanceToFit(width, height, depth, fovy, aspect float32) float32 {
	if height <= 0 || aspect <= 0 {
		return depth * 0.5
	}
	heightToFit := width / aspect
	if width/height < aspect {
		heightToFit = height
	}
	fov := fovy * rl.Deg2rad
	return heightToFit*0.5/math32.Tan(fov*0.5) + depth*0.5
}

// Input is one frame of pointer input.
type Input struct {
	Drag           rl.Vector2
	Wheel          float32
	ViewportHeight float32
}

// HandleInput applies drag rotation and wheel dolly. Both follow with the dragging smooth time.
func (c *Controls) HandleInput(in Input) {
	moved := false
	if (in.Drag.X != 0 || in.Drag.Y != 0) && in.ViewportHeight > 0 {
		turn := 2 * math32.Pi * c.RotateSpeed / in.ViewportHeight
		c.end.Azimuth -= in.Drag.X * turn
		c.end.Polar = clamp(c.end.Polar-in.Drag.Y*turn, c.MinPolar, c.MaxPolar)
		moved = true
	}
	if in.Wheel != 0 {
		c.end.Radius = c.clampRadius(c.end.Radius * math32.Pow(0.95, in.Wheel*c.DollySpeed))
		moved = true
	}
	if moved {
		c.commit(true, c.draggingSmoothTime)
	}
}

// Update advances any transition by dt seconds and rewrites the camera when the orbit
// changed. It reports whether the camera was rewritten.
func (c *Controls) Update(dt float32) bool {
	if c.trans != nil {
		var done bool
		c.current, done = c.trans.step(dt)
		if done {
			c.current = c.end
			c.trans = nil
		}
		c.dirty = true
	}
	if !c.dirty {
		return false
	}
	c.dirty = false
	c.camera.Position = c.current.position()
	c.camera.Target = c.current.Target
	return true
}

// commit moves toward the end state: snapping, or starting a transition of the given duration.
func (c *Controls) commit(transition bool, duration float32) {
	if !transition || duration <= 0 {
		c.current = c.end
		c.trans = nil
	} else {
		c.trans = newTransition(c.current, c.end, duration)
	}
	c.dirty = true
}

func (c *Controls) clampRadius(r float32) float32 {
	return clamp(r, c.MinDistance, c.MaxDistance)
}

func corners(b rl.BoundingBox) [8]rl.Vector3 {
	return [8]rl.Vector3{
		rl.NewVector3(b.Min.X, b.Min.Y, b.Min.Z),
		rl.NewVector3(b.Max.X, b.Min.Y, b.Min.Z),
		rl.NewVector3(b.Min.X, b.Max.Y, b.Min.Z),
		rl.NewVector3(b.Max.X, b.Max.Y, b.Min.Z),
		rl.NewVector3(b.Min.X, b.Min.Y, b.Max.Z),
		rl.NewVector3(b.Max.X, b.Min.Y, b.Max.Z),
		rl.NewVector3(b.Min.X, b.Max.Y, b.Max.Z),
		rl.NewVector3(b.Max.X, b.Max.Y, b.Max.Z),
	}
}
