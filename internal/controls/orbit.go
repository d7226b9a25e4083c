package controls

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// orbit is the camera state in spherical coordinates around a target.
// Azimuth is measured around +Y with 0 looking from +Z; Polar is measured from +Y.
type orbit struct {
	Target  rl.Vector3
	Azimuth float32
	Polar   float32
	Radius  float32
}

// orbitFrom derives the spherical state for a camera at position looking at target.
func orbitFrom(position, target rl.Vector3) orbit {
	offset := rl.Vector3Subtract(position, target)
	r := rl.Vector3Length(offset)
	o := orbit{Target: target, Radius: r, Polar: math32.Pi / 2}
	if r == 0 {
		return o
	}
	o.Azimuth = math32.Atan2(offset.X, offset.Z)
	o.Polar = math32.Acos(clamp(offset.Y/r, -1, 1))
	return o
}

// direction is the unit vector from the target toward the camera.
func direction(azimuth, polar float32) rl.Vector3 {
	sinP := math32.Sin(polar)
	return rl.NewVector3(sinP*math32.Sin(azimuth), math32.Cos(polar), sinP*math32.Cos(azimuth))
}

func (o orbit) position() rl.Vector3 {
	return rl.Vector3Add(o.Target, rl.Vector3Scale(direction(o.Azimuth, o.Polar), o.Radius))
}

// basis returns the camera's right and up vectors for the given view angles. Right is
// derived from the azimuth alone so it stays defined when looking straight down.
func basis(azimuth, polar float32) (right, up, normal rl.Vector3) {
	normal = direction(azimuth, polar)
	right = rl.NewVector3(math32.Cos(azimuth), 0, -math32.Sin(azimuth))
	up = rl.Vector3CrossProduct(normal, right)
	return right, up, normal
}

func roundToStep(v, step float32) float32 {
	return math32.Round(v/step) * step
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
