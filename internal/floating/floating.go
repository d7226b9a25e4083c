package floating

import (
	"math/rand"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"camping-showcase/internal/primitives"
)

// Params shapes the bobbing motion.
type Params struct {
	Speed             float32
	RotationIntensity float32
	FloatIntensity    float32
	// Range maps the raw ±0.1 bob onto [Range[0], Range[1]] before FloatIntensity scales it.
	Range [2]float32
}

// DefaultParams is speed 1, both intensities 1 and range [-0.1, 0.1].
func DefaultParams() Params {
	return Params{Speed: 1, RotationIntensity: 1, FloatIntensity: 1, Range: [2]float32{-0.1, 0.1}}
}

// Pose is the offset a Float applies to its child.
type Pose struct {
	Rotation rl.Vector3 // Euler radians, XYZ order
	Y        float32
}

// Transform returns the pose as a matrix: rotate, then lift.
func (p Pose) Transform() rl.Matrix {
	return rl.MatrixMultiply(primitives.Rotation(p.Rotation), rl.MatrixTranslate(0, p.Y, 0))
}

// PoseAt evaluates the motion at time t (seconds).
func PoseAt(t float32, p Params) Pose {
	phase := t / 4 * p.Speed
	sin, cos := math32.Sin(phase), math32.Cos(phase)
	y := mapLinear(sin/10, -0.1, 0.1, p.Range[0], p.Range[1])
	return Pose{
		Rotation: rl.NewVector3(
			cos/8*p.RotationIntensity,
			sin/8*p.RotationIntensity,
			sin/20*p.RotationIntensity,
		),
		Y: y * p.FloatIntensity,
	}
}

func mapLinear(x, a1, a2, b1, b2 float32) float32 {
	return b1 + (x-a1)*(b2-b1)/(a2-a1)
}

// Float accumulates time from a random starting offset so several floats never move in step.
type Float struct {
	Params  Params
	offset  float32
	elapsed float32
}

// New returns a Float with a random phase offset.
func New(p Params) *Float {
	return &Float{Params: p, offset: rand.Float32() * 10000}
}

// Update advances the clock by dt seconds.
func (f *Float) Update(dt float32) {
	f.elapsed += dt
}

// Pose returns the current offset.
func (f *Float) Pose() Pose {
	return PoseAt(f.offset+f.elapsed, f.Params)
}
