package controls

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// transition eases every orbit component from one state to another over the same duration.
type transition struct {
	target  [3]*gween.Tween
	azimuth *gween.Tween
	polar   *gween.Tween
	radius  *gween.Tween
}

func newTransition(from, to orbit, duration float32) *transition {
	fn := ease.OutCubic
	return &transition{
		target: [3]*gween.Tween{
			gween.New(from.Target.X, to.Target.X, duration, fn),
			gween.New(from.Target.Y, to.Target.Y, duration, fn),
			gween.New(from.Target.Z, to.Target.Z, duration, fn),
		},
		azimuth: gween.New(from.Azimuth, to.Azimuth, duration, fn),
		polar:   gween.New(from.Polar, to.Polar, duration, fn),
		radius:  gween.New(from.Radius, to.Radius, duration, fn),
	}
}

// step advances all tweens by dt and returns the interpolated state. All tweens share a
// duration, so they finish on the same step.
func (t *transition) step(dt float32) (orbit, bool) {
	x, done := t.target[0].Update(dt)
	y, _ := t.target[1].Update(dt)
	z, _ := t.target[2].Update(dt)
	az, _ := t.azimuth.Update(dt)
	polar, _ := t.polar.Update(dt)
	r, _ := t.radius.Update(dt)
	return orbit{Target: rl.NewVector3(x, y, z), Azimuth: az, Polar: polar, Radius: r}, done
}
