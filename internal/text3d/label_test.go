package text3d

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-5, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-5, "z")
}

func TestQuadTransformCoversBlock(t *testing.T) {
	lay := Layout{Width: 4, Height: 2, MinX: -2, MinY: 0}
	m := QuadTransform(lay, rl.MatrixIdentity())
	// Plane corners (x, 0, z): z=+0.5 is the bottom edge.
	assertVec(t, rl.NewVector3(-2, 0, 0), rl.Vector3Transform(rl.NewVector3(-0.5, 0, 0.5), m))
	assertVec(t, rl.NewVector3(2, 2, 0), rl.Vector3Transform(rl.NewVector3(0.5, 0, -0.5), m))
}

func TestLabelTransformTurnsBlock(t *testing.T) {
	l := NewLabel("x", "", Options{})
	l.layout = Layout{Width: 2, Height: 1, MinX: -1}
	l.Position = rl.NewVector3(-2.6, -1, 1)
	l.Rotation = rl.NewVector3(0, math32.Pi/2, 0)
	// The block's right edge (+X) turns to -Z before moving.
	got := rl.Vector3Transform(rl.NewVector3(0.5, 0, 0.5), l.Transform())
	assertVec(t, rl.NewVector3(-2.6, -1, 0), got)
}

func TestNewLabelDefaults(t *testing.T) {
	l := NewLabel("hi", "font.ttf", DefaultOptions())
	assert.Equal(t, [4]float32{1, 1, 1, 1}, l.Color)
	assert.Equal(t, rl.NewVector3(1, 1, 1), l.Scale)
	assert.Equal(t, Layout{}, l.Layout())
	assert.False(t, l.DoubleSided)
}
