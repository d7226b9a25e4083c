package camping

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camping-showcase/internal/primitives"
)

func TestCampsiteParts(t *testing.T) {
	parts := Campsite()
	require.NotEmpty(t, parts)
	names := map[string]bool{}
	for _, p := range parts {
		assert.True(t, primitives.Known(p.Type), p.Name)
		names[p.Name] = true
	}
	for _, want := range []string{"ground", "tent", "flame", "crown-a"} {
		assert.True(t, names[want], want)
	}
}

func TestCampsiteBoundsSitOnGround(t *testing.T) {
	b := PartsBounds(Campsite())
	assert.InDelta(t, -1, b.Min.Y, 1e-4)
	assert.InDelta(t, 0.325, b.Max.Y, 1e-4)
	assert.InDelta(t, -1.4, b.Min.X, 1e-4)
	assert.InDelta(t, 1.4, b.Max.X, 1e-4)
	assert.InDelta(t, -1.4, b.Min.Z, 1e-4)
	assert.InDelta(t, 1.4, b.Max.Z, 1e-4)
}

func TestParsePartsErrors(t *testing.T) {
	_, err := ParseParts([]byte("- type: torus\n"))
	assert.Error(t, err)
	_, err = ParseParts([]byte("not: [a list"))
	assert.Error(t, err)
	parts, err := ParseParts([]byte("- type: cube\n  color: '#fff'\n"))
	require.NoError(t, err)
	assert.Equal(t, rl.White, parts[0].Tint())
}

func TestModelBoundsWithoutFile(t *testing.T) {
	m := New(Campsite(), "", nil)
	assert.False(t, m.UsesFile())
	assert.Equal(t, PartsBounds(m.Parts), m.Bounds())
	assert.Len(t, m.transforms, len(m.Parts))
	assert.Equal(t, PartsBounds(nil), rl.BoundingBox{})
}

func TestInstanceMatrix(t *testing.T) {
	in := Instance{Position: rl.NewVector3(3, 0, 0), Rotation: rl.NewVector3(0, Deg(-25), 0)}
	got := rl.Vector3Transform(rl.NewVector3(1, 0, 0), in.Matrix())
	// -25° about Y turns +X toward +Z.
	assert.InDelta(t, 3+math32.Cos(Deg(25)), got.X, 1e-5)
	assert.InDelta(t, math32.Sin(Deg(25)), got.Z, 1e-5)

	var nested Instance
	require.NoError(t, copier.Copy(&nested, &in))
	nested.Scale = 3
	got = rl.Vector3Transform(rl.NewVector3(0, 1, 0), nested.Matrix())
	assert.InDelta(t, 3, got.Y, 1e-5)
	assert.Equal(t, float32(0), in.Scale)
}
