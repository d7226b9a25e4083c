package primitives

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"camping-showcase/internal/colors"
)

// Part is one primitive placed in a model, as read from YAML (e.g. assets/models/camping.yaml).
// Rotation is in degrees, XYZ order; a zero Size component means 1.
type Part struct {
	Name     string     `yaml:"name,omitempty"`
	Type     string     `yaml:"type"`
	Position [3]float32 `yaml:"position,omitempty"`
	Rotation [3]float32 `yaml:"rotation,omitempty"`
	Size     [3]float32 `yaml:"size,omitempty"`
	Color    string     `yaml:"color,omitempty"`
}

// Validate checks the type and colour.
func (p Part) Validate() error {
	if !Known(p.Type) {
		return fmt.Errorf("primitives: part %q: unknown type %q", p.Name, p.Type)
	}
	if p.Color != "" {
		if _, err := colors.Parse(p.Color); err != nil {
			return fmt.Errorf("primitives: part %q: %w", p.Name, err)
		}
	}
	return nil
}

// Tint returns the part's colour, white when unset or invalid.
func (p Part) Tint() rl.Color {
	if c, err := colors.Parse(p.Color); err == nil {
		return c
	}
	return rl.White
}

// Transform returns the part's model matrix.
func (p Part) Transform() rl.Matrix {
	toRad := func(d float32) float32 { return d * math32.Pi / 180 }
	return Compose(
		rl.NewVector3(p.Position[0], p.Position[1], p.Position[2]),
		rl.NewVector3(toRad(p.Rotation[0]), toRad(p.Rotation[1]), toRad(p.Rotation[2])),
		rl.NewVector3(p.Size[0], p.Size[1], p.Size[2]),
	)
}

// Bounds returns the axis-aligned box around the part's transformed unit cell.
func (p Part) Bounds() rl.BoundingBox {
	return TransformBounds(rl.NewBoundingBox(rl.NewVector3(-0.5, -0.5, -0.5), rl.NewVector3(0.5, 0.5, 0.5)), p.Transform())
}

// TransformBounds returns the axis-aligned box around b's corners after m.
func TransformBounds(b rl.BoundingBox, m rl.Matrix) rl.BoundingBox {
	inf := math32.Inf(1)
	out := rl.NewBoundingBox(rl.NewVector3(inf, inf, inf), rl.NewVector3(-inf, -inf, -inf))
	for i := 0; i < 8; i++ {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		out = Extend(out, rl.Vector3Transform(c, m))
	}
	return out
}

// Extend grows b to include v.
func Extend(b rl.BoundingBox, v rl.Vector3) rl.BoundingBox {
	b.Min = rl.NewVector3(math32.Min(b.Min.X, v.X), math32.Min(b.Min.Y, v.Y), math32.Min(b.Min.Z, v.Z))
	b.Max = rl.NewVector3(math32.Max(b.Max.X, v.X), math32.Max(b.Max.Y, v.Y), math32.Max(b.Max.Z, v.Z))
	return b
}
