package primitives

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// The matrices below follow raylib's C raymath layout (M12..M14 hold the translation,
// Vector3Transform and GLSL read them the same way). They are built here rather than with
// the Go raymath helpers, whose rotation, look-at and frustum functions disagree with the
// matrices BeginMode3D uses on the C side.

// Compose builds a model matrix that scales, then rotates (Euler radians, XYZ order), then
// translates. raylib's MatrixMultiply(a, b) applies a first.
func Compose(position, rotation, scale rl.Vector3) rl.Matrix {
	m := rl.MatrixScale(orOne(scale.X), orOne(scale.Y), orOne(scale.Z))
	if rotation != (rl.Vector3{}) {
		m = rl.MatrixMultiply(m, Rotation(rotation))
	}
	return rl.MatrixMultiply(m, rl.MatrixTranslate(position.X, position.Y, position.Z))
}

// Rotation returns the right-handed rotation for Euler angles in XYZ order: the result
// rotates about Z first, then Y, then X (a positive Y angle turns +X toward -Z).
func Rotation(euler rl.Vector3) rl.Matrix {
	a, b := math32.Cos(euler.X), math32.Sin(euler.X)
	c, d := math32.Cos(euler.Y), math32.Sin(euler.Y)
	e, f := math32.Cos(euler.Z), math32.Sin(euler.Z)
	ae, af, be, bf := a*e, a*f, b*e, b*f
	m := rl.MatrixIdentity()
	m.M0, m.M4, m.M8 = c*e, -c*f, d
	m.M1, m.M5, m.M9 = af+be*d, ae-bf*d, -b*c
	m.M2, m.M6, m.M10 = bf-ae*d, be+af*d, a*c
	return m
}

// LookAt returns the view matrix of a camera at eye looking at target.
func LookAt(eye, target, up rl.Vector3) rl.Matrix {
	z := rl.Vector3Normalize(rl.Vector3Subtract(eye, target))
	x := rl.Vector3Normalize(rl.Vector3CrossProduct(up, z))
	y := rl.Vector3CrossProduct(z, x)
	m := rl.MatrixIdentity()
	m.M0, m.M4, m.M8 = x.X, x.Y, x.Z
	m.M1, m.M5, m.M9 = y.X, y.Y, y.Z
	m.M2, m.M6, m.M10 = z.X, z.Y, z.Z
	m.M12 = -rl.Vector3DotProduct(x, eye)
	m.M13 = -rl.Vector3DotProduct(y, eye)
	m.M14 = -rl.Vector3DotProduct(z, eye)
	return m
}

// Perspective returns the projection BeginMode3D uses for a perspective camera with the
// given vertical field of view (degrees).
func Perspective(fovy, aspect, near, far float32) rl.Matrix {
	top := near * math32.Tan(fovy*rl.Deg2rad*0.5)
	right := top * aspect
	var m rl.Matrix
	m.M0 = near / right
	m.M5 = near / top
	m.M10 = -(far + near) / (far - near)
	m.M11 = -1
	m.M14 = -(far * near * 2) / (far - near)
	return m
}

// orOne maps a zero scale component to 1 so an unset scale draws at unit size.
func orOne(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}
