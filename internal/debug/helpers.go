package debug

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridMinorAlpha = 60
	gridMajorAlpha = 140
	axisLineAlpha  = 220
)

// Segment is one line of a helper, in world space.
type Segment struct {
	Start, End rl.Vector3
	Color      rl.Color
}

// GridSegments returns the lines of a size×size grid on the plane y, split into divisions
// cells per side. The two centre lines are drawn brighter.
func GridSegments(y, size float32, divisions int) []Segment {
	if divisions <= 0 || size <= 0 {
		return nil
	}
	minor := rl.NewColor(136, 136, 136, gridMinorAlpha)
	major := rl.NewColor(68, 68, 68, gridMajorAlpha)
	half := size / 2
	step := size / float32(divisions)
	out := make([]Segment, 0, 2*(divisions+1))
	for i := 0; i <= divisions; i++ {
		k := -half + float32(i)*step
		c := minor
		if 2*i == divisions {
			c = major
		}
		out = append(out,
			Segment{rl.NewVector3(k, y, -half), rl.NewVector3(k, y, half), c},
			Segment{rl.NewVector3(-half, y, k), rl.NewVector3(half, y, k), c},
		)
	}
	return out
}

// AxesSegments returns the X (red), Y (green) and Z (blue) axes from the origin, each size long.
func AxesSegments(size float32) []Segment {
	o := rl.Vector3{}
	return []Segment{
		{o, rl.NewVector3(size, 0, 0), rl.NewColor(255, 80, 80, axisLineAlpha)},
		{o, rl.NewVector3(0, size, 0), rl.NewColor(80, 220, 80, axisLineAlpha)},
		{o, rl.NewVector3(0, 0, size), rl.NewColor(80, 80, 255, axisLineAlpha)},
	}
}

// DrawSegments draws helper lines. Call inside BeginMode3D.
func DrawSegments(segs []Segment) {
	for _, s := range segs {
		rl.DrawLine3D(s.Start, s.End, s.Color)
	}
}

// DrawBounds outlines a bounding box. Call inside BeginMode3D.
func DrawBounds(b rl.BoundingBox, c rl.Color) {
	rl.DrawBoundingBox(b, c)
}
