// Package text3d draws a block of text as a flat quad in the 3D scene. The glyphs are
// rendered once into a mask texture; the quad's colour comes from a colour map sampled
// across the whole text block.
package text3d

import (
	"strings"

	"github.com/chewxy/math32"
)

// Align positions each line within the block.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Anchor places the block relative to its origin, per axis.
type Anchor int

const (
	AnchorStart  Anchor = iota // left / top
	AnchorMiddle               // center / middle
	AnchorEnd                  // right / bottom
)

// Options are the typographic settings of a label.
type Options struct {
	FontSize   float32 // world units per em
	LineHeight float32 // multiple of FontSize
	Align      Align
	AnchorX    Anchor
	AnchorY    Anchor
}

// DefaultOptions matches a 1-unit font, normal line height, left aligned and centred on
// the origin.
func DefaultOptions() Options {
	return Options{FontSize: 1, LineHeight: 1.2, Align: AlignLeft, AnchorX: AnchorMiddle, AnchorY: AnchorMiddle}
}

// Line is one laid-out line in world units. X is its left edge from the block's left; Top is
// its top edge measured down from the block's top.
type Line struct {
	Text  string
	X     float32
	Top   float32
	Width float32
}

// Layout is a laid-out text block. MinX and MinY locate the block's bottom-left corner
// relative to the label origin (y up).
type Layout struct {
	Lines  []Line
	Width  float32
	Height float32
	MinX   float32
	MinY   float32
	// LineHeight is the per-line advance in world units.
	LineHeight float32
}

// MeasureFunc returns the advance width of s in ems.
type MeasureFunc func(s string) float32

// Compute lays out text (lines split on '\n').
func Compute(text string, measure MeasureFunc, opt Options) Layout {
	if opt.FontSize <= 0 {
		opt.FontSize = 1
	}
	if opt.LineHeight <= 0 {
		opt.LineHeight = 1
	}
	parts := strings.Split(text, "\n")
	l := Layout{Lines: make([]Line, len(parts)), LineHeight: opt.LineHeight * opt.FontSize}
	for i, s := range parts {
		w := measure(s) * opt.FontSize
		l.Lines[i] = Line{Text: s, Width: w, Top: float32(i) * l.LineHeight}
		l.Width = math32.Max(l.Width, w)
	}
	l.Height = float32(len(parts)) * l.LineHeight
	for i := range l.Lines {
		slack := l.Width - l.Lines[i].Width
		switch opt.Align {
		case AlignCenter:
			l.Lines[i].X = slack / 2
		case AlignRight:
			l.Lines[i].X = slack
		}
	}
	switch opt.AnchorX {
	case AnchorMiddle:
		l.MinX = -l.Width / 2
	case AnchorEnd:
		l.MinX = -l.Width
	}
	switch opt.AnchorY {
	case AnchorStart:
		l.MinY = -l.Height
	case AnchorMiddle:
		l.MinY = -l.Height / 2
	}
	return l
}
