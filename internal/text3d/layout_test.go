package text3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// half an em per rune
func monospace(s string) float32 { return float32(len([]rune(s))) * 0.5 }

func TestComputeTitle(t *testing.T) {
	opt := Options{FontSize: 1, LineHeight: 0.8, Align: AlignCenter, AnchorX: AnchorMiddle, AnchorY: AnchorEnd}
	l := Compute("MY LITTLE\nCAMPING", monospace, opt)
	require.Len(t, l.Lines, 2)

	assert.InDelta(t, 4.5, l.Width, 1e-6)
	assert.InDelta(t, 1.6, l.Height, 1e-6)
	assert.InDelta(t, 0.8, l.LineHeight, 1e-6)

	assert.Equal(t, "MY LITTLE", l.Lines[0].Text)
	assert.InDelta(t, 0, l.Lines[0].X, 1e-6)
	assert.InDelta(t, 0, l.Lines[0].Top, 1e-6)

	// "CAMPING" is 3.5 wide, centred in 4.5.
	assert.InDelta(t, 0.5, l.Lines[1].X, 1e-6)
	assert.InDelta(t, 0.8, l.Lines[1].Top, 1e-6)

	// Bottom anchor: the block sits on the origin, centred horizontally.
	assert.InDelta(t, -2.25, l.MinX, 1e-6)
	assert.InDelta(t, 0, l.MinY, 1e-6)
}

func TestComputeAnchorsAndAlign(t *testing.T) {
	opt := Options{FontSize: 2, LineHeight: 1, Align: AlignRight, AnchorX: AnchorEnd, AnchorY: AnchorStart}
	l := Compute("ab\na", monospace, opt)
	assert.InDelta(t, 2, l.Width, 1e-6)
	assert.InDelta(t, 4, l.Height, 1e-6)
	assert.InDelta(t, 1, l.Lines[1].X, 1e-6)
	assert.InDelta(t, -2, l.MinX, 1e-6)
	assert.InDelta(t, -4, l.MinY, 1e-6)

	opt.AnchorX, opt.AnchorY, opt.Align = AnchorStart, AnchorMiddle, AlignLeft
	l = Compute("ab\na", monospace, opt)
	assert.InDelta(t, 0, l.MinX, 1e-6)
	assert.InDelta(t, -2, l.MinY, 1e-6)
	assert.InDelta(t, 0, l.Lines[1].X, 1e-6)
}

func TestComputeZeroOptions(t *testing.T) {
	l := Compute("x", monospace, Options{})
	assert.InDelta(t, 0.5, l.Width, 1e-6)
	assert.InDelta(t, 1, l.Height, 1e-6)
}
