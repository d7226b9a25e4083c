package colors

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := map[string]rl.Color{
		"#fff":      rl.NewColor(255, 255, 255, 255),
		"#ffff":     rl.NewColor(255, 255, 255, 255),
		"#050505":   rl.NewColor(5, 5, 5, 255),
		"#ff000080": rl.NewColor(255, 0, 0, 128),
		" 1a2b3c ":  rl.NewColor(0x1a, 0x2b, 0x3c, 255),
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "#gggggg"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidHex, in)
	}
}

func TestLinearKeepsOverBright(t *testing.T) {
	got := Linear(MustParse("#fff"), 1.5)
	assert.InDelta(t, 1.5, got[0], 1e-6)
	assert.InDelta(t, 1.5, got[1], 1e-6)
	assert.InDelta(t, 1.5, got[2], 1e-6)
	assert.InDelta(t, 1.0, got[3], 1e-6)
}
