package colors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrInvalidHex is returned by Parse for anything that is not #rgb, #rgba, #rrggbb or #rrggbbaa.
var ErrInvalidHex = errors.New("invalid hex color")

// Parse reads a CSS-style hex color. Short forms expand each digit (#fa0 -> #ffaa00).
func Parse(s string) (rl.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return rl.Color{}, fmt.Errorf("colors: %q: %w", s, ErrInvalidHex)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("colors: %q: %w", s, ErrInvalidHex)
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustParse is Parse for package-level constants.
func MustParse(s string) rl.Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Linear returns c as normalized floats with RGB multiplied by intensity. Values above 1
// are kept so shaders that skip tone mapping can render over-bright colors.
func Linear(c rl.Color, intensity float32) [4]float32 {
	return [4]float32{
		float32(c.R) / 255 * intensity,
		float32(c.G) / 255 * intensity,
		float32(c.B) / 255 * intensity,
		float32(c.A) / 255,
	}
}
