// Package environment provides named lighting presets: a sun, an ambient term and a sky
// palette that can be baked into an equirectangular panorama.
package environment

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/anthonynsimon/bild/blur"
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"camping-showcase/internal/colors"
	"camping-showcase/internal/primitives"
)

// Default is the preset used when none is configured.
const Default = "sunset"

// ErrUnknownPreset is returned by Lookup for names not in the table.
var ErrUnknownPreset = errors.New("environment: unknown preset")

// Preset describes one lighting environment.
type Preset struct {
	Name    string
	Sky     rl.Color // zenith
	Horizon rl.Color
	Ground  rl.Color
	Sun     rl.Color
	// SunDir points toward the sun.
	SunDir       rl.Vector3
	SunIntensity float32
	// Ambient scales the sky/ground average used as the ambient term.
	Ambient float32
}

var presets = map[string]Preset{
	"sunset": {
		Sky: colors.MustParse("#3d4f7c"), Horizon: colors.MustParse("#f79d5c"), Ground: colors.MustParse("#4a3328"),
		Sun: colors.MustParse("#ffb46b"), SunDir: rl.NewVector3(-0.6, 0.25, -0.75), SunIntensity: 1.1, Ambient: 0.7,
	},
	"dawn": {
		Sky: colors.MustParse("#7f9cc9"), Horizon: colors.MustParse("#f3c2b0"), Ground: colors.MustParse("#5b5252"),
		Sun: colors.MustParse("#ffd7b8"), SunDir: rl.NewVector3(0.7, 0.2, -0.6), SunIntensity: 0.9, Ambient: 0.6,
	},
	"night": {
		Sky: colors.MustParse("#05070f"), Horizon: colors.MustParse("#1c2540"), Ground: colors.MustParse("#0a0a0d"),
		Sun: colors.MustParse("#9fb4ff"), SunDir: rl.NewVector3(0.3, 0.8, 0.4), SunIntensity: 0.35, Ambient: 0.5,
	},
	"warehouse": {
		Sky: colors.MustParse("#d6d2c8"), Horizon: colors.MustParse("#a49f94"), Ground: colors.MustParse("#5f5a52"),
		Sun: colors.MustParse("#fff4e0"), SunDir: rl.NewVector3(0, 1, 0.2), SunIntensity: 0.8, Ambient: 0.8,
	},
	"forest": {
		Sky: colors.MustParse("#9cc3a4"), Horizon: colors.MustParse("#5d7d4f"), Ground: colors.MustParse("#2e3b22"),
		Sun: colors.MustParse("#f4f0c8"), SunDir: rl.NewVector3(0.4, 0.9, 0.3), SunIntensity: 0.75, Ambient: 0.65,
	},
	"apartment": {
		Sky: colors.MustParse("#efe6da"), Horizon: colors.MustParse("#c9b79f"), Ground: colors.MustParse("#7a6650"),
		Sun: colors.MustParse("#fff1dc"), SunDir: rl.NewVector3(-0.5, 0.7, 0.5), SunIntensity: 0.7, Ambient: 0.85,
	},
	"studio": {
		Sky: colors.MustParse("#ffffff"), Horizon: colors.MustParse("#d9d9d9"), Ground: colors.MustParse("#8c8c8c"),
		Sun: colors.MustParse("#ffffff"), SunDir: rl.NewVector3(0.3, 1, 0.6), SunIntensity: 0.9, Ambient: 0.8,
	},
	"city": {
		Sky: colors.MustParse("#8fa6bf"), Horizon: colors.MustParse("#c7c0b3"), Ground: colors.MustParse("#4b4d52"),
		Sun: colors.MustParse("#fff0d6"), SunDir: rl.NewVector3(0.5, 0.6, -0.6), SunIntensity: 0.95, Ambient: 0.7,
	},
	"park": {
		Sky: colors.MustParse("#78aee6"), Horizon: colors.MustParse("#cfe3ef"), Ground: colors.MustParse("#4f6b35"),
		Sun: colors.MustParse("#fffbe8"), SunDir: rl.NewVector3(-0.3, 0.9, 0.3), SunIntensity: 1, Ambient: 0.7,
	},
	"lobby": {
		Sky: colors.MustParse("#e8dcc6"), Horizon: colors.MustParse("#b89f7a"), Ground: colors.MustParse("#5e4a36"),
		Sun: colors.MustParse("#ffe6bf"), SunDir: rl.NewVector3(0, 1, -0.3), SunIntensity: 0.75, Ambient: 0.8,
	},
}

// Names returns the preset names, sorted.
func Names() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the preset called name (case-insensitive).
func Lookup(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	p, ok := presets[key]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	p.Name = key
	return p, nil
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Preset {
	p, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Lighting converts the preset into the uniforms the lit primitive shader reads.
func (p Preset) Lighting() primitives.Lighting {
	sky := rl.ColorNormalize(p.Sky)
	ground := rl.ColorNormalize(p.Ground)
	sun := rl.ColorNormalize(p.Sun)
	dir := rl.Vector3Normalize(p.SunDir)
	return primitives.Lighting{
		Ambient: [4]float32{
			(sky.X + ground.X) * 0.5 * p.Ambient,
			(sky.Y + ground.Y) * 0.5 * p.Ambient,
			(sky.Z + ground.Z) * 0.5 * p.Ambient,
			1,
		},
		LightDir:  [3]float32{dir.X, dir.Y, dir.Z},
		LightCol:  [3]float32{sun.X, sun.Y, sun.Z},
		Intensity: p.SunIntensity,
	}
}

// sunDisc is the cosine of the sun's angular radius in the panorama.
const sunDisc = 0.9985

// PanoramaImage bakes the preset into a w×h equirectangular image: a vertical gradient from
// ground through horizon to sky with a sun disc, softened by a gaussian blur.
func PanoramaImage(p Preset, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	sun := rl.Vector3Normalize(p.SunDir)
	for y := 0; y < h; y++ {
		lat := math32.Pi/2 - (float32(y)+0.5)/float32(h)*math32.Pi
		sinLat, cosLat := math32.Sin(lat), math32.Cos(lat)
		var base rl.Color
		if sinLat >= 0 {
			base = mix(p.Horizon, p.Sky, math32.Sqrt(sinLat))
		} else {
			base = mix(p.Horizon, p.Ground, math32.Min(1, -sinLat*4))
		}
		for x := 0; x < w; x++ {
			c := base
			// Matches the sky shader: lon = atan(dir.z, dir.x), u = lon/2π + 0.5.
			lon := ((float32(x)+0.5)/float32(w) - 0.5) * 2 * math32.Pi
			dir := rl.NewVector3(cosLat*math32.Cos(lon), sinLat, cosLat*math32.Sin(lon))
			if d := rl.Vector3DotProduct(dir, sun); d > sunDisc {
				c = p.Sun
			} else if d > 0.9 {
				c = mix(c, p.Sun, (d-0.9)/(sunDisc-0.9)*0.5)
			}
			img.SetRGBA(x, y, c)
		}
	}
	radius := float64(h) / 96
	if radius < 1 {
		return img
	}
	return blur.Gaussian(img, radius)
}

func mix(a, b rl.Color, t float32) rl.Color {
	t = math32.Max(0, math32.Min(1, t))
	lerp := func(x, y uint8) uint8 {
		return uint8(math32.Round(float32(x) + (float32(y)-float32(x))*t))
	}
	return rl.Color{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}
