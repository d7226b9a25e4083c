package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"camping-showcase/internal/config"
	"camping-showcase/internal/fonts"
	"camping-showcase/internal/logger"
)

// overlayFontSize is the raster size of the overlay font; the overlays draw at 20px.
const overlayFontSize = 40

// fontUser is an overlay that can draw with a loaded font.
type fontUser interface {
	SetFont(font rl.Font)
}

// fontLoader loads the font at path; ok is false when the file is not a usable font.
type fontLoader func(path string) (font rl.Font, ok bool)

func loadFont(path string) (rl.Font, bool) {
	f := rl.LoadFontEx(path, overlayFontSize, nil)
	if !rl.IsFontValid(f) {
		return rl.Font{}, false
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	return f, true
}

// overlayFont resolves the configured font, loads it and hands it to every overlay.
// When either step fails the overlays keep raylib's default font and ok is false.
// Call after the window exists; the caller unloads the returned font.
func overlayFont(cfg config.Config, load fontLoader, log *logger.Logger, users ...fontUser) (rl.Font, bool) {
	path, err := fonts.Resolve(cfg.AssetsDir(), cfg.Assets.Font)
	if err != nil {
		log.Warnf("overlay font: %v", err)
		return rl.Font{}, false
	}
	font, ok := load(path)
	if !ok {
		log.Warnf("overlay font: could not load %s", path)
		return rl.Font{}, false
	}
	for _, u := range users {
		u.SetFont(font)
	}
	return font, true
}
