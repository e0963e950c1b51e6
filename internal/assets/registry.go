package assets

import (
	_ "embed"
	"fmt"
	"image"
	"strings"

	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

//go:embed quotes.txt
var quotesRaw string

var generators = map[string]func() *image.RGBA{
	"toaster-sheet":     CreateToasterSheet,
	"toast-0":           func() *image.RGBA { return CreateToast(0) },
	"toast-1":           func() *image.RGBA { return CreateToast(1) },
	"toast-2":           func() *image.RGBA { return CreateToast(2) },
	"toast-3":           func() *image.RGBA { return CreateToast(3) },
	"fish-sheet":        func() *image.RGBA { return CreateFishSheet(0) },
	"bubble":            CreateBubble,
	"globe-texture":     CreateGlobeTexture,
	"logo":              CreateLogo,
	"rain-tile-near":    func() *image.RGBA { return CreateRainTile(0) },
	"rain-tile-mid":     func() *image.RGBA { return CreateRainTile(1) },
	"rain-tile-distant": func() *image.RGBA { return CreateRainTile(2) },
	"starfield-0":       func() *image.RGBA { return CreateStarfield(0) },
	"starfield-1":       func() *image.RGBA { return CreateStarfield(1) },
	"starfield-2":       func() *image.RGBA { return CreateStarfield(2) },
	"starfield-3":       func() *image.RGBA { return CreateStarfield(3) },
}

// Image synthesises the named asset and uploads it through the renderer.
func Image(r render.Renderer, name string) (render.Image, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown asset %q", saver.ErrAssetDecode, name)
	}
	return r.NewImageFromImage(gen()), nil
}

// Pixels synthesises the named asset as raw pixels, for callers that sample
// or slice it themselves.
func Pixels(name string) (*image.RGBA, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown asset %q", saver.ErrAssetDecode, name)
	}
	return gen(), nil
}

// Quotes returns the built-in quote lines used when no external quote
// source is available.
func Quotes() []string {
	var out []string
	for _, line := range strings.Split(quotesRaw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
