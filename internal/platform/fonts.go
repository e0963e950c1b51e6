// Package platform wraps the host facilities the effects depend on: system
// font discovery, subprocess execution, and the compositor helper commands.
// Everything is behind small interfaces so tests can substitute no-op
// implementations.
package platform

import (
	"fmt"
	"os"

	"omarchy.dev/screensaver/internal/saver"
)

// MonoFontPaths are the candidate monospace TTF locations, tried in order.
var MonoFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Bold.ttf",
	"/usr/share/fonts/truetype/freefont/FreeMonoBold.ttf",
	"/usr/share/fonts/truetype/ttf-dejavu/DejaVuSansMono-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono-Bold.ttf",
	"/usr/share/fonts/TTF/FreeMonoBold.ttf",
}

// SansFontPaths are the candidate proportional TTF locations, tried in order.
var SansFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSansBold.ttf",
	"/usr/share/fonts/truetype/ttf-dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/FreeSansBold.ttf",
}

// ReadFont returns the contents of the first readable candidate path.
// When none opens the error wraps saver.ErrFontUnavailable; text-dependent
// effects treat that as fatal, others fall back to debug text.
func ReadFont(candidates []string) ([]byte, error) {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("no usable font among %d candidates: %w", len(candidates), saver.ErrFontUnavailable)
}
