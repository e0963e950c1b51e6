package assets

import (
	"fmt"
	"image"

	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

// Sheet is a strip of equally sized animation frames laid out horizontally
// on one GPU image. Frame gives a subimage, so frames share texture memory.
type Sheet struct {
	image  render.Image
	frameW int
	frameH int
	count  int
}

// NewSheet uploads src and slices it into count frames of frameW x frameH.
func NewSheet(r render.Renderer, src *image.RGBA, frameW, frameH int) (*Sheet, error) {
	b := src.Bounds()
	if frameW <= 0 || frameH <= 0 || b.Dx()%frameW != 0 {
		return nil, fmt.Errorf("%w: sheet %dx%d does not divide into %dx%d frames",
			saver.ErrAssetDecode, b.Dx(), b.Dy(), frameW, frameH)
	}
	return &Sheet{
		image:  r.NewImageFromImage(src),
		frameW: frameW,
		frameH: frameH,
		count:  b.Dx() / frameW,
	}, nil
}

// Frame returns the i-th frame, wrapping out-of-range indices.
func (s *Sheet) Frame(i int) render.Image {
	i = ((i % s.count) + s.count) % s.count
	x := i * s.frameW
	return s.image.SubImage(image.Rect(x, 0, x+s.frameW, s.frameH))
}

// Count reports the number of frames.
func (s *Sheet) Count() int { return s.count }

// FrameSize reports the per-frame dimensions.
func (s *Sheet) FrameSize() (int, int) { return s.frameW, s.frameH }
