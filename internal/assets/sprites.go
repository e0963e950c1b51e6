// Package assets holds the images and texts the effects draw with. Sprite
// sheets and textures are synthesised at startup instead of shipped as
// binary files, so the repository stays text-only and the art scales with
// palette tweaks.
package assets

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Palette defines the colors used by the synthesised sprites.
var Palette = struct {
	ToasterBody color.RGBA
	ToasterDark color.RGBA
	ToasterSlot color.RGBA
	Wing        color.RGBA
	Toast       color.RGBA
	ToastCrust  color.RGBA
	FishBody    color.RGBA
	FishFin     color.RGBA
	FishEye     color.RGBA
	Bubble      color.RGBA
	Ocean       color.RGBA
	Land        color.RGBA
	LogoFace    color.RGBA
	LogoTrim    color.RGBA
	Transparent color.RGBA
}{
	ToasterBody: color.RGBA{200, 205, 215, 255},
	ToasterDark: color.RGBA{120, 125, 140, 255},
	ToasterSlot: color.RGBA{40, 40, 48, 255},
	Wing:        color.RGBA{240, 240, 250, 255},
	Toast:       color.RGBA{210, 160, 90, 255},
	ToastCrust:  color.RGBA{150, 100, 50, 255},
	FishBody:    color.RGBA{255, 150, 60, 255},
	FishFin:     color.RGBA{255, 190, 110, 255},
	FishEye:     color.RGBA{20, 20, 30, 255},
	Bubble:      color.RGBA{180, 220, 255, 200},
	Ocean:       color.RGBA{30, 90, 180, 255},
	Land:        color.RGBA{60, 160, 80, 255},
	LogoFace:    color.RGBA{60, 120, 255, 255},
	LogoTrim:    color.RGBA{255, 255, 255, 255},
	Transparent: color.RGBA{},
}

// HSV converts hue (degrees, any value), saturation and value in [0,1] to
// an opaque RGBA color.
func HSV(h, s, v float64) color.RGBA {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}

func fillRect(img *image.RGBA, x, y, w, h int, col color.RGBA) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), &image.Uniform{col}, image.Point{}, draw.Src)
}

func fillCircle(img *image.RGBA, cx, cy, r float64, col color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, col)
			}
		}
	}
}

func strokeCircle(img *image.RGBA, cx, cy, r, width float64, col color.RGBA) {
	b := img.Bounds()
	inner := r - width
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d2 := dx*dx + dy*dy
			if d2 <= r*r && d2 >= inner*inner {
				img.Set(x, y, col)
			}
		}
	}
}

// CreateToasterSheet builds the 4-frame flying-toaster sheet. Each frame is
// 64x64; the wing sweeps from raised to lowered across the frames and the
// ping-pong walk plays them 0,1,2,3,2,1.
func CreateToasterSheet() *image.RGBA {
	const frame = 64
	img := image.NewRGBA(image.Rect(0, 0, frame*4, frame))
	for i := 0; i < 4; i++ {
		ox := i * frame

		// Chrome body with a darker base and the slot on top.
		fillRect(img, ox+10, 24, 44, 30, Palette.ToasterBody)
		fillRect(img, ox+10, 48, 44, 6, Palette.ToasterDark)
		fillRect(img, ox+16, 22, 32, 4, Palette.ToasterSlot)
		fillRect(img, ox+46, 34, 4, 8, Palette.ToasterDark) // lever

		// Wing pivots at the body's top rear; frame index sets the sweep.
		sweep := float64(i) * 0.35
		pivotX, pivotY := float64(ox+18), 24.0
		for l := 0.0; l < 22; l++ {
			wx := pivotX + l*math.Cos(-1.2+sweep)
			wy := pivotY + l*math.Sin(-1.2+sweep)
			fillRect(img, int(wx)-2, int(wy)-1, 5, 3, Palette.Wing)
		}
	}
	return img
}

// Widen is a small helper that nudges alpha, used when a palette color is
// reused at partial opacity.
func Widen(c color.RGBA, delta int) color.RGBA {
	a := int(c.A) + delta
	if a < 0 {
		a = 0
	}
	if a > 255 {
		a = 255
	}
	c.A = uint8(a)
	return c
}

// CreateToast builds one of four 64x64 toast slices, browned progressively
// by variant.
func CreateToast(variant int) *image.RGBA {
	shade := func(c color.RGBA) color.RGBA {
		d := uint8(variant * 18)
		sub := func(v uint8) uint8 {
			if v < d {
				return 0
			}
			return v - d
		}
		return color.RGBA{sub(c.R), sub(c.G), sub(c.B), c.A}
	}
	crust := shade(Palette.ToastCrust)
	face := shade(Palette.Toast)

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	fillRect(img, 8, 16, 48, 40, crust)
	fillRect(img, 12, 20, 40, 32, face)
	fillCircle(img, 20, 16, 12, crust)
	fillCircle(img, 44, 16, 12, crust)
	fillCircle(img, 21, 17, 8, face)
	fillCircle(img, 43, 17, 8, face)
	return img
}

// CreateFishSheet builds a 2-frame 72x48 fish sheet facing left; the frames
// differ in tail angle for the 0.6 second flap. Mirror at draw time for the
// rightward rows. species rotates the body hue so the school is not
// uniform.
func CreateFishSheet(species int) *image.RGBA {
	body := HSV(float64(species*36), 0.75, 1.0)
	fin := HSV(float64(species*36), 0.45, 1.0)

	const fw, fh = 72, 48
	img := image.NewRGBA(image.Rect(0, 0, fw*2, fh))
	for i := 0; i < 2; i++ {
		ox := i * fw

		// Body ellipse.
		for y := 0; y < fh; y++ {
			for x := 0; x < fw; x++ {
				dx := (float64(x) - 30) / 24
				dy := (float64(y) - 24) / 13
				if dx*dx+dy*dy <= 1 {
					img.Set(ox+x, y, body)
				}
			}
		}

		// Tail triangle, flipped between frames.
		dir := 1.0
		if i == 1 {
			dir = -1.0
		}
		for x := 52; x < 70; x++ {
			spread := (x - 52) / 2
			for y := -spread; y <= spread; y++ {
				img.Set(ox+x, 24+int(dir*4)+y, fin)
			}
		}

		fillCircle(img, float64(ox)+14, 20, 3, Palette.FishEye)
	}
	return img
}

// CreateBubble builds the 50x56 bubble the fish effect releases.
func CreateBubble() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 50, 56))
	strokeCircle(img, 25, 28, 22, 3, Palette.Bubble)
	fillCircle(img, 18, 20, 5, Widen(Palette.Bubble, 30))
	return img
}

// CreateGlobeTexture builds a 512x256 plate carree map texture used by the
// rotating globe. Continent blobs are deterministic, not geographic.
func CreateGlobeTexture() *image.RGBA {
	const w, h = 512, 256
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, 0, 0, w, h, Palette.Ocean)

	blobs := []struct{ cx, cy, r float64 }{
		{80, 90, 45}, {150, 150, 35}, {260, 80, 55},
		{300, 170, 40}, {420, 110, 50}, {470, 200, 25},
	}
	for _, b := range blobs {
		fillCircle(img, b.cx, b.cy, b.r, Palette.Land)
	}

	// Graticule every 32 px so rotation reads even over open ocean.
	grid := color.RGBA{255, 255, 255, 40}
	for x := 0; x < w; x += 32 {
		fillRect(img, x, 0, 1, h, grid)
	}
	for y := 0; y < h; y += 32 {
		fillRect(img, 0, y, w, 1, grid)
	}
	return img
}

// CreateLogo builds the 160x100 bouncing logo plate.
func CreateLogo() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 160, 100))
	fillRect(img, 0, 0, 160, 100, Palette.LogoFace)
	fillRect(img, 0, 0, 160, 6, Palette.LogoTrim)
	fillRect(img, 0, 94, 160, 6, Palette.LogoTrim)
	fillCircle(img, 40, 50, 24, Palette.LogoTrim)
	fillCircle(img, 40, 50, 16, Palette.LogoFace)
	fillRect(img, 80, 30, 10, 40, Palette.LogoTrim)
	fillRect(img, 100, 30, 10, 40, Palette.LogoTrim)
	fillRect(img, 120, 30, 10, 40, Palette.LogoTrim)
	return img
}

// CreateRainTile builds a 512x128 translucent streak tile for one parallax
// rain layer. Layer 0 is the near sheet: denser, longer, brighter streaks;
// higher layers recede.
func CreateRainTile(layer int) *image.RGBA {
	const w, h = 512, 128
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	seed := uint32(layer)*2246822519 + 97
	next := func(n int) int {
		seed = seed*1664525 + 1013904223
		return int(seed>>16) % n
	}

	count := 120 - layer*35
	length := 18 - layer*5
	alpha := uint8(160 - layer*45)
	for i := 0; i < count; i++ {
		x := next(w)
		y := next(h)
		for d := 0; d < length; d++ {
			px := x + d/4
			py := y + d
			if px >= w || py >= h {
				break
			}
			img.SetRGBA(px, py, color.RGBA{150, 190, 235, alpha})
		}
	}
	return img
}

// CreateStarfield builds one of four 512x512 transparent starfield layers
// for the warp tunnel. Each variant seeds its own scatter so overlapping
// layers stay distinct.
func CreateStarfield(variant int) *image.RGBA {
	const s = 512
	img := image.NewRGBA(image.Rect(0, 0, s, s))

	// Deterministic LCG so variants are stable across runs.
	seed := uint32(variant)*2654435761 + 12345
	next := func(n int) int {
		seed = seed*1664525 + 1013904223
		return int(seed>>16) % n
	}

	for i := 0; i < 90; i++ {
		x := float64(next(s))
		y := float64(next(s))
		r := 0.8 + float64(next(14))/10
		a := uint8(120 + next(136))
		fillCircle(img, x, y, r, color.RGBA{255, 255, 255, a})
	}
	return img
}
