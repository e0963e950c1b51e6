// Package spotlight sweeps a circular beam over a darkened desktop. The
// screen is black except inside the beam, where a captured screenshot of
// the desktop shows through; the beam wanders on a random path, bouncing
// off the screen edges. Without a screenshot a gradient stands in for the
// desktop.
package spotlight

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"os"

	_ "image/png"

	"omarchy.dev/screensaver/internal/motion"
	"omarchy.dev/screensaver/internal/platform"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	beamRadius   = 120
	fanSegments  = 48
	edgeSoftness = 0.2
)

// Effect is the wandering spotlight.
type Effect struct {
	ctx *saver.Context

	background render.Image
	texW, texH int
	beam       motion.Body

	// pathTimer counts down in frame units; on expiry the beam picks a
	// fresh heading.
	pathTimer float64
}

// New returns the effect; it takes no flags beyond the shared set.
func New(o *saver.Options) *Effect {
	return &Effect{}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx
	e.background = e.captureBackground()
	if e.background == nil {
		e.background = ctx.Renderer.NewImageFromImage(gradientFallback(ctx.W, ctx.H))
	}
	e.texW, e.texH = e.background.Size()
	e.beam = motion.Body{
		X:      float64(ctx.W) / 2,
		Y:      float64(ctx.H) / 2,
		Radius: beamRadius,
	}
	return nil
}

func (e *Effect) captureBackground() render.Image {
	comp := platform.NewCompositor(&platform.ExecRunner{})
	tmp, err := os.CreateTemp("", "spotlight-*.png")
	if err != nil {
		return nil
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	if err := comp.Screenshot(path); err != nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return e.ctx.Renderer.NewImageFromImage(img)
}

// gradientFallback is the stand-in desktop: red ramps left to right, green
// top to bottom.
func gradientFallback(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				uint8(x * 255 / w), uint8(y * 255 / h), 100, 255,
			})
		}
	}
	return img
}

func (e *Effect) Update(dt, elapsed float64) {
	speed := e.ctx.Opts.Speed

	e.pathTimer -= dt * 60 * speed
	if e.pathTimer <= 0 {
		angle := float64(e.ctx.Rand.Intn(360)) * math.Pi / 180
		pace := 20 + float64(e.ctx.Rand.Intn(100))/10
		e.beam.VX = math.Cos(angle) * pace
		e.beam.VY = math.Sin(angle) * pace
		e.pathTimer = float64(60 + e.ctx.Rand.Intn(120))
	}

	e.beam.Integrate(dt, speed)
	e.beam.BounceWalls(float64(e.ctx.W), float64(e.ctx.H))
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	screen.Fill(color.Black)
	vertices, indices := e.beamFan()
	screen.DrawTriangles(vertices, indices, e.background, &render.DrawTrianglesOptions{AntiAlias: true})
}

// beamFan builds a triangle fan over the beam disc whose texture
// coordinates are the vertices' own normalised screen positions, so the
// fan is a window onto the background rather than a decal.
func (e *Effect) beamFan() ([]render.Vertex, []uint16) {
	vertices := make([]render.Vertex, 0, fanSegments+1)
	vertices = append(vertices, e.fanVertex(e.beam.X, e.beam.Y, 1))
	for i := 0; i < fanSegments; i++ {
		a := 2 * math.Pi * float64(i) / fanSegments
		x := e.beam.X + beamRadius*math.Cos(a)
		y := e.beam.Y + beamRadius*math.Sin(a)
		vertices = append(vertices, e.fanVertex(x, y, edgeSoftness))
	}

	indices := make([]uint16, 0, fanSegments*3)
	for i := 0; i < fanSegments; i++ {
		next := uint16(i) + 2
		if i == fanSegments-1 {
			next = 1
		}
		indices = append(indices, 0, uint16(i)+1, next)
	}
	return vertices, indices
}

func (e *Effect) fanVertex(x, y float64, alpha float32) render.Vertex {
	return render.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   float32(x / float64(e.ctx.W) * float64(e.texW)),
		SrcY:   float32(y / float64(e.ctx.H) * float64(e.texH)),
		ColorR: 1, ColorG: 1, ColorB: 1, ColorA: alpha,
	}
}

func (e *Effect) Teardown() {
	if e.background != nil {
		e.background.Dispose()
	}
}
