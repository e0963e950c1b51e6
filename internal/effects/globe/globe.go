// Package globe bounces a spinning earth around the screen. The sphere is
// rendered on the CPU each frame by orthographically sampling a plate
// carree map texture, with the longitude advancing over time.
package globe

import (
	"image"
	"math"

	"omarchy.dev/screensaver/internal/assets"
	"omarchy.dev/screensaver/internal/motion"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	globeSize = 240
	// Radians of longitude per second at speed 1.
	rotationRate = 0.5
)

// Effect implements saver.Effect.
type Effect struct {
	ctx  *saver.Context
	body motion.Body

	texture *image.RGBA
	frame   *image.RGBA
	sphere  render.Image
}

// New returns the effect; it has no flags beyond the common set.
func New(o *saver.Options) *Effect {
	return &Effect{}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx
	e.texture = assets.CreateGlobeTexture()
	e.frame = image.NewRGBA(image.Rect(0, 0, globeSize, globeSize))
	e.body = motion.Body{
		X:      100 + globeSize/2,
		Y:      100 + globeSize/2,
		VX:     200,
		VY:     150,
		Radius: globeSize / 2,
	}
	return nil
}

func (e *Effect) Update(dt, elapsed float64) {
	e.body.Integrate(dt, e.ctx.Opts.Speed)
	e.body.BounceWalls(float64(e.ctx.W), float64(e.ctx.H))
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	e.renderSphere(elapsed * rotationRate * e.ctx.Opts.Speed)

	if e.sphere != nil {
		e.sphere.Dispose()
	}
	e.sphere = e.ctx.Renderer.NewImageFromImage(e.frame)

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: 1}
	opts.GeoM.Translate(e.body.X-globeSize/2, e.body.Y-globeSize/2)
	screen.DrawImage(e.sphere, opts)
}

// renderSphere rasterises the globe at the given longitude offset into the
// reusable frame buffer.
func (e *Effect) renderSphere(lonOffset float64) {
	tb := e.texture.Bounds()
	tw := float64(tb.Dx())
	th := float64(tb.Dy())
	const r = globeSize / 2.0

	for py := 0; py < globeSize; py++ {
		for px := 0; px < globeSize; px++ {
			dx := (float64(px) + 0.5 - r) / r
			dy := (float64(py) + 0.5 - r) / r
			d2 := dx*dx + dy*dy
			idx := e.frame.PixOffset(px, py)
			if d2 > 1 {
				e.frame.Pix[idx+3] = 0
				continue
			}

			dz := math.Sqrt(1 - d2)
			lon := math.Atan2(dx, dz) + lonOffset
			lat := math.Asin(dy)

			u := math.Mod(lon/(2*math.Pi)+10, 1)
			v := lat/math.Pi + 0.5

			tx := int(u * tw)
			ty := int(v * th)
			if tx >= tb.Dx() {
				tx = tb.Dx() - 1
			}
			if ty >= tb.Dy() {
				ty = tb.Dy() - 1
			}
			src := e.texture.PixOffset(tx, ty)

			// Lambert-ish shading from the viewer direction.
			shade := 0.35 + 0.65*dz
			e.frame.Pix[idx+0] = uint8(float64(e.texture.Pix[src+0]) * shade)
			e.frame.Pix[idx+1] = uint8(float64(e.texture.Pix[src+1]) * shade)
			e.frame.Pix[idx+2] = uint8(float64(e.texture.Pix[src+2]) * shade)
			e.frame.Pix[idx+3] = 255
		}
	}
}

func (e *Effect) Teardown() {
	if e.sphere != nil {
		e.sphere.Dispose()
		e.sphere = nil
	}
}
