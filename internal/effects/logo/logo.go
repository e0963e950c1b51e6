// Package logo bounces the branding plate around the screen while it
// breathes through a 50 second morph cycle of scale and rotation.
package logo

import (
	"math"

	"omarchy.dev/screensaver/internal/assets"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const cycleSecs = 50.0

// Effect implements saver.Effect.
type Effect struct {
	ctx   *saver.Context
	img   render.Image
	logoW float64
	logoH float64

	x, y   float64
	vx, vy float64
}

// New returns the effect; it has no flags beyond the common set.
func New(o *saver.Options) *Effect {
	return &Effect{}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx
	img, err := assets.Image(ctx.Renderer, "logo")
	if err != nil {
		return err
	}
	e.img = img
	w, h := img.Size()
	e.logoW = float64(w)
	e.logoH = float64(h)

	e.x = float64(ctx.W) / 2
	e.y = float64(ctx.H) / 2
	e.vx = 150
	e.vy = 100
	return nil
}

// morph resolves the cycle's scale factors and rotation in radians.
func morph(cycle float64) (scaleX, scaleY, rotation float64) {
	scaleX = 1 + 0.5*math.Sin(2*math.Pi*cycle)
	scaleY = 1 + 0.3*math.Cos(2*math.Pi*cycle*1.5)
	rotation = 2 * math.Pi * math.Sin(math.Pi*cycle*2)
	return scaleX, scaleY, rotation
}

func (e *Effect) Update(dt, elapsed float64) {
	speed := e.ctx.Opts.Speed
	e.x += e.vx * dt * speed
	e.y += e.vy * dt * speed

	cycle := math.Mod(elapsed, cycleSecs) / cycleSecs
	scaleX, scaleY, _ := morph(cycle)

	// Clamp against the current scaled half extents so the morphing logo
	// never pokes off-screen.
	halfW := e.logoW * scaleX / 2
	halfH := e.logoH * scaleY / 2
	w := float64(e.ctx.W)
	h := float64(e.ctx.H)

	if e.x < halfW {
		e.x = halfW
		e.vx = -e.vx
	}
	if e.x > w-halfW {
		e.x = w - halfW
		e.vx = -e.vx
	}
	if e.y < halfH {
		e.y = halfH
		e.vy = -e.vy
	}
	if e.y > h-halfH {
		e.y = h - halfH
		e.vy = -e.vy
	}
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	cycle := math.Mod(elapsed, cycleSecs) / cycleSecs
	scaleX, scaleY, rotation := morph(cycle)

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: 1}
	opts.GeoM.Translate(-e.logoW/2, -e.logoH/2)
	opts.GeoM.Scale(scaleX, scaleY)
	opts.GeoM.Rotate(rotation)
	opts.GeoM.Translate(e.x, e.y)
	screen.DrawImage(e.img, opts)
}

func (e *Effect) Teardown() {}
