// Package starsclean is a minimal star field: 1500 stationary stars
// twinkling independently, with a plus-shaped glow on the brightest 15%.
package starsclean

import (
	"image/color"
	"math"

	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const starCount = 1500

type star struct {
	x, y         float64
	base         float64
	brightness   float64
	twinklePhase float64
	twinkleSpeed float64
	bright       bool
}

// Effect implements saver.Effect.
type Effect struct {
	ctx   *saver.Context
	stars []star
}

// New returns the effect; it has no flags beyond the common set.
func New(o *saver.Options) *Effect {
	return &Effect{}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx
	e.stars = make([]star, starCount)
	for i := range e.stars {
		s := &e.stars[i]
		s.x = float64(ctx.Rand.Intn(ctx.W))
		s.y = float64(ctx.Rand.Intn(ctx.H))
		s.base = 0.5 + float64(ctx.Rand.Intn(5))/10
		s.brightness = s.base
		s.twinklePhase = float64(ctx.Rand.Intn(628)) / 100
		s.twinkleSpeed = 0.5 + float64(ctx.Rand.Intn(150))/100
		s.bright = ctx.Rand.Intn(100) < 15
	}
	return nil
}

func (e *Effect) Update(dt, elapsed float64) {
	t := elapsed * e.ctx.Opts.Speed
	for i := range e.stars {
		s := &e.stars[i]
		s.brightness = s.base + math.Sin(t*s.twinkleSpeed+s.twinklePhase)*0.3
		if s.brightness < 0.2 {
			s.brightness = 0.2
		}
		if s.brightness > 1 {
			s.brightness = 1
		}
	}
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	for i := range e.stars {
		s := &e.stars[i]

		// Warm white, warmer still on the bright ones.
		g, b := 1.0, 0.9
		if s.bright {
			g, b = 0.95, 0.85
		}
		clr := color.RGBA{
			R: uint8(255 * s.brightness),
			G: uint8(255 * g * s.brightness),
			B: uint8(255 * b * s.brightness),
			A: 255,
		}

		e.ctx.Renderer.FillRect(screen, float32(s.x), float32(s.y), 1, 1, clr)
		if s.bright && s.brightness > 0.8 {
			e.ctx.Renderer.FillRect(screen, float32(s.x-1), float32(s.y), 1, 1, clr)
			e.ctx.Renderer.FillRect(screen, float32(s.x+1), float32(s.y), 1, 1, clr)
			e.ctx.Renderer.FillRect(screen, float32(s.x), float32(s.y-1), 1, 1, clr)
			e.ctx.Renderer.FillRect(screen, float32(s.x), float32(s.y+1), 1, 1, clr)
		}
	}
}

func (e *Effect) Teardown() {}
