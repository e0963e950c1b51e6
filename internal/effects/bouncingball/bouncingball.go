// Package bouncingball is the classic screensaver: ten colored balls
// bouncing off the walls and each other with equal-mass elastic collisions.
package bouncingball

import (
	"image/color"

	"omarchy.dev/screensaver/internal/motion"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	ballCount  = 10
	ballRadius = 20
)

// Effect implements saver.Effect.
type Effect struct {
	ctx    *saver.Context
	balls  [ballCount]motion.Body
	colors [ballCount]color.RGBA
}

// New returns the effect; it has no flags beyond the common set.
func New(o *saver.Options) *Effect {
	return &Effect{}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx
	for i := range e.balls {
		e.balls[i] = motion.Body{
			X:      float64(ctx.Rand.Intn(ctx.W-2*ballRadius)) + ballRadius,
			Y:      float64(ctx.Rand.Intn(ctx.H-2*ballRadius)) + ballRadius,
			VX:     float64(ctx.Rand.Intn(400) - 200),
			VY:     float64(ctx.Rand.Intn(400) - 200),
			Radius: ballRadius,
		}
		e.colors[i] = color.RGBA{
			R: uint8(ctx.Rand.Intn(256)),
			G: uint8(ctx.Rand.Intn(256)),
			B: uint8(ctx.Rand.Intn(256)),
			A: 255,
		}
	}
	return nil
}

func (e *Effect) Update(dt, elapsed float64) {
	w := float64(e.ctx.W)
	h := float64(e.ctx.H)
	speed := e.ctx.Opts.Speed

	for i := range e.balls {
		e.balls[i].Integrate(dt, speed)
		e.balls[i].BounceWalls(w, h)
	}
	for i := range e.balls {
		for j := i + 1; j < len(e.balls); j++ {
			motion.ElasticCollide(&e.balls[i], &e.balls[j])
		}
	}
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	for i := range e.balls {
		b := &e.balls[i]
		e.ctx.Renderer.FillCircle(screen, float32(b.X), float32(b.Y), ballRadius, e.colors[i])
	}
}

func (e *Effect) Teardown() {}
