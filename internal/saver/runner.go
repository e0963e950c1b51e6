package saver

import (
	"image/color"
	"math/rand"
	"time"

	"omarchy.dev/screensaver/internal/render"
)

// Frame loop timing shared by every effect.
const (
	// GracePeriod is the interval after start during which pointer motion
	// is ignored as an exit trigger.
	GracePeriod = 2000 * time.Millisecond

	// MaxDelta clamps dt so long stalls (display switch, scheduler pause)
	// do not teleport entities.
	MaxDelta = 0.05
)

// Context carries everything an effect needs at Init time.
type Context struct {
	W, H     int
	Renderer render.Renderer
	Input    render.InputManager
	Rand     *rand.Rand
	Opts     *Options
}

// Effect is the four-entry contract every screensaver implements.
// Entities mutate only during Update; Draw is strictly read-only.
type Effect interface {
	Init(ctx *Context) error
	Update(dt, elapsed float64)
	Draw(screen render.Image, elapsed float64)
	Teardown()
}

// Runner drives one effect to completion. It implements render.Game:
// poll input, clamp dt, update, clear, draw, present.
type Runner struct {
	effect Effect
	ctx    *Context

	now       func() time.Time
	start     time.Time
	started   bool
	last      float64
	cursorX   int
	cursorY   int
	exiting   bool
	initError error
}

var _ render.Game = (*Runner)(nil)

// NewRunner wires an effect to a context. Init is deferred to the first
// frame so images are created inside the engine's lifecycle.
func NewRunner(effect Effect, ctx *Context) *Runner {
	return &Runner{effect: effect, ctx: ctx, now: time.Now}
}

// Update implements render.Game.
func (r *Runner) Update() error {
	if !r.started {
		r.start = r.now()
		r.started = true
		r.cursorX, r.cursorY = r.ctx.Input.CursorPosition()
		if err := r.effect.Init(r.ctx); err != nil {
			r.initError = err
			return err
		}
	}

	elapsed := r.now().Sub(r.start)

	exit := r.ctx.Input.AnyKeyJustPressed() || r.ctx.Input.AnyMouseButtonJustPressed()
	cx, cy := r.ctx.Input.CursorPosition()
	if elapsed >= GracePeriod && (cx != r.cursorX || cy != r.cursorY) {
		exit = true
	}
	r.cursorX, r.cursorY = cx, cy

	if exit {
		r.effect.Teardown()
		r.exiting = true
		return Done
	}

	t := elapsed.Seconds()
	dt := t - r.last
	if dt > MaxDelta {
		dt = MaxDelta
	}
	if dt < 0 {
		dt = 0
	}
	r.last = t

	r.effect.Update(dt, t)
	return nil
}

// Draw implements render.Game.
func (r *Runner) Draw(screen render.Image) {
	if !r.started || r.exiting || r.initError != nil {
		return
	}
	screen.Fill(color.Black)
	r.effect.Draw(screen, r.now().Sub(r.start).Seconds())
}

// Layout implements render.Game.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.ctx.W, r.ctx.H
}
