// Package hardrain drives slanted rain across a black sky. Drops are bare
// points falling at a fifteen degree slant with a sinusoidal surge, ripples
// expand as colour-cycling outline circles where the rain lands, and every
// few seconds a lightning flash whites the screen for a blink.
package hardrain

import (
	"image/color"
	"math"

	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	maxDrops    = 300
	rippleCount = 10

	// tan(15 degrees): horizontal advance per unit of fall.
	slant = 0.268

	rippleGrowSecs = 5.0
	flashSecs      = 0.15
)

type drop struct {
	x, y float64
}

type ripple struct {
	x, y  float64
	delay float64
}

// Effect is the hard rain.
type Effect struct {
	ctx *saver.Context

	drops   [maxDrops]drop
	ripples [rippleCount]ripple

	flashLeft float64
	nextFlash float64
}

// New returns the effect; it takes no flags beyond the shared set.
func New(o *saver.Options) *Effect {
	return &Effect{}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx
	for i := range e.drops {
		e.drops[i] = e.newDrop()
		e.drops[i].y = float64(ctx.Rand.Intn(ctx.H))
	}
	for i := range e.ripples {
		e.ripples[i] = ripple{
			x:     float64(ctx.Rand.Intn(ctx.W)),
			y:     float64(ctx.Rand.Intn(ctx.H)),
			delay: float64(i),
		}
	}
	e.nextFlash = e.drawFlashInterval()
	return nil
}

// newDrop spawns above the top edge with an extended horizontal range so
// the slant still covers the left edge of the screen.
func (e *Effect) newDrop() drop {
	over := int(float64(e.ctx.H) * slant)
	return drop{
		x: float64(e.ctx.Rand.Intn(e.ctx.W+over) - over),
		y: -float64(e.ctx.Rand.Intn(40)),
	}
}

func (e *Effect) drawFlashInterval() float64 {
	return 4 + e.ctx.Rand.Float64()*4
}

func (e *Effect) Update(dt, elapsed float64) {
	speed := e.ctx.Opts.Speed
	frames := dt * 60 * speed
	h := float64(e.ctx.H)

	// The fall rate surges and slackens on a slow sine so the rain reads
	// as gusty rather than mechanical.
	surge := 8 + 3*math.Sin(elapsed*2*speed)
	for i := range e.drops {
		d := &e.drops[i]
		d.y += surge * frames
		d.x += slant * surge * frames
		if d.y > h {
			*d = e.newDrop()
		}
	}

	if e.flashLeft > 0 {
		e.flashLeft -= dt * speed
	} else {
		e.nextFlash -= dt * speed
		if e.nextFlash <= 0 {
			e.flashLeft = flashSecs
			e.nextFlash = e.drawFlashInterval()
		}
	}
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	if e.flashLeft > 0 {
		screen.Fill(color.White)
		return
	}
	screen.Fill(color.Black)

	r := e.ctx.Renderer
	for i := range e.drops {
		d := &e.drops[i]
		r.StrokeLine(screen, float32(d.x), float32(d.y),
			float32(d.x+slant*12), float32(d.y+12),
			1, color.RGBA{150, 200, 255, 220})
	}

	t := elapsed * e.ctx.Opts.Speed
	for i := range e.ripples {
		rp := &e.ripples[i]
		radius, ok := rippleRadius(t, rp.delay)
		if !ok {
			continue
		}
		r.StrokeCircle(screen, float32(rp.x), float32(rp.y), float32(radius), 1, rippleColor(t, i))
	}
}

func (e *Effect) Teardown() {}

// rippleRadius grows from 10 to 100 pixels over a five second cycle; a
// ripple is invisible until its delay has passed.
func rippleRadius(t, delay float64) (float64, bool) {
	local := t - delay
	if local < 0 {
		return 0, false
	}
	factor := math.Mod(local, rippleGrowSecs) / rippleGrowSecs
	return 10 + 90*factor, true
}

// rippleColor cycles each circle's channels at staggered rates.
func rippleColor(t float64, i int) color.RGBA {
	m := uint32(t * 10)
	return color.RGBA{
		uint8((m + uint32(i)*30) % 256),
		uint8((m + uint32(i)*60) % 256),
		uint8((m + uint32(i)*90) % 256),
		255,
	}
}
