// Package messages scrolls a banner of text across the screen. The banner
// marches right to left on a fixed ten second cycle and hops between three
// vertical positions every ten seconds, so the pixels never sit still.
package messages

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"omarchy.dev/screensaver/internal/platform"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	fontSize = 20

	// One horizontal sweep: the banner's left edge travels from 100% of the
	// screen width to -150% over this many seconds, then wraps.
	sweepSecs = 10.0

	// Three sweeps make a vertical super-cycle; each sweep uses the next of
	// the three row positions.
	rowCount = 3
)

const defaultText = "OUT TO LUNCH"

// Effect is the scrolling message banner.
type Effect struct {
	ctx  *saver.Context
	text *string

	font   render.Font
	banner string
	textW  float64
	textH  float64
}

// New registers the banner's flags on o and returns the effect.
func New(o *saver.Options) *Effect {
	return &Effect{
		text: o.String("t", defaultText, "Text to scroll"),
	}
}

// Init loads the banner font and measures the repeated text.
func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx

	ttf, err := platform.ReadFont(platform.SansFontPaths)
	if err != nil {
		return err
	}
	f, err := ctx.Renderer.LoadFont(ttf, fontSize)
	if err != nil {
		return fmt.Errorf("%w: banner font: %v", saver.ErrFontUnavailable, err)
	}
	e.font = f

	text := strings.TrimSpace(*e.text)
	if text == "" {
		text = defaultText
	}
	// Repeat the message so a long sweep still reads as a continuous ribbon.
	e.banner = strings.Repeat(text+"   ", 4)
	e.textW, e.textH = ctx.Renderer.MeasureText(e.banner, e.font)
	return nil
}

func (e *Effect) Update(dt, elapsed float64) {}

// Draw renders the banner at its marquee position for elapsed seconds.
func (e *Effect) Draw(screen render.Image, elapsed float64) {
	screen.Fill(color.Black)
	w, h := float64(e.ctx.W), float64(e.ctx.H)
	x, y := MarqueePosition(elapsed*e.ctx.Opts.Speed, w, h, e.textW, e.textH)
	if x <= -e.textW || x >= w {
		return
	}
	e.ctx.Renderer.DrawText(screen, e.banner, e.font, x, y, color.White)
}

func (e *Effect) Teardown() {}

// MarqueePosition returns the top-left corner of the banner at time t.
// Horizontally the banner's centre sweeps from w down to -1.5w every ten
// seconds; vertically it sits at 20%, 47% or 73% of the screen height,
// advancing one row per sweep.
func MarqueePosition(t, w, h, textW, textH float64) (x, y float64) {
	cycle := math.Mod(t, sweepSecs)
	if cycle < 0 {
		cycle += sweepSecs
	}
	indentPct := 100 - (100+150)*(cycle/sweepSecs)
	x = indentPct/100*w - textW/2

	super := math.Mod(t, sweepSecs*rowCount)
	if super < 0 {
		super += sweepSecs * rowCount
	}
	step := math.Floor(super / sweepSecs)
	yPct := 0.2 + (0.8/float64(rowCount))*step
	y = yPct*h - textH/2
	return x, y
}
