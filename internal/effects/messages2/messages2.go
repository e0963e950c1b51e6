// Package messages2 is the quote flavour of the scrolling banner. Instead of
// a fixed string it asks an external command for text and scrolls whatever
// arrives on stdout, rotating through the lines one sweep at a time. When the
// command is missing or fails it falls back to the -t text, then to the
// embedded quote list.
package messages2

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"omarchy.dev/screensaver/internal/assets"
	"omarchy.dev/screensaver/internal/effects/messages"
	"omarchy.dev/screensaver/internal/platform"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	fontSize  = 20
	sweepSecs = 10.0
)

// Effect scrolls quote lines across the screen.
type Effect struct {
	ctx     *saver.Context
	text    *string
	command *string
	runner  platform.Runner

	font   render.Font
	quotes []string
	widths []float64
	textH  float64
}

// New registers the quote banner's flags on o and returns the effect.
func New(o *saver.Options) *Effect {
	return &Effect{
		text:    o.String("t", "", "Fallback text when the quote command fails"),
		command: o.String("c", "", "Command whose stdout supplies quote lines"),
		runner:  &platform.ExecRunner{},
	}
}

// Init loads the banner font and resolves the quote lines.
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

	e.quotes = e.resolveQuotes()
	e.widths = make([]float64, len(e.quotes))
	for i, q := range e.quotes {
		e.widths[i], e.textH = ctx.Renderer.MeasureText(q, e.font)
	}
	return nil
}

// resolveQuotes returns the lines to scroll, in priority order: the external
// command's stdout, the -t text, the embedded quote list. A failed quote
// fetch is recoverable, never fatal.
func (e *Effect) resolveQuotes() []string {
	if cmd := strings.TrimSpace(*e.command); cmd != "" {
		fields := strings.Fields(cmd)
		out, err := e.runner.Output(fields[0], fields[1:]...)
		if err == nil {
			if lines := splitQuotes(string(out)); len(lines) > 0 {
				return lines
			}
		}
	}
	if t := strings.TrimSpace(*e.text); t != "" {
		return []string{t}
	}
	return assets.Quotes()
}

func (e *Effect) Update(dt, elapsed float64) {}

// Draw scrolls the current quote; each ten second sweep advances to the next.
func (e *Effect) Draw(screen render.Image, elapsed float64) {
	screen.Fill(color.Black)
	if len(e.quotes) == 0 {
		return
	}
	t := elapsed * e.ctx.Opts.Speed
	i := quoteIndex(t, len(e.quotes))
	w, h := float64(e.ctx.W), float64(e.ctx.H)
	x, y := messages.MarqueePosition(t, w, h, e.widths[i], e.textH)
	if x <= -e.widths[i] || x >= w {
		return
	}
	e.ctx.Renderer.DrawText(screen, e.quotes[i], e.font, x, y, color.White)
}

func (e *Effect) Teardown() {}

// quoteIndex maps time to the quote shown during the current sweep.
func quoteIndex(t float64, n int) int {
	sweep := int(math.Floor(t / sweepSecs))
	i := sweep % n
	if i < 0 {
		i += n
	}
	return i
}

// splitQuotes breaks command output into non-empty trimmed lines.
func splitQuotes(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
