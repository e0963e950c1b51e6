// Package matrix is the digital-rain effect: a pool of green glyph streams
// falling down the screen, trailing characters fading behind a bright head.
package matrix

import (
	"fmt"
	"image/color"
	"math"

	"omarchy.dev/screensaver/internal/platform"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	maxStreams   = 200
	spawnFloor   = maxStreams - 10
	maxStreamLen = 35
	fontSize     = 12
)

// glyphs mixes katakana with ASCII, the traditional rain alphabet.
var glyphs = []rune("アイウエオカキクケコサシスセソタチツテトナニヌネノ" +
	"ハヒフヘホマミムメモヤユヨラリルレロワヲン" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" +
	"0123456789@#$%^&*()-+=[]{}|;:,.<>?")

type stream struct {
	x          float64
	y          float64
	speed      float64
	chars      []rune
	brightness []float64
	active     bool
}

// Effect implements saver.Effect.
type Effect struct {
	ctx     *saver.Context
	font    render.Font
	charW   float64
	charH   float64
	streams [maxStreams]stream
}

// New returns the effect; it has no flags beyond the common set.
func New(o *saver.Options) *Effect {
	return &Effect{}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx

	ttf, err := platform.ReadFont(platform.MonoFontPaths)
	if err != nil {
		return err
	}
	e.font, err = ctx.Renderer.LoadFont(ttf, fontSize)
	if err != nil {
		return fmt.Errorf("%w: %v", saver.ErrFontUnavailable, err)
	}
	e.charW, e.charH = ctx.Renderer.MeasureText("0", e.font)
	if e.charW <= 0 || e.charH <= 0 {
		e.charW, e.charH = 7, 14
	}

	// Start with one stream per column, scattered well above the screen so
	// the rain arrives staggered.
	columns := int(math.Ceil(float64(ctx.W) / e.charW))
	if columns > maxStreams {
		columns = maxStreams
	}
	for i := 0; i < columns; i++ {
		s := &e.streams[i]
		s.x = float64(i) * e.charW
		s.y = -float64(ctx.Rand.Intn(ctx.H * 2))
		s.speed = 0.5 + float64(ctx.Rand.Intn(8))/2
		e.seed(s, 18+ctx.Rand.Intn(17), 40, 215)
	}
	return nil
}

// seed fills a stream with random glyphs and brightness in
// [briMin, briMin+briRange), head forced to full.
func (e *Effect) seed(s *stream, length, briMin, briRange int) {
	s.chars = make([]rune, length)
	s.brightness = make([]float64, length)
	for c := range s.chars {
		s.chars[c] = glyphs[e.ctx.Rand.Intn(len(glyphs))]
		s.brightness[c] = float64(briMin + e.ctx.Rand.Intn(briRange))
	}
	s.brightness[0] = 255
	s.active = true
}

func (e *Effect) Update(dt, elapsed float64) {
	speed := e.ctx.Opts.Speed
	frames := dt * 60 // stream speeds are in pixels per 60 Hz frame

	active := 0
	for i := range e.streams {
		if e.streams[i].active {
			active++
		}
	}

	// Keep the pool near capacity so coverage never thins out.
	for active < spawnFloor {
		for i := range e.streams {
			if e.streams[i].active {
				continue
			}
			s := &e.streams[i]
			s.x = float64(e.ctx.Rand.Intn(e.ctx.W + 100))
			s.y = -float64(e.ctx.Rand.Intn(e.ctx.H / 4))
			s.speed = 0.5 + float64(e.ctx.Rand.Intn(20))/4
			e.seed(s, 15+e.ctx.Rand.Intn(20), 30, 225)
			active++
			break
		}
	}

	for i := range e.streams {
		s := &e.streams[i]
		if !s.active {
			continue
		}

		s.y += s.speed * speed * frames

		for c := len(s.brightness) - 1; c >= 1; c-- {
			if s.brightness[c] > 10 {
				s.brightness[c] -= frames * 5 * speed
			}
		}

		// Occasional rebrighten flashes somewhere along the trail.
		if e.ctx.Rand.Intn(200) < 3 {
			s.brightness[e.ctx.Rand.Intn(len(s.brightness))] = 255
		}

		if s.y > float64(e.ctx.H)+float64(len(s.chars))*e.charH {
			s.active = false
		}
	}
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	h := float64(e.ctx.H)
	for i := range e.streams {
		s := &e.streams[i]
		if !s.active {
			continue
		}
		for c := range s.chars {
			y := s.y - float64(c)*e.charH
			if y < -e.charH || y > h {
				continue
			}
			a := s.brightness[c]
			if a < 0 {
				a = 0
			}
			if a > 255 {
				a = 255
			}
			clr := greenAlpha(uint8(a))
			e.ctx.Renderer.DrawText(screen, string(s.chars[c]), e.font, s.x, y, clr)
		}
	}
}

func (e *Effect) Teardown() {}

// greenAlpha premultiplies lime green by the trail brightness.
func greenAlpha(a uint8) color.RGBA {
	return color.RGBA{G: a, A: a}
}
