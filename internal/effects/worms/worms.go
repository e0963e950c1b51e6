// Package worms drives a pack of glyph worms across a desktop screenshot,
// eating black trails into it. Heads bounce off walls and each other;
// bodies cycle through the rainbow.
package worms

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"
	"math"
	"os"

	"omarchy.dev/screensaver/internal/assets"
	"omarchy.dev/screensaver/internal/audio"
	"omarchy.dev/screensaver/internal/motion"
	"omarchy.dev/screensaver/internal/platform"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	baseSpeed  = 240.0
	headRadius = 10.0
	fontSize   = 8
)

type point struct {
	x, y float64
}

type worm struct {
	head     motion.Body
	segments []point
}

// Effect implements saver.Effect.
type Effect struct {
	count   *int
	length  *int
	wiggle  *float64
	audioOn *bool

	ctx        *saver.Context
	worms      []worm
	font       render.Font
	headW      float64
	headH      float64
	background render.Image
	trails     render.Image
	sound      soundPlayer
}

// soundPlayer is the part of the audio manager the effect calls.
type soundPlayer interface {
	PlayChomp()
	Cleanup()
}

// New registers the effect's flags and returns the effect.
func New(o *saver.Options) *Effect {
	return &Effect{
		count:   o.Int("n", 5, 1, 50, "number of worms"),
		length:  o.Int("l", 50, 5, 100, "trail length in segments"),
		wiggle:  o.Float("w", 0.02, 0, 1, "wiggle factor (0=straight, 1=max)"),
		audioOn: o.Bool("a", false, "audio (1=on, 0=off)"),
	}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx

	ttf, err := platform.ReadFont(platform.MonoFontPaths)
	if err != nil {
		return err
	}
	e.font, err = ctx.Renderer.LoadFont(ttf, fontSize)
	if err != nil {
		return err
	}
	e.headW, e.headH = ctx.Renderer.MeasureText("O", e.font)

	e.background = e.captureBackground()
	e.trails = ctx.Renderer.NewImage(ctx.W, ctx.H)

	if *e.audioOn {
		m := audio.NewManager()
		if err := m.Initialize(); err == nil {
			e.sound = m
		}
		// Audio is a garnish; run silent if the device is busy.
	}

	e.worms = make([]worm, *e.count)
	for i := range e.worms {
		dir := float64(ctx.Rand.Intn(360)) * math.Pi / 180
		w := &e.worms[i]
		w.head = motion.Body{
			X:      float64(ctx.W) / 2,
			Y:      float64(ctx.H) / 2,
			VX:     math.Cos(dir) * baseSpeed,
			VY:     math.Sin(dir) * baseSpeed,
			Radius: headRadius,
		}
		w.segments = make([]point, *e.length)
		for j := range w.segments {
			w.segments[j] = point{
				x: w.head.X + math.Cos(dir)*float64(j)*0.5,
				y: w.head.Y + math.Sin(dir)*float64(j)*0.5,
			}
		}
	}
	return nil
}

// captureBackground grabs the desktop via the compositor's screenshot tool.
// A nil return means plain black.
func (e *Effect) captureBackground() render.Image {
	comp := platform.NewCompositor(&platform.ExecRunner{})
	tmp, err := os.CreateTemp("", "worms-*.png")
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

func (e *Effect) Update(dt, elapsed float64) {
	w := float64(e.ctx.W)
	h := float64(e.ctx.H)
	speed := e.ctx.Opts.Speed

	for i := range e.worms {
		wm := &e.worms[i]

		// Squiggle: a small random turn each tick.
		turn := float64(e.ctx.Rand.Intn(21)-10) * *e.wiggle
		cos, sin := math.Cos(turn), math.Sin(turn)
		vx := wm.head.VX*cos - wm.head.VY*sin
		vy := wm.head.VX*sin + wm.head.VY*cos
		wm.head.VX, wm.head.VY = vx, vy

		wm.head.X += wm.head.VX * dt * speed
		wm.head.Y += wm.head.VY * dt * speed

		if wm.head.X < 0 {
			wm.head.X = 0
			wm.head.VX = -wm.head.VX
		} else if wm.head.X >= w {
			wm.head.X = w - 1
			wm.head.VX = -wm.head.VX
		}
		if wm.head.Y < 0 {
			wm.head.Y = 0
			wm.head.VY = -wm.head.VY
		} else if wm.head.Y >= h {
			wm.head.Y = h - 1
			wm.head.VY = -wm.head.VY
		}
	}

	for i := range e.worms {
		for j := i + 1; j < len(e.worms); j++ {
			e.collide(&e.worms[i], &e.worms[j])
		}
	}

	// Shift trails back and record the new head position.
	for i := range e.worms {
		wm := &e.worms[i]
		copy(wm.segments[1:], wm.segments[:len(wm.segments)-1])
		wm.segments[0] = point{x: wm.head.X, y: wm.head.Y}
	}
}

// collide resolves head-head elastic bounces and head-into-tail
// reflections between two worms.
func (e *Effect) collide(a, b *worm) {
	if motion.ElasticCollide(&a.head, &b.head) {
		e.chomp()
	}
	if e.reflectOffTail(a, b) {
		e.chomp()
	}
	if e.reflectOffTail(b, a) {
		e.chomp()
	}
}

// reflectOffTail bounces w's head off other's tail segments. Reports
// whether any contact happened.
func (e *Effect) reflectOffTail(w, other *worm) bool {
	hit := false
	for k := 1; k < len(other.segments); k++ {
		seg := other.segments[k]
		dx := seg.x - w.head.X
		dy := seg.y - w.head.Y
		dist := math.Hypot(dx, dy)
		if dist >= headRadius || dist == 0 {
			continue
		}
		overlap := headRadius - dist
		w.head.X -= dx / dist * overlap
		w.head.Y -= dy / dist * overlap
		w.head.Reflect(seg.x, seg.y)
		hit = true
	}
	return hit
}

func (e *Effect) chomp() {
	if e.sound != nil {
		e.sound.PlayChomp()
	}
}

// taperThickness is the trail width at segment j of a worm of the given
// length: thick behind the head, thin at the tail tip.
func taperThickness(j, length int) float64 {
	if length <= 1 {
		return 2
	}
	return float64(2 + 6*(length-1-j)/(length-1))
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	r := e.ctx.Renderer

	// Eat the trails into the mask, then composite screenshot + mask.
	for i := range e.worms {
		wm := &e.worms[i]
		for j := 0; j < len(wm.segments)-1; j++ {
			th := taperThickness(j, len(wm.segments))
			r.StrokeLine(e.trails,
				float32(wm.segments[j].x), float32(wm.segments[j].y),
				float32(wm.segments[j+1].x), float32(wm.segments[j+1].y),
				float32(th), color.Black)
		}
	}

	if e.background != nil {
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: 1}
		screen.DrawImage(e.background, opts)
	}
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: 1}
	screen.DrawImage(e.trails, opts)

	for i := range e.worms {
		wm := &e.worms[i]
		for j := range wm.segments {
			seg := wm.segments[j]
			if j == 0 {
				r.DrawText(screen, "O", e.font,
					seg.x-e.headW/2, seg.y-e.headH/2, color.White)
				continue
			}
			hue := math.Mod(elapsed*60+float64(j)*6+float64(i)*15, 360)
			r.DrawText(screen, "-", e.font,
				seg.x-e.headW/2, seg.y-e.headH/2, assets.HSV(hue, 1, 1))
		}
	}
}

func (e *Effect) Teardown() {
	if e.sound != nil {
		e.sound.Cleanup()
	}
}
