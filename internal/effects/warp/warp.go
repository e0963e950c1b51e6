// Package warp is the hyperspace tunnel: 18 staggered starfield layers
// scaling up from the screen centre, fading in small and flying out large.
package warp

import (
	"math"

	"omarchy.dev/screensaver/internal/assets"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	layerCount  = 18
	cycleSecs   = 2.0
	layerStride = 0.25 // delay between consecutive layers in seconds
)

type layer struct {
	texture int
	delay   float64
}

// Effect implements saver.Effect.
type Effect struct {
	ctx      *saver.Context
	layers   [layerCount]layer
	textures [4]render.Image
	texW     float64
	texH     float64
}

// New returns the effect; it has no flags beyond the common set.
func New(o *saver.Options) *Effect {
	return &Effect{}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx
	for i := range e.textures {
		src := assets.CreateStarfield(i)
		e.textures[i] = ctx.Renderer.NewImageFromImage(src)
		b := src.Bounds()
		e.texW = float64(b.Dx())
		e.texH = float64(b.Dy())
	}
	for i := range e.layers {
		e.layers[i] = layer{texture: i % 4, delay: float64(i) * layerStride}
	}
	return nil
}

func (e *Effect) Update(dt, elapsed float64) {}

// layerState resolves a layer's scale and opacity at time t, which cycles
// every two seconds: fade in while growing to full size, cruise out to
// 2.8x, then fade away reaching 3.5x.
func layerState(t float64) (scale, opacity float64) {
	frac := math.Mod(math.Mod(t, cycleSecs)+cycleSecs, cycleSecs) / cycleSecs
	switch {
	case frac < 0.5:
		opacity = frac * 2
		scale = 0.5 + frac*2*0.5
	case frac < 0.85:
		opacity = 1
		scale = 1 + (frac-0.5)/0.35*1.8
	default:
		opacity = 1 - (frac-0.85)/0.15
		scale = 2.8 + (frac-0.85)/0.15*0.7
	}
	return scale, opacity
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	w := float64(e.ctx.W)
	h := float64(e.ctx.H)
	t := elapsed * e.ctx.Opts.Speed

	for _, l := range e.layers {
		scale, opacity := layerState(t - l.delay)

		// Stretch the square texture over the screen, then zoom about the
		// centre.
		sx := w / e.texW * scale
		sy := h / e.texH * scale
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: float32(opacity)}
		opts.GeoM.Scale(sx, sy)
		opts.GeoM.Translate(w/2-e.texW*sx/2, h/2-e.texH*sy/2)
		screen.DrawImage(e.textures[l.texture], opts)
	}
}

func (e *Effect) Teardown() {}
