// Package rainstorm layers three sheets of wind-blown rain over a dark sky.
// Each sheet scrolls at its own wind speed for parallax, individual drops
// streak down with the wind of their layer, and every so often a lightning
// flash whites out the sky for a second or two.
package rainstorm

import (
	"image/color"
	"math"

	"omarchy.dev/screensaver/internal/assets"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	maxDrops   = 300
	layerCount = 3
)

// Pixels per second of horizontal wind, nearest layer first.
var windSpeeds = [layerCount]float64{60, 40, 20}

// Fraction of the layer wind each drop inherits.
var dropWindShare = [layerCount]float64{0.5, 0.3, 0.2}

var tileNames = [layerCount]string{"rain-tile-near", "rain-tile-mid", "rain-tile-distant"}

type drop struct {
	x     float64
	fall  float64
	layer int
}

// Effect is the layered rainstorm.
type Effect struct {
	ctx *saver.Context

	drops  [maxDrops]drop
	tiles  [layerCount]render.Image
	tileW  int
	tileH  int
	scroll [layerCount]float64

	// Lightning counts down in frame units once triggered.
	flashFrames float64
}

// New returns the effect; it takes no flags beyond the shared set.
func New(o *saver.Options) *Effect {
	return &Effect{}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx
	for i, name := range tileNames {
		img, err := assets.Image(ctx.Renderer, name)
		if err != nil {
			return err
		}
		e.tiles[i] = img
		e.tileW, e.tileH = img.Size()
	}
	for i := range e.drops {
		e.drops[i] = e.newDrop()
		e.drops[i].fall = float64(ctx.Rand.Intn(2 * ctx.H))
	}
	return nil
}

func (e *Effect) newDrop() drop {
	return drop{
		x:     float64(e.ctx.Rand.Intn(e.ctx.W)),
		fall:  200 + float64(e.ctx.Rand.Intn(200)),
		layer: e.ctx.Rand.Intn(layerCount),
	}
}

func (e *Effect) Update(dt, elapsed float64) {
	speed := e.ctx.Opts.Speed
	frames := dt * 60 * speed
	w, h := float64(e.ctx.W), float64(e.ctx.H)

	for i := range e.scroll {
		e.scroll[i] += windSpeeds[i] * speed * dt
		e.scroll[i] = math.Mod(e.scroll[i], float64(e.tileW))
	}

	for i := range e.drops {
		d := &e.drops[i]
		d.fall += 20 * frames
		d.x += windSpeeds[d.layer] * dropWindShare[d.layer] * speed * dt
		if d.x > w+10 || d.x < -10 || d.fall > h*2 {
			*d = e.newDrop()
		}
	}

	if e.flashFrames > 0 {
		e.flashFrames -= frames
	} else if e.ctx.Rand.Intn(2000) == 0 {
		e.flashFrames = float64(50 + e.ctx.Rand.Intn(100))
	}
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	screen.Fill(e.skyColor())
	e.drawSheets(screen)
	e.drawDrops(screen)
}

func (e *Effect) skyColor() color.RGBA {
	if e.flashFrames > 0 {
		return color.RGBA{200, 220, 255, 255}
	}
	return color.RGBA{50, 60, 80, 255}
}

// drawSheets tiles each rain layer along the bottom of the screen, stacked
// by depth, offset by the layer's scroll position.
func (e *Effect) drawSheets(screen render.Image) {
	for layer := layerCount - 1; layer >= 0; layer-- {
		y := float64(e.ctx.H - e.tileH*(layerCount-layer))
		start := e.scroll[layer] - float64(e.tileW)
		for x := start; x < float64(e.ctx.W); x += float64(e.tileW) {
			opts := render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: 1}
			opts.GeoM.Translate(x, y)
			screen.DrawImage(e.tiles[layer], &opts)
		}
	}
}

// drawDrops streaks each drop with a slant from its layer's wind. Drops
// fade as they approach the bottom and go dark during their second
// wrap-around, which reads as rain thinning between gusts.
func (e *Effect) drawDrops(screen render.Image) {
	r := e.ctx.Renderer
	h := float64(e.ctx.H)
	for i := range e.drops {
		d := &e.drops[i]
		if d.fall >= h {
			continue
		}
		alpha := 255 - d.fall/h*128
		if alpha < 0 {
			alpha = 0
		}
		slant, length := 1.0, 5.0
		if d.layer == 0 {
			slant, length = 2, 10
		}
		y := math.Mod(d.fall, h)
		r.StrokeLine(screen, float32(d.x), float32(y),
			float32(d.x+slant), float32(math.Mod(d.fall+length, h)),
			1, color.RGBA{150, 200, 255, uint8(alpha)})
	}
}

func (e *Effect) Teardown() {
	for _, t := range e.tiles {
		if t != nil {
			t.Dispose()
		}
	}
}
