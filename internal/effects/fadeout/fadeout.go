// Package fadeout collapses the desktop into a black hole. It captures a
// screenshot of the current desktop, then grows a black disc from the
// centre on a cubic ease while the rest of the image fades, with gray
// tendrils curling in at the event horizon. The collapse loops every five
// seconds. Without a screenshot it falls back to a radial gradient.
package fadeout

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"os"

	_ "image/png"

	"omarchy.dev/screensaver/internal/platform"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	collapseSecs = 5.0
	tendrilCount = 8
	tendrilSteps = 10
)

// Effect is the black hole collapse.
type Effect struct {
	ctx *saver.Context

	background render.Image
	maxRadius  float64
	cycleTime  float64
}

// New returns the effect; it takes no flags beyond the shared set.
func New(o *saver.Options) *Effect {
	return &Effect{}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx
	e.background = e.captureBackground()
	if e.background == nil {
		e.background = ctx.Renderer.NewImageFromImage(gradientFallback(ctx.W, ctx.H))
	}
	w, h := float64(ctx.W), float64(ctx.H)
	e.maxRadius = math.Sqrt(w*w/4+h*h/4) + 50
	return nil
}

func (e *Effect) captureBackground() render.Image {
	comp := platform.NewCompositor(&platform.ExecRunner{})
	tmp, err := os.CreateTemp("", "fadeout-*.png")
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

// gradientFallback is the stand-in desktop when capture fails: a soft blue
// radial gradient brightest at the centre.
func gradientFallback(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	maxDist := math.Sqrt(cx*cx + cy*cy)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			factor := 1 - math.Sqrt(dx*dx+dy*dy)/maxDist
			if factor < 0 {
				factor = 0
			}
			img.SetRGBA(x, y, color.RGBA{
				uint8(factor * 100), uint8(factor * 150), uint8(factor * 200), 255,
			})
		}
	}
	return img
}

func (e *Effect) Update(dt, elapsed float64) {
	e.cycleTime += dt * e.ctx.Opts.Speed
	if e.progress() >= 1 {
		e.cycleTime = 0
	}
}

// progress is the collapse fraction of the current cycle, capped at 1.
func (e *Effect) progress() float64 {
	return math.Min(e.cycleTime/collapseSecs, 1)
}

// holeRadius eases cubically so the collapse starts slow and accelerates.
func holeRadius(progress, maxRadius float64) float64 {
	rp := progress * progress * progress
	return 10 + rp*(maxRadius-10)
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	screen.Fill(color.Black)

	p := e.progress()
	rp := p * p * p
	radius := holeRadius(p, e.maxRadius)

	opts := render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: float32(1 - rp)}
	screen.DrawImage(e.background, &opts)

	r := e.ctx.Renderer
	cx, cy := float32(e.ctx.W)/2, float32(e.ctx.H)/2
	r.FillCircle(screen, cx, cy, float32(radius), color.Black)

	if radius < e.maxRadius*0.8 {
		e.drawTendrils(screen, float64(cx), float64(cy), radius)
	}
}

// drawTendrils curls eight gray filaments inward just outside the horizon.
func (e *Effect) drawTendrils(screen render.Image, cx, cy, radius float64) {
	r := e.ctx.Renderer
	gray := color.RGBA{50, 50, 50, 100}
	startR := math.Max(radius-20, 10)
	for i := 0; i < tendrilCount; i++ {
		angle := 2 * math.Pi * float64(i) / tendrilCount
		for step := 0; step < tendrilSteps-1; step++ {
			t1 := float64(step) / tendrilSteps
			t2 := float64(step+1) / tendrilSteps
			r1 := startR + 50*t1
			r2 := startR + 50*t2
			a1 := angle + (math.Pi/2-angle)*t1*0.3
			a2 := angle + (math.Pi/2-angle)*t2*0.3
			r.StrokeLine(screen,
				float32(cx+r1*math.Cos(a1)), float32(cy+r1*math.Sin(a1)),
				float32(cx+r2*math.Cos(a2)), float32(cy+r2*math.Sin(a2)),
				1, gray)
		}
	}
}

func (e *Effect) Teardown() {
	if e.background != nil {
		e.background.Dispose()
	}
}
