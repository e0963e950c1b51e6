// Package fishsaver is the aquarium effect: scripted fish crossing the
// screen in rows over a seafloor, with bubble columns rising once from the
// bottom.
package fishsaver

import (
	"image/color"
	"math"

	"omarchy.dev/screensaver/internal/assets"
	"omarchy.dev/screensaver/internal/motion"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	fishW, fishH     = 72, 48
	bubbleW, bubbleH = 50, 56
	seafloorH        = 100
)

// Flap doubles as the swim direction: 0 left-to-right, 1 right-to-left.
var animParams = []motion.AnimParam{
	{FlyDuration: 18.2, Delay: 0, Flap: 0},
	{FlyDuration: 18.2, Delay: 0, Flap: 1},
	{FlyDuration: 9.1, Delay: 0, Flap: 0},
	{FlyDuration: 9.1, Delay: 0, Flap: 1},
	{FlyDuration: 18.2, Delay: 4.25, Flap: 1},
	{FlyDuration: 18.2, Delay: 8.5, Flap: 1},
	{FlyDuration: 18.2, Delay: 4.25, Flap: 1},
	{FlyDuration: 18.2, Delay: 6, Flap: 1},
	{FlyDuration: 18.2, Delay: 0, Flap: 0},
	{FlyDuration: 18.2, Delay: 4, Flap: 0},
	{FlyDuration: 18.2, Delay: 8, Flap: 0},
}

// rowTopPct positions the swim rows; the last three entries are bubble
// column x positions as a percentage of the width.
var rowTopPct = []float64{-15, 5, 25, 45, 65, 85, 10, 50, 85}

type entity struct {
	isBubble bool
	anim     int
	pose     int
	species  int
}

var entities = []entity{
	{false, 0, 0, 1},
	{false, 3, 0, 4},
	{false, 1, 1, 3},
	{false, 4, 1, 0},
	{false, 5, 2, 7},
	{false, 7, 3, 6},
	{false, 0, 3, 4},
	{false, 1, 4, 5},
	{false, 2, 4, 7},
	{false, 3, 5, 0},
	{true, 8, 6, 0},
	{true, 9, 7, 0},
	{true, 10, 8, 0},
}

// Effect implements saver.Effect.
type Effect struct {
	fishCount   *int
	bubbleCount *int

	ctx     *saver.Context
	sheets  map[int]*assets.Sheet
	bubbles *assets.Sheet
}

// New registers the effect's flags and returns the effect.
func New(o *saver.Options) *Effect {
	return &Effect{
		fishCount:   o.Int("t", 30, 0, 100, "number of fish"),
		bubbleCount: o.Int("m", 15, 0, 100, "number of bubble columns"),
	}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx

	e.sheets = make(map[int]*assets.Sheet)
	for _, ent := range entities {
		if ent.isBubble {
			continue
		}
		if _, ok := e.sheets[ent.species]; ok {
			continue
		}
		sheet, err := assets.NewSheet(ctx.Renderer, assets.CreateFishSheet(ent.species), fishW, fishH)
		if err != nil {
			return err
		}
		e.sheets[ent.species] = sheet
	}

	// The bubble art is a single frame; both flap frames share it.
	bubbleSrc := assets.CreateBubble()
	bubbles, err := assets.NewSheet(ctx.Renderer, bubbleSrc, bubbleW, bubbleH)
	if err != nil {
		return err
	}
	e.bubbles = bubbles
	return nil
}

func (e *Effect) Update(dt, elapsed float64) {}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	w := float64(e.ctx.W)
	h := float64(e.ctx.H)
	speed := e.ctx.Opts.Speed

	// Seafloor band along the bottom.
	e.ctx.Renderer.FillRect(screen, 0, float32(h-seafloorH), float32(w), seafloorH,
		color.RGBA{139, 69, 19, 255})

	drawnBubbles := 0
	for _, ent := range entities {
		if !ent.isBubble {
			continue
		}
		if drawnBubbles >= *e.bubbleCount {
			break
		}
		ap := animParams[ent.anim]
		local := (elapsed - ap.Delay) * speed
		if local < 0 {
			continue
		}

		// Bubbles rise once from below the screen and are not recycled.
		x := rowTopPct[ent.pose]*w/100 - bubbleW/2
		y := (h + bubbleH) - local*((h+bubbleH)/ap.FlyDuration)
		if y < -bubbleH {
			continue
		}

		frame := motion.FlapFrame(local, 0.2)
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: 1}
		opts.GeoM.Translate(x, y)
		screen.DrawImage(e.bubbles.Frame(frame), opts)
		drawnBubbles++
	}

	drawnFish := 0
	for _, ent := range entities {
		if ent.isBubble || drawnFish >= *e.fishCount {
			continue
		}
		ap := animParams[ent.anim]
		local := elapsed - ap.Delay
		if local < 0 {
			continue
		}

		topPct := rowTopPct[ent.pose]
		if ent.pose == 0 {
			// The top row alternates between two depths every half cycle.
			if math.Mod(local, 13) >= 6.5 {
				topPct += 50
			}
		}

		f := math.Mod(local*speed, ap.FlyDuration) / ap.FlyDuration

		// Horizontal travel is a lerp across fractions of the width, with
		// margins so the fish fully clears both edges.
		startPct, endPct := -1.0, 1.4
		if ap.Flap == 1 {
			startPct, endPct = 1.4, -1.0
		}
		leftPct := startPct + (endPct-startPct)*f

		x := leftPct*w - fishW/2
		y := topPct/100*h - fishH/2

		frame := motion.FlapFrame(local, 0.3)
		opts := &render.DrawImageOptions{
			GeoM:  render.NewGeoM(),
			Alpha: 1,
			// Art faces left; mirror the left-to-right rows.
			FlipX: ap.Flap == 0,
		}
		opts.GeoM.Translate(x, y)
		screen.DrawImage(e.sheets[ent.species].Frame(frame), opts)
		drawnFish++
	}
}

func (e *Effect) Teardown() {}
