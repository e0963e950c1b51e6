// Package toastersaver is the flying-toasters effect: a fixed flock of
// winged toasters and toast slices drifting diagonally across the screen
// on scripted timing loops.
package toastersaver

import (
	"fmt"

	"omarchy.dev/screensaver/internal/assets"
	"omarchy.dev/screensaver/internal/motion"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	spriteSize = 64
	travel     = 1600.0
)

// animParams scripts the nine toaster waves and four toast drops.
var animParams = []motion.AnimParam{
	{FlyDuration: 10, Delay: 0, Flap: 1},
	{FlyDuration: 16, Delay: 0, Flap: -1},
	{FlyDuration: 24, Delay: 0, Flap: 1},
	{FlyDuration: 10, Delay: 5, Flap: 1},
	{FlyDuration: 24, Delay: 4, Flap: -1},
	{FlyDuration: 24, Delay: 8, Flap: 1},
	{FlyDuration: 24, Delay: 12, Flap: -1},
	{FlyDuration: 24, Delay: 16, Flap: 1},
	{FlyDuration: 24, Delay: 20, Flap: -1},
	{FlyDuration: 10, Delay: 0, Flap: 0},
	{FlyDuration: 16, Delay: 0, Flap: 0},
	{FlyDuration: 24, Delay: 0, Flap: 0},
	{FlyDuration: 24, Delay: 12, Flap: 0},
}

// poses anchors entities above and to the right of the viewport so they
// enter from off-screen. Indices below 6 are unused, matching the scripted
// layout the entity table references.
var poses = map[int]motion.Pose{
	6:  {RightPct: -2, TopPct: -17},
	7:  {RightPct: 10, TopPct: -19},
	8:  {RightPct: 20, TopPct: -18},
	9:  {RightPct: 30, TopPct: -20},
	10: {RightPct: 40, TopPct: -21},
	11: {RightPct: 50, TopPct: -18},
	12: {RightPct: 60, TopPct: -20},
	13: {RightPct: -17, TopPct: 10},
	14: {RightPct: -19, TopPct: 20},
	15: {RightPct: -21, TopPct: 30},
	16: {RightPct: -23, TopPct: 50},
	17: {RightPct: -25, TopPct: 70},
	18: {RightPct: 0, TopPct: -26},
	19: {RightPct: 10, TopPct: -20},
	20: {RightPct: 20, TopPct: -36},
	21: {RightPct: 30, TopPct: -24},
	22: {RightPct: 40, TopPct: -33},
	23: {RightPct: 60, TopPct: -40},
	24: {RightPct: -26, TopPct: 10},
	25: {RightPct: -36, TopPct: 30},
	26: {RightPct: -29, TopPct: 50},
	27: {RightPct: 0, TopPct: -46},
	28: {RightPct: 10, TopPct: -56},
	29: {RightPct: 20, TopPct: -49},
	30: {RightPct: 30, TopPct: -60},
	31: {RightPct: -46, TopPct: 10},
	32: {RightPct: -56, TopPct: 20},
	33: {RightPct: -49, TopPct: 30},
}

type entity struct {
	isToaster bool
	anim      int
	pose      int
	toastKind int
}

var entities = []entity{
	{true, 0, 6, -1},
	{true, 2, 7, -1},
	{false, 9, 8, 1},
	{true, 2, 9, -1},
	{true, 0, 11, -1},
	{true, 2, 12, -1},
	{true, 1, 13, -1},
	{false, 11, 14, 3},
	{false, 10, 16, 2},
	{true, 0, 17, -1},
	{false, 10, 19, 0},
	{false, 11, 20, 3},
	{true, 1, 21, -1},
	{false, 9, 24, 0},
	{true, 0, 22, -1},
	{false, 10, 26, 2},
	{true, 0, 28, -1},
	{false, 10, 30, 3},
	{true, 1, 31, -1},
	{true, 0, 32, -1},
	{false, 11, 33, 1},
	{true, 3, 27, -1},
	{true, 3, 10, -1},
	{true, 3, 25, -1},
	{true, 3, 29, -1},
	{true, 4, 15, -1},
	{true, 4, 18, -1},
	{true, 4, 22, -1},
	{true, 5, 6, -1},
	{true, 5, 11, -1},
	{true, 5, 15, -1},
	{true, 5, 19, -1},
	{true, 5, 23, -1},
	{false, 12, 10, 0},
	{false, 12, 23, 1},
	{false, 12, 15, 2},
	{true, 6, 7, -1},
	{true, 6, 12, -1},
	{true, 6, 16, -1},
	{true, 6, 20, -1},
	{true, 6, 24, -1},
	{true, 7, 8, -1},
	{true, 7, 13, -1},
	{true, 7, 17, -1},
	{true, 7, 25, -1},
	{true, 8, 14, -1},
	{true, 8, 18, -1},
	{true, 8, 21, -1},
	{true, 8, 26, -1},
}

// Effect implements saver.Effect.
type Effect struct {
	toasterCount *int
	toastCount   *int

	ctx    *saver.Context
	sheet  *assets.Sheet
	toasts [4]render.Image
}

// New registers the effect's flags and returns the effect.
func New(o *saver.Options) *Effect {
	return &Effect{
		toasterCount: o.Int("t", 30, 0, len(entities), "number of toasters"),
		toastCount:   o.Int("m", 10, 0, len(entities), "number of toast pieces"),
	}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx
	src, err := assets.Pixels("toaster-sheet")
	if err != nil {
		return err
	}
	e.sheet, err = assets.NewSheet(ctx.Renderer, src, spriteSize, spriteSize)
	if err != nil {
		return err
	}
	for i := range e.toasts {
		img, err := assets.Image(ctx.Renderer, fmt.Sprintf("toast-%d", i))
		if err != nil {
			return err
		}
		e.toasts[i] = img
	}
	return nil
}

func (e *Effect) Update(dt, elapsed float64) {}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	w := float64(e.ctx.W)
	h := float64(e.ctx.H)
	speed := e.ctx.Opts.Speed

	// Toast behind, toasters in front.
	drawn := 0
	for _, ent := range entities {
		if ent.isToaster || drawn >= *e.toastCount {
			continue
		}
		x, y, ok := e.position(ent, elapsed, w, h, speed)
		if !ok {
			continue
		}
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: 1}
		opts.GeoM.Translate(x, y)
		screen.DrawImage(e.toasts[ent.toastKind], opts)
		drawn++
	}

	drawn = 0
	for _, ent := range entities {
		if !ent.isToaster || drawn >= *e.toasterCount {
			continue
		}
		x, y, ok := e.position(ent, elapsed, w, h, speed)
		if !ok {
			continue
		}
		ap := animParams[ent.anim]
		frame := motion.WingFrame(elapsed-ap.Delay, ap.Flap == -1)
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: 1}
		opts.GeoM.Translate(x, y)
		screen.DrawImage(e.sheet.Frame(frame), opts)
		drawn++
	}
}

// position resolves an entity's current top-left corner, or reports false
// while its start delay has not passed.
func (e *Effect) position(ent entity, elapsed, w, h, speed float64) (float64, float64, bool) {
	m := motion.ScriptedMover{Param: animParams[ent.anim], Pose: poses[ent.pose]}
	if !m.Visible(elapsed) {
		return 0, 0, false
	}
	f := m.CycleFraction(elapsed)
	x, y := m.DiagonalStart(w, h, spriteSize/2)
	x -= travel * f * speed
	y += travel * f * speed
	return x, y, true
}

func (e *Effect) Teardown() {}
