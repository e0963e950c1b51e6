package worms

import (
	"math"
	"math/rand"
	"testing"

	"omarchy.dev/screensaver/internal/motion"
	"omarchy.dev/screensaver/internal/saver"
)

// newBareEffect builds a ready-to-update effect without the window, font,
// screenshot, or audio side effects of Init.
func newBareEffect(t *testing.T, args []string) *Effect {
	t.Helper()
	o := saver.NewOptions("worms")
	e := New(o)
	if err := o.Parse(args); err != nil {
		t.Fatal(err)
	}
	e.ctx = &saver.Context{W: 800, H: 600, Rand: rand.New(rand.NewSource(5)), Opts: o}

	e.worms = make([]worm, *e.count)
	for i := range e.worms {
		dir := float64(i) * 1.3
		w := &e.worms[i]
		w.head = motion.Body{
			X: 400, Y: 300,
			VX:     math.Cos(dir) * baseSpeed,
			VY:     math.Sin(dir) * baseSpeed,
			Radius: headRadius,
		}
		w.segments = make([]point, *e.length)
		for j := range w.segments {
			w.segments[j] = point{x: w.head.X, y: w.head.Y}
		}
	}
	return e
}

func TestTrailFollowsHead(t *testing.T) {
	e := newBareEffect(t, []string{"-n", "1", "-w", "0"})
	w := &e.worms[0]
	first := point{x: w.head.X, y: w.head.Y}

	e.Update(0.016, 0)
	if w.segments[0].x != w.head.X || w.segments[0].y != w.head.Y {
		t.Error("segment 0 does not track the head")
	}
	if w.segments[1] != first {
		t.Error("segment 1 did not inherit the previous head position")
	}
}

func TestHeadsStayInBounds(t *testing.T) {
	e := newBareEffect(t, []string{"-n", "5"})
	for step := 0; step < 1200; step++ {
		e.Update(0.016, float64(step)*0.016)
	}
	for i := range e.worms {
		h := e.worms[i].head
		if h.X < 0 || h.X >= 800 || h.Y < 0 || h.Y >= 600 {
			t.Errorf("worm %d head out of bounds: (%v,%v)", i, h.X, h.Y)
		}
	}
}

func TestTrailLengthClamping(t *testing.T) {
	e := newBareEffect(t, []string{"-n", "1", "-l", "500"})
	if got := len(e.worms[0].segments); got != 100 {
		t.Errorf("trail length = %d, want clamp to 100", got)
	}
}

func TestTaperThickness(t *testing.T) {
	const length = 50
	if got := taperThickness(0, length); got != 8 {
		t.Errorf("head thickness = %v, want 8", got)
	}
	if got := taperThickness(length-1, length); got != 2 {
		t.Errorf("tail thickness = %v, want 2", got)
	}
	prev := taperThickness(0, length)
	for j := 1; j < length; j++ {
		cur := taperThickness(j, length)
		if cur > prev {
			t.Fatalf("thickness grew toward the tail at %d", j)
		}
		prev = cur
	}
}

func TestStraightWormKeepsSpeed(t *testing.T) {
	e := newBareEffect(t, []string{"-n", "1", "-w", "0"})
	w := &e.worms[0]
	for step := 0; step < 100; step++ {
		e.Update(0.016, float64(step)*0.016)
	}
	got := math.Hypot(w.head.VX, w.head.VY)
	if math.Abs(got-baseSpeed) > 1e-6 {
		t.Errorf("speed drifted to %v, want %v", got, baseSpeed)
	}
}

type fakeSound struct{ chomps int }

func (f *fakeSound) PlayChomp() { f.chomps++ }
func (f *fakeSound) Cleanup()   {}

func TestTailBiteChompsFromEitherSide(t *testing.T) {
	place := func(e *Effect, biter, bitten *worm) {
		biter.head.X, biter.head.Y = 100, 100
		bitten.head.X, bitten.head.Y = 500, 500
		for j := range biter.segments {
			biter.segments[j] = point{x: biter.head.X, y: biter.head.Y}
		}
		for j := range bitten.segments {
			bitten.segments[j] = point{x: bitten.head.X, y: bitten.head.Y}
		}
		bitten.segments[1] = point{x: biter.head.X + headRadius/2, y: biter.head.Y}
	}

	tests := []struct {
		name string
		bite func(e *Effect)
	}{
		{"first worm bites second", func(e *Effect) { place(e, &e.worms[0], &e.worms[1]) }},
		{"second worm bites first", func(e *Effect) { place(e, &e.worms[1], &e.worms[0]) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newBareEffect(t, []string{"-n", "2"})
			snd := &fakeSound{}
			e.sound = snd
			tt.bite(e)
			e.collide(&e.worms[0], &e.worms[1])
			if snd.chomps != 1 {
				t.Errorf("got %d chomps, want 1", snd.chomps)
			}
		})
	}
}
