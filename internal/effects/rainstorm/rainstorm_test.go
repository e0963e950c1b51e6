package rainstorm

import (
	"math/rand"
	"testing"

	"omarchy.dev/screensaver/internal/saver"
)

// newBareEffect skips Init, which uploads the rain tiles through a live
// renderer; the drop simulation itself is renderer-free.
func newBareEffect(t *testing.T) *Effect {
	t.Helper()
	o := saver.NewOptions("rainstorm")
	if err := o.Parse(nil); err != nil {
		t.Fatal(err)
	}
	e := New(o)
	e.ctx = &saver.Context{W: 1280, H: 720, Rand: rand.New(rand.NewSource(5)), Opts: o}
	e.tileW, e.tileH = 512, 128
	for i := range e.drops {
		e.drops[i] = e.newDrop()
		e.drops[i].fall = float64(e.ctx.Rand.Intn(2 * e.ctx.H))
	}
	return e
}

func TestDropsStayInRespawnEnvelope(t *testing.T) {
	e := newBareEffect(t)
	for step := 0; step < 3000; step++ {
		e.Update(1.0/60, float64(step)/60)
		for i, d := range e.drops {
			if d.x < -11 || d.x > 1280+11 {
				t.Fatalf("step %d: drop %d at x=%v outside respawn envelope", step, i, d.x)
			}
			if d.fall > 720*2+21 {
				t.Fatalf("step %d: drop %d fall=%v never respawned", step, i, d.fall)
			}
		}
	}
}

func TestDropsKeepFalling(t *testing.T) {
	e := newBareEffect(t)
	before := e.drops[0].fall
	e.Update(1.0/60, 0)
	if e.drops[0].fall <= before {
		t.Errorf("drop did not fall: %v -> %v", before, e.drops[0].fall)
	}
}

func TestScrollWrapsAtTileWidth(t *testing.T) {
	e := newBareEffect(t)
	for step := 0; step < 4000; step++ {
		e.Update(1.0/60, float64(step)/60)
		for layer, s := range e.scroll {
			if s < 0 || s >= float64(e.tileW) {
				t.Fatalf("layer %d scroll %v escaped [0,%d)", layer, s, e.tileW)
			}
		}
	}
}

func TestLightningFlashDecays(t *testing.T) {
	e := newBareEffect(t)
	e.flashFrames = 60
	for step := 0; step < 120; step++ {
		e.Update(1.0/60, float64(step)/60)
	}
	if e.flashFrames > 0 {
		t.Errorf("flash still live after two seconds: %v frames left", e.flashFrames)
	}
}

func TestFlashChangesSky(t *testing.T) {
	e := newBareEffect(t)
	dark := e.skyColor()
	e.flashFrames = 10
	lit := e.skyColor()
	if dark == lit {
		t.Error("lightning flash does not change the sky colour")
	}
}
