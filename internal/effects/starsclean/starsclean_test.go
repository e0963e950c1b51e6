package starsclean

import (
	"math/rand"
	"testing"

	"omarchy.dev/screensaver/internal/saver"
)

func newTestEffect(t *testing.T) *Effect {
	t.Helper()
	o := saver.NewOptions("starsclean")
	if err := o.Parse(nil); err != nil {
		t.Fatal(err)
	}
	e := New(o)
	ctx := &saver.Context{W: 1920, H: 1080, Rand: rand.New(rand.NewSource(3)), Opts: o}
	if err := e.Init(ctx); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestStarFieldPopulation(t *testing.T) {
	e := newTestEffect(t)
	if len(e.stars) != starCount {
		t.Fatalf("star count = %d, want %d", len(e.stars), starCount)
	}
	bright := 0
	for _, s := range e.stars {
		if s.x < 0 || s.x >= 1920 || s.y < 0 || s.y >= 1080 {
			t.Fatalf("star off-screen at (%v,%v)", s.x, s.y)
		}
		if s.bright {
			bright++
		}
	}
	// 15% expectation with generous slack for the seeded draw.
	if bright < starCount/10 || bright > starCount/4 {
		t.Errorf("bright stars = %d, want roughly %d", bright, starCount*15/100)
	}
}

func TestTwinkleStaysClamped(t *testing.T) {
	e := newTestEffect(t)
	for step := 0; step < 300; step++ {
		e.Update(0.016, float64(step)*0.016)
		for i, s := range e.stars {
			if s.brightness < 0.2 || s.brightness > 1.0 {
				t.Fatalf("step %d star %d brightness %v outside [0.2,1.0]", step, i, s.brightness)
			}
		}
	}
}
