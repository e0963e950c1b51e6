package bouncingball

import (
	"math/rand"
	"testing"

	"omarchy.dev/screensaver/internal/saver"
)

func newTestEffect(t *testing.T) *Effect {
	t.Helper()
	o := saver.NewOptions("bouncingball")
	if err := o.Parse(nil); err != nil {
		t.Fatal(err)
	}
	e := New(o)
	ctx := &saver.Context{W: 800, H: 600, Rand: rand.New(rand.NewSource(7)), Opts: o}
	if err := e.Init(ctx); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestBallsStayInBounds(t *testing.T) {
	e := newTestEffect(t)
	for step := 0; step < 600; step++ {
		e.Update(0.016, float64(step)*0.016)
	}
	for i, b := range e.balls {
		if b.X < ballRadius || b.X > 800-ballRadius ||
			b.Y < ballRadius || b.Y > 600-ballRadius {
			t.Errorf("ball %d escaped: (%v,%v)", i, b.X, b.Y)
		}
	}
}

func TestBallsDoNotStick(t *testing.T) {
	e := newTestEffect(t)
	for step := 0; step < 600; step++ {
		e.Update(0.016, float64(step)*0.016)
	}
	for i := range e.balls {
		for j := i + 1; j < len(e.balls); j++ {
			dx := e.balls[j].X - e.balls[i].X
			dy := e.balls[j].Y - e.balls[i].Y
			if dx*dx+dy*dy < 1 {
				t.Errorf("balls %d and %d overlap completely", i, j)
			}
		}
	}
}
