package saver

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"omarchy.dev/screensaver/internal/render"
)

// stubInput scripts input for the runner.
type stubInput struct {
	key    bool
	button bool
	cx, cy int
}

func (s *stubInput) AnyKeyJustPressed() bool         { return s.key }
func (s *stubInput) AnyMouseButtonJustPressed() bool { return s.button }
func (s *stubInput) CursorPosition() (int, int)      { return s.cx, s.cy }

// countingEffect records lifecycle calls and the dt values it observes.
type countingEffect struct {
	inits     int
	teardowns int
	dts       []float64
}

func (e *countingEffect) Init(ctx *Context) error                   { e.inits++; return nil }
func (e *countingEffect) Update(dt, elapsed float64)                { e.dts = append(e.dts, dt) }
func (e *countingEffect) Draw(screen render.Image, elapsed float64) {}
func (e *countingEffect) Teardown()                                 { e.teardowns++ }

func newTestRunner(input *stubInput) (*Runner, *countingEffect, *time.Time) {
	effect := &countingEffect{}
	ctx := &Context{
		W: 800, H: 600,
		Input: input,
		Rand:  rand.New(rand.NewSource(1)),
		Opts:  mustParse(nil),
	}
	r := NewRunner(effect, ctx)
	now := time.Unix(0, 0)
	r.now = func() time.Time { return now }
	return r, effect, &now
}

func mustParse(args []string) *Options {
	o := NewOptions("test")
	if err := o.Parse(args); err != nil {
		panic(err)
	}
	return o
}

func TestGracePeriodIgnoresEarlyMotion(t *testing.T) {
	input := &stubInput{}
	r, effect, now := newTestRunner(input)

	if err := r.Update(); err != nil {
		t.Fatalf("first Update returned %v", err)
	}
	if effect.inits != 1 {
		t.Fatalf("inits = %d, want 1", effect.inits)
	}

	// Motion at 1.5s: inside the grace window, must not exit.
	*now = now.Add(1500 * time.Millisecond)
	input.cx = 100
	if err := r.Update(); err != nil {
		t.Errorf("Update with motion at 1.5s returned %v, want nil", err)
	}

	// Motion at 1.999s: still inside.
	*now = now.Add(499 * time.Millisecond)
	input.cx = 200
	if err := r.Update(); err != nil {
		t.Errorf("Update with motion at 1.999s returned %v, want nil", err)
	}
}

func TestGracePeriodBoundary(t *testing.T) {
	input := &stubInput{}
	r, effect, now := newTestRunner(input)

	if err := r.Update(); err != nil {
		t.Fatalf("first Update returned %v", err)
	}

	// Exactly 2000ms: motion is accepted.
	*now = now.Add(2000 * time.Millisecond)
	input.cx = 50
	if err := r.Update(); !errors.Is(err, Done) {
		t.Errorf("Update with motion at 2000ms = %v, want Done", err)
	}
	if effect.teardowns != 1 {
		t.Errorf("teardowns = %d, want 1", effect.teardowns)
	}
}

func TestKeyExitsDuringGrace(t *testing.T) {
	input := &stubInput{}
	r, _, now := newTestRunner(input)

	if err := r.Update(); err != nil {
		t.Fatalf("first Update returned %v", err)
	}

	*now = now.Add(100 * time.Millisecond)
	input.key = true
	if err := r.Update(); !errors.Is(err, Done) {
		t.Errorf("Update with key press at 100ms = %v, want Done", err)
	}
}

func TestButtonExits(t *testing.T) {
	input := &stubInput{}
	r, _, now := newTestRunner(input)

	if err := r.Update(); err != nil {
		t.Fatalf("first Update returned %v", err)
	}

	*now = now.Add(3 * time.Second)
	input.button = true
	if err := r.Update(); !errors.Is(err, Done) {
		t.Errorf("Update with button press = %v, want Done", err)
	}
}

func TestDeltaClamp(t *testing.T) {
	input := &stubInput{}
	r, effect, now := newTestRunner(input)

	if err := r.Update(); err != nil {
		t.Fatalf("first Update returned %v", err)
	}
	// A 10-second stall must be clamped to MaxDelta.
	*now = now.Add(10 * time.Second)
	if err := r.Update(); err != nil {
		t.Fatalf("Update returned %v", err)
	}
	last := effect.dts[len(effect.dts)-1]
	if last != MaxDelta {
		t.Errorf("dt after stall = %v, want %v", last, MaxDelta)
	}
}

func TestInitFailurePropagates(t *testing.T) {
	input := &stubInput{}
	ctx := &Context{W: 800, H: 600, Input: input, Rand: rand.New(rand.NewSource(1)), Opts: mustParse(nil)}
	r := NewRunner(&failingEffect{}, ctx)
	r.now = func() time.Time { return time.Unix(0, 0) }

	if err := r.Update(); !errors.Is(err, ErrInitFailure) {
		t.Errorf("Update = %v, want ErrInitFailure", err)
	}
}

type failingEffect struct{ countingEffect }

func (e *failingEffect) Init(ctx *Context) error { return ErrInitFailure }
