package motion

import (
	"math"
	"testing"
)

// Two equal-mass balls approaching head-on swap velocities; after a second
// of simulation they are separated along x and moving apart.
func TestElasticHeadOnSwap(t *testing.T) {
	a := &Body{X: 100, Y: 100, VX: 100, VY: 0, Radius: 20}
	b := &Body{X: 300, Y: 100, VX: -100, VY: 0, Radius: 20}

	const dt = 0.016
	for i := 0; i < 63; i++ { // ~1 second
		a.Integrate(dt, 1)
		b.Integrate(dt, 1)
		ElasticCollide(a, b)
	}

	if a.VX != -100 || b.VX != 100 {
		t.Errorf("velocities after collision = %v, %v; want -100, 100", a.VX, b.VX)
	}
	if sep := b.X - a.X; sep < 40-0.5 {
		t.Errorf("separation = %v, want >= 39.5", sep)
	}
	if a.VY != 0 || b.VY != 0 {
		t.Errorf("tangential velocities changed: %v, %v", a.VY, b.VY)
	}
}

func TestElasticConservation(t *testing.T) {
	a := &Body{X: 0, Y: 0, VX: 120, VY: 35, Radius: 20}
	b := &Body{X: 25, Y: 10, VX: -80, VY: -10, Radius: 20}

	px0 := a.VX + b.VX
	py0 := a.VY + b.VY
	ke0 := a.VX*a.VX + a.VY*a.VY + b.VX*b.VX + b.VY*b.VY

	if !ElasticCollide(a, b) {
		t.Fatal("expected overlap collision")
	}

	px1 := a.VX + b.VX
	py1 := a.VY + b.VY
	ke1 := a.VX*a.VX + a.VY*a.VY + b.VX*b.VX + b.VY*b.VY

	if math.Abs(px1-px0) > 1e-3*math.Abs(px0)+1e-9 {
		t.Errorf("momentum x not conserved: %v -> %v", px0, px1)
	}
	if math.Abs(py1-py0) > 1e-3*math.Abs(py0)+1e-9 {
		t.Errorf("momentum y not conserved: %v -> %v", py0, py1)
	}
	if math.Abs(ke1-ke0) > 1e-3*ke0 {
		t.Errorf("kinetic energy not conserved: %v -> %v", ke0, ke1)
	}
}

func TestElasticNoContact(t *testing.T) {
	a := &Body{X: 0, Y: 0, VX: 1, Radius: 5}
	b := &Body{X: 100, Y: 0, VX: -1, Radius: 5}
	if ElasticCollide(a, b) {
		t.Error("collision reported for separated bodies")
	}
}

func TestBounceWallsClamps(t *testing.T) {
	tests := []struct {
		name           string
		body           Body
		wantX, wantY   float64
		wantVX, wantVY float64
	}{
		{"left", Body{X: -5, Y: 50, VX: -10, VY: 3, Radius: 10}, 10, 50, 10, 3},
		{"right", Body{X: 810, Y: 50, VX: 10, VY: 3, Radius: 10}, 790, 50, -10, 3},
		{"top", Body{X: 50, Y: -2, VX: 3, VY: -10, Radius: 10}, 50, 10, 3, 10},
		{"bottom", Body{X: 50, Y: 700, VX: 3, VY: 10, Radius: 10}, 50, 590, 3, -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.body
			b.BounceWalls(800, 600)
			if b.X != tt.wantX || b.Y != tt.wantY {
				t.Errorf("position = (%v,%v), want (%v,%v)", b.X, b.Y, tt.wantX, tt.wantY)
			}
			if b.VX != tt.wantVX || b.VY != tt.wantVY {
				t.Errorf("velocity = (%v,%v), want (%v,%v)", b.VX, b.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	// Head moving +x hits a segment directly to its right: velocity flips.
	b := &Body{X: 0, Y: 0, VX: 10, VY: 0}
	b.Reflect(5, 0)
	if b.VX != -10 || b.VY != 0 {
		t.Errorf("reflected velocity = (%v,%v), want (-10,0)", b.VX, b.VY)
	}
}

func TestWingFrame(t *testing.T) {
	samples := []float64{0.01, 0.06, 0.11, 0.16, 0.21, 0.27, 0.34}
	wantFwd := []int{0, 1, 2, 3, 3, 2, 1}
	wantRev := []int{3, 2, 1, 0, 0, 1, 2}
	for i, local := range samples {
		if got := WingFrame(local, false); got != wantFwd[i] {
			t.Errorf("forward t=%v: frame = %d, want %d", local, got, wantFwd[i])
		}
		if got := WingFrame(local, true); got != wantRev[i] {
			t.Errorf("reverse t=%v: frame = %d, want %d", local, got, wantRev[i])
		}
	}
}

func TestScriptedMoverDelay(t *testing.T) {
	m := &ScriptedMover{Param: AnimParam{FlyDuration: 10, Delay: 4, Flap: 1}}
	if m.Visible(3.9) {
		t.Error("mover visible before its delay")
	}
	if !m.Visible(4.0) {
		t.Error("mover not visible at its delay")
	}
	if f := m.CycleFraction(9); math.Abs(f-0.5) > 1e-9 {
		t.Errorf("cycle fraction at mid-crossing = %v, want 0.5", f)
	}
}
