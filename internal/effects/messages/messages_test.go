package messages

import (
	"math"
	"testing"
)

func TestMarqueeSweep(t *testing.T) {
	const w, h = 1920.0, 1080.0
	const textW, textH = 600.0, 24.0

	tests := []struct {
		name  string
		t     float64
		wantX float64
	}{
		{"start right of screen", 0, w - textW/2},
		{"quarter sweep", 2.5, 0.375*w - textW/2},
		{"mid sweep", 5, -0.25*w - textW/2},
		{"wrap restarts", 10, w - textW/2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, _ := MarqueePosition(tt.t, w, h, textW, textH)
			if math.Abs(x-tt.wantX) > 1e-6 {
				t.Errorf("x at t=%v = %v, want %v", tt.t, x, tt.wantX)
			}
		})
	}
}

func TestMarqueeRowSteps(t *testing.T) {
	const w, h = 1920.0, 1080.0
	const textH = 24.0

	tests := []struct {
		t       float64
		wantPct float64
	}{
		{1, 0.2},
		{11, 0.2 + 0.8/3},
		{21, 0.2 + 1.6/3},
		{31, 0.2}, // super-cycle wraps after three sweeps
	}
	for _, tt := range tests {
		_, y := MarqueePosition(tt.t, w, h, 600, textH)
		want := tt.wantPct*h - textH/2
		if math.Abs(y-want) > 1e-6 {
			t.Errorf("y at t=%v = %v, want %v", tt.t, y, want)
		}
	}
}

func TestMarqueeNegativeTime(t *testing.T) {
	x, y := MarqueePosition(-0.5, 1920, 1080, 600, 24)
	if math.IsNaN(x) || math.IsNaN(y) {
		t.Fatal("position must be finite for negative time")
	}
	x2, y2 := MarqueePosition(-0.5+30, 1920, 1080, 600, 24)
	if math.Abs(x-x2) > 1e-6 || math.Abs(y-y2) > 1e-6 {
		t.Errorf("negative time should wrap onto the same cycle: got (%v,%v) vs (%v,%v)", x, y, x2, y2)
	}
}
