package fishsaver

import (
	"math"
	"testing"
)

func TestEntityTableReferencesAreValid(t *testing.T) {
	for i, ent := range entities {
		if ent.anim < 0 || ent.anim >= len(animParams) {
			t.Errorf("entity %d: anim %d out of range", i, ent.anim)
		}
		if ent.pose < 0 || ent.pose >= len(rowTopPct) {
			t.Errorf("entity %d: pose %d out of range", i, ent.pose)
		}
		if ent.isBubble && ent.pose < 6 {
			t.Errorf("entity %d: bubble on a fish row pose %d", i, ent.pose)
		}
		if !ent.isBubble && ent.pose > 5 {
			t.Errorf("entity %d: fish on a bubble column pose %d", i, ent.pose)
		}
	}
}

// Left-to-right rows start off the left edge and end past the right edge.
func TestSwimLerpCoversScreen(t *testing.T) {
	const w = 1920.0
	for _, dir := range []int{0, 1} {
		startPct, endPct := -1.0, 1.4
		if dir == 1 {
			startPct, endPct = 1.4, -1.0
		}
		x0 := startPct*w - fishW/2
		x1 := endPct*w - fishW/2
		if dir == 0 && (x0 > -fishW || x1 < w) {
			t.Errorf("ltr path (%v..%v) does not cover the screen", x0, x1)
		}
		if dir == 1 && (x0 < w || x1 > -fishW) {
			t.Errorf("rtl path (%v..%v) does not cover the screen", x0, x1)
		}
	}
}

// The top row toggles to the deeper lane in the second half of its 13 s
// cycle.
func TestTopRowDepthToggle(t *testing.T) {
	tests := []struct {
		local float64
		deep  bool
	}{
		{0, false},
		{6.49, false},
		{6.5, true},
		{12.99, true},
		{13.0, false},
	}
	for _, tt := range tests {
		got := math.Mod(tt.local, 13) >= 6.5
		if got != tt.deep {
			t.Errorf("local %v: deep = %v, want %v", tt.local, got, tt.deep)
		}
	}
}
