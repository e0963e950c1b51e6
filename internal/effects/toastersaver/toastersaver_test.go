package toastersaver

import (
	"math"
	"testing"

	"omarchy.dev/screensaver/internal/motion"
)

func TestEntityTableReferencesAreValid(t *testing.T) {
	for i, ent := range entities {
		if ent.anim < 0 || ent.anim >= len(animParams) {
			t.Errorf("entity %d: anim %d out of range", i, ent.anim)
		}
		if _, ok := poses[ent.pose]; !ok {
			t.Errorf("entity %d: pose %d undefined", i, ent.pose)
		}
		if ent.isToaster && ent.toastKind != -1 {
			t.Errorf("entity %d: toaster with toast kind %d", i, ent.toastKind)
		}
		if !ent.isToaster && (ent.toastKind < 0 || ent.toastKind > 3) {
			t.Errorf("entity %d: toast kind %d out of range", i, ent.toastKind)
		}
	}
}

func TestToastMoversHaveNoFlap(t *testing.T) {
	for i, ent := range entities {
		if !ent.isToaster && animParams[ent.anim].Flap != 0 {
			t.Errorf("entity %d: toast with flap direction %d", i, ent.anim)
		}
	}
}

// A mover travels down-left by the full displacement over one crossing.
func TestDiagonalTravel(t *testing.T) {
	m := motion.ScriptedMover{Param: animParams[0], Pose: poses[6]}
	const w, h = 1920.0, 1080.0

	x0, y0 := m.DiagonalStart(w, h, spriteSize/2)
	f := m.CycleFraction(5) // half of the 10 s crossing
	if math.Abs(f-0.5) > 1e-9 {
		t.Fatalf("cycle fraction = %v, want 0.5", f)
	}
	x := x0 - travel*f*1.0
	y := y0 + travel*f*1.0
	if x >= x0 || y <= y0 {
		t.Errorf("mover did not travel down-left: (%v,%v) -> (%v,%v)", x0, y0, x, y)
	}
	if got := x0 - x; math.Abs(got-800) > 1e-9 {
		t.Errorf("half-crossing displacement = %v, want 800", got)
	}
}
