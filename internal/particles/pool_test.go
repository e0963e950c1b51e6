package particles

import "testing"

func TestPoolCapEnforced(t *testing.T) {
	p := NewPool(3)
	for i := 0; i < 5; i++ {
		p.Spawn(Particle{Life: 1, Decay: 0.1})
	}
	if p.Len() != 3 {
		t.Errorf("Len = %d, want cap 3", p.Len())
	}
	if p.Spawn(Particle{Life: 1}) {
		t.Error("Spawn into a full pool reported success")
	}
}

func TestCompactionPreservesOrder(t *testing.T) {
	p := NewPool(10)
	// Odd-indexed particles die on the first update.
	for i := 0; i < 6; i++ {
		life := 10.0
		if i%2 == 1 {
			life = 0.05
		}
		p.Spawn(Particle{X: float64(i), Life: life, Decay: 1})
	}

	p.Update(0.1)

	want := []float64{0, 2, 4}
	got := make([]float64, 0, 3)
	p.Each(func(pt *Particle) { got = append(got, pt.X) })
	if len(got) != len(want) {
		t.Fatalf("survivors = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("survivor %d has X = %v, want %v (order not preserved)", i, got[i], want[i])
		}
	}
}

func TestGravityIntegration(t *testing.T) {
	p := NewPool(1)
	p.Spawn(Particle{VY: 0, Gravity: 100, Life: 1, Decay: 0})
	p.Update(0.5)
	var vy float64
	p.Each(func(pt *Particle) { vy = pt.VY })
	if vy != 50 {
		t.Errorf("VY after gravity = %v, want 50", vy)
	}
}
