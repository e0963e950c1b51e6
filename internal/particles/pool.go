// Package particles provides the fixed-capacity particle pool used by the
// fire, rain, and meteor effects. The pool is a contiguous slice with a live
// count; expired particles are removed by in-place write-index compaction,
// which preserves the relative order of survivors.
package particles

import "image/color"

// Particle is one pooled particle. Life counts down to zero; buoyant species
// use a negative gravity.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Gravity float64
	Life    float64
	Decay   float64
	Size    float64
	Color   color.RGBA

	// Kind tags the particle species for effect-side behaviour the pool
	// does not integrate itself, such as wind drift on smoke. Phase seeds
	// any per-particle oscillation.
	Kind  int
	Phase float64
}

// Pool is a bounded particle collection.
type Pool struct {
	particles []Particle
	cap       int
}

// NewPool creates a pool that will never exceed capacity particles.
func NewPool(capacity int) *Pool {
	return &Pool{particles: make([]Particle, 0, capacity), cap: capacity}
}

// Cap returns the pool capacity.
func (p *Pool) Cap() int { return p.cap }

// Len returns the number of live particles.
func (p *Pool) Len() int { return len(p.particles) }

// Spawn adds a particle unless the pool is full. Reports whether the
// particle was admitted.
func (p *Pool) Spawn(pt Particle) bool {
	if len(p.particles) >= p.cap {
		return false
	}
	p.particles = append(p.particles, pt)
	return true
}

// Update integrates every particle and compacts out the dead ones.
func (p *Pool) Update(dt float64) {
	w := 0
	for i := range p.particles {
		pt := &p.particles[i]
		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
		pt.VY += pt.Gravity * dt
		pt.Life -= pt.Decay * dt
		if pt.Life > 0 {
			p.particles[w] = *pt
			w++
		}
	}
	p.particles = p.particles[:w]
}

// Each calls fn for every live particle without copying the slice out.
func (p *Pool) Each(fn func(*Particle)) {
	for i := range p.particles {
		fn(&p.particles[i])
	}
}
