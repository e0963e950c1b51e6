package motion

import "math"

// Body is a kinematic point with velocity and a radius used for wall and
// body-body collision.
type Body struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Integrate advances the body by v·dt·speed.
func (b *Body) Integrate(dt, speed float64) {
	b.X += b.VX * dt * speed
	b.Y += b.VY * dt * speed
}

// BounceWalls clamps the body inside [0,w]×[0,h] accounting for its radius
// and negates the velocity component on each crossed axis.
func (b *Body) BounceWalls(w, h float64) {
	if b.X < b.Radius {
		b.X = b.Radius
		b.VX = -b.VX
	}
	if b.X > w-b.Radius {
		b.X = w - b.Radius
		b.VX = -b.VX
	}
	if b.Y < b.Radius {
		b.Y = b.Radius
		b.VY = -b.VY
	}
	if b.Y > h-b.Radius {
		b.Y = h - b.Radius
		b.VY = -b.VY
	}
}

// ElasticCollide resolves an equal-mass elastic collision between two bodies
// if they overlap: separate each by half the overlap along the contact
// normal, then swap the normal velocity components while preserving the
// tangential ones. Reports whether a collision occurred.
func ElasticCollide(a, b *Body) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Hypot(dx, dy)
	minDist := a.Radius + b.Radius
	if dist >= minDist || dist == 0 {
		return false
	}

	nx := dx / dist
	ny := dy / dist
	overlap := minDist - dist
	a.X -= nx * overlap / 2
	a.Y -= ny * overlap / 2
	b.X += nx * overlap / 2
	b.Y += ny * overlap / 2

	// Tangent is the normal rotated a quarter turn.
	tx, ty := -ny, nx

	an := a.VX*nx + a.VY*ny
	at := a.VX*tx + a.VY*ty
	bn := b.VX*nx + b.VY*ny
	bt := b.VX*tx + b.VY*ty

	a.VX = bn*nx + at*tx
	a.VY = bn*ny + at*ty
	b.VX = an*nx + bt*tx
	b.VY = an*ny + bt*ty
	return true
}

// Reflect reflects the body's velocity about the unit normal from (px, py)
// toward the body, used for worm head against segment contacts.
func (b *Body) Reflect(px, py float64) {
	dx := b.X - px
	dy := b.Y - py
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	nx := dx / dist
	ny := dy / dist
	dot := b.VX*nx + b.VY*ny
	b.VX -= 2 * dot * nx
	b.VY -= 2 * dot * ny
}
