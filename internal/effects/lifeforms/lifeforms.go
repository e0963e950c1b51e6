// Package lifeforms animates constellations forming out of a starfield.
// Three shapes run in parallel: their stars fly in from scattered
// positions, edges draw themselves one by one, the figure holds, then the
// lines recede and the stars jitter apart. When all three have dissolved a
// fresh trio is drawn without replacement and placed by rejection sampling
// so the rotated shapes never overlap or leave the screen.
package lifeforms

import (
	"image/color"
	"math"

	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	groupCount = 3

	// phaseSecs is one phase's duration; HOLD runs four of them and
	// DISSOLVE is considered settled after two.
	phaseSecs    = 3.0
	holdPhases   = 4
	settlePhases = 2

	galaxyStars     = 1200
	placementMargin = 50
	placementTries  = 200
	groupGap        = 20
)

type phase int

const (
	phaseScatter phase = iota
	phaseConnect
	phaseHold
	phaseDissolve
)

type star struct {
	pos    point
	target point
}

// group is one constellation instance working through the morph cycle.
type group struct {
	tmpl     *template
	rotation float64

	// offset shifts the group's local origin away from screen centre.
	offsetX, offsetY float64

	phase phase
	timer float64
	stars []star

	// edgeProgress is how far each edge's line has drawn, 0..1.
	edgeProgress []float64
}

type backdropStar struct {
	x, y       int
	brightness uint8
	twinkles   bool
	phase      float64
}

// Effect is the constellation morph animation.
type Effect struct {
	ctx *saver.Context

	groups   [groupCount]*group
	backdrop [galaxyStars]backdropStar
}

// New returns the effect; it takes no flags beyond the shared set.
func New(o *saver.Options) *Effect {
	return &Effect{}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx

	// The opening trio is the first three templates on fixed vertical
	// thirds; later trios are random draws with random placement.
	for i := 0; i < groupCount; i++ {
		g := e.newGroup(&templates[i])
		g.offsetY = float64(ctx.H) / 6 * float64(i-1)
		e.groups[i] = g
	}

	for i := range e.backdrop {
		e.backdrop[i] = backdropStar{
			x:          ctx.Rand.Intn(ctx.W),
			y:          ctx.Rand.Intn(ctx.H),
			brightness: uint8(50 + ctx.Rand.Intn(100)),
			twinkles:   i < galaxyStars/2,
			phase:      float64(ctx.Rand.Intn(360)),
		}
	}
	return nil
}

func (e *Effect) newGroup(t *template) *group {
	g := &group{
		tmpl:         t,
		rotation:     float64(e.ctx.Rand.Intn(360)) * math.Pi / 180,
		stars:        make([]star, len(t.vertices)),
		edgeProgress: make([]float64, len(t.edges)),
	}
	w, h := float64(e.ctx.W), float64(e.ctx.H)
	sin, cos := math.Sincos(g.rotation)
	for i, v := range t.vertices {
		g.stars[i] = star{
			pos: point{
				X: float64(e.ctx.Rand.Intn(e.ctx.W/2)) - w/4,
				Y: float64(e.ctx.Rand.Intn(e.ctx.H)) - h/2,
			},
			target: point{
				X: v.X*cos - v.Y*sin,
				Y: v.X*sin + v.Y*cos,
			},
		}
	}
	return g
}

func (e *Effect) Update(dt, elapsed float64) {
	speed := e.ctx.Opts.Speed
	frames := dt * 60 * speed

	for i := range e.backdrop {
		if e.backdrop[i].twinkles {
			e.backdrop[i].phase += 0.2 * frames
		}
	}

	if e.allDissolved() {
		e.nextTrio()
	}

	for _, g := range e.groups {
		e.updateGroup(g, dt*speed, frames)
	}
}

// allDissolved reports whether every group has finished dissolving and
// settled long enough to swap in the next trio.
func (e *Effect) allDissolved() bool {
	for _, g := range e.groups {
		if g.phase != phaseDissolve || g.timer < phaseSecs*settlePhases {
			return false
		}
	}
	return true
}

func (e *Effect) updateGroup(g *group, dt, frames float64) {
	g.timer += dt
	n := len(g.tmpl.edges)

	switch g.phase {
	case phaseScatter:
		progress := math.Min(g.timer/phaseSecs, 1)
		pull := math.Min(progress*0.1*frames, 1)
		for i := range g.stars {
			s := &g.stars[i]
			s.pos.X += (s.target.X - s.pos.X) * pull
			s.pos.Y += (s.target.Y - s.pos.Y) * pull
		}
		if g.timer >= phaseSecs {
			g.phase = phaseConnect
			g.timer = 0
		}

	case phaseConnect:
		progress := g.timer / phaseSecs
		for i := range g.edgeProgress {
			g.edgeProgress[i] = clamp01(progress*float64(n) - float64(i))
		}
		if g.timer >= phaseSecs {
			g.phase = phaseHold
			g.timer = 0
		}

	case phaseHold:
		if g.timer >= phaseSecs*holdPhases {
			g.phase = phaseDissolve
			g.timer = 0
		}

	case phaseDissolve:
		progress := g.timer / phaseSecs
		for i := range g.edgeProgress {
			g.edgeProgress[i] = clamp01(1 - progress*float64(n) + float64(i))
		}
		if progress >= float64(n)*0.1 {
			for i := range g.stars {
				s := &g.stars[i]
				s.pos.X += float64(e.ctx.Rand.Intn(150)-75) * progress * frames
				s.pos.Y += float64(e.ctx.Rand.Intn(150)-75) * progress * frames
			}
		}
	}
}

// nextTrio draws three distinct templates and places them by rejection
// sampling: random centres are drawn until every rotated bounding box fits
// inside the margin and no two boxes come within the gap of each other.
// After the attempt limit the last candidate stands.
func (e *Effect) nextTrio() {
	rnd := e.ctx.Rand
	picked := map[int]bool{}
	for i := 0; i < groupCount; i++ {
		idx := rnd.Intn(len(templates))
		for picked[idx] {
			idx = rnd.Intn(len(templates))
		}
		picked[idx] = true
		e.groups[i] = e.newGroup(&templates[idx])
	}

	w, h := e.ctx.W, e.ctx.H
	bounds := make([][4]float64, groupCount)
	for i, g := range e.groups {
		bounds[i] = rotatedBounds(g.tmpl, g.rotation)
	}

	var cx, cy [groupCount]float64
	for attempt := 0; attempt < placementTries; attempt++ {
		for c := 0; c < groupCount; c++ {
			cx[c] = float64(rnd.Intn(w-2*placementMargin) + placementMargin)
			cy[c] = float64(rnd.Intn(h-2*placementMargin) + placementMargin)
		}
		if e.placementFits(bounds, cx, cy) {
			break
		}
	}
	for c, g := range e.groups {
		g.offsetX = cx[c] - float64(w)/2
		g.offsetY = cy[c] - float64(h)/2
	}
}

func (e *Effect) placementFits(bounds [][4]float64, cx, cy [groupCount]float64) bool {
	w, h := float64(e.ctx.W), float64(e.ctx.H)
	for c := 0; c < groupCount; c++ {
		left, right, top, bottom := bounds[c][0], bounds[c][1], bounds[c][2], bounds[c][3]
		if cx[c]+left < placementMargin || cx[c]+right > w-placementMargin ||
			cy[c]+top < placementMargin || cy[c]+bottom > h-placementMargin {
			return false
		}
		for o := 0; o < c; o++ {
			oLeft, oRight, oTop, oBottom := bounds[o][0], bounds[o][1], bounds[o][2], bounds[o][3]
			separated := cx[c]+right+groupGap < cx[o]+oLeft ||
				cx[c]+left-groupGap > cx[o]+oRight ||
				cy[c]+bottom+groupGap < cy[o]+oTop ||
				cy[c]+top-groupGap > cy[o]+oBottom
			if !separated {
				return false
			}
		}
	}
	return true
}

// rotatedBounds is the AABB of a template's vertices after rotation,
// relative to the shape's centre: {left, right, top, bottom}.
func rotatedBounds(t *template, rotation float64) [4]float64 {
	sin, cos := math.Sincos(rotation)
	left, right := math.Inf(1), math.Inf(-1)
	top, bottom := math.Inf(1), math.Inf(-1)
	for _, v := range t.vertices {
		x := v.X*cos - v.Y*sin
		y := v.X*sin + v.Y*cos
		left = math.Min(left, x)
		right = math.Max(right, x)
		top = math.Min(top, y)
		bottom = math.Max(bottom, y)
	}
	return [4]float64{left, right, top, bottom}
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	screen.Fill(color.Black)
	e.drawBackdrop(screen)
	for _, g := range e.groups {
		e.drawGroup(screen, g)
	}
}

func (e *Effect) drawBackdrop(screen render.Image) {
	r := e.ctx.Renderer
	for i := range e.backdrop {
		s := &e.backdrop[i]
		b := float64(s.brightness)
		if s.twinkles {
			twinkle := math.Sin(s.phase)*0.6 + 0.5
			b = math.Min(b*(0.4+twinkle*0.6), 255)
		}
		c := uint8(math.Max(b, 0))
		r.FillRect(screen, float32(s.x), float32(s.y), 1, 1, color.RGBA{c, c, c, 255})
	}
}

func (e *Effect) drawGroup(screen render.Image, g *group) {
	r := e.ctx.Renderer
	ox := float64(e.ctx.W)/2 + g.offsetX
	oy := float64(e.ctx.H)/2 + g.offsetY

	width := float32(2)
	if g.tmpl.thick {
		width = 3
	}
	for i, ed := range g.tmpl.edges {
		progress := g.edgeProgress[i]
		if progress <= 0 {
			continue
		}
		s1, s2 := &g.stars[ed.A], &g.stars[ed.B]
		x1, y1 := ox+s1.pos.X, oy+s1.pos.Y
		x2 := ox + s1.pos.X + (s2.pos.X-s1.pos.X)*progress
		y2 := oy + s1.pos.Y + (s2.pos.Y-s1.pos.Y)*progress
		r.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), width, g.tmpl.lineColor)
	}

	for i := range g.stars {
		s := &g.stars[i]
		r.FillRect(screen, float32(ox+s.pos.X), float32(oy+s.pos.Y), 2, 2, g.tmpl.starColor)
	}
}

func (e *Effect) Teardown() {}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
