// Package starrynight is a night skyline: a drifting, twinkling starfield
// behind 13 dark-gold buildings, with meteors streaking down-right on a
// timer. Two star populations layer the scene: sky stars in the upper
// three quarters whose count follows the density flag, and a dense fixed
// field concentrated at rooftop level so the gaps between buildings read
// as crowded with stars.
package starrynight

import (
	"image/color"
	"math"

	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	skyStarBase    = 500
	gapStarCount   = 10000
	buildingCount  = 13
	meteorSlots    = 10
	meteorTrailLen = 20

	groundInset = 50
)

var buildingColor = color.RGBA{255, 193, 7, 255}

type star struct {
	x, y         float64
	vx, vy       float64
	base         float64
	brightness   float64
	twinklePhase float64
	twinkleSpeed float64
	bright       bool
}

type building struct {
	x, width float64
	height   float64
}

type meteor struct {
	x, y   float64
	vx, vy float64
	life   float64
	trailX [meteorTrailLen]float64
	trailY [meteorTrailLen]float64
	trailA [meteorTrailLen]float64
}

// Effect implements saver.Effect.
type Effect struct {
	ctx *saver.Context

	density    *float64
	meteorFreq *float64
	skyMode    *string

	skyStars  []star
	gapStars  []star
	buildings [buildingCount]building
	meteors   [meteorSlots]meteor

	meteorTimer float64
	simTime     float64
}

// New registers -d (star density), -m (meteor frequency) and -r (sky
// motion mode: dynamic drifts and twinkles, static only twinkles, none
// holds the sky still).
func New(o *saver.Options) *Effect {
	e := &Effect{}
	e.density = o.Float("d", 0.5, 0, 1, "star density (0=sparse, 1=dense)")
	e.meteorFreq = o.Float("m", 1.0, 0, 5, "meteor frequency multiplier")
	e.skyMode = o.String("r", "dynamic", "sky motion: dynamic, static or none")
	return e
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx
	e.makeBuildings()
	e.makeSkyStars()
	e.makeGapStars()
	return nil
}

func (e *Effect) makeBuildings() {
	rnd := e.ctx.Rand
	spacing := float64(e.ctx.W) / buildingCount
	for i := range e.buildings {
		offset := float64(rnd.Intn(int(spacing*0.6))) - spacing*0.3
		base := float64(12 + rnd.Intn(20))
		widen := 1.25 + rnd.Float64()*0.75
		e.buildings[i] = building{
			x:      float64(i)*spacing + offset + 15,
			width:  base * widen,
			height: 120 + float64(rnd.Intn(150)),
		}
	}
}

// skyStarCount scales the upper-sky population by the density flag.
func skyStarCount(density float64) int {
	return int(math.Round(skyStarBase * (0.3 + density*0.7)))
}

func (e *Effect) makeSkyStars() {
	rnd := e.ctx.Rand
	e.skyStars = make([]star, skyStarCount(*e.density))
	for i := range e.skyStars {
		s := &e.skyStars[i]
		s.x = float64(rnd.Intn(e.ctx.W))
		// Upper three quarters only; the skyline owns the bottom band.
		s.y = float64(rnd.Intn(e.ctx.H * 3 / 4))
		s.vx = -0.1 - float64(rnd.Intn(4))/10
		s.vy = float64(rnd.Intn(10)-5) / 20
		s.base = 0.5 + float64(rnd.Intn(5))/10
		s.brightness = s.base
		s.twinklePhase = float64(rnd.Intn(628)) / 100
		s.twinkleSpeed = 0.5 + float64(rnd.Intn(150))/100
		s.bright = rnd.Intn(100) < 15
	}
}

// makeGapStars fills a fixed dense field weighted toward rooftop height:
// 60% at building level, 30% just above the tallest roof, 10% spread up
// into the open sky.
func (e *Effect) makeGapStars() {
	rnd := e.ctx.Rand
	h := float64(e.ctx.H)

	maxHeight := 0.0
	for i := range e.buildings {
		maxHeight = math.Max(maxHeight, e.buildings[i].height)
	}
	ground := h - groundInset
	roofLine := ground - maxHeight
	zone2Top := roofLine - maxHeight*0.5
	upperBand := h * 3 / 4

	e.gapStars = make([]star, gapStarCount)
	for i := range e.gapStars {
		s := &e.gapStars[i]
		s.x = rnd.Float64() * float64(e.ctx.W)

		band := rnd.Float64()
		switch {
		case band < 0.6:
			s.y = ground - band/0.6*maxHeight
		case band < 0.9:
			s.y = roofLine - (band-0.6)/0.3*(roofLine-zone2Top)
		default:
			s.y = upperBand - (band-0.9)/0.1*upperBand
		}

		s.vx = float64(rnd.Intn(20)-10) / 500
		s.vy = float64(rnd.Intn(20)-10) / 500
		s.base = 0.3 + float64(rnd.Intn(50))/100
		s.brightness = s.base
		s.twinklePhase = float64(rnd.Intn(628)) / 100
		s.twinkleSpeed = 0.6 + float64(rnd.Intn(80))/100
		s.bright = rnd.Intn(100) < 15
	}
}

func (e *Effect) Update(dt, elapsed float64) {
	step := dt * e.ctx.Opts.Speed
	e.simTime += step

	e.updateStars(e.skyStars, step)
	e.updateStars(e.gapStars, step)

	if *e.meteorFreq > 0 {
		e.meteorTimer += step
		interval := 3.0 / *e.meteorFreq
		if e.meteorTimer >= interval {
			e.meteorTimer -= interval
			e.launchMeteor()
		}
	}
	for i := range e.meteors {
		if e.meteors[i].life > 0 {
			e.updateMeteor(&e.meteors[i], step)
		}
	}
}

func (e *Effect) updateStars(stars []star, step float64) {
	drift := *e.skyMode == "dynamic"
	twinkle := *e.skyMode != "none"
	w, h := float64(e.ctx.W), float64(e.ctx.H)
	for i := range stars {
		s := &stars[i]
		if drift {
			s.x += s.vx * step
			s.y += s.vy * step

			if s.x < 0 {
				s.x = w
			}
			if s.x > w {
				s.x = 0
			}
			if s.y < 20 {
				s.y = h - 20
			}
			if s.y > h-20 {
				s.y = 20
			}
		}

		if !twinkle {
			s.brightness = s.base
			continue
		}
		s.brightness = s.base + math.Sin(e.simTime*s.twinkleSpeed+s.twinklePhase)*0.4
		if s.brightness < 0.2 {
			s.brightness = 0.2
		}
		if s.brightness > 1 {
			s.brightness = 1
		}
	}
}

func (e *Effect) launchMeteor() {
	for i := range e.meteors {
		if e.meteors[i].life > 0 {
			continue
		}
		rnd := e.ctx.Rand
		m := &e.meteors[i]
		*m = meteor{
			x:    -50,
			y:    float64(e.ctx.H)*0.4 - float64(rnd.Intn(e.ctx.H/3)),
			vx:   float64(250 + rnd.Intn(150)),
			vy:   float64(100 + rnd.Intn(100)),
			life: 1,
		}
		for j := 0; j < meteorTrailLen; j++ {
			m.trailX[j] = m.x
			m.trailY[j] = m.y
		}
		return
	}
}

func (e *Effect) updateMeteor(m *meteor, step float64) {
	m.x += m.vx * step
	m.y += m.vy * step
	m.life -= step * 1.2

	for i := meteorTrailLen - 1; i > 0; i-- {
		m.trailX[i] = m.trailX[i-1]
		m.trailY[i] = m.trailY[i-1]
		m.trailA[i] = m.trailA[i-1]
	}
	m.trailX[0] = m.x
	m.trailY[0] = m.y
	m.trailA[0] = m.life

	if m.life <= 0 || m.x > float64(e.ctx.W)+100 || m.y > float64(e.ctx.H)+100 {
		m.life = 0
	}
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	screen.Fill(color.Black)
	e.drawStars(screen, e.skyStars)
	e.drawStars(screen, e.gapStars)
	e.drawBuildings(screen)
	for i := range e.meteors {
		if e.meteors[i].life > 0 {
			e.drawMeteor(screen, &e.meteors[i])
		}
	}
}

func (e *Effect) drawStars(screen render.Image, stars []star) {
	r := e.ctx.Renderer
	for i := range stars {
		s := &stars[i]

		g, b := 1.0, 0.9
		if s.bright {
			g, b = 0.95, 0.85
		}
		clr := color.RGBA{
			R: uint8(255 * s.brightness),
			G: uint8(255 * g * s.brightness),
			B: uint8(255 * b * s.brightness),
			A: 255,
		}
		r.FillRect(screen, float32(s.x), float32(s.y), 1, 1, clr)

		if s.bright && s.brightness > 0.8 {
			glow := color.RGBA{
				R: uint8(float64(clr.R) * 0.3),
				G: uint8(float64(clr.G) * 0.3),
				B: uint8(float64(clr.B) * 0.3),
				A: 255,
			}
			r.FillRect(screen, float32(s.x-1), float32(s.y), 1, 1, glow)
			r.FillRect(screen, float32(s.x+1), float32(s.y), 1, 1, glow)
			r.FillRect(screen, float32(s.x), float32(s.y-1), 1, 1, glow)
			r.FillRect(screen, float32(s.x), float32(s.y+1), 1, 1, glow)
		}
	}
}

func (e *Effect) drawBuildings(screen render.Image) {
	r := e.ctx.Renderer
	ground := float32(e.ctx.H - groundInset)
	for i := range e.buildings {
		b := &e.buildings[i]
		r.FillRect(screen, float32(b.x), ground-float32(b.height),
			float32(b.width), float32(b.height), buildingColor)
	}
}

func (e *Effect) drawMeteor(screen render.Image, m *meteor) {
	r := e.ctx.Renderer
	for i := 0; i < meteorTrailLen; i++ {
		if m.trailA[i] <= 0.1 {
			continue
		}
		a := m.trailA[i]
		clr := color.RGBA{
			R: uint8(204 * a),
			G: uint8(230 * a),
			B: uint8(255 * a),
			A: 255,
		}
		r.FillRect(screen, float32(m.trailX[i]), float32(m.trailY[i]), 1, 1, clr)
	}
	head := uint8(255 * math.Min(m.life, 1))
	r.FillRect(screen, float32(m.x), float32(m.y), 2, 2, color.RGBA{head, head, head, 255})
}

func (e *Effect) Teardown() {}
