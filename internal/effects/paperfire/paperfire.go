// Package paperfire burns a sheet of paper on screen. An 80x80 intensity
// grid spreads fire from three bottom ignition points, chars the paper
// behind it, and sheds ember, ash and smoke particles. Once the sheet has
// burnt through and the last particle fades, the sheet resets and burns
// again.
package paperfire

import (
	"image/color"
	"math"

	"omarchy.dev/screensaver/internal/particles"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	paperW = 600
	paperH = 800

	gridSize     = 80
	maxParticles = 1000

	// The paper fades in over the first two seconds; the burn runs about
	// twenty. Ten quiet seconds after that the cycle restarts.
	paperAppearSecs = 2.0
	totalBurnSecs   = 20.0
	restartLullSecs = 10.0
)

// Particle species.
const (
	kindEmber = iota
	kindAsh
	kindSmoke
)

// Effect is the burning paper simulation.
type Effect struct {
	ctx *saver.Context

	intensity [gridSize][gridSize]float64
	scratch   [gridSize][gridSize]float64
	burn      [gridSize][gridSize]float64
	ash       [gridSize][gridSize]float64

	pool     *particles.Pool
	paper    render.Image
	animTime float64
}

// New returns the effect; it takes no flags beyond the shared set.
func New(o *saver.Options) *Effect {
	return &Effect{pool: particles.NewPool(maxParticles)}
}

// Init builds the paper texture and lights the ignition points.
func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx
	e.paper = ctx.Renderer.NewImage(paperW, paperH)
	e.texturePaper()
	e.ignite()
	return nil
}

// texturePaper fills the sheet with a creamy base and a faint 4px grain.
func (e *Effect) texturePaper() {
	r := e.ctx.Renderer
	r.FillRect(e.paper, 0, 0, paperW, paperH, color.RGBA{255, 250, 245, 255})
	for y := 0; y < paperH; y += 4 {
		for x := 0; x < paperW; x += 4 {
			shade := uint8(245 + e.ctx.Rand.Intn(11))
			r.FillRect(e.paper, float32(x), float32(y), 4, 4,
				color.RGBA{shade, shade - 5, shade - 10, 255})
		}
	}
}

// ignite seeds fire at the bottom corners and bottom centre of the sheet.
func (e *Effect) ignite() {
	e.intensity[5][gridSize-5] = 0.8
	e.intensity[gridSize-5][gridSize-5] = 0.8
	e.intensity[gridSize/2][gridSize-5] = 0.6
}

// reset clears the whole simulation back to a fresh sheet.
func (e *Effect) reset() {
	e.animTime = 0
	for x := 0; x < gridSize; x++ {
		for y := 0; y < gridSize; y++ {
			e.intensity[x][y] = 0
			e.burn[x][y] = 0
			e.ash[x][y] = 0
		}
	}
	e.ignite()
}

func (e *Effect) Update(dt, elapsed float64) {
	// The simulation constants are per-frame amounts at sixty frames a
	// second, so convert the wall-clock delta into frame units.
	frames := dt * 60 * e.ctx.Opts.Speed
	e.animTime += dt * e.ctx.Opts.Speed

	e.spread(frames)
	e.char(frames)
	e.drift(frames)

	if e.animTime > totalBurnSecs+restartLullSecs && e.pool.Len() == 0 {
		e.reset()
	}
}

// spread diffuses fire intensity to the four neighbours of every burning
// cell and damps the source.
func (e *Effect) spread(frames float64) {
	for x := 0; x < gridSize; x++ {
		e.scratch[x] = e.intensity[x]
	}
	for y := 1; y < gridSize-1; y++ {
		for x := 1; x < gridSize-1; x++ {
			if v := e.intensity[x][y]; v > 0.1 {
				amount := v * 0.15 * frames * 0.5
				e.scratch[x-1][y] += amount
				e.scratch[x+1][y] += amount
				e.scratch[x][y-1] += amount
				e.scratch[x][y+1] += amount
				e.scratch[x][y] -= v * 0.1 * frames
			}
		}
	}
	// Border cells receive transfer from interior neighbours, so clamp the
	// whole grid, not just the source cells.
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			e.scratch[x][y] = clamp01(e.scratch[x][y])
		}
	}
	for x := 0; x < gridSize; x++ {
		e.intensity[x] = e.scratch[x]
	}
}

// char advances burn where the fire is hot, turns deep burn into ash, and
// sheds particles from burning cells.
func (e *Effect) char(frames float64) {
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			if e.intensity[x][y] > 0.5 {
				e.burn[x][y] = clamp01(e.burn[x][y] + e.intensity[x][y]*0.02*frames)
				if e.ctx.Rand.Intn(200) < 3 {
					e.shed(x, y)
				}
			}
			if e.burn[x][y] > 0.8 {
				e.ash[x][y] = clamp01(e.ash[x][y] + 0.01*frames)
			}
		}
	}
}

// shed spawns one ember, ash flake or smoke puff from a burning cell.
func (e *Effect) shed(gx, gy int) {
	rnd := e.ctx.Rand
	px, py := e.paperOrigin()
	p := particles.Particle{
		X:     px + float64(gx)*(paperW/float64(gridSize)) + float64(rnd.Intn(10)-5),
		Y:     py + float64(gy)*(paperH/float64(gridSize)),
		VX:    float64(rnd.Intn(40)-20) / 10,
		VY:    -float64(rnd.Intn(20)+10) / 10,
		Life:  1,
		Decay: 0.01,
		Size:  float64(2 + rnd.Intn(3)),
		Kind:  rnd.Intn(3),
		Phase: float64(e.pool.Len()),
	}
	switch p.Kind {
	case kindEmber:
		p.Color = color.RGBA{255, uint8(100 + rnd.Intn(100)), 0, 255}
	case kindAsh:
		gray := uint8(50 + rnd.Intn(100))
		p.Color = color.RGBA{gray, gray, gray, 200}
		p.Gravity = 0.1
	case kindSmoke:
		gray := uint8(150 + rnd.Intn(100))
		p.Color = color.RGBA{gray, gray, gray, 100}
		p.VY = -float64(rnd.Intn(30)+5) / 10
		p.Gravity = -0.05
		p.Decay = 0.015
	}
	e.pool.Spawn(p)
}

// drift advances the particle pool; smoke additionally sways with the wind.
func (e *Effect) drift(frames float64) {
	e.pool.Each(func(p *particles.Particle) {
		if p.Kind == kindSmoke {
			p.VX += math.Sin(e.animTime+p.Phase) * 0.2 * frames
		}
	})
	e.pool.Update(frames)
}

// paperOrigin is the top-left of the sheet: centred, bottom-aligned.
func (e *Effect) paperOrigin() (x, y float64) {
	return float64(e.ctx.W-paperW) / 2, float64(e.ctx.H - paperH)
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	screen.Fill(color.RGBA{20, 20, 20, 255})
	px, py := e.paperOrigin()

	alpha := 1.0
	if e.animTime < paperAppearSecs {
		alpha = e.animTime / paperAppearSecs
	}

	opts := render.DrawImageOptions{GeoM: render.NewGeoM(), Alpha: float32(alpha)}
	opts.GeoM.Translate(px, py)
	screen.DrawImage(e.paper, &opts)

	e.drawBurn(screen, px, py)
	e.drawParticles(screen)
}

// drawBurn overlays char and ash cells on the sheet. Ash darkens to black
// as it thickens; active burn glows yellow through red by depth.
func (e *Effect) drawBurn(screen render.Image, px, py float64) {
	r := e.ctx.Renderer
	const cw = paperW / gridSize
	const ch = paperH / gridSize
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			cx := float32(px + float64(x*cw))
			cy := float32(py + float64(y*ch))
			if e.ash[x][y] > 0 {
				gray := uint8(255 - e.ash[x][y]*255)
				r.FillRect(screen, cx, cy, cw+1, ch+1, color.RGBA{gray, gray, gray, 255})
			} else if e.burn[x][y] > 0 {
				r.FillRect(screen, cx, cy, cw+1, ch+1, burnColor(e.burn[x][y], e.intensity[x][y]))
			}
		}
	}
}

func (e *Effect) drawParticles(screen render.Image) {
	r := e.ctx.Renderer
	e.pool.Each(func(p *particles.Particle) {
		size := float32(p.Size * p.Life)
		if size < 1 {
			size = 1
		}
		c := p.Color
		c.A = uint8(p.Life * float64(c.A))
		r.FillRect(screen, float32(p.X)-size/2, float32(p.Y)-size/2, size, size, c)
	})
}

func (e *Effect) Teardown() {
	if e.paper != nil {
		e.paper.Dispose()
	}
}

// burnColor maps burn depth to a yellow-red-black ramp, faded by how hot
// the cell still is.
func burnColor(burn, intensity float64) color.RGBA {
	r, g := 255.0, burn*255
	if burn > 0.5 {
		r = 255 - (burn-0.5)*2*255
		g = 128 - (burn-0.5)*256
	}
	if g < 0 {
		g = 0
	}
	return color.RGBA{uint8(r), uint8(g), 0, uint8(intensity * 200)}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
