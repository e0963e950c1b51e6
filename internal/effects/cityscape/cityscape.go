// Package cityscape scrolls a three-layer parallax skyline past the viewer.
// Foreground buildings show individual windows whose lights flick on and off
// on per-window timers, street traffic crosses at ground level, balloons,
// birds and helicopters drift through the sky, and optional rain or snow
// falls over the whole scene.
package cityscape

import (
	"image/color"
	"math"

	"omarchy.dev/screensaver/internal/particles"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	layerCount    = 3
	maxCars       = 10
	maxFloaters   = 20
	maxParticles  = 500
	buildingTypes = 5

	maxWindowRows = 32
	maxWindowCols = 16

	// Lit windows per building stay inside this band; a toggle that would
	// leave it is skipped.
	litBandLow  = 0.20
	litBandHigh = 0.40
)

var layerBuildingCounts = [layerCount]int{15, 12, 8}

// Per-frame scroll in pixels at 60fps, slowest layer furthest back.
var layerScrollSpeeds = [layerCount]float64{0.2, 0.5, 1.0}

var buildingColors = [buildingTypes]color.RGBA{
	{80, 80, 90, 255},
	{90, 85, 75, 255},
	{70, 70, 85, 255},
	{85, 75, 70, 255},
	{75, 85, 75, 255},
}

var carColors = []color.RGBA{
	{255, 0, 0, 255},
	{0, 0, 255, 255},
	{255, 255, 0, 255},
	{255, 255, 255, 255},
	{200, 200, 200, 255},
	{100, 100, 100, 255},
}

type window struct {
	lit      bool
	toggleAt float64
}

type building struct {
	x, y          int
	width, height int
	kind          int
	rows, cols    int
	windows       [maxWindowRows][maxWindowCols]window
	litCount      int
}

type car struct {
	x, y  float64
	vx    float64
	truck bool
	color color.RGBA
}

// Floating object species.
const (
	floatBalloon = iota
	floatBird
	floatHelicopter
)

type floater struct {
	x, y   float64
	vx, vy float64
	kind   int
	color  color.RGBA
}

// Weather particle species.
const (
	weatherRain = iota
	weatherSnow
)

// Effect is the parallax city.
type Effect struct {
	ctx     *saver.Context
	weather *bool

	buildings [layerCount][]building
	scroll    [layerCount]float64
	cars      [maxCars]car
	floaters  [maxFloaters]floater
	pool      *particles.Pool
	simTime   float64
}

// New registers the cityscape flags on o and returns the effect.
func New(o *saver.Options) *Effect {
	return &Effect{
		weather: o.Bool("w", true, "Enable weather effects"),
		pool:    particles.NewPool(maxParticles),
	}
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx
	for layer := 0; layer < layerCount; layer++ {
		count := layerBuildingCounts[layer]
		spacing := (ctx.W + 200) / count
		e.buildings[layer] = make([]building, count)
		for i := range e.buildings[layer] {
			x := i*spacing - 100 + ctx.Rand.Intn(spacing/2)
			e.buildings[layer][i] = e.makeBuilding(x, layer)
		}
	}
	for i := range e.cars {
		e.cars[i] = e.makeCar()
	}
	for i := range e.floaters {
		e.floaters[i] = e.makeFloater()
	}
	return nil
}

func (e *Effect) makeBuilding(x, layer int) building {
	rnd := e.ctx.Rand
	b := building{
		x:     x,
		kind:  rnd.Intn(buildingTypes),
		width: 40 + rnd.Intn(60),
	}
	heightScale := 0.3 + float64(layer)*0.3
	b.height = int(float64(e.ctx.H) * heightScale * (0.4 + float64(rnd.Intn(60))/100))
	groundY := float64(e.ctx.H) * 0.8
	b.y = int(groundY) - b.height

	b.rows = b.height / 25
	b.cols = b.width / 15
	if b.rows > maxWindowRows {
		b.rows = maxWindowRows
	}
	if b.cols > maxWindowCols {
		b.cols = maxWindowCols
	}

	// Seed the lit population inside the band so the steady-state rule
	// holds from the first frame.
	n := b.rows * b.cols
	if n > 0 {
		target := int(float64(n) * (litBandLow + rnd.Float64()*(litBandHigh-litBandLow)))
		for _, idx := range rnd.Perm(n)[:target] {
			b.windows[idx/b.cols][idx%b.cols].lit = true
		}
		b.litCount = target
		for r := 0; r < b.rows; r++ {
			for c := 0; c < b.cols; c++ {
				b.windows[r][c].toggleAt = 0.5 + rnd.Float64()*1.5
			}
		}
	}
	return b
}

func (e *Effect) makeCar() car {
	rnd := e.ctx.Rand
	c := car{
		y:     float64(e.ctx.H)*0.82 + float64(rnd.Intn(30)-15),
		vx:    1.0 + float64(rnd.Intn(20))/10,
		truck: rnd.Intn(2) == 1,
		color: carColors[rnd.Intn(len(carColors))],
	}
	if rnd.Intn(2) == 1 {
		c.x = -50 - float64(rnd.Intn(200))
	} else {
		c.x = float64(e.ctx.W) + 50 + float64(rnd.Intn(200))
		c.vx = -c.vx
	}
	return c
}

func (e *Effect) makeFloater() floater {
	rnd := e.ctx.Rand
	f := floater{kind: rnd.Intn(3), x: float64(rnd.Intn(e.ctx.W))}
	h := float64(e.ctx.H)
	switch f.kind {
	case floatBalloon:
		f.y = h * 0.9
		f.vx = float64(rnd.Intn(20)-10) / 10
		f.vy = -0.5 - float64(rnd.Intn(10))/10
		f.color = color.RGBA{uint8(rnd.Intn(255)), uint8(rnd.Intn(255)), uint8(rnd.Intn(255)), 255}
	case floatBird:
		f.y = h*0.4 + float64(rnd.Intn(100))
		f.vx = 2.0 + float64(rnd.Intn(40))/10
		f.vy = float64(rnd.Intn(20)-10) / 10
		if rnd.Intn(2) == 1 {
			f.vx = -f.vx
		}
		f.color = color.RGBA{100, 100, 100, 255}
	default:
		f.y = h*0.3 + float64(rnd.Intn(80))
		f.vx = 1.5 + float64(rnd.Intn(20))/10
		if rnd.Intn(2) == 1 {
			f.vx = -f.vx
		}
		f.color = color.RGBA{50, 50, 50, 255}
	}
	return f
}

func (e *Effect) Update(dt, elapsed float64) {
	frames := dt * 60 * e.ctx.Opts.Speed
	e.simTime += dt * e.ctx.Opts.Speed
	w, h := float64(e.ctx.W), float64(e.ctx.H)

	for layer := 0; layer < layerCount; layer++ {
		e.scroll[layer] -= layerScrollSpeeds[layer] * frames
		if e.scroll[layer] < -200 {
			e.scroll[layer] = 0
		}
	}

	for i := range e.cars {
		c := &e.cars[i]
		c.x += c.vx * frames
		if c.x > w+100 {
			c.x = -100 - float64(e.ctx.Rand.Intn(100))
		}
		if c.x < -100 {
			c.x = w + 100 + float64(e.ctx.Rand.Intn(100))
		}
	}

	for i := range e.floaters {
		f := &e.floaters[i]
		f.x += f.vx * frames
		f.y += f.vy * frames
		if f.x > w+50 {
			f.x = -50
		}
		if f.x < -50 {
			f.x = w + 50
		}
		if f.y < -50 {
			f.y = h + 50
			f.x = float64(e.ctx.Rand.Intn(e.ctx.W))
			f.vx = float64(e.ctx.Rand.Intn(20)-10) / 10
		}
	}

	e.toggleWindows()
	e.updateWeather(frames, w, h)
}

// toggleWindows runs the per-window timers. An expired window toggles with
// even odds, but only when the building's lit count stays inside the band.
func (e *Effect) toggleWindows() {
	for layer := range e.buildings {
		for i := range e.buildings[layer] {
			b := &e.buildings[layer][i]
			n := b.rows * b.cols
			if n == 0 {
				continue
			}
			low, high := litBounds(n)
			for r := 0; r < b.rows; r++ {
				for c := 0; c < b.cols; c++ {
					win := &b.windows[r][c]
					if e.simTime < win.toggleAt {
						continue
					}
					win.toggleAt = e.simTime + 0.5 + e.ctx.Rand.Float64()*1.5
					if e.ctx.Rand.Intn(2) == 0 {
						continue
					}
					next := b.litCount + 1
					if win.lit {
						next = b.litCount - 1
					}
					if next < low || next > high {
						continue
					}
					win.lit = !win.lit
					b.litCount = next
				}
			}
		}
	}
}

// litBounds returns the permitted lit-count range for n windows.
func litBounds(n int) (low, high int) {
	return int(math.Floor(litBandLow * float64(n))), int(math.Floor(litBandHigh * float64(n)))
}

func (e *Effect) updateWeather(frames, w, h float64) {
	if !*e.weather {
		return
	}
	rnd := e.ctx.Rand
	if e.pool.Len() < maxParticles-50 {
		for i := 0; i < 3; i++ {
			kind := rnd.Intn(2)
			p := particles.Particle{
				X:    float64(rnd.Intn(e.ctx.W)),
				Y:    -10,
				VY:   2.0 + float64(rnd.Intn(20))/10,
				Life: 1,
				Kind: kind,
			}
			if kind == weatherRain {
				p.VX = 0.1
				p.Color = color.RGBA{100, 150, 255, 200}
			} else {
				p.VY *= 0.5
				p.Color = color.RGBA{255, 255, 255, 200}
			}
			e.pool.Spawn(p)
		}
	}
	e.pool.Each(func(p *particles.Particle) {
		if p.Y > h+20 {
			p.Life = 0
		}
	})
	e.pool.Update(frames)
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	screen.Fill(e.skyColor(elapsed))
	for layer := 0; layer < layerCount; layer++ {
		e.drawLayer(screen, layer)
	}
	e.drawCars(screen)
	e.drawFloaters(screen)
	if *e.weather {
		e.drawWeather(screen)
	}
}

// skyColor cycles slowly between day and night tones.
func (e *Effect) skyColor(elapsed float64) color.RGBA {
	t := elapsed / 10 * e.ctx.Opts.Speed
	r := clampChan(135 + 120*math.Sin(t))
	g := clampChan(206 + 50*math.Sin(t+2))
	b := clampChan(235 + 20*math.Sin(t+4))
	return color.RGBA{r, g, b, 255}
}

func clampChan(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, v)))
}

func (e *Effect) drawLayer(screen render.Image, layer int) {
	r := e.ctx.Renderer
	w := e.ctx.W
	scale := 0.3 + float64(layer)*0.3
	for i := range e.buildings[layer] {
		b := &e.buildings[layer][i]
		bw := int(float64(b.width) * scale)
		bh := int(float64(b.height) * scale)
		bx := b.x + int(e.scroll[layer])
		for bx+bw < 0 {
			bx += w + 200
		}
		for bx > w {
			bx -= w + 200
		}
		if bx+bw < 0 || bx > w {
			continue
		}
		r.FillRect(screen, float32(bx), float32(b.y), float32(bw), float32(bh), buildingColors[b.kind])

		// Windows read as windows only at foreground scale.
		if layer != layerCount-1 {
			continue
		}
		e.drawWindows(screen, b, bx, bw, bh)
	}
}

func (e *Effect) drawWindows(screen render.Image, b *building, bx, bw, bh int) {
	if b.rows == 0 || b.cols == 0 {
		return
	}
	r := e.ctx.Renderer
	ww := bw / b.cols
	wh := bh / b.rows
	const margin = 2
	lit := color.RGBA{255, 255, 200, 255}
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if !b.windows[row][col].lit {
				continue
			}
			r.FillRect(screen,
				float32(bx+col*ww+margin), float32(b.y+row*wh+margin),
				float32(ww-2*margin), float32(wh-2*margin), lit)
		}
	}
}

func (e *Effect) drawCars(screen render.Image) {
	r := e.ctx.Renderer
	for i := range e.cars {
		c := &e.cars[i]
		cw, ch := float32(20), float32(8)
		if c.truck {
			cw, ch = 25, 10
		}
		r.FillRect(screen, float32(c.x), float32(c.y), cw, ch, c.color)
		r.FillRect(screen, float32(c.x)+cw-3, float32(c.y)+1, 2, ch-2, color.White)
	}
}

func (e *Effect) drawFloaters(screen render.Image) {
	r := e.ctx.Renderer
	for i := range e.floaters {
		f := &e.floaters[i]
		x, y := float32(f.x), float32(f.y)
		switch f.kind {
		case floatBalloon:
			r.FillCircle(screen, x, y, 4, f.color)
			r.StrokeLine(screen, x, y+4, x, y+14, 1, f.color)
		case floatBird:
			r.StrokeLine(screen, x-3, y, x+3, y, 1, f.color)
			r.StrokeLine(screen, x+3, y, x, y-3, 1, f.color)
			r.StrokeLine(screen, x, y-3, x-3, y, 1, f.color)
		default:
			r.FillRect(screen, x-6, y-6, 12, 12, f.color)
		}
	}
}

func (e *Effect) drawWeather(screen render.Image) {
	r := e.ctx.Renderer
	e.pool.Each(func(p *particles.Particle) {
		c := p.Color
		c.A = uint8(p.Life * float64(c.A))
		if p.Kind == weatherRain {
			r.StrokeLine(screen, float32(p.X), float32(p.Y),
				float32(p.X+p.VX*3), float32(p.Y+p.VY*3), 1, c)
		} else {
			r.FillCircle(screen, float32(p.X), float32(p.Y), 3, c)
		}
	})
}

func (e *Effect) Teardown() {}
