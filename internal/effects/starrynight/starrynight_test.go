package starrynight

import (
	"math/rand"
	"testing"

	"omarchy.dev/screensaver/internal/saver"
)

func newTestEffect(t *testing.T, args []string) *Effect {
	t.Helper()
	o := saver.NewOptions("starrynight")
	e := New(o)
	if err := o.Parse(args); err != nil {
		t.Fatal(err)
	}
	ctx := &saver.Context{W: 1920, H: 1080, Rand: rand.New(rand.NewSource(7)), Opts: o}
	if err := e.Init(ctx); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestSkyStarCountScalesWithDensity(t *testing.T) {
	cases := []struct {
		density float64
		want    int
	}{
		{0, 150},
		{0.5, 325},
		{1, 500},
	}
	for _, tc := range cases {
		if got := skyStarCount(tc.density); got != tc.want {
			t.Errorf("skyStarCount(%v) = %d, want %d", tc.density, got, tc.want)
		}
	}

	e := newTestEffect(t, []string{"-d", "1"})
	if len(e.skyStars) != 500 {
		t.Errorf("dense sky has %d stars, want 500", len(e.skyStars))
	}
	if len(e.gapStars) != gapStarCount {
		t.Errorf("gap field has %d stars, want %d", len(e.gapStars), gapStarCount)
	}
}

func TestBuildingsFormASkyline(t *testing.T) {
	e := newTestEffect(t, nil)
	for i, b := range e.buildings {
		if b.width < 15 || b.width > 64 {
			t.Errorf("building %d width %.1f outside [15,64]", i, b.width)
		}
		if b.height < 120 || b.height >= 270 {
			t.Errorf("building %d height %.1f outside [120,270)", i, b.height)
		}
	}
}

func TestStarsStayWithinWrapBounds(t *testing.T) {
	e := newTestEffect(t, nil)
	for step := 0; step < 600; step++ {
		e.Update(1.0/60, float64(step)/60)
	}
	w, h := float64(e.ctx.W), float64(e.ctx.H)
	for i := range e.skyStars {
		s := &e.skyStars[i]
		if s.x < 0 || s.x > w {
			t.Fatalf("star %d x = %.1f escaped [0,%.0f]", i, s.x, w)
		}
		if s.y < 20 || s.y > h-20 {
			t.Fatalf("star %d y = %.1f escaped [20,%.0f]", i, s.y, h-20)
		}
		if s.brightness < 0.2 || s.brightness > 1 {
			t.Fatalf("star %d brightness %.2f escaped [0.2,1]", i, s.brightness)
		}
	}
}

func TestStaticModeFreezesPositions(t *testing.T) {
	e := newTestEffect(t, []string{"-r", "static"})
	x0, y0 := e.skyStars[0].x, e.skyStars[0].y
	for step := 0; step < 120; step++ {
		e.Update(1.0/60, float64(step)/60)
	}
	if e.skyStars[0].x != x0 || e.skyStars[0].y != y0 {
		t.Error("static mode must not drift stars")
	}
	if e.skyStars[0].brightness == e.skyStars[0].base {
		// A coincidental equality is possible but vanishingly unlikely
		// after two seconds of twinkling.
		t.Error("static mode should still twinkle")
	}
}

func TestNoneModeHoldsBrightness(t *testing.T) {
	e := newTestEffect(t, []string{"-r", "none"})
	for step := 0; step < 60; step++ {
		e.Update(1.0/60, float64(step)/60)
	}
	for i := range e.skyStars {
		if e.skyStars[i].brightness != e.skyStars[i].base {
			t.Fatal("none mode must hold base brightness")
		}
	}
}

func TestMeteorsLaunchOnSchedule(t *testing.T) {
	e := newTestEffect(t, []string{"-m", "1"})
	sawActive := false
	for step := 0; step < 240; step++ {
		e.Update(1.0/60, float64(step)/60)
		for i := range e.meteors {
			if e.meteors[i].life > 0 {
				sawActive = true
			}
		}
	}
	if !sawActive {
		t.Fatal("no meteor launched in the first four seconds at default frequency")
	}
}

func TestMeteorsTravelDownRightAndExpire(t *testing.T) {
	e := newTestEffect(t, nil)
	e.launchMeteor()
	m := &e.meteors[0]
	if m.life != 1 {
		t.Fatal("launch did not arm the first slot")
	}
	x0, y0 := m.x, m.y

	e.updateMeteor(m, 0.1)
	if m.x <= x0 || m.y <= y0 {
		t.Errorf("meteor moved (%.1f,%.1f) -> (%.1f,%.1f), want down-right", x0, y0, m.x, m.y)
	}
	if m.trailX[0] != m.x || m.trailY[0] != m.y {
		t.Error("trail head does not track the meteor")
	}

	// Life drains at 1.2/s, so one simulated second finishes it.
	for i := 0; i < 10; i++ {
		e.updateMeteor(m, 0.1)
	}
	if m.life != 0 {
		t.Errorf("meteor life = %.2f after 1.1s, want 0", m.life)
	}
}

func TestZeroFrequencyDisablesMeteors(t *testing.T) {
	e := newTestEffect(t, []string{"-m", "0"})
	for step := 0; step < 600; step++ {
		e.Update(1.0/60, float64(step)/60)
	}
	for i := range e.meteors {
		if e.meteors[i].life > 0 {
			t.Fatal("meteor active with frequency 0")
		}
	}
}
