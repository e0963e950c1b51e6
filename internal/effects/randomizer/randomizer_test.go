package randomizer

import (
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"omarchy.dev/screensaver/internal/platform"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

type fakeProcess struct {
	signals int
	waited  bool
}

func (p *fakeProcess) Pid() int { return 1234 }

func (p *fakeProcess) Signal(sig os.Signal) error {
	p.signals++
	return nil
}

func (p *fakeProcess) Wait() error {
	p.waited = true
	return nil
}

type fakeRunner struct {
	started []string
	args    [][]string
	procs   []*fakeProcess
}

func (r *fakeRunner) Run(name string, args ...string) error { return nil }

func (r *fakeRunner) Output(name string, args ...string) ([]byte, error) {
	return nil, nil
}

func (r *fakeRunner) Start(name string, args ...string) (platform.Process, error) {
	r.started = append(r.started, name)
	r.args = append(r.args, args)
	p := &fakeProcess{}
	r.procs = append(r.procs, p)
	return p, nil
}

func makeInstallDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("#!"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newTestEffect(t *testing.T, dir string, args []string) (*Effect, *fakeRunner) {
	t.Helper()
	o := saver.NewOptions("randomizer")
	e := New(o)
	if err := o.Parse(args); err != nil {
		t.Fatal(err)
	}
	runner := &fakeRunner{}
	e.dir = dir
	e.runner = runner
	e.ctx = &saver.Context{W: 1280, H: 720, Rand: rand.New(rand.NewSource(9)), Opts: o}

	savers, err := scanSavers(dir)
	if err != nil {
		t.Fatal(err)
	}
	e.savers = savers
	return e, runner
}

func TestScanAcceptsOnlyKnownNames(t *testing.T) {
	dir := makeInstallDir(t, "matrix", "messages2", "warp", "README", "screensaver-config")
	savers, err := scanSavers(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(savers) != 3 {
		t.Fatalf("scan found %v, want matrix, messages2 and warp", savers)
	}
}

func TestScanEmptyDirErrors(t *testing.T) {
	if _, err := scanSavers(t.TempDir()); err == nil {
		t.Fatal("scan of an empty directory must fail")
	}
}

func TestFirstUpdateLaunchesAChild(t *testing.T) {
	dir := makeInstallDir(t, "matrix", "warp")
	e, runner := newTestEffect(t, dir, nil)

	e.Update(1.0/60, 0)
	if len(runner.started) != 1 {
		t.Fatalf("started %d children, want 1", len(runner.started))
	}
	if got := runner.args[0]; len(got) != 2 || got[0] != "-f" {
		t.Fatalf("child args = %v, want -f forwarding", got)
	}
	if e.bannerLeft <= 0 {
		t.Error("banner not armed after launch")
	}
}

func TestRotationPicksADifferentSaver(t *testing.T) {
	dir := makeInstallDir(t, "matrix", "warp", "globe")
	e, runner := newTestEffect(t, dir, []string{"-d", "10"})

	e.Update(1.0/60, 0)
	first := e.current
	firstChild := runner.procs[0]

	// Step just past the 10 second slot.
	for i := 0; i < 11*60; i++ {
		e.Update(1.0/60, 0)
	}
	if len(runner.started) != 2 {
		t.Fatalf("started %d children after one interval, want 2", len(runner.started))
	}
	if e.current == first {
		t.Error("rotation repeated the same saver")
	}
	if firstChild.signals == 0 || !firstChild.waited {
		t.Error("previous child was not terminated and reaped")
	}
}

func TestDurationClamped(t *testing.T) {
	dir := makeInstallDir(t, "matrix", "warp")
	e, _ := newTestEffect(t, dir, []string{"-d", "5"})
	if *e.duration != 10 {
		t.Errorf("duration = %d, want clamp to 10", *e.duration)
	}

	e2, _ := newTestEffect(t, dir, []string{"-d", "9999"})
	if *e2.duration != 300 {
		t.Errorf("duration = %d, want clamp to 300", *e2.duration)
	}
}

func TestBannerSuppressedByFlag(t *testing.T) {
	dir := makeInstallDir(t, "matrix", "warp")
	e, _ := newTestEffect(t, dir, []string{"-r", "0"})

	e.Update(1.0/60, 0)
	if e.bannerLeft > 0 {
		t.Error("banner armed with -r 0")
	}
}

func TestTeardownStopsTheChild(t *testing.T) {
	dir := makeInstallDir(t, "matrix", "warp")
	e, runner := newTestEffect(t, dir, nil)

	e.Update(1.0/60, 0)
	e.Teardown()
	if runner.procs[0].signals == 0 || !runner.procs[0].waited {
		t.Error("teardown left the child running")
	}
	if e.child != nil {
		t.Error("child handle not cleared")
	}
}

type fakeImage struct{ render.Image }

func (fakeImage) Fill(c color.Color) {}

type fakeRenderer struct {
	render.Renderer
	debug  []string
	debugX []int
	debugY []int
}

func (r *fakeRenderer) DebugText(dst render.Image, str string, x, y int) {
	r.debug = append(r.debug, str)
	r.debugX = append(r.debugX, x)
	r.debugY = append(r.debugY, y)
}

func TestBannerFallsBackToDebugText(t *testing.T) {
	dir := makeInstallDir(t, "matrix", "warp")
	e, _ := newTestEffect(t, dir, nil)
	fr := &fakeRenderer{}
	e.ctx.Renderer = fr

	e.Update(1.0/60, 0)
	e.Draw(fakeImage{}, 0)

	if len(fr.debug) != 1 {
		t.Fatalf("got %d banner draws, want 1", len(fr.debug))
	}
	want := "Now Playing: " + e.savers[e.current]
	if fr.debug[0] != want {
		t.Errorf("banner text = %q, want %q", fr.debug[0], want)
	}
	if x, y := fr.debugX[0], fr.debugY[0]; x < 0 || x >= e.ctx.W || y < 0 || y >= e.ctx.H {
		t.Errorf("banner anchored off screen at (%d,%d)", x, y)
	}
}
