// Package randomizer cycles through the other screensaver binaries. It
// scans the install directory for known effect names, launches one as a
// child process, and every rotation interval terminates it and launches a
// different one. Between launches it shows a short "Now Playing" banner.
package randomizer

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"omarchy.dev/screensaver/internal/platform"
	"omarchy.dev/screensaver/internal/render"
	"omarchy.dev/screensaver/internal/saver"
)

const (
	maxSavers    = 32
	bannerSecs   = 3.0
	reapTimeout  = 2 * time.Second
	bannerPoints = 18
)

// knownPrefixes are the effect binary names the scan accepts. Prefix
// matching keeps variants like messages2 in the rotation.
var knownPrefixes = []string{
	"bouncingball",
	"cityscape",
	"fadeout",
	"fishsaver",
	"globe",
	"hardrain",
	"lifeforms",
	"logo",
	"matrix",
	"messages",
	"paperfire",
	"rainstorm",
	"spotlight",
	"starrynight",
	"starsclean",
	"toastersaver",
	"warp",
}

// Effect implements saver.Effect as a child-process supervisor.
type Effect struct {
	ctx *saver.Context

	duration  *int
	showNames *bool

	// dir is the directory scanned for effect binaries.
	dir    string
	runner platform.Runner

	savers  []string
	current int
	child   platform.Process

	switchTimer float64
	bannerLeft  float64
	font        render.Font
}

// New registers -d (seconds per effect) and -r (show names).
func New(o *saver.Options) *Effect {
	return &Effect{
		duration:  o.Int("d", 45, 10, 300, "duration per screensaver in seconds"),
		showNames: o.Bool("r", true, "show effect name during transitions"),
		dir:       InstallDir(),
		runner:    &platform.ExecRunner{},
		current:   -1,
	}
}

// InstallDir is where the selector installs the effect binaries.
func InstallDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "omarchy", "branding", "screensaver")
}

func (e *Effect) Init(ctx *saver.Context) error {
	e.ctx = ctx

	savers, err := scanSavers(e.dir)
	if err != nil {
		return err
	}
	e.savers = savers

	// The banner is cosmetic; a machine without the fonts still rotates.
	if ttf, err := platform.ReadFont(platform.MonoFontPaths); err == nil {
		if f, err := ctx.Renderer.LoadFont(ttf, bannerPoints); err == nil {
			e.font = f
		}
	}
	return nil
}

// scanSavers lists dir entries whose names start with a known effect
// prefix, excluding this supervisor itself.
func scanSavers(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %v: %w", dir, err, saver.ErrSubprocess)
	}

	var savers []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		for _, prefix := range knownPrefixes {
			if strings.HasPrefix(name, prefix) {
				savers = append(savers, name)
				break
			}
		}
		if len(savers) >= maxSavers {
			break
		}
	}
	if len(savers) == 0 {
		return nil, fmt.Errorf("no screensavers found in %s: %w", dir, saver.ErrSubprocess)
	}
	return savers, nil
}

// Update rotates to a new child when the interval expires. Rotation runs
// on wall-clock dt so the speed flag does not shorten each effect's slot.
func (e *Effect) Update(dt, elapsed float64) {
	if e.bannerLeft > 0 {
		e.bannerLeft -= dt
	}

	e.switchTimer += dt
	if e.current >= 0 && e.switchTimer < float64(*e.duration) {
		return
	}
	e.switchTimer = 0
	e.rotate()
}

func (e *Effect) rotate() {
	if e.child != nil {
		platform.Terminate(e.child, reapTimeout)
		e.child = nil
	}

	next := e.ctx.Rand.Intn(len(e.savers))
	for next == e.current && len(e.savers) > 1 {
		next = e.ctx.Rand.Intn(len(e.savers))
	}
	e.current = next

	fullscreen := "0"
	if e.ctx.Opts.Fullscreen {
		fullscreen = "1"
	}
	path := filepath.Join(e.dir, e.savers[next])
	child, err := e.runner.Start(path, "-f", fullscreen)
	if err == nil {
		e.child = child
	}

	if *e.showNames {
		e.bannerLeft = bannerSecs
	}
}

func (e *Effect) Draw(screen render.Image, elapsed float64) {
	screen.Fill(color.Black)
	if e.bannerLeft <= 0 || e.current < 0 {
		return
	}

	text := "Now Playing: " + e.savers[e.current]
	w, h := float64(e.ctx.W), float64(e.ctx.H)
	if e.font != nil {
		tw, th := e.ctx.Renderer.MeasureText(text, e.font)
		e.ctx.Renderer.DrawText(screen, text, e.font, (w-tw)/2, (h-th)/2, color.White)
	} else {
		e.ctx.Renderer.DebugText(screen, text, e.ctx.W/2-80, e.ctx.H/2)
	}
}

// Teardown stops the running child so exiting the supervisor exits the
// whole rotation.
func (e *Effect) Teardown() {
	if e.child != nil {
		platform.Terminate(e.child, reapTimeout)
		e.child = nil
	}
}
