package saver

import (
	"errors"
	"log"
	"math/rand"
	"time"

	ebitenrender "omarchy.dev/screensaver/internal/render/ebiten"
)

// Fallback window size when fullscreen is off or the display size is
// unavailable.
const (
	FallbackWidth  = 800
	FallbackHeight = 600
)

// Main is the shared entry point for every effect binary: register flags,
// parse, open the window, run the frame loop, exit 0 on input or 1 on an
// initialisation failure.
//
// setup receives the options so the effect can register its own flags; it
// returns the effect to run.
func Main(name string, setup func(o *Options) Effect) {
	o := NewOptions(name)
	effect := setup(o)
	o.ParseOrExit()

	renderer := ebitenrender.NewRenderer()
	input := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	w, h := FallbackWidth, FallbackHeight
	if o.Fullscreen {
		if dw, dh := engine.DisplaySize(); dw > 0 && dh > 0 {
			w, h = dw, dh
		}
		engine.SetFullscreen(true)
	}
	engine.SetWindowSize(w, h)
	engine.SetWindowTitle("Screensaver")
	engine.SetCursorVisible(false)

	ctx := &Context{
		W:        w,
		H:        h,
		Renderer: renderer,
		Input:    input,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Opts:     o,
	}

	err := engine.RunGame(NewRunner(effect, ctx))
	engine.SetCursorVisible(true)
	if err != nil && !errors.Is(err, Done) {
		log.Fatalf("%s: %v", name, err)
	}
}
