package main

import (
	"omarchy.dev/screensaver/internal/effects/paperfire"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("paperfire", func(o *saver.Options) saver.Effect {
		return paperfire.New(o)
	})
}
