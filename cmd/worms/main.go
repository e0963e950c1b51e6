package main

import (
	"omarchy.dev/screensaver/internal/effects/worms"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("worms", func(o *saver.Options) saver.Effect {
		return worms.New(o)
	})
}
