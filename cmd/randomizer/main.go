package main

import (
	"omarchy.dev/screensaver/internal/effects/randomizer"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("randomizer", func(o *saver.Options) saver.Effect {
		return randomizer.New(o)
	})
}
