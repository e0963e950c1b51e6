package main

import (
	"omarchy.dev/screensaver/internal/effects/starsclean"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("starsclean", func(o *saver.Options) saver.Effect {
		return starsclean.New(o)
	})
}
