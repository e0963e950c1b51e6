package main

import (
	"omarchy.dev/screensaver/internal/effects/globe"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("globe", func(o *saver.Options) saver.Effect {
		return globe.New(o)
	})
}
