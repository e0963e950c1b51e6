package main

import (
	"omarchy.dev/screensaver/internal/effects/cityscape"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("cityscape", func(o *saver.Options) saver.Effect {
		return cityscape.New(o)
	})
}
