package main

import (
	"omarchy.dev/screensaver/internal/effects/spotlight"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("spotlight", func(o *saver.Options) saver.Effect {
		return spotlight.New(o)
	})
}
