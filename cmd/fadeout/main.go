package main

import (
	"omarchy.dev/screensaver/internal/effects/fadeout"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("fadeout", func(o *saver.Options) saver.Effect {
		return fadeout.New(o)
	})
}
