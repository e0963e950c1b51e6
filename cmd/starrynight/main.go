package main

import (
	"omarchy.dev/screensaver/internal/effects/starrynight"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("starrynight", func(o *saver.Options) saver.Effect {
		return starrynight.New(o)
	})
}
