package main

import (
	"omarchy.dev/screensaver/internal/effects/logo"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("logo", func(o *saver.Options) saver.Effect {
		return logo.New(o)
	})
}
