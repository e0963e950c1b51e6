package main

import (
	"omarchy.dev/screensaver/internal/effects/fishsaver"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("fishsaver", func(o *saver.Options) saver.Effect {
		return fishsaver.New(o)
	})
}
