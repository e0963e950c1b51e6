package main

import (
	"omarchy.dev/screensaver/internal/effects/hardrain"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("hardrain", func(o *saver.Options) saver.Effect {
		return hardrain.New(o)
	})
}
