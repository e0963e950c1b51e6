package main

import (
	"omarchy.dev/screensaver/internal/effects/matrix"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("matrix", func(o *saver.Options) saver.Effect {
		return matrix.New(o)
	})
}
