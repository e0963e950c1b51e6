package main

import (
	"omarchy.dev/screensaver/internal/effects/rainstorm"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("rainstorm", func(o *saver.Options) saver.Effect {
		return rainstorm.New(o)
	})
}
