package main

import (
	"omarchy.dev/screensaver/internal/effects/lifeforms"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("lifeforms", func(o *saver.Options) saver.Effect {
		return lifeforms.New(o)
	})
}
