package main

import (
	"omarchy.dev/screensaver/internal/effects/toastersaver"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("toastersaver", func(o *saver.Options) saver.Effect {
		return toastersaver.New(o)
	})
}
