package main

import (
	"omarchy.dev/screensaver/internal/effects/bouncingball"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("bouncingball", func(o *saver.Options) saver.Effect {
		return bouncingball.New(o)
	})
}
