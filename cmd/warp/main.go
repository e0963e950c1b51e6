package main

import (
	"omarchy.dev/screensaver/internal/effects/warp"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("warp", func(o *saver.Options) saver.Effect {
		return warp.New(o)
	})
}
