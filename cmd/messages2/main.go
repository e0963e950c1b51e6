package main

import (
	"omarchy.dev/screensaver/internal/effects/messages2"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("messages2", func(o *saver.Options) saver.Effect {
		return messages2.New(o)
	})
}
