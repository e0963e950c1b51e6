package main

import (
	"omarchy.dev/screensaver/internal/effects/messages"
	"omarchy.dev/screensaver/internal/saver"
)

func main() {
	saver.Main("messages", func(o *saver.Options) saver.Effect {
		return messages.New(o)
	})
}
