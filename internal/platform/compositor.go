package platform

// Compositor wraps the Hyprland helper commands the effects shell out to.
// A nil-runner compositor is a no-op, which is what tests use.
type Compositor struct {
	runner Runner
}

// NewCompositor creates a compositor helper backed by the given runner.
func NewCompositor(r Runner) *Compositor {
	return &Compositor{runner: r}
}

// HideCursor toggles the compositor's invisible-cursor keyword.
func (c *Compositor) HideCursor(hide bool) error {
	if c.runner == nil {
		return nil
	}
	val := "false"
	if hide {
		val = "true"
	}
	return c.runner.Run("hyprctl", "keyword", "cursor:invisible", val)
}

// Fullscreen dispatches a fullscreen toggle for the active window.
func (c *Compositor) Fullscreen() error {
	if c.runner == nil {
		return nil
	}
	return c.runner.Run("hyprctl", "dispatch", "fullscreen", "1")
}

// Screenshot captures the screen to a PNG at path. The caller deletes the
// file after loading it.
func (c *Compositor) Screenshot(path string) error {
	if c.runner == nil {
		return nil
	}
	return c.runner.Run("grim", path)
}
