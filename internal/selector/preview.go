package selector

import (
	"time"

	"omarchy.dev/screensaver/internal/platform"
)

const (
	previewTimeout = "10s"
	reapTimeout    = 2 * time.Second
)

// Preview supervises at most one preview child at a time. Starting a new
// preview terminates the previous one first, so stray fullscreen windows
// never pile up behind the TUI.
type Preview struct {
	runner platform.Runner
	child  platform.Process
}

// NewPreview creates a supervisor using the given runner.
func NewPreview(runner platform.Runner) *Preview {
	return &Preview{runner: runner}
}

// Start launches binaryPath with the composed option string under a
// bounded timeout, replacing any running preview.
func (p *Preview) Start(binaryPath, options string) error {
	p.Stop()

	args := []string{previewTimeout, binaryPath}
	if options != "" {
		args = append(args, tokenise(options)...)
	}
	child, err := p.runner.Start("timeout", args...)
	if err != nil {
		return err
	}
	p.child = child
	return nil
}

// Stop terminates and reaps the running preview, if any.
func (p *Preview) Stop() {
	if p.child == nil {
		return
	}
	platform.Terminate(p.child, reapTimeout)
	p.child = nil
}
