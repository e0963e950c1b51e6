package saver

import "errors"

// Error kinds shared across the suite. Effects wrap these with fmt.Errorf
// and %w so callers can test with errors.Is.
var (
	// ErrInitFailure means the window, renderer, or audio subsystem could
	// not be created. Fatal; the binary exits 1.
	ErrInitFailure = errors.New("init failure")

	// ErrAssetDecode means a mandatory embedded asset could not be decoded.
	ErrAssetDecode = errors.New("asset decode error")

	// ErrFontUnavailable means none of the candidate font paths opened.
	ErrFontUnavailable = errors.New("font unavailable")

	// ErrSubprocess means a helper process could not be started or failed.
	ErrSubprocess = errors.New("subprocess error")

	// Done signals a normal input-triggered exit from the frame loop.
	Done = errors.New("done")
)
