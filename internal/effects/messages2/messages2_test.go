package messages2

import (
	"errors"
	"testing"

	"omarchy.dev/screensaver/internal/platform"
)

type fakeRunner struct {
	out []byte
	err error
}

func (r *fakeRunner) Run(name string, args ...string) error { return r.err }

func (r *fakeRunner) Output(name string, args ...string) ([]byte, error) {
	return r.out, r.err
}

func (r *fakeRunner) Start(name string, args ...string) (platform.Process, error) {
	return nil, r.err
}

func newBareEffect(text, command string) *Effect {
	t, c := text, command
	return &Effect{text: &t, command: &c}
}

func TestResolveQuotesCommandOutput(t *testing.T) {
	e := newBareEffect("fallback", "quotegen")
	e.runner = &fakeRunner{out: []byte("first line\n\n  second line  \n")}
	got := e.resolveQuotes()
	if len(got) != 2 || got[0] != "first line" || got[1] != "second line" {
		t.Fatalf("resolveQuotes() = %v, want trimmed non-empty lines", got)
	}
}

func TestResolveQuotesCommandFailure(t *testing.T) {
	e := newBareEffect("fallback", "quotegen")
	e.runner = &fakeRunner{err: errors.New("exec: not found")}
	got := e.resolveQuotes()
	if len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("resolveQuotes() = %v, want the -t fallback", got)
	}
}

func TestResolveQuotesEmbeddedFallback(t *testing.T) {
	e := newBareEffect("", "")
	e.runner = &fakeRunner{}
	got := e.resolveQuotes()
	if len(got) == 0 {
		t.Fatal("resolveQuotes() with no command and no text must use the embedded quotes")
	}
}

func TestQuoteIndexRotation(t *testing.T) {
	tests := []struct {
		t    float64
		n    int
		want int
	}{
		{0, 3, 0},
		{9.9, 3, 0},
		{10, 3, 1},
		{25, 3, 2},
		{30, 3, 0},
		{45, 2, 0},
	}
	for _, tt := range tests {
		if got := quoteIndex(tt.t, tt.n); got != tt.want {
			t.Errorf("quoteIndex(%v, %d) = %d, want %d", tt.t, tt.n, got, tt.want)
		}
	}
}
