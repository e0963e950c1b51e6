package saver

import (
	"flag"
	"io"
	"testing"
)

func TestSpeedClamping(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want float64
	}{
		{"default", nil, 1.0},
		{"in range", []string{"-s", "2.5"}, 2.5},
		{"zero clamps low", []string{"-s", "0"}, 0.1},
		{"negative clamps low", []string{"-s", "-3"}, 0.1},
		{"huge clamps high", []string{"-s", "1e9"}, 10.0},
		{"min boundary", []string{"-s", "0.1"}, 0.1},
		{"max boundary", []string{"-s", "10.0"}, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOptions("test")
			o.SetOutput(io.Discard)
			if err := o.Parse(tt.args); err != nil {
				t.Fatalf("Parse(%v) returned error: %v", tt.args, err)
			}
			if o.Speed != tt.want {
				t.Errorf("Speed = %v, want %v", o.Speed, tt.want)
			}
		})
	}
}

func TestFullscreenFlag(t *testing.T) {
	o := NewOptions("test")
	o.SetOutput(io.Discard)
	if err := o.Parse(nil); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !o.Fullscreen {
		t.Errorf("Fullscreen default = false, want true")
	}

	o = NewOptions("test")
	o.SetOutput(io.Discard)
	if err := o.Parse([]string{"-f", "0"}); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if o.Fullscreen {
		t.Errorf("Fullscreen with -f 0 = true, want false")
	}
}

func TestEffectFlagClamping(t *testing.T) {
	o := NewOptions("worms")
	o.SetOutput(io.Discard)
	length := o.Int("l", 50, 5, 100, "trail length")
	wiggle := o.Float("w", 0.02, 0.0, 1.0, "wiggle")

	if err := o.Parse([]string{"-l", "500", "-w", "-1"}); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if *length != 100 {
		t.Errorf("length = %d, want clamped 100", *length)
	}
	if *wiggle != 0.0 {
		t.Errorf("wiggle = %v, want clamped 0.0", *wiggle)
	}
}

func TestHelpAndUnknownFlags(t *testing.T) {
	o := NewOptions("test")
	o.SetOutput(io.Discard)
	if err := o.Parse([]string{"-h"}); err != flag.ErrHelp {
		t.Errorf("Parse(-h) = %v, want flag.ErrHelp", err)
	}

	o = NewOptions("test")
	o.SetOutput(io.Discard)
	if err := o.Parse([]string{"-zz"}); err == nil || err == flag.ErrHelp {
		t.Errorf("Parse(-zz) = %v, want parse error", err)
	}
}
