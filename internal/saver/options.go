package saver

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// Speed multiplier bounds shared by every effect.
const (
	MinSpeed = 0.1
	MaxSpeed = 10.0
)

// Options holds the parsed CLI flags for one effect binary. Every effect
// gets -s (speed) and -f (fullscreen); effect-specific flags are registered
// through the typed helpers before Parse is called. Out-of-range values are
// silently clamped, which is the suite convention rather than an error.
type Options struct {
	Speed      float64
	Fullscreen bool

	fs       *flag.FlagSet
	speedRaw float64
	fullRaw  int
	clamps   []func()
}

// NewOptions creates the flag set for an effect binary.
func NewOptions(name string) *Options {
	o := &Options{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	o.fs.Float64Var(&o.speedRaw, "s", 1.0, "speed multiplier")
	o.fs.IntVar(&o.fullRaw, "f", 1, "fullscreen (1=yes, 0=windowed)")
	return o
}

// SetOutput redirects usage and error output, primarily for tests.
func (o *Options) SetOutput(w io.Writer) {
	o.fs.SetOutput(w)
}

// Float registers an effect-specific float flag clamped to [min, max].
func (o *Options) Float(name string, def, min, max float64, usage string) *float64 {
	p := o.fs.Float64(name, def, usage)
	o.clamps = append(o.clamps, func() {
		if *p < min {
			*p = min
		}
		if *p > max {
			*p = max
		}
	})
	return p
}

// Int registers an effect-specific int flag clamped to [min, max].
func (o *Options) Int(name string, def, min, max int, usage string) *int {
	p := o.fs.Int(name, def, usage)
	o.clamps = append(o.clamps, func() {
		if *p < min {
			*p = min
		}
		if *p > max {
			*p = max
		}
	})
	return p
}

// String registers an effect-specific string flag.
func (o *Options) String(name, def, usage string) *string {
	return o.fs.String(name, def, usage)
}

// Bool registers an effect-specific 0|1 flag.
func (o *Options) Bool(name string, def bool, usage string) *bool {
	d := 0
	if def {
		d = 1
	}
	p := o.fs.Int(name, d, usage)
	b := def
	o.clamps = append(o.clamps, func() { b = *p != 0 })
	return &b
}

// Parse parses args and applies range clamping. It returns flag.ErrHelp for
// -h, and a non-nil error for unknown flags; callers map those to exit
// codes 0 and 2 respectively.
func (o *Options) Parse(args []string) error {
	if err := o.fs.Parse(args); err != nil {
		return err
	}
	o.Speed = o.speedRaw
	if o.Speed < MinSpeed {
		o.Speed = MinSpeed
	}
	if o.Speed > MaxSpeed {
		o.Speed = MaxSpeed
	}
	o.Fullscreen = o.fullRaw != 0
	for _, clamp := range o.clamps {
		clamp()
	}
	return nil
}

// ParseOrExit parses os.Args with the shared exit-code convention:
// 0 for explicit help, 2 for unknown or malformed flags.
func (o *Options) ParseOrExit() {
	switch err := o.Parse(os.Args[1:]); err {
	case nil:
	case flag.ErrHelp:
		os.Exit(0)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
