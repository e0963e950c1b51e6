package selector

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the editor type of one configurable option.
type Kind int

const (
	KindFloat Kind = iota
	KindEnum
	KindString
)

const floatStep = 0.1

// Option is one row in the option editor.
type Option struct {
	Flag        string
	Name        string
	Description string
	Kind        Kind

	// Float options.
	Min, Max, Value float64

	// Enum options.
	Choices []string
	Choice  int

	// String options.
	Text string
}

// SchemaFor returns the editable options for a catalog key, or nil for
// effects without configuration.
func SchemaFor(key string) []Option {
	switch key {
	case "starrynight":
		return []Option{
			{Flag: "s", Name: "speed", Description: "Animation speed multiplier", Kind: KindFloat, Min: 0.1, Max: 5.0, Value: 1.0},
			{Flag: "d", Name: "density", Description: "Star density (0.0-1.0)", Kind: KindFloat, Min: 0.0, Max: 1.0, Value: 0.5},
			{Flag: "m", Name: "meteors", Description: "Meteor frequency multiplier", Kind: KindFloat, Min: 0.0, Max: 5.0, Value: 1.0},
			{Flag: "r", Name: "rotation", Description: "Sky motion mode", Kind: KindEnum, Choices: []string{"dynamic", "static", "none"}},
		}
	case "messages", "messages2":
		return []Option{
			{Flag: "t", Name: "text", Description: "Scroll text to display", Kind: KindString},
		}
	}
	return nil
}

// Adjust moves a numeric option by one step (dir ±1) with range clamping,
// or cycles an enum. String options are unaffected.
func (o *Option) Adjust(dir int) {
	switch o.Kind {
	case KindFloat:
		o.Value += floatStep * float64(dir)
		if o.Value < o.Min {
			o.Value = o.Min
		}
		if o.Value > o.Max {
			o.Value = o.Max
		}
	case KindEnum:
		n := len(o.Choices)
		o.Choice = (o.Choice + dir + n) % n
	}
}

// Display is the value column shown in the editor.
func (o *Option) Display() string {
	switch o.Kind {
	case KindFloat:
		return fmt.Sprintf("%.1f (range: %.1f-%.1f)", o.Value, o.Min, o.Max)
	case KindEnum:
		return o.Choices[o.Choice]
	default:
		return "[" + o.Text + "]"
	}
}

// Compose builds the CLI option string from a schema. Empty string options
// are omitted so unconfigured text falls through to the effect's default.
func Compose(opts []Option) string {
	var parts []string
	for i := range opts {
		o := &opts[i]
		switch o.Kind {
		case KindFloat:
			parts = append(parts, fmt.Sprintf("-%s %.1f", o.Flag, o.Value))
		case KindEnum:
			parts = append(parts, fmt.Sprintf("-%s %s", o.Flag, o.Choices[o.Choice]))
		case KindString:
			if o.Text != "" {
				parts = append(parts, fmt.Sprintf("-%s %q", o.Flag, o.Text))
			}
		}
	}
	return strings.Join(parts, " ")
}

// ParseInto seeds a schema from a previously composed option string so
// reopening the editor shows the saved values.
func ParseInto(opts []Option, composed string) {
	fields := splitOptions(composed)
	for i := range opts {
		o := &opts[i]
		val, ok := fields["-"+o.Flag]
		if !ok {
			continue
		}
		switch o.Kind {
		case KindFloat:
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				o.Value = f
				o.Adjust(0)
			}
		case KindEnum:
			for c, choice := range o.Choices {
				if choice == val {
					o.Choice = c
				}
			}
		case KindString:
			o.Text = val
		}
	}
}

// splitOptions tokenises a composed option string into flag→value pairs,
// honouring double quotes around string values.
func splitOptions(s string) map[string]string {
	out := map[string]string{}
	tokens := tokenise(s)
	for i := 0; i < len(tokens)-1; i++ {
		if strings.HasPrefix(tokens[i], "-") {
			out[tokens[i]] = tokens[i+1]
			i++
		}
	}
	return out
}

func tokenise(s string) []string {
	var tokens []string
	var cur strings.Builder
	quoted := false
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
		case r == ' ' && !quoted:
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}
