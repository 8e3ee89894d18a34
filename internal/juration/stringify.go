package juration

import (
	"math"
	"strings"
)

// Options controls how Stringify renders a duration.
type Options struct {
	// Format is the display style. Empty means DefaultFormat.
	Format Format
	// Units caps how many components are rendered, counting from the
	// largest non-zero one. Zero means no cap.
	Units int
}

// DefaultOptions returns the options Stringify uses when none are given.
func DefaultOptions() Options {
	return Options{Format: DefaultFormat}
}

func (o Options) validate() error {
	if o.Format != "" {
		if _, err := ParseFormat(string(o.Format)); err != nil {
			return err
		}
	}
	if o.Units < 0 {
		return &StringifyError{Kind: ErrInvalidUnits, Units: o.Units}
	}
	return nil
}

// Stringify formats seconds as a human-readable duration.
//
//	Stringify(500, Options{})                  // "8 mins 20 secs"
//	Stringify(3661, Options{Format: Long})     // "1 hour 1 minute 1 second"
//	Stringify(3661, Options{Format: Chrono})   // "1:01:01"
//	Stringify(90061, Options{Units: 1})        // "1 day"
//
// Zero renders as "" in every format except chrono, where it renders as "0".
func Stringify(seconds float64, opts Options) (string, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "", &StringifyError{Kind: ErrNonNumericInput}
	}
	if seconds < 0 {
		return "", &StringifyError{Kind: ErrNegativeInput}
	}
	if err := opts.validate(); err != nil {
		return "", err
	}
	if opts.Format == "" {
		opts.Format = DefaultFormat
	}

	var components []string
	remaining := seconds
	active := 0
	for _, unit := range breakdown {
		if opts.Units > 0 && active >= opts.Units {
			break
		}

		magnitude := float64(unit.Magnitude)
		value := math.Floor(remaining / magnitude)
		remaining = math.Mod(remaining, magnitude)

		// Once a component is non-zero every smaller one counts, zero or
		// not, so chrono output stays contiguous.
		if value > 0 || active > 0 {
			active++
		}

		components = append(components, renderComponent(value, unit.Tokens[opts.Format], opts.Format))
	}

	if opts.Format == Chrono {
		return joinChrono(components), nil
	}

	var b strings.Builder
	for _, c := range components {
		if strings.HasPrefix(c, "0") {
			continue
		}
		b.WriteString(c)
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " "), nil
}

// Humanize is an alias for Stringify.
func Humanize(seconds float64, opts Options) (string, error) {
	return Stringify(seconds, opts)
}

func renderComponent(value float64, token string, format Format) string {
	n := formatNumber(value)
	switch format {
	case Micro, Chrono:
		return n + token
	default:
		return n + " " + pluralize(value, token)
	}
}

func pluralize(count float64, singular string) string {
	if count == 1 {
		return singular
	}
	return singular + "s"
}

// joinChrono zero-pads each component (the last one to two digits, the
// rest to two digits plus separator) and drops empty leading fields.
func joinChrono(components []string) string {
	var b strings.Builder
	for i, c := range components {
		width := 3
		if i == len(components)-1 {
			width = 2
		}
		b.WriteString(padLeft(c, '0', width))
	}

	s := b.String()
	for strings.HasPrefix(s, "00:") {
		s = s[len("00:"):]
	}
	return strings.TrimPrefix(s, "0")
}

func padLeft(s string, c byte, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(string(c), n-len(s)) + s
}
