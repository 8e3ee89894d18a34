// Package juration parses natural-language durations into seconds and
// formats seconds back into human-readable durations.
package juration

import (
	"fmt"
	"maps"
	"slices"
)

// UnitKey identifies a unit of time.
type UnitKey string

const (
	Seconds UnitKey = "seconds"
	Minutes UnitKey = "minutes"
	Hours   UnitKey = "hours"
	Days    UnitKey = "days"
	Weeks   UnitKey = "weeks"
	Months  UnitKey = "months"
	Years   UnitKey = "years"
)

// Format is a display style for Stringify.
type Format string

const (
	Micro  Format = "micro"  // 1h 5m
	Short  Format = "short"  // 1 hr 5 mins
	Long   Format = "long"   // 1 hour 5 minutes
	Chrono Format = "chrono" // 1:05:00

	DefaultFormat = Short
)

// Formats lists every recognized format.
var Formats = []Format{Micro, Short, Long, Chrono}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(Formats, f) {
		return "", &StringifyError{Kind: ErrInvalidFormat, Format: s}
	}
	return f, nil
}

// Unit describes one unit of time.
type Unit struct {
	Key       UnitKey
	Magnitude int64             // Length of the unit in seconds
	Patterns  []string          // Name fragments recognized by Parse, tried in order
	Tokens    map[Format]string // Display token per format
}

// catalog is ordered smallest to largest. Parse substitutes units in this
// order, so "m" is consumed by minutes only when it can't be the start of
// a month.
var catalog = []Unit{
	{
		Key:       Seconds,
		Magnitude: 1,
		Patterns:  []string{"second", "sec", "s"},
		Tokens:    map[Format]string{Chrono: "", Micro: "s", Short: "sec", Long: "second"},
	},
	{
		Key:       Minutes,
		Magnitude: 60,
		Patterns:  []string{"minute", "min", "m(?!s)"},
		Tokens:    map[Format]string{Chrono: ":", Micro: "m", Short: "min", Long: "minute"},
	},
	{
		Key:       Hours,
		Magnitude: 3600,
		Patterns:  []string{"hour", "hr", "h"},
		Tokens:    map[Format]string{Chrono: ":", Micro: "h", Short: "hr", Long: "hour"},
	},
	{
		Key:       Days,
		Magnitude: 86400,
		Patterns:  []string{"day", "dy", "d"},
		Tokens:    map[Format]string{Chrono: ":", Micro: "d", Short: "day", Long: "day"},
	},
	{
		Key:       Weeks,
		Magnitude: 604800,
		Patterns:  []string{"week", "wk", "w"},
		Tokens:    map[Format]string{Chrono: ":", Micro: "w", Short: "wk", Long: "week"},
	},
	{
		Key:       Months,
		Magnitude: 2628000,
		Patterns:  []string{"month", "mon", "mo", "mth"},
		Tokens:    map[Format]string{Chrono: ":", Micro: "m", Short: "mth", Long: "month"},
	},
	{
		Key:       Years,
		Magnitude: 31536000,
		Patterns:  []string{"year", "yr", "y"},
		Tokens:    map[Format]string{Chrono: ":", Micro: "y", Short: "yr", Long: "year"},
	},
}

// breakdown is the order Stringify renders units in. Weeks are only
// recognized when parsing.
var breakdown = mustLookupAll(Years, Months, Days, Hours, Minutes, Seconds)

func mustLookupAll(keys ...UnitKey) []Unit {
	units := make([]Unit, len(keys))
	for i, key := range keys {
		u, ok := lookup(key)
		if !ok {
			panic(fmt.Sprintf("juration: unit %q missing from catalog", key))
		}
		units[i] = u
	}
	return units
}

// Units returns a copy of the unit catalog, smallest unit first.
func Units() []Unit {
	units := make([]Unit, len(catalog))
	for i, u := range catalog {
		units[i] = u.clone()
	}
	return units
}

// Lookup returns a copy of the unit with the given key.
func Lookup(key UnitKey) (Unit, error) {
	u, ok := lookup(key)
	if !ok {
		return Unit{}, fmt.Errorf("unknown unit %q", key)
	}
	return u.clone(), nil
}

func lookup(key UnitKey) (Unit, bool) {
	for _, u := range catalog {
		if u.Key == key {
			return u, true
		}
	}
	return Unit{}, false
}

func (u Unit) clone() Unit {
	u.Patterns = slices.Clone(u.Patterns)
	u.Tokens = maps.Clone(u.Tokens)
	return u
}
