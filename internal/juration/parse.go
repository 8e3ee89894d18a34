package juration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Unit names are matched with lookahead (for example "m" must not start
// "months"), which the standard library's RE2 engine can't express.
const reOptions = regexp2.ECMAScript

// matchTimeout bounds a single expression's match over one input.
const matchTimeout = 5 * time.Second

type matcher struct {
	re        *regexp2.Regexp
	magnitude float64
}

var (
	// matchers holds one compiled expression per unit pattern, in catalog order.
	matchers = compileMatchers()

	// Runs of non-word characters, except those starting with a '.', which
	// would otherwise split decimals.
	nonWordRe = mustCompile(`(?!\.)\W+`, reOptions)
	// Surrounding whitespace and joining words.
	fillerRe = mustCompile(`^\s+|\s+$|(?:and|plus|with)\s?`, reOptions)
)

func mustCompile(expr string, opts regexp2.RegexOptions) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, opts)
	re.MatchTimeout = matchTimeout
	return re
}

func compileMatchers() []matcher {
	var ms []matcher
	for _, u := range catalog {
		for _, p := range u.Patterns {
			// Numbers only start at the beginning of a digit run, so a
			// run is scanned once instead of once per digit.
			expr := `(?<!\d)((?:\d+\.\d+)|\d+)\s?(` + p + `s?(?=\s|\d|\b))`
			ms = append(ms, matcher{
				re:        mustCompile(expr, reOptions|regexp2.IgnoreCase),
				magnitude: float64(u.Magnitude),
			})
		}
	}
	return ms
}

// Parse converts a natural-language duration into seconds.
// Examples: "1 hour and 30 minutes", "2.5 hours", "1h30m", "3 days, 4 hrs".
// Bare numbers are taken as seconds and summed.
func Parse(input string) (float64, error) {
	s, err := substituteUnits(input)
	if err != nil {
		return 0, err
	}

	s, err = nonWordRe.Replace(s, " ", -1, -1)
	if err != nil {
		return 0, fmt.Errorf("failed to normalize %q: %w", input, err)
	}
	s, err = fillerRe.Replace(s, "", -1, -1)
	if err != nil {
		return 0, fmt.Errorf("failed to normalize %q: %w", input, err)
	}

	var sum float64
	for _, token := range strings.Split(s, " ") {
		if token == "" {
			return 0, &ParseError{Kind: ErrEmptyToken}
		}
		n, ok := parseNumber(token)
		if !ok {
			return 0, &ParseError{Kind: ErrUnrecognizedUnit, Token: strings.TrimLeft(token, "0123456789")}
		}
		sum += n
	}

	return sum, nil
}

// substituteUnits replaces every "<number> <unit>" with the equivalent
// number of seconds surrounded by spaces. Each matcher runs over the output
// of the previous one.
func substituteUnits(s string) (string, error) {
	for _, m := range matchers {
		var convErr error
		out, err := m.re.ReplaceFunc(s, func(match regexp2.Match) string {
			num := match.GroupByNumber(1).String()
			n, err := strconv.ParseFloat(num, 64)
			if err != nil {
				convErr = fmt.Errorf("invalid number %q: %w", num, err)
				return match.String()
			}
			return " " + formatNumber(n*m.magnitude) + " "
		}, -1, -1)
		if err != nil {
			return "", fmt.Errorf("failed to match units: %w", err)
		}
		if convErr != nil {
			return "", convErr
		}
		s = out
	}
	return s, nil
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
