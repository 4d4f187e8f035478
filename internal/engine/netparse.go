// Package engine implements the earnings computation core: network
// data parsing, league-based earnings projection, currency conversion,
// withdrawal estimation and display formatting. Every function here is
// pure; the only mutable state lives in the caller's domain.Session.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
	"github.com/iamyahyr/rollercoin-league-calculator/pkg/hashpow"
	"github.com/iamyahyr/rollercoin-league-calculator/pkg/safe"
)

// Value lines look like "1.5 TH/s" or "320,5PH/s": a number with `.`
// or `,` decimals, an optional letter suffix, and a mandatory "/s".
var valueLinePattern = regexp.MustCompile(`(?i)([0-9.,]+)\s*([A-Za-z]+)/s`)

// ParseNetworkData parses free-form multi-line network statistics into
// a fresh NetworkSnapshot. The grammar is two-line pairs: a line that
// equals a known asset symbol (or alias) marks a pending asset, and
// the next value line resolves it. Extra value lines before the next
// marker are ignored, as are lines matching neither form. Malformed or
// non-positive values are discarded. The function never fails: garbage
// input simply yields an empty snapshot, which callers treat as the
// "no data" sentinel.
func ParseNetworkData(text string) domain.NetworkSnapshot {
	powers := make(domain.NetworkSnapshot)
	pending := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if symbol, ok := domain.ResolveSymbol(line); ok {
			// A new marker always supersedes an unresolved one.
			pending = symbol
			continue
		}

		if pending == "" {
			continue
		}
		m := valueLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value, err := parseDecimal(m[1])
		if err != nil || !safe.Positive(value) {
			continue
		}
		powers[pending] = domain.PowerMeasurement{
			Value: value,
			Unit:  hashpow.ParseUnit(m[2]),
		}
		pending = ""
	}

	return powers
}

// ParseLocaleNumber parses a user-entered number that may use either
// `.` or `,` as the decimal separator and may contain stray spaces.
func ParseLocaleNumber(s string) (float64, error) {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	return parseDecimal(s)
}

func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}
