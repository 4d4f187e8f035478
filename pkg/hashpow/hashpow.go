// Package hashpow models mining power magnitudes. All internal
// arithmetic runs on a single GH base unit; other units are converted
// at the boundary.
package hashpow

import (
	"strings"

	"github.com/iamyahyr/rollercoin-league-calculator/pkg/safe"
)

// Unit is a hashrate magnitude suffix as it appears in user input
// (e.g. "GH", "PH"). Unrecognized suffixes are carried verbatim and
// treated as GH when converting.
type Unit string

const (
	GH Unit = "GH"
	PH Unit = "PH"
	EH Unit = "EH"
	ZH Unit = "ZH"
)

// GH-equivalents per unit.
const (
	GHPerPH = 1_000_000
	GHPerEH = 1_000_000_000
	GHPerZH = 1_000_000_000_000
)

var multipliers = map[Unit]float64{
	GH: 1,
	PH: GHPerPH,
	EH: GHPerEH,
	ZH: GHPerZH,
}

// ParseUnit normalizes a raw suffix ("ph", " EH/s ") to a Unit.
// Unknown suffixes are kept as typed, uppercased values; ToGH treats
// them as GH (lenient fallback, matching the rest of the engine).
func ParseUnit(s string) Unit {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "/S")
	return Unit(s)
}

// Multiplier returns the GH-equivalent factor for the unit.
// Unknown units fall back to 1 rather than failing.
func (u Unit) Multiplier() float64 {
	if m, ok := multipliers[u]; ok {
		return m
	}
	return 1
}

// ToGH converts a value expressed in u to GH-equivalent base units.
// The result is never negative, and non-finite products collapse to 0.
func ToGH(value float64, u Unit) float64 {
	gh := safe.Finite(value * u.Multiplier())
	if gh < 0 {
		return 0
	}
	return gh
}
