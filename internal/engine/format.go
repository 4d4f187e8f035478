package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
)

// FormatAmount renders a numeric value for display. Fiat modes use a
// fixed 2 decimals. Native mode picks precision by magnitude so that
// whale-scale and dust-scale balances both stay legible without
// scientific notation:
//
//	>= 1        up to 8 decimals, trailing zeros stripped
//	[0.01, 1)   4 decimals
//	[0.0001, 0.01) 6 decimals
//	< 0.0001    8 decimals
//
// Non-finite input renders as "0".
func FormatAmount(v float64, mode domain.DisplayMode) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}

	if mode.Fiat() {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	switch {
	case v >= 1:
		s := strconv.FormatFloat(v, 'f', 8, 64)
		s = strings.TrimRight(s, "0")
		return strings.TrimSuffix(s, ".")
	case v >= 0.01:
		return strconv.FormatFloat(v, 'f', 4, 64)
	case v >= 0.0001:
		return strconv.FormatFloat(v, 'f', 6, 64)
	default:
		return strconv.FormatFloat(v, 'f', 8, 64)
	}
}
