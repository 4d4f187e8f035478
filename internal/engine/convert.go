package engine

import (
	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
	"github.com/iamyahyr/rollercoin-league-calculator/pkg/safe"
)

// Convert rescales a native-unit amount into the display currency for
// the given mode. ok=false is the "unavailable" sentinel (rendered
// "N/A"): the asset's USD quote or the EUR cross rate is missing or
// non-positive. It is never substituted with a numeric zero. Native
// mode is a pass-through and always available.
func Convert(native, priceUSD float64, mode domain.DisplayMode, eurPerUSD float64) (float64, bool) {
	switch mode {
	case domain.ModeUSD:
		if !safe.Positive(priceUSD) {
			return 0, false
		}
		return safe.Finite(native * priceUSD), true
	case domain.ModeEUR:
		if !safe.Positive(priceUSD) || !safe.Positive(eurPerUSD) {
			return 0, false
		}
		priceEUR := safe.Div(priceUSD, eurPerUSD)
		return safe.Finite(native * priceEUR), true
	default:
		return native, true
	}
}
