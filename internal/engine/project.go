package engine

import (
	"github.com/iamyahyr/rollercoin-league-calculator/pkg/safe"
)

// DefaultBlockTimeMinutes is assumed for assets with no configured
// block time.
const DefaultBlockTimeMinutes = 10

// Earnings holds projected native-unit earnings for one asset.
type Earnings struct {
	PerBlock float64
	PerDay   float64
	PerWeek  float64
	PerMonth float64 // fixed 30-day month, deliberately not calendar-accurate
}

// Project computes the user's earnings projection for one asset.
// share = userGH / networkGH; the reward scales linearly with share.
// ok is false when networkGH is non-positive: such assets are excluded
// from the result set entirely rather than divided by zero.
func Project(rewardPerBlock, networkGH, userGH, blockTimeMinutes float64) (Earnings, bool) {
	if !safe.Positive(networkGH) {
		return Earnings{}, false
	}
	if blockTimeMinutes <= 0 {
		blockTimeMinutes = DefaultBlockTimeMinutes
	}

	share := safe.Div(userGH, networkGH)
	perBlock := safe.Finite(rewardPerBlock * share)
	blocksPerDay := safe.Div(24*60, blockTimeMinutes)
	perDay := safe.Finite(perBlock * blocksPerDay)

	return Earnings{
		PerBlock: perBlock,
		PerDay:   perDay,
		PerWeek:  safe.Finite(perDay * 7),
		PerMonth: safe.Finite(perDay * 30),
	}, true
}
