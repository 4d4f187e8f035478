package engine

import (
	"strconv"

	"github.com/iamyahyr/rollercoin-league-calculator/pkg/safe"
)

// Severity classifies a withdrawal wait for presentation. Consumers
// render it literally; they must not reinterpret the bands.
type Severity string

const (
	SeverityNone   Severity = "none"
	SeverityShort  Severity = "short"
	SeverityMedium Severity = "medium"
	SeverityLong   Severity = "long"
)

// WithdrawalEstimate is a human time-to-minimum-withdrawal figure.
type WithdrawalEstimate struct {
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// WithdrawalUnavailable is returned when the estimate cannot be made.
var WithdrawalUnavailable = WithdrawalEstimate{Text: "N/A", Severity: SeverityNone}

// EstimateWithdrawal converts a daily native earning and the asset's
// minimum withdrawal amount into a banded time estimate: under a year
// as "{n}d", a year or more as whole years "{y}y".
func EstimateWithdrawal(dailyEarning, minWithdrawal float64) WithdrawalEstimate {
	if !safe.Positive(dailyEarning) || !safe.Positive(minWithdrawal) {
		return WithdrawalUnavailable
	}

	days := safe.CeilInt64(minWithdrawal / dailyEarning)
	if days <= 0 {
		return WithdrawalUnavailable
	}

	switch {
	case days <= 7:
		return WithdrawalEstimate{Text: strconv.FormatInt(days, 10) + "d", Severity: SeverityShort}
	case days <= 30:
		return WithdrawalEstimate{Text: strconv.FormatInt(days, 10) + "d", Severity: SeverityMedium}
	case days < 365:
		return WithdrawalEstimate{Text: strconv.FormatInt(days, 10) + "d", Severity: SeverityLong}
	default:
		years := safe.CeilInt64(float64(days) / 365)
		return WithdrawalEstimate{Text: strconv.FormatInt(years, 10) + "y", Severity: SeverityLong}
	}
}
