package domain

// DefaultEURPerUSD seeds the derived cross rate until the first price
// refresh supplies the anchor asset's dual quote.
const DefaultEURPerUSD = 1.08

// PriceSnapshot is the latest spot quotes, refreshed on an interval by
// the price client. Absence of a symbol is a valid state (price simply
// unavailable); consumers use whatever snapshot is current and
// tolerate staleness.
type PriceSnapshot struct {
	USD            map[string]float64 `json:"usd"`
	EURPerUSD      float64            `json:"eur_per_usd"`
	UpdatedAtUnixM int64              `json:"updated_at_unix,string"` // Unix Micro
}

// NewPriceSnapshot returns an empty snapshot with the seed cross rate.
func NewPriceSnapshot() PriceSnapshot {
	return PriceSnapshot{USD: make(map[string]float64), EURPerUSD: DefaultEURPerUSD}
}

// Price returns the USD spot for symbol; ok is false when the quote is
// missing or non-positive.
func (s PriceSnapshot) Price(symbol string) (float64, bool) {
	p := s.USD[symbol]
	if p <= 0 {
		return 0, false
	}
	return p, true
}

// Clone returns a deep copy so callers can mutate freely.
func (s PriceSnapshot) Clone() PriceSnapshot {
	out := s
	out.USD = make(map[string]float64, len(s.USD))
	for k, v := range s.USD {
		out.USD[k] = v
	}
	return out
}
