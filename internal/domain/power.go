package domain

import (
	"github.com/iamyahyr/rollercoin-league-calculator/pkg/hashpow"
)

// PowerMeasurement is one parsed network power reading: a positive
// value plus the unit suffix it was written in. Transient; rebuilt on
// every parse.
type PowerMeasurement struct {
	Value float64      `json:"value"`
	Unit  hashpow.Unit `json:"unit"`
}

// GH returns the measurement in GH-equivalent base units.
func (p PowerMeasurement) GH() float64 {
	return hashpow.ToGH(p.Value, p.Unit)
}

// NetworkSnapshot maps asset symbol -> parsed network power. The whole
// mapping is replaced on every parse; stale entries never linger.
type NetworkSnapshot map[string]PowerMeasurement
