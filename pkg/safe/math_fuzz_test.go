package safe

import (
	"math"
	"testing"
)

// FuzzDiv verifies Div never returns a non-finite value.
func FuzzDiv(f *testing.F) {
	// Seed corpus
	f.Add(0.0, 0.0)
	f.Add(1.0, 3.0)
	f.Add(math.MaxFloat64, math.SmallestNonzeroFloat64)
	f.Add(-1.0, 0.0)
	f.Add(math.NaN(), 1.0)

	f.Fuzz(func(t *testing.T, a, b float64) {
		got := Div(a, b)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Div(%v, %v) = %v, want finite", a, b, got)
		}
	})
}

// FuzzCeilInt64 verifies CeilInt64 never returns a negative day count.
func FuzzCeilInt64(f *testing.F) {
	f.Add(0.0)
	f.Add(0.5)
	f.Add(-1e18)
	f.Add(math.Inf(1))

	f.Fuzz(func(t *testing.T, v float64) {
		if got := CeilInt64(v); got < 0 {
			t.Errorf("CeilInt64(%v) = %d, want >= 0", v, got)
		}
	})
}
