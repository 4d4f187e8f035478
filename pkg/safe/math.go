package safe

import (
	"math"
)

// Finite returns f, or 0 when f is NaN or infinite.
// Used at component boundaries so bad arithmetic degrades to a
// harmless zero instead of leaking non-finite values downstream.
func Finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Positive reports whether f is a finite value greater than zero.
func Positive(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}

// Div returns a/b, or 0 when b is zero or the quotient is not finite.
func Div(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return Finite(a / b)
}

// CeilInt64 returns ceil(f) as int64, clamped to 0 for negative or
// non-finite input.
func CeilInt64(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Ceil(f))
}
