package engine

import (
	"math"
	"testing"

	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
)

func TestFormatAmount(t *testing.T) {
	t.Run("Fiat Two Decimals", func(t *testing.T) {
		if got := FormatAmount(1234.5678, domain.ModeUSD); got != "1234.57" {
			t.Errorf("usd = %q, want 1234.57", got)
		}
		if got := FormatAmount(0.004, domain.ModeEUR); got != "0.00" {
			t.Errorf("eur = %q, want 0.00", got)
		}
	})

	t.Run("Native Tiers", func(t *testing.T) {
		tests := []struct {
			in   float64
			want string
		}{
			{864, "864"},                 // whole numbers lose the dot
			{1.50000000, "1.5"},          // trailing zeros stripped
			{1.23456789, "1.23456789"},   // up to 8 decimals
			{0.5, "0.5000"},              // [0.01, 1): 4 decimals
			{0.01, "0.0100"},             // lower bound inclusive
			{0.004, "0.004000"},          // [0.0001, 0.01): 6 decimals
			{0.0001, "0.000100"},         // 6-decimal tier inclusive at lower bound
			{0.00009999, "0.00009999"},   // below it: 8 decimals
			{0.000000012, "0.00000001"},  // dust keeps 8 decimals, no sci notation
		}
		for _, tt := range tests {
			if got := FormatAmount(tt.in, domain.ModeNative); got != tt.want {
				t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
			}
		}
	})

	t.Run("Non-Finite Renders Zero", func(t *testing.T) {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			if got := FormatAmount(v, domain.ModeNative); got != "0" {
				t.Errorf("FormatAmount(%v) = %q, want 0", v, got)
			}
		}
	})
}
