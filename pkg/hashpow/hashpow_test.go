package hashpow

import (
	"math"
	"testing"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in   string
		want Unit
	}{
		{"GH", GH},
		{"ph", PH},
		{" eh ", EH},
		{"ZH/s", ZH},
		{"Th/S", Unit("TH")},
	}

	for _, tt := range tests {
		if got := ParseUnit(tt.in); got != tt.want {
			t.Errorf("ParseUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToGH(t *testing.T) {
	t.Run("Known Units", func(t *testing.T) {
		tests := []struct {
			value float64
			unit  Unit
			want  float64
		}{
			{1, GH, 1},
			{2.5, PH, 2.5 * GHPerPH},
			{3, EH, 3 * GHPerEH},
			{0.5, ZH, 0.5 * GHPerZH},
		}
		for _, tt := range tests {
			if got := ToGH(tt.value, tt.unit); got != tt.want {
				t.Errorf("ToGH(%v, %s) = %v, want %v", tt.value, tt.unit, got, tt.want)
			}
		}
	})

	t.Run("PH Multiplier Property", func(t *testing.T) {
		for _, v := range []float64{0, 0.001, 1, 42.42, 1e9} {
			if got := ToGH(v, PH); got != v*1_000_000 {
				t.Errorf("ToGH(%v, PH) = %v, want %v", v, got, v*1_000_000)
			}
		}
	})

	t.Run("Unknown Unit Treated As GH", func(t *testing.T) {
		if got := ToGH(7, Unit("TH")); got != 7 {
			t.Errorf("ToGH(7, TH) = %v, want 7", got)
		}
	})

	t.Run("Safety", func(t *testing.T) {
		if got := ToGH(math.NaN(), GH); got != 0 {
			t.Errorf("ToGH(NaN, GH) = %v, want 0", got)
		}
		if got := ToGH(math.MaxFloat64, ZH); got != 0 {
			t.Errorf("ToGH(overflow) = %v, want 0", got)
		}
		if got := ToGH(-5, PH); got != 0 {
			t.Errorf("ToGH(-5, PH) = %v, want 0 (never negative)", got)
		}
	})
}
