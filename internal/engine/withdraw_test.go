package engine

import (
	"testing"
)

func TestEstimateWithdrawal(t *testing.T) {
	tests := []struct {
		name          string
		daily, min    float64
		wantText      string
		wantSeverity  Severity
	}{
		{"One Week Boundary", 10, 70, "7d", SeverityShort},
		{"Short", 100, 150, "2d", SeverityShort},
		{"Medium", 10, 80, "8d", SeverityMedium},
		{"Month Boundary", 10, 300, "30d", SeverityMedium},
		{"Long Days", 10, 310, "31d", SeverityLong},
		{"Last Day Band", 1, 364, "364d", SeverityLong},
		{"Year Boundary", 10, 3650, "1y", SeverityLong},
		{"Years", 1, 3651, "11y", SeverityLong},
		{"Zero Daily", 0, 100, "N/A", SeverityNone},
		{"Zero Minimum", 10, 0, "N/A", SeverityNone},
		{"Negative", -1, 100, "N/A", SeverityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateWithdrawal(tt.daily, tt.min)
			if got.Text != tt.wantText || got.Severity != tt.wantSeverity {
				t.Errorf("EstimateWithdrawal(%v, %v) = %+v, want {%s %s}",
					tt.daily, tt.min, got, tt.wantText, tt.wantSeverity)
			}
		})
	}
}
