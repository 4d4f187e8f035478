package engine

import (
	"math"
	"testing"
)

func TestProject(t *testing.T) {
	t.Run("Reference Figures", func(t *testing.T) {
		got, ok := Project(2, 1000, 100, 10)
		if !ok {
			t.Fatal("expected projection")
		}
		if got.PerBlock != 0.2 {
			t.Errorf("PerBlock = %v, want 0.2", got.PerBlock)
		}
		if math.Abs(got.PerDay-28.8) > 1e-9 {
			t.Errorf("PerDay = %v, want 28.8", got.PerDay)
		}
		if math.Abs(got.PerWeek-201.6) > 1e-9 {
			t.Errorf("PerWeek = %v, want 201.6", got.PerWeek)
		}
		if math.Abs(got.PerMonth-864) > 1e-9 {
			t.Errorf("PerMonth = %v, want 864", got.PerMonth)
		}
	})

	t.Run("Zero Network Power Excluded", func(t *testing.T) {
		if _, ok := Project(2, 0, 100, 10); ok {
			t.Error("networkGH=0 must be excluded, not substituted")
		}
		if _, ok := Project(2, -50, 100, 10); ok {
			t.Error("negative networkGH must be excluded")
		}
	})

	t.Run("Default Block Time", func(t *testing.T) {
		withDefault, _ := Project(2, 1000, 100, 0)
		withTen, _ := Project(2, 1000, 100, 10)
		if withDefault != withTen {
			t.Errorf("unconfigured block time %+v, want ten-minute default %+v", withDefault, withTen)
		}
	})

	t.Run("Slow Chain", func(t *testing.T) {
		// 2.5 minute blocks -> 576 blocks/day
		got, _ := Project(1, 100, 1, 2.5)
		if math.Abs(got.PerDay-5.76) > 1e-9 {
			t.Errorf("PerDay = %v, want 5.76", got.PerDay)
		}
	})
}
