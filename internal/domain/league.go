package domain

import (
	"fmt"
	"strings"

	"github.com/iamyahyr/rollercoin-league-calculator/pkg/safe"
)

// League is one tier bucket of mining power. Boundaries are half-open
// GH intervals [MinGH, MaxGH); the last league in a table is treated
// as open-ended upward.
type League struct {
	Name  string  `yaml:"name" json:"name"`
	Class string  `yaml:"class" json:"class"` // CSS badge class ("bronze", "gold", ...)
	MinGH float64 `yaml:"min_gh" json:"min_gh"`
	MaxGH float64 `yaml:"max_gh" json:"max_gh"`
}

// DefaultLeague is the hardcoded floor tier used when classification
// has nothing better to offer. Classification must never fail visibly.
var DefaultLeague = League{Name: "BRONZE I", Class: "bronze", MinGH: 0, MaxGH: 0}

var romanDigits = map[string]string{"I": "1", "II": "2", "III": "3"}

// BadgeImagePath maps a league to its badge image, e.g.
// "BRONZE II" -> "leagues/bronze_2.png".
func (l League) BadgeImagePath() string {
	parts := strings.Fields(strings.ToUpper(l.Name))
	if len(parts) == 2 {
		if digit, ok := romanDigits[parts[1]]; ok {
			return "leagues/" + strings.ToLower(parts[0]) + "_" + digit + ".png"
		}
	}
	return "leagues/bronze_1.png"
}

// LeagueTable is an ordered, validated sequence of leagues.
type LeagueTable struct {
	leagues []League
}

// NewLeagueTable validates and wraps a configured league sequence.
// The table must be non-empty, strictly ascending, and contiguous:
// each league's MaxGH equals the next league's MinGH.
func NewLeagueTable(leagues []League) (*LeagueTable, error) {
	if len(leagues) == 0 {
		return nil, fmt.Errorf("league table is empty")
	}
	for i, l := range leagues {
		if l.Name == "" {
			return nil, fmt.Errorf("league %d has no name", i)
		}
		if l.MinGH < 0 || l.MaxGH <= l.MinGH {
			return nil, fmt.Errorf("league %q has invalid bounds [%v, %v)", l.Name, l.MinGH, l.MaxGH)
		}
		if i > 0 && leagues[i-1].MaxGH != l.MinGH {
			return nil, fmt.Errorf("league table not contiguous: %q ends at %v but %q starts at %v",
				leagues[i-1].Name, leagues[i-1].MaxGH, l.Name, l.MinGH)
		}
	}
	out := make([]League, len(leagues))
	copy(out, leagues)
	return &LeagueTable{leagues: out}, nil
}

// Leagues returns the ordered sequence.
func (t *LeagueTable) Leagues() []League {
	out := make([]League, len(t.leagues))
	copy(out, t.leagues)
	return out
}

// Classify maps a GH power value to its league: the first league whose
// [MinGH, MaxGH) interval contains the value, or the last league when
// the value exceeds every upper bound (unbounded top tier). A nil or
// empty table degrades to DefaultLeague; this path never fails.
func (t *LeagueTable) Classify(powerGH float64) League {
	if t == nil || len(t.leagues) == 0 {
		return DefaultLeague
	}
	powerGH = safe.Finite(powerGH)
	for _, l := range t.leagues {
		if powerGH >= l.MinGH && powerGH < l.MaxGH {
			return l
		}
	}
	return t.leagues[len(t.leagues)-1]
}
