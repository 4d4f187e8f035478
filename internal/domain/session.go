package domain

import "strings"

// DisplayMode selects the denomination of rendered earnings.
type DisplayMode string

const (
	ModeNative DisplayMode = "crypto"
	ModeUSD    DisplayMode = "usd"
	ModeEUR    DisplayMode = "eur"
)

// ParseDisplayMode normalizes a raw mode string; anything unrecognized
// (including empty) falls back to native display.
func ParseDisplayMode(s string) DisplayMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "usd":
		return ModeUSD
	case "eur":
		return ModeEUR
	default:
		return ModeNative
	}
}

// Fiat reports whether the mode renders in a fiat currency.
func (m DisplayMode) Fiat() bool {
	return m == ModeUSD || m == ModeEUR
}

// Session is the single mutable context of one user's calculation.
// It is owned exclusively by the orchestrating caller (one per HTTP
// request or per stream connection); engine components never hold
// state of their own.
type Session struct {
	PowerGH float64
	League  *League
	Mode    DisplayMode
	Network NetworkSnapshot
}

// NewSession returns a session in native display mode with no data.
func NewSession() *Session {
	return &Session{Mode: ModeNative}
}
