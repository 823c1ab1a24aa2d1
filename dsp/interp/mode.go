package interp

import (
	"fmt"
	"strings"
)

// Mode selects how a fractional position is resolved to a value.
type Mode int

const (
	// Nearest returns the element closest to the fractional position.
	Nearest Mode = iota
	// Linear blends the two bracketing elements.
	Linear
	// Spline is reserved for a cubic interpolator and behaves like Linear.
	Spline
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	case Spline:
		return "spline"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Interpolating reports whether m blends neighbouring elements.
func (m Mode) Interpolating() bool {
	return m == Linear || m == Spline
}

// ParseMode converts a mode name to a Mode. The empty string yields Linear.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest":
		return Nearest, nil
	case "", "linear":
		return Linear, nil
	case "spline":
		return Spline, nil
	default:
		return Nearest, fmt.Errorf("interp: unknown mode %q", s)
	}
}
