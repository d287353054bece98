package news

import (
	"math"
	"strconv"
	"strings"
)

// Result size bounds.
const (
	DefaultLimit = 60
	MinLimit     = 10
	MaxLimit     = 200
)

// ClampLimit bounds n to [MinLimit, MaxLimit].
func ClampLimit(n int) int {
	if n < MinLimit {
		return MinLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// ParseLimit converts a raw query value to a clamped limit.
// Absent or non-numeric input means DefaultLimit; fractions are truncated.
func ParseLimit(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLimit
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) {
		return DefaultLimit
	}
	switch {
	case f >= MaxLimit:
		return MaxLimit
	case f <= MinLimit:
		return MinLimit
	}
	return ClampLimit(int(f))
}
