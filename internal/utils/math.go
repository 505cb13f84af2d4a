package utils

import (
	"math/rand/v2"
)

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min >= max {
		return min
	}
	return rand.IntN(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// ClampFloat bounds value to [lo, hi].
func ClampFloat(value, lo, hi float64) float64 {
	return max(lo, min(value, hi))
}
