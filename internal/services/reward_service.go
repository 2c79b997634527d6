package services

import (
	"math"
	"math/rand"
)

// round2 rounds a monetary amount to the nearest cent. Every computed
// amount passes through this immediately; fractional cents are never
// carried across operations.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GenerateReward returns an amount uniformly distributed in [min, max],
// rounded to two decimals. Callers must pass min <= max; the bounds come
// from the video catalog which enforces that at seed time.
func GenerateReward(min, max float64) float64 {
	return round2(min + rand.Float64()*(max-min))
}
