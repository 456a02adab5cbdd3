package sim

import "math"

// Logit maps a probability in (0,1) onto the real line.
func Logit(p float64) float64 {
	return math.Log(p / (1 - p))
}

// InvLogit inverts Logit. Its output lies strictly inside (0,1) for any
// finite input: extreme linear predictors whose float64 result would round
// to exactly 0 or 1 are clamped to the nearest representable neighbor.
func InvLogit(x float64) float64 {
	p := 1 / (1 + math.Exp(-x))
	if p <= 0 {
		return math.Nextafter(0, 1)
	}
	if p >= 1 {
		return math.Nextafter(1, 0)
	}
	return p
}
