package common

const (
	BaseWidth  = 960
	BaseHeight = 540

	// Gravity is in pixels per second squared, screen-down positive.
	Gravity = 1800.0
	// FixedStep is the simulation step; ebiten runs Update at 60 TPS.
	FixedStep = 1.0 / 60.0
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
