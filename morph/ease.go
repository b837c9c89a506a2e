package morph

// EaseInOutCubic maps normalized time to a curve that accelerates through
// the first half and decelerates through the second.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// EaseOutQuad decelerates toward the end of the animation, giving moving
// pixels a snap into place.
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
