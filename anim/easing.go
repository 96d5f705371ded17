package anim

// easeInOutCubic is the standard cubic ease-in-out curve: slow start,
// fast middle, slow settle. Input and output are both in [0,1].
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 1 + u*u*u/2
}
