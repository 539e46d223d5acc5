package transform

import "math"

// sin and cos snap results below 1e-15 to an exact zero, so quarter turns
// produce exact axis-aligned matrices.
func sin(x float64) float64 {
	s := math.Sin(x)
	if math.Abs(s) < 1e-15 {
		return 0
	}
	return s
}

func cos(x float64) float64 {
	c := math.Cos(x)
	if math.Abs(c) < 1e-15 {
		return 0
	}
	return c
}
