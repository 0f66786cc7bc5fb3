// Package scale maps a global progress value onto staggered sub-intervals.
package scale

import "math"

// Inverse returns 1/n. A zero n is a programming error.
func Inverse(n int) float64 {
	if n == 0 {
		panic("scale: division by zero interval count")
	}
	return 1 / float64(n)
}

// MaxScale returns how far x has progressed past the start of the i-th of n
// sub-intervals, never negative.
func MaxScale(x float64, i, n int) float64 {
	return math.Max(0, x-float64(i)*Inverse(n))
}

// DivideScale maps x into the normalized progress of the i-th of n equal
// sub-intervals: 0 before it starts, 1 once it is complete.
func DivideScale(x float64, i, n int) float64 {
	return math.Min(Inverse(n), MaxScale(x, i, n)) * float64(n)
}

// Sinify eases linear [0,1] progress into a rise-and-fall curve.
func Sinify(x float64) float64 {
	return math.Sin(x * math.Pi)
}
