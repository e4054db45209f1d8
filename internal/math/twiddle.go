// Package math holds the trigonometric helpers shared by the transform kernels.
package math

import "math"

// TwoPi is 2π with full float64 precision.
const TwoPi = 2.0 * math.Pi

// Expi returns e^{iθ} rounded to complex64. The angle is evaluated in
// float64 so that large twiddle tables stay accurate.
func Expi(theta float64) complex64 {
	s, c := math.Sincos(theta)
	return complex(float32(c), float32(s))
}

// Twiddles returns the n roots of unity e^{∓2πik/n}, k = 0..n-1.
// The exponent is negative for forward transforms and positive when
// inverse is set.
func Twiddles(n int, inverse bool) []complex64 {
	if n <= 0 {
		return nil
	}

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	tw := make([]complex64, n)
	for k := range tw {
		tw[k] = Expi(sign * TwoPi * float64(k) / float64(n))
	}

	return tw
}

// FloorSqrt returns ⌊√n⌋ for n >= 0.
func FloorSqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}

	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}
