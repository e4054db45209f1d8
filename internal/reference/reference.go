// Package reference provides slow, direct-summation transforms used as
// ground truth in tests.
package reference

import (
	"math"
	"math/cmplx"
)

// DFT returns the unnormalized discrete Fourier transform of x. The
// exponent sign is negative for the forward transform and positive when
// inverse is set.
func DFT(x []complex128, inverse bool) []complex128 {
	n := len(x)
	out := make([]complex128, n)

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for k := range n {
		var sum complex128

		for j, v := range x {
			phase := sign * 2 * math.Pi * float64((k*j)%n) / float64(n)
			sum += v * cmplx.Exp(complex(0, phase))
		}

		out[k] = sum
	}

	return out
}

// DFTND returns the unnormalized multi-dimensional DFT of x, stored in
// row-major order with dims[0] varying slowest.
func DFTND(x []complex128, dims []int, inverse bool) []complex128 {
	out := make([]complex128, len(x))
	copy(out, x)

	stride := len(x)
	for _, d := range dims {
		stride /= d
		line := make([]complex128, d)

		for base := range len(x) {
			// Visit each line along this axis exactly once, from its first element.
			if (base/stride)%d != 0 {
				continue
			}

			for i := range d {
				line[i] = out[base+i*stride]
			}

			res := DFT(line, inverse)
			for i := range d {
				out[base+i*stride] = res[i]
			}
		}
	}

	return out
}

// RealDFT returns the first n/2+1 bins of the forward DFT of a real sequence.
func RealDFT(x []float64) []complex128 {
	c := make([]complex128, len(x))
	for i, v := range x {
		c[i] = complex(v, 0)
	}

	return DFT(c, false)[:len(x)/2+1]
}

// DCT2 returns X[k] = 2 Σ x[n] cos(πk(2n+1)/(2N)).
func DCT2(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)

	for k := range n {
		var sum float64
		for j, v := range x {
			sum += v * math.Cos(math.Pi*float64(k)*float64(2*j+1)/float64(2*n))
		}

		out[k] = 2 * sum
	}

	return out
}

// DCT3 returns x[n] = X[0] + 2 Σ_{k>=1} X[k] cos(πk(2n+1)/(2N)), the
// inverse of DCT2 up to a factor of 2N.
func DCT3(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)

	for j := range n {
		sum := x[0]
		for k := 1; k < n; k++ {
			sum += 2 * x[k] * math.Cos(math.Pi*float64(k)*float64(2*j+1)/float64(2*n))
		}

		out[j] = sum
	}

	return out
}
