// Package kiss is a mixed-radix FFT in the style of Mark Borgerding's
// KissFFT: a recursive decimation-in-time transform with specialised
// radix-2, 3, 4 and 5 butterflies and a generic butterfly for any other
// prime factor. All transforms are unnormalized.
package kiss

import (
	"errors"

	m "github.com/cwbudde/algo-fftf/internal/math"
)

// ErrInvalidLength is returned when a transform size cannot be planned.
var ErrInvalidLength = errors.New("kiss: invalid transform length")

// FFT is a complex one-dimensional transform configuration. It owns
// scratch space, so a single FFT must not be used by concurrent callers.
type FFT struct {
	nfft     int
	inverse  bool
	factors  []int // (radix, remaining length) pairs
	twiddles []complex64

	scratch []complex64 // generic butterfly, sized to the largest radix
	tmpbuf  []complex64 // in-place transforms
}

// New plans a complex FFT of length n. Any n >= 1 is accepted.
func New(n int, inverse bool) (*FFT, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	f := &FFT{
		nfft:     n,
		inverse:  inverse,
		factors:  factor(n),
		twiddles: m.Twiddles(n, inverse),
	}

	maxRadix := 0
	for i := 0; i < len(f.factors); i += 2 {
		maxRadix = max(maxRadix, f.factors[i])
	}

	if maxRadix < 2 || maxRadix > 5 {
		f.scratch = make([]complex64, maxRadix)
	}

	return f, nil
}

// Len returns the transform length.
func (f *FFT) Len() int { return f.nfft }

// IsInverse reports whether f computes the positive-exponent transform.
func (f *FFT) IsInverse() bool { return f.inverse }

// radices returns the radices f decomposes its length into, outermost first.
func (f *FFT) radices() []int {
	radices := make([]int, 0, len(f.factors)/2)
	for i := 0; i < len(f.factors); i += 2 {
		radices = append(radices, f.factors[i])
	}

	return radices
}

// Transform computes fout = DFT(fin). fin and fout must hold at least Len()
// elements and may be the same slice, but must not otherwise overlap.
func (f *FFT) Transform(fin, fout []complex64) {
	f.TransformStride(fin, fout, 1)
}

// TransformStride is Transform reading fin[0], fin[inStride], fin[2*inStride]...
func (f *FFT) TransformStride(fin, fout []complex64, inStride int) {
	_ = fin[(f.nfft-1)*inStride]
	_ = fout[f.nfft-1]

	if &fin[0] == &fout[0] {
		if f.tmpbuf == nil {
			f.tmpbuf = make([]complex64, f.nfft)
		}

		f.work(f.tmpbuf, fin, 0, 1, inStride, f.factors)
		copy(fout, f.tmpbuf)

		return
	}

	f.work(fout, fin, 0, 1, inStride, f.factors)
}

// work writes the transform of the decimated input sequence starting at
// fin[in] into fout[:p*m], then combines it with the butterfly for p.
func (f *FFT) work(fout, fin []complex64, in, fstride, inStride int, factors []int) {
	p, mm := factors[0], factors[1]
	step := fstride * inStride

	if mm == 1 {
		for j := range p {
			fout[j] = fin[in]
			in += step
		}
	} else {
		for j := range p {
			f.work(fout[j*mm:], fin, in, fstride*p, inStride, factors[2:])
			in += step
		}
	}

	switch p {
	case 2:
		f.bfly2(fout, fstride, mm)
	case 3:
		f.bfly3(fout, fstride, mm)
	case 4:
		f.bfly4(fout, fstride, mm)
	case 5:
		f.bfly5(fout, fstride, mm)
	default:
		f.bflyGeneric(fout, fstride, mm, p)
	}
}

func (f *FFT) bfly2(fout []complex64, fstride, mm int) {
	_ = fout[2*mm-1]
	tw := 0

	for k := range mm {
		t := fout[k+mm] * f.twiddles[tw]
		tw += fstride
		fout[k+mm] = fout[k] - t
		fout[k] += t
	}
}

func (f *FFT) bfly3(fout []complex64, fstride, mm int) {
	_ = fout[3*mm-1]
	m2 := 2 * mm
	tw := f.twiddles
	epi3 := imag(tw[fstride*mm])

	for k := range mm {
		s1 := fout[k+mm] * tw[k*fstride]
		s2 := fout[k+m2] * tw[2*k*fstride]

		s3 := s1 + s2
		s0 := s1 - s2

		fm := fout[k] - complex(0.5*real(s3), 0.5*imag(s3))
		s0 = complex(real(s0)*epi3, imag(s0)*epi3)

		fout[k] += s3
		fout[k+m2] = complex(real(fm)+imag(s0), imag(fm)-real(s0))
		fout[k+mm] = complex(real(fm)-imag(s0), imag(fm)+real(s0))
	}
}

func (f *FFT) bfly4(fout []complex64, fstride, mm int) {
	_ = fout[4*mm-1]
	m2, m3 := 2*mm, 3*mm
	tw := f.twiddles

	for k := range mm {
		s0 := fout[k+mm] * tw[k*fstride]
		s1 := fout[k+m2] * tw[2*k*fstride]
		s2 := fout[k+m3] * tw[3*k*fstride]

		s5 := fout[k] - s1
		fout[k] += s1
		s3 := s0 + s2
		s4 := s0 - s2
		fout[k+m2] = fout[k] - s3
		fout[k] += s3

		if f.inverse {
			fout[k+mm] = complex(real(s5)-imag(s4), imag(s5)+real(s4))
			fout[k+m3] = complex(real(s5)+imag(s4), imag(s5)-real(s4))
		} else {
			fout[k+mm] = complex(real(s5)+imag(s4), imag(s5)-real(s4))
			fout[k+m3] = complex(real(s5)-imag(s4), imag(s5)+real(s4))
		}
	}
}

func (f *FFT) bfly5(fout []complex64, fstride, mm int) {
	_ = fout[5*mm-1]
	tw := f.twiddles
	ya := tw[fstride*mm]
	yb := tw[2*fstride*mm]

	for u := range mm {
		s0 := fout[u]
		s1 := fout[u+mm] * tw[u*fstride]
		s2 := fout[u+2*mm] * tw[2*u*fstride]
		s3 := fout[u+3*mm] * tw[3*u*fstride]
		s4 := fout[u+4*mm] * tw[4*u*fstride]

		s7 := s1 + s4
		s10 := s1 - s4
		s8 := s2 + s3
		s9 := s2 - s3

		fout[u] = s0 + s7 + s8

		s5 := complex(
			real(s0)+real(s7)*real(ya)+real(s8)*real(yb),
			imag(s0)+imag(s7)*real(ya)+imag(s8)*real(yb),
		)
		s6 := complex(
			imag(s10)*imag(ya)+imag(s9)*imag(yb),
			-real(s10)*imag(ya)-real(s9)*imag(yb),
		)

		fout[u+mm] = s5 - s6
		fout[u+4*mm] = s5 + s6

		s11 := complex(
			real(s0)+real(s7)*real(yb)+real(s8)*real(ya),
			imag(s0)+imag(s7)*real(yb)+imag(s8)*real(ya),
		)
		s12 := complex(
			-imag(s10)*imag(yb)+imag(s9)*imag(ya),
			real(s10)*imag(yb)-real(s9)*imag(ya),
		)

		fout[u+2*mm] = s11 + s12
		fout[u+3*mm] = s11 - s12
	}
}

// bflyGeneric handles any radix p by direct summation over the p inputs.
func (f *FFT) bflyGeneric(fout []complex64, fstride, mm, p int) {
	n := f.nfft
	scratch := f.scratch[:p]

	for u := range mm {
		k := u
		for q := range p {
			scratch[q] = fout[k]
			k += mm
		}

		k = u
		for range p {
			tw := 0
			acc := scratch[0]

			for q := 1; q < p; q++ {
				tw += fstride * k
				if tw >= n {
					tw -= n
				}

				acc += scratch[q] * f.twiddles[tw]
			}

			fout[k] = acc
			k += mm
		}
	}
}

// factor splits n into (radix, remaining) pairs, preferring radix 4, then
// 2, then odd numbers. A remainder with no factor up to ⌊√n⌋ becomes one
// final generic stage.
func factor(n int) []int {
	var factors []int

	p := 4
	floorSqrt := m.FloorSqrt(n)

	for {
		for n%p != 0 {
			switch p {
			case 4:
				p = 2
			case 2:
				p = 3
			default:
				p += 2
			}

			if p > floorSqrt {
				p = n
			}
		}

		n /= p
		factors = append(factors, p, n)

		if n <= 1 {
			return factors
		}
	}
}
