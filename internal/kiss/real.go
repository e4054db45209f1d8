package kiss

import (
	"math"
	"unsafe"

	m "github.com/cwbudde/algo-fftf/internal/math"
)

// Real is a real-input transform of even length n, computed as a complex
// transform of length n/2 over the interleaved samples followed by a
// split step. The spectrum holds the n/2+1 non-redundant bins.
type Real struct {
	nfft          int
	sub           *FFT
	superTwiddles []complex64
	tmpbuf        []complex64
}

// NewReal plans a real FFT of length n, which must be even and positive.
// A forward plan maps n samples to n/2+1 bins; an inverse plan maps them back.
func NewReal(n int, inverse bool) (*Real, error) {
	if n < 2 || n%2 != 0 {
		return nil, ErrInvalidLength
	}

	ncfft := n / 2

	sub, err := New(ncfft, inverse)
	if err != nil {
		return nil, err
	}

	super := make([]complex64, ncfft/2)
	for i := range super {
		phase := -math.Pi * (float64(i+1)/float64(ncfft) + 0.5)
		if inverse {
			phase = -phase
		}

		super[i] = m.Expi(phase)
	}

	return &Real{
		nfft:          n,
		sub:           sub,
		superTwiddles: super,
		tmpbuf:        make([]complex64, ncfft),
	}, nil
}

// Len returns the number of real samples.
func (r *Real) Len() int { return r.nfft }

// SpectrumLen returns the number of complex bins, n/2+1.
func (r *Real) SpectrumLen() int { return r.nfft/2 + 1 }

// IsInverse reports whether r was planned for the spectrum-to-samples direction.
func (r *Real) IsInverse() bool { return r.sub.inverse }

// Forward transforms n real samples into n/2+1 bins. It panics on a plan
// created with inverse set.
func (r *Real) Forward(timedata []float32, freqdata []complex64) {
	if r.sub.inverse {
		panic("kiss: Forward called on an inverse real plan")
	}

	ncfft := r.sub.nfft
	_ = timedata[r.nfft-1]
	_ = freqdata[ncfft]

	packed := unsafe.Slice((*complex64)(unsafe.Pointer(&timedata[0])), ncfft)
	r.sub.Transform(packed, r.tmpbuf)

	tdc := r.tmpbuf[0]
	freqdata[0] = complex(real(tdc)+imag(tdc), 0)
	freqdata[ncfft] = complex(real(tdc)-imag(tdc), 0)

	for k := 1; k <= ncfft/2; k++ {
		fpk := r.tmpbuf[k]
		fpnk := conj(r.tmpbuf[ncfft-k])

		f1k := fpk + fpnk
		f2k := fpk - fpnk
		tw := f2k * r.superTwiddles[k-1]

		freqdata[k] = complex(0.5*(real(f1k)+real(tw)), 0.5*(imag(f1k)+imag(tw)))
		freqdata[ncfft-k] = complex(0.5*(real(f1k)-real(tw)), 0.5*(imag(tw)-imag(f1k)))
	}
}

// Inverse transforms n/2+1 bins back into n real samples, scaled by n.
// The imaginary parts of the first and last bins are ignored. It panics on
// a plan created without inverse set.
func (r *Real) Inverse(freqdata []complex64, timedata []float32) {
	if !r.sub.inverse {
		panic("kiss: Inverse called on a forward real plan")
	}

	ncfft := r.sub.nfft
	_ = freqdata[ncfft]
	_ = timedata[r.nfft-1]

	r.tmpbuf[0] = complex(
		real(freqdata[0])+real(freqdata[ncfft]),
		real(freqdata[0])-real(freqdata[ncfft]),
	)

	for k := 1; k <= ncfft/2; k++ {
		fk := freqdata[k]
		fnkc := conj(freqdata[ncfft-k])

		fek := fk + fnkc
		fok := (fk - fnkc) * r.superTwiddles[k-1]

		r.tmpbuf[k] = fek + fok
		r.tmpbuf[ncfft-k] = conj(fek - fok)
	}

	out := unsafe.Slice((*complex64)(unsafe.Pointer(&timedata[0])), ncfft)
	r.sub.Transform(r.tmpbuf, out)
}

func conj(c complex64) complex64 {
	return complex(real(c), -imag(c))
}
