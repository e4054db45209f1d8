package fftf

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/cwbudde/algo-fftf/internal/kiss"
	m "github.com/cwbudde/algo-fftf/internal/math"
	"github.com/cwbudde/algo-fftf/internal/memory"
)

func init() {
	Register(BackendKiss, kissEngine{})
}

// kissEngine adapts the kiss package to the Engine interface.
type kissEngine struct{}

// kissDCT is the plan state of a length-N DCT: a real FFT of length 2N and
// two scratch buffers of 2N+2 floats, enough for N+1 complex bins.
type kissDCT struct {
	cfg     *kiss.Real
	input   []float32
	output  []float32
	weights []complex64 // e^{∓iπk/(2N)}, k = 0..N-1
}

func (kissEngine) Init(inst *Instance) error {
	inverse := inst.Direction == Backward
	n := inst.Length()

	switch inst.Type {
	case TypeComplex:
		if inst.Dimension == Dim1D {
			cfg, err := kiss.New(n, inverse)
			if err != nil {
				return kissError(err, inst.Lengths)
			}

			inst.Internal = cfg

			return nil
		}

		cfg, err := kiss.NewND(inst.Lengths, inverse)
		if err != nil {
			return kissError(err, inst.Lengths)
		}

		inst.Internal = cfg

	case TypeReal:
		if inst.Dimension != Dim1D {
			return fmt.Errorf("%w: real transforms are one-dimensional only", ErrNotImplemented)
		}

		cfg, err := kiss.NewReal(n, inverse)
		if err != nil {
			return kissError(err, inst.Lengths)
		}

		inst.Internal = cfg

	case TypeDCT:
		if inst.Dimension != Dim1D {
			return fmt.Errorf("%w: DCT is one-dimensional only", ErrNotImplemented)
		}

		cfg, err := kiss.NewReal(2*n, inverse)
		if err != nil {
			return kissError(err, inst.Lengths)
		}

		sign := -1.0
		if inverse {
			sign = 1.0
		}

		weights := make([]complex64, n)
		for k := range weights {
			weights[k] = m.Expi(sign * math.Pi * float64(k) / float64(2*n))
		}

		input, _ := memory.AllocAlignedFloat32(2*n + 2)
		output, _ := memory.AllocAlignedFloat32(2*n + 2)

		inst.Internal = &kissDCT{
			cfg:     cfg,
			input:   input,
			output:  output,
			weights: weights,
		}
	}

	return nil
}

func (kissEngine) Calc(inst *Instance) {
	switch inst.Type {
	case TypeComplex:
		size := inst.Size()
		in := asComplex(inst.Input, size)
		out := asComplex(inst.Output, size)

		switch cfg := inst.Internal.(type) {
		case *kiss.FFT:
			cfg.Transform(in, out)
		case *kiss.ND:
			cfg.Transform(in, out)
		}

	case TypeReal:
		cfg := inst.Internal.(*kiss.Real)
		bins := cfg.SpectrumLen()

		if inst.Direction == Forward {
			cfg.Forward(inst.Input, asComplex(inst.Output, bins))
		} else {
			cfg.Inverse(asComplex(inst.Input, bins), inst.Output)
		}

	case TypeDCT:
		dct := inst.Internal.(*kissDCT)
		if inst.Direction == Forward {
			dct.forward(inst.Input, inst.Output)
		} else {
			dct.backward(inst.Input, inst.Output)
		}
	}
}

func (kissEngine) Destroy(inst *Instance) {
	inst.Internal = nil
}

func (kissEngine) Malloc(n int) []float32 {
	buf, _ := memory.AllocAlignedFloat32(n)
	if buf == nil {
		return []float32{}
	}

	return buf
}

// forward computes X[k] = 2 Σ x[n] cos(πk(2n+1)/(2N)) by transforming the
// even extension [x, reverse(x)] and rotating each bin by e^{-iπk/(2N)}.
func (d *kissDCT) forward(src, dst []float32) {
	n := len(d.weights)
	buf := d.input

	copy(buf[:n], src[:n])

	for i := range n {
		buf[n+i] = src[n-1-i]
	}

	spectrum := asComplex(d.output, n+1)
	d.cfg.Forward(buf[:2*n], spectrum)

	for k, w := range d.weights {
		y := spectrum[k]
		dst[k] = real(w)*real(y) - imag(w)*imag(y)
	}
}

// backward computes x[n] = X[0] + 2 Σ_{k>=1} X[k] cos(πk(2n+1)/(2N)) by
// rotating X into a half spectrum of length 2N with a zero Nyquist bin and
// keeping the first N samples of its inverse real FFT.
func (d *kissDCT) backward(src, dst []float32) {
	n := len(d.weights)
	spectrum := asComplex(d.input, n+1)

	for k, w := range d.weights {
		spectrum[k] = w * complex(src[k], 0)
	}

	spectrum[n] = 0

	d.cfg.Inverse(spectrum, d.output[:2*n])
	copy(dst[:n], d.output[:n])
}

// asComplex reinterprets the first 2n floats of buf as n interleaved
// complex values.
func asComplex(buf []float32, n int) []complex64 {
	_ = buf[2*n-1]

	return unsafe.Slice((*complex64)(unsafe.Pointer(&buf[0])), n)
}

func kissError(err error, lengths []int) error {
	if errors.Is(err, kiss.ErrInvalidLength) {
		return fmt.Errorf("%w: %v", ErrInvalidLength, lengths)
	}

	return err
}
