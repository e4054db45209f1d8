package fftf

import "fmt"

// Type selects the transform family.
type Type int

const (
	// TypeComplex is a complex-to-complex DFT over interleaved (re, im) pairs.
	TypeComplex Type = iota
	// TypeReal is a real-to-complex DFT (Forward) or its inverse (Backward).
	TypeReal
	// TypeDCT is a DCT-II (Forward) or DCT-III (Backward) of real data.
	TypeDCT
)

func (t Type) String() string {
	switch t {
	case TypeComplex:
		return "complex"
	case TypeReal:
		return "real"
	case TypeDCT:
		return "dct"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (t Type) valid() bool { return t >= TypeComplex && t <= TypeDCT }

// Direction selects the sign of the transform exponent.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) valid() bool { return d == Forward || d == Backward }

// Dimension is the number of axes a transform runs over.
type Dimension int

const (
	Dim1D Dimension = 1
	Dim2D Dimension = 2
	Dim3D Dimension = 3
)

func (d Dimension) String() string {
	if d.valid() {
		return fmt.Sprintf("%dD", int(d))
	}

	return fmt.Sprintf("Dimension(%d)", int(d))
}

func (d Dimension) valid() bool { return d >= Dim1D && d <= Dim3D }

// Backend identifies a transform engine implementation.
type Backend int

const (
	// BackendKiss is the portable KissFFT-based engine.
	BackendKiss Backend = iota
)

func (b Backend) String() string {
	switch b {
	case BackendKiss:
		return "kiss"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}
