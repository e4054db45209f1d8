package fftf

import (
	"fmt"
	"math"
)

// Instance is a planned transform bound to its input and output buffers.
// Instances are created by New; a zero Instance has no engine and Calc
// reports ErrDestroyed for it. An Instance must not be executed by
// concurrent goroutines; engines keep scratch space in the plan state.
type Instance struct {
	Type      Type
	Direction Direction
	Dimension Dimension
	Lengths   []int
	Input     []float32
	Output    []float32

	// Internal holds backend-private plan state between Init and Destroy.
	Internal any

	engine    Engine
	destroyed bool
}

// New validates a transform description and asks the backend to plan it.
// lengths holds one entry per dimension, slowest-varying axis first.
func New(backend Backend, typ Type, dir Direction, dim Dimension, lengths []int, input, output []float32) (*Instance, error) {
	if !typ.valid() || !dir.valid() || !dim.valid() {
		return nil, fmt.Errorf("%w: type=%v direction=%v dimension=%v", ErrInvalidConfig, typ, dir, dim)
	}

	if len(lengths) != int(dim) {
		return nil, fmt.Errorf("%w: %d lengths for %v transform", ErrInvalidConfig, len(lengths), dim)
	}

	// Buffers hold up to two floats per point, so the point count must
	// stay below MaxInt/2.
	size := 1
	for _, n := range lengths {
		if n < 1 || size > (math.MaxInt/2)/n {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLength, lengths)
		}

		size *= n
	}

	if input == nil || output == nil {
		return nil, ErrNilSlice
	}

	engine, err := Lookup(backend)
	if err != nil {
		return nil, err
	}

	inst := &Instance{
		Type:      typ,
		Direction: dir,
		Dimension: dim,
		Lengths:   append([]int(nil), lengths...),
		Input:     input,
		Output:    output,
		engine:    engine,
	}

	wantIn, wantOut := inst.BufferLens()
	if len(input) < wantIn || len(output) < wantOut {
		return nil, fmt.Errorf("%w: have input=%d output=%d, need input=%d output=%d",
			ErrLengthMismatch, len(input), len(output), wantIn, wantOut)
	}

	if err := engine.Init(inst); err != nil {
		return nil, fmt.Errorf("%v backend: init %v %v %v %v: %w", backend, dim, typ, dir, lengths, err)
	}

	return inst, nil
}

// Calc executes the transform, reading Input and writing Output.
func (inst *Instance) Calc() error {
	if inst.destroyed || inst.engine == nil {
		return ErrDestroyed
	}

	inst.engine.Calc(inst)

	return nil
}

// Destroy releases the backend plan state. It is safe to call more than once.
func (inst *Instance) Destroy() {
	if inst.destroyed {
		return
	}

	if inst.engine != nil {
		inst.engine.Destroy(inst)
	}

	inst.Internal = nil
	inst.destroyed = true
}

// Length returns the length of the first (slowest) axis.
func (inst *Instance) Length() int {
	return inst.Lengths[0]
}

// Size returns the number of points in the transform, the product of all lengths.
func (inst *Instance) Size() int {
	size := 1
	for _, n := range inst.Lengths {
		size *= n
	}

	return size
}

// BufferLens returns the minimum number of floats the input and output
// buffers must hold. Real spectra keep the non-redundant half of the last
// axis.
func (inst *Instance) BufferLens() (in, out int) {
	size := inst.Size()

	switch inst.Type {
	case TypeComplex:
		return 2 * size, 2 * size
	case TypeReal:
		last := inst.Lengths[len(inst.Lengths)-1]
		spectrum := 2 * (size / last) * (last/2 + 1)

		if inst.Direction == Forward {
			return size, spectrum
		}

		return spectrum, size
	default:
		return size, size
	}
}
