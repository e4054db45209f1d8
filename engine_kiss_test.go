package fftf

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fftf/internal/reference"
)

func randomFloats(rnd *rand.Rand, n int) []float32 {
	x := make([]float32, n)
	for i := range x {
		x[i] = rnd.Float32()*2 - 1
	}

	return x
}

func toComplex128(interleaved []float32) []complex128 {
	out := make([]complex128, len(interleaved)/2)
	for i := range out {
		out[i] = complex(float64(interleaved[2*i]), float64(interleaved[2*i+1]))
	}

	return out
}

func toFloat64(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}

	return out
}

func tolerance(n int) float64 {
	return 2e-4 * math.Max(1, math.Log2(float64(n))) * math.Sqrt(float64(n))
}

func newKiss(t *testing.T, typ Type, dir Direction, lengths []int, in, out []float32) *Instance {
	t.Helper()

	inst, err := New(BackendKiss, typ, dir, Dimension(len(lengths)), lengths, in, out)
	require.NoError(t, err)
	t.Cleanup(inst.Destroy)

	return inst
}

func TestKiss_Complex(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(1))

	shapes := [][]int{{1}, {7}, {64}, {100}, {4, 8}, {5, 3}, {2, 3, 4}, {4, 4, 4}}

	for _, lengths := range shapes {
		for _, dir := range []Direction{Forward, Backward} {
			t.Run(fmt.Sprintf("%v/%v", lengths, dir), func(t *testing.T) {
				size := 1
				for _, n := range lengths {
					size *= n
				}

				in := randomFloats(rnd, 2*size)
				out := make([]float32, 2*size)

				inst := newKiss(t, TypeComplex, dir, lengths, in, out)
				require.NoError(t, inst.Calc())

				want := reference.DFTND(toComplex128(in), lengths, dir == Backward)
				got := toComplex128(out)

				for i := range want {
					require.InDelta(t, 0, cmplx.Abs(got[i]-want[i]), tolerance(size), "bin %d", i)
				}
			})
		}
	}
}

func TestKiss_ComplexInPlace(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(2))
	buf := randomFloats(rnd, 2*48)
	want := reference.DFT(toComplex128(buf), false)

	inst := newKiss(t, TypeComplex, Forward, []int{48}, buf, buf)
	require.NoError(t, inst.Calc())

	got := toComplex128(buf)
	for i := range want {
		require.InDelta(t, 0, cmplx.Abs(got[i]-want[i]), tolerance(48), "bin %d", i)
	}
}

func TestKiss_ComplexInPlaceND(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(20))

	for _, lengths := range [][]int{{4, 6}, {2, 3, 5}} {
		for _, dir := range []Direction{Forward, Backward} {
			size := 1
			for _, n := range lengths {
				size *= n
			}

			buf := randomFloats(rnd, 2*size)
			want := reference.DFTND(toComplex128(buf), lengths, dir == Backward)

			inst := newKiss(t, TypeComplex, dir, lengths, buf, buf)
			require.NoError(t, inst.Calc())

			got := toComplex128(buf)
			for i := range want {
				require.InDelta(t, 0, cmplx.Abs(got[i]-want[i]), tolerance(size), "%v %v bin %d", lengths, dir, i)
			}
		}
	}
}

func TestKiss_RealForward(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(3))

	for _, n := range []int{2, 10, 64, 90} {
		in := randomFloats(rnd, n)
		out := make([]float32, n+2)

		inst := newKiss(t, TypeReal, Forward, []int{n}, in, out)
		require.NoError(t, inst.Calc())

		want := reference.RealDFT(toFloat64(in))
		got := toComplex128(out)

		for k := range want {
			require.InDelta(t, 0, cmplx.Abs(got[k]-want[k]), tolerance(n), "n=%d bin %d", n, k)
		}
	}
}

func TestKiss_RealRoundTrip(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(4))
	n := 128

	x := randomFloats(rnd, n)
	spectrum := make([]float32, n+2)
	back := make([]float32, n)

	fwd := newKiss(t, TypeReal, Forward, []int{n}, x, spectrum)
	inv := newKiss(t, TypeReal, Backward, []int{n}, spectrum, back)

	require.NoError(t, fwd.Calc())
	require.NoError(t, inv.Calc())

	for i := range x {
		assert.InDelta(t, float64(x[i]), float64(back[i])/float64(n), 1e-4, "sample %d", i)
	}
}

func TestKiss_RealInPlace(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(21))

	for _, n := range []int{2, 12, 64, 90} {
		buf := make([]float32, n+2)
		x := randomFloats(rnd, n)
		copy(buf, x)

		fwd := newKiss(t, TypeReal, Forward, []int{n}, buf, buf)
		inv := newKiss(t, TypeReal, Backward, []int{n}, buf, buf)

		require.NoError(t, fwd.Calc())

		want := reference.RealDFT(toFloat64(x))
		got := toComplex128(buf)

		for k := range want {
			require.InDelta(t, 0, cmplx.Abs(got[k]-want[k]), tolerance(n), "n=%d bin %d", n, k)
		}

		require.NoError(t, inv.Calc())

		for i, v := range x {
			assert.InDelta(t, float64(n)*float64(v), float64(buf[i]), tolerance(n)*float64(n), "n=%d sample %d", n, i)
		}
	}
}

func TestKiss_RealRejectsOddLength(t *testing.T) {
	t.Parallel()

	buf := make([]float32, 16)

	_, err := New(BackendKiss, TypeReal, Forward, Dim1D, []int{7}, buf, buf)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestKiss_HigherDimensionsNotImplemented(t *testing.T) {
	t.Parallel()

	buf := make([]float32, 256)

	for _, typ := range []Type{TypeReal, TypeDCT} {
		_, err := New(BackendKiss, typ, Forward, Dim2D, []int{8, 8}, buf, buf)
		assert.ErrorIs(t, err, ErrNotImplemented, "%v", typ)

		_, err = New(BackendKiss, typ, Backward, Dim3D, []int{2, 2, 2}, buf, buf)
		assert.ErrorIs(t, err, ErrNotImplemented, "%v", typ)
	}
}

func TestKiss_DCTForward(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(5))

	for _, n := range []int{1, 2, 3, 8, 15, 32, 100} {
		in := randomFloats(rnd, n)
		out := make([]float32, n)

		inst := newKiss(t, TypeDCT, Forward, []int{n}, in, out)
		require.NoError(t, inst.Calc())

		want := reference.DCT2(toFloat64(in))
		for k := range want {
			require.InDelta(t, want[k], float64(out[k]), tolerance(2*n), "n=%d k=%d", n, k)
		}
	}
}

func TestKiss_DCTBackward(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(6))

	for _, n := range []int{1, 2, 5, 8, 16, 60} {
		in := randomFloats(rnd, n)
		out := make([]float32, n)

		inst := newKiss(t, TypeDCT, Backward, []int{n}, in, out)
		require.NoError(t, inst.Calc())

		want := reference.DCT3(toFloat64(in))
		for i := range want {
			require.InDelta(t, want[i], float64(out[i]), tolerance(2*n), "n=%d i=%d", n, i)
		}
	}
}

func TestKiss_DCTRoundTripScalesBy2N(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(7))

	for _, n := range []int{4, 8, 12, 64} {
		x := randomFloats(rnd, n)
		coeffs := make([]float32, n)
		back := make([]float32, n)

		fwd := newKiss(t, TypeDCT, Forward, []int{n}, x, coeffs)
		inv := newKiss(t, TypeDCT, Backward, []int{n}, coeffs, back)

		// Repeated execution must not depend on leftover scratch contents.
		for range 2 {
			require.NoError(t, fwd.Calc())
			require.NoError(t, inv.Calc())

			for i := range x {
				require.InDelta(t, float64(x[i]), float64(back[i])/float64(2*n), 1e-4, "n=%d i=%d", n, i)
			}
		}
	}
}

func TestKiss_DCTInPlace(t *testing.T) {
	t.Parallel()

	buf := []float32{1, 2, 3, 4, 5, 6}
	want := reference.DCT2(toFloat64(buf))

	inst := newKiss(t, TypeDCT, Forward, []int{len(buf)}, buf, buf)
	require.NoError(t, inst.Calc())

	for k := range want {
		assert.InDelta(t, want[k], float64(buf[k]), 1e-4, "k=%d", k)
	}
}

func TestKiss_DCTConstantInput(t *testing.T) {
	t.Parallel()

	// A constant signal has all its energy in the DC coefficient: 2*N*c.
	n := 16
	in := make([]float32, n)

	for i := range in {
		in[i] = 0.5
	}

	out := make([]float32, n)

	inst := newKiss(t, TypeDCT, Forward, []int{n}, in, out)
	require.NoError(t, inst.Calc())

	assert.InDelta(t, float64(n), float64(out[0]), 1e-4)

	for k := 1; k < n; k++ {
		assert.InDelta(t, 0, float64(out[k]), 1e-4, "k=%d", k)
	}
}

func TestKiss_PlanState(t *testing.T) {
	t.Parallel()

	buf := make([]float32, 64)

	inst := newKiss(t, TypeDCT, Forward, []int{8}, buf, buf)

	dct, ok := inst.Internal.(*kissDCT)
	require.True(t, ok, "DCT plan state has type %T", inst.Internal)
	assert.Len(t, dct.input, 18)
	assert.Len(t, dct.output, 18)
	assert.Equal(t, 16, dct.cfg.Len())

	inst.Destroy()
	assert.Nil(t, inst.Internal)
}
