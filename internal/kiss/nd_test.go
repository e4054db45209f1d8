package kiss

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-fftf/internal/reference"
)

func TestNewND_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := NewND(nil, false); err != ErrInvalidLength {
		t.Errorf("NewND(nil) error = %v, want ErrInvalidLength", err)
	}

	if _, err := NewND([]int{4, 0}, false); err != ErrInvalidLength {
		t.Errorf("NewND([4 0]) error = %v, want ErrInvalidLength", err)
	}
}

func TestND_MatchesReference(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(20))

	shapes := [][]int{
		{16},
		{4, 4},
		{3, 5},
		{8, 6},
		{2, 3, 4},
		{5, 4, 3},
		{2, 2, 2, 2},
	}

	for _, dims := range shapes {
		for _, inverse := range []bool{false, true} {
			t.Run(fmt.Sprintf("dims=%v/inverse=%v", dims, inverse), func(t *testing.T) {
				nd, err := NewND(dims, inverse)
				if err != nil {
					t.Fatalf("NewND(%v) failed: %v", dims, err)
				}

				x := randomComplex(rnd, nd.Len())
				got := make([]complex64, nd.Len())
				nd.Transform(x, got)

				assertClose(t, got, reference.DFTND(widen(x), dims, inverse), nd.Len())
			})
		}
	}
}

func TestND_InPlace(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(21))

	for _, dims := range [][]int{{6, 4}, {3, 2, 5}} {
		nd, _ := NewND(dims, false)
		x := randomComplex(rnd, nd.Len())
		want := reference.DFTND(widen(x), dims, false)

		nd.Transform(x, x)
		assertClose(t, x, want, nd.Len())
	}
}

func TestND_LeavesInputIntact(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(22))
	dims := []int{3, 4, 5}

	nd, _ := NewND(dims, false)
	x := randomComplex(rnd, nd.Len())
	orig := append([]complex64(nil), x...)

	nd.Transform(x, make([]complex64, nd.Len()))

	for i := range x {
		if x[i] != orig[i] {
			t.Fatalf("input modified at %d: %v != %v", i, x[i], orig[i])
		}
	}
}

func TestND_Dims(t *testing.T) {
	t.Parallel()

	dims := []int{4, 8}
	nd, _ := NewND(dims, false)

	got := nd.Dims()
	got[0] = 99

	if nd.Dims()[0] != 4 {
		t.Error("Dims() exposed internal state")
	}

	if nd.Len() != 32 {
		t.Errorf("Len() = %d, want 32", nd.Len())
	}
}
