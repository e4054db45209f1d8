// Package memory allocates slices whose first element is aligned to the
// host's vector register width.
package memory

import (
	"unsafe"

	"github.com/cwbudde/algo-fftf/internal/cpu"
)

// Alignment returns the byte alignment used by the AllocAligned helpers.
func Alignment() int {
	return cpu.DetectFeatures().VectorWidth()
}

// AllocAlignedFloat32 returns a zeroed slice of n float32 values aligned to
// Alignment(), together with the backing array that keeps it alive.
func AllocAlignedFloat32(n int) ([]float32, []byte) {
	return AllocAlignedFloat32With(n, Alignment())
}

// AllocAlignedFloat32With is AllocAlignedFloat32 with an explicit alignment,
// which must be a power of two no smaller than 4.
func AllocAlignedFloat32With(n, align int) ([]float32, []byte) {
	if n <= 0 {
		return nil, nil
	}

	backing := alignedBacking(n*4, align)
	off := alignOffset(backing, align)

	return unsafe.Slice((*float32)(unsafe.Pointer(&backing[off])), n), backing
}

// IsAligned reports whether the first element of s sits on an align-byte
// boundary. Empty slices are considered aligned.
func IsAligned[T any](s []T, align int) bool {
	if len(s) == 0 {
		return true
	}

	return uintptr(unsafe.Pointer(&s[0]))%uintptr(align) == 0
}

func alignedBacking(size, align int) []byte {
	return make([]byte, size+align-1)
}

func alignOffset(backing []byte, align int) int {
	addr := uintptr(unsafe.Pointer(&backing[0]))
	rem := addr % uintptr(align)

	if rem == 0 {
		return 0
	}

	return int(uintptr(align) - rem)
}
