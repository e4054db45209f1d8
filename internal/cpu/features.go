// Package cpu reports the SIMD capabilities of the host processor.
package cpu

import "sync"

// Features describes the vector extensions available on the running CPU.
type Features struct {
	HasSSE2   bool
	HasSSE3   bool
	HasSSSE3  bool
	HasSSE41  bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	Architecture string
}

var (
	detectOnce sync.Once
	detected   Features
)

// DetectFeatures returns the CPU features of the host. The result is
// computed once and cached.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})

	return detected
}

// VectorWidth returns the widest vector register size in bytes that the
// given feature set can use. It never returns less than 16.
func (f Features) VectorWidth() int {
	switch {
	case f.HasAVX512:
		return 64
	case f.HasAVX, f.HasAVX2:
		return 32
	default:
		return 16
	}
}
