package memory

import "testing"

func TestAllocAlignedFloat32(t *testing.T) {
	t.Parallel()

	align := Alignment()

	for _, n := range []int{1, 3, 16, 1000, 4097} {
		buf, backing := AllocAlignedFloat32(n)
		if len(buf) != n {
			t.Fatalf("len = %d, want %d", len(buf), n)
		}

		if backing == nil {
			t.Fatalf("n=%d: backing is nil", n)
		}

		if !IsAligned(buf, align) {
			t.Errorf("n=%d: buffer not aligned to %d bytes", n, align)
		}

		for i, v := range buf {
			if v != 0 {
				t.Fatalf("n=%d: buf[%d] = %v, want 0", n, i, v)
			}
		}
	}
}

func TestAllocAlignedFloat32With(t *testing.T) {
	t.Parallel()

	for _, align := range []int{4, 16, 32, 64, 128} {
		buf, _ := AllocAlignedFloat32With(33, align)
		if !IsAligned(buf, align) {
			t.Errorf("buffer not aligned to %d bytes", align)
		}

		// The full slice must be writable without touching memory past the backing array.
		for i := range buf {
			buf[i] = float32(i)
		}
	}
}

func TestAllocAligned_Empty(t *testing.T) {
	t.Parallel()

	if buf, backing := AllocAlignedFloat32(0); buf != nil || backing != nil {
		t.Errorf("AllocAlignedFloat32(0) = %v, %v; want nil, nil", buf, backing)
	}

	if buf, backing := AllocAlignedFloat32With(-1, 16); buf != nil || backing != nil {
		t.Errorf("AllocAlignedFloat32With(-1) = %v, %v; want nil, nil", buf, backing)
	}

	if !IsAligned([]float32(nil), 64) {
		t.Error("empty slice should be reported aligned")
	}
}
