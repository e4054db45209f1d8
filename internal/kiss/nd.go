package kiss

// ND is a multi-dimensional complex transform over row-major data, with
// dims[0] varying slowest.
//
// Each pass runs a strided 1-D transform along the slowest axis and writes
// the lines out contiguously, which rotates the axes by one. After
// len(dims) passes the data is back in its original layout. Passes
// alternate between the output and an internal buffer so that the last one
// lands in the output.
type ND struct {
	dims    []int
	dimprod int
	states  []*FFT
	tmpbuf  []complex64
}

// NewND plans a transform over the given dimensions.
func NewND(dims []int, inverse bool) (*ND, error) {
	if len(dims) == 0 {
		return nil, ErrInvalidLength
	}

	nd := &ND{
		dims:    append([]int(nil), dims...),
		dimprod: 1,
		states:  make([]*FFT, len(dims)),
	}

	for i, d := range dims {
		st, err := New(d, inverse)
		if err != nil {
			return nil, err
		}

		nd.states[i] = st
		nd.dimprod *= d
	}

	nd.tmpbuf = make([]complex64, nd.dimprod)

	return nd, nil
}

// Dims returns a copy of the planned dimensions.
func (nd *ND) Dims() []int { return append([]int(nil), nd.dims...) }

// Len returns the total number of elements, the product of the dimensions.
func (nd *ND) Len() int { return nd.dimprod }

// Transform computes fout = DFT(fin) over all dimensions. fin and fout must
// hold Len() elements and may be the same slice.
func (nd *ND) Transform(fin, fout []complex64) {
	_ = fin[nd.dimprod-1]
	_ = fout[nd.dimprod-1]

	bufin := fin
	var bufout []complex64

	if len(nd.dims)%2 == 1 {
		bufout = fout

		if &fin[0] == &fout[0] {
			copy(nd.tmpbuf, fin[:nd.dimprod])
			bufin = nd.tmpbuf
		}
	} else {
		bufout = nd.tmpbuf
	}

	for k, curdim := range nd.dims {
		stride := nd.dimprod / curdim

		for i := range stride {
			nd.states[k].TransformStride(bufin[i:], bufout[i*curdim:], stride)
		}

		if &bufout[0] == &nd.tmpbuf[0] {
			bufout = fout
			bufin = nd.tmpbuf
		} else {
			bufout = nd.tmpbuf
			bufin = fout
		}
	}
}
