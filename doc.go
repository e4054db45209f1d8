// Package fftf is a transform-engine front end: callers describe a
// transform (type, direction, dimensionality, lengths and buffers), a
// backend engine allocates plan state for it, and the instance can then be
// executed any number of times before it is destroyed.
//
// The bundled backend is a pure-Go KissFFT. It handles complex transforms
// in one to three dimensions, one-dimensional real transforms of even
// length, and one-dimensional DCT-II/DCT-III built on its real FFT.
//
// All buffers are float32. Complex data is interleaved (re, im). A real
// forward transform maps N samples to N/2+1 complex bins (N+2 floats).
// No transform is normalized: a forward/backward round trip scales complex
// and real data by the transform size, and DCT data by 2N.
//
// Example:
//
//	in := make([]float32, 2*256)
//	out := make([]float32, 2*256)
//	inst, err := fftf.New(fftf.BackendKiss, fftf.TypeComplex, fftf.Forward,
//	    fftf.Dim1D, []int{256}, in, out)
//	if err != nil {
//	    return err
//	}
//	defer inst.Destroy()
//
//	if err := inst.Calc(); err != nil {
//	    return err
//	}
package fftf
