package fftf

import "errors"

// Sentinel errors returned by transform operations.
var (
	// ErrInvalidLength is returned when a transform length is not valid for
	// the requested type, e.g. a non-positive length or an odd real length.
	ErrInvalidLength = errors.New("fftf: invalid transform length")

	// ErrNilSlice is returned when a nil input or output buffer is passed to Init.
	ErrNilSlice = errors.New("fftf: nil slice")

	// ErrLengthMismatch is returned when a buffer is too short for the
	// instance's type, direction and lengths.
	ErrLengthMismatch = errors.New("fftf: slice length mismatch")

	// ErrInvalidConfig is returned for unknown Type, Direction or Dimension
	// values, or when the number of lengths does not match the dimension.
	ErrInvalidConfig = errors.New("fftf: invalid transform configuration")

	// ErrUnknownBackend is returned when no engine is registered for a backend.
	ErrUnknownBackend = errors.New("fftf: unknown backend")

	// ErrNotImplemented is returned when a backend does not support the
	// requested combination of type and dimension.
	ErrNotImplemented = errors.New("fftf: not implemented")

	// ErrDestroyed is returned by Calc on an instance that was destroyed or
	// was not created by New.
	ErrDestroyed = errors.New("fftf: instance destroyed")
)
