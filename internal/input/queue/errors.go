package queue

import "errors"

var (
	// ErrIntegerOverflow indicates a capacity computation would overflow.
	// Detected before any allocation; the buffer is left unchanged.
	ErrIntegerOverflow = errors.New("input buffer size computation overflows")

	// ErrResource indicates the backing store could not be enlarged
	// because the requested capacity exceeds the configured limit.
	ErrResource = errors.New("input buffer capacity limit exceeded")

	// ErrInvalidCapacity indicates a resize that does not grow the buffer.
	ErrInvalidCapacity = errors.New("new capacity must exceed current capacity")

	// ErrClosed indicates the buffer has been shut down.
	ErrClosed = errors.New("input buffer closed")
)
