package swr

import "errors"

var (
	// ErrOutOfRange is returned when an upload would write past the end of a Buffer.
	ErrOutOfRange = errors.New("swr: buffer upload out of range")

	// ErrElementSize is returned when a typed upload does not match the
	// Buffer's element size.
	ErrElementSize = errors.New("swr: element size mismatch")

	// ErrInvalidLayout is returned by CreateInputLayout for malformed descriptions.
	ErrInvalidLayout = errors.New("swr: invalid input layout")

	// ErrSurfaceLock is returned by Present when the target surface cannot be locked.
	ErrSurfaceLock = errors.New("swr: surface lock failed")
)
