package mask

import "errors"

var (
	// ErrBadSize indicates a width or height below one, a cell count that
	// overflows int, or a text row wider than the scanner accepts.
	ErrBadSize = errors.New("mask: width and height must be positive")
	// ErrMalformedHeader indicates the first text line is not "<width> <height>".
	ErrMalformedHeader = errors.New("mask: malformed header, want \"<width> <height>\"")
	// ErrInvalidChar indicates a body character other than '.' or 'x'.
	ErrInvalidChar = errors.New("mask: invalid character")
	// ErrDimensionMismatch indicates the body does not match the header dimensions.
	ErrDimensionMismatch = errors.New("mask: body does not match header dimensions")
)
