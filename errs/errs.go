// Package errs defines the sentinel errors returned by hamming84 packages.
//
// Call sites wrap these values with the offending input, so callers should
// match with errors.Is rather than comparing messages:
//
//	if _, err := hamming84.Encode(s); errors.Is(err, errs.ErrInvalidInputShape) {
//	    // reject s
//	}
package errs

import "errors"

var (
	// ErrInvalidInputShape is returned when a data block is not exactly 4 characters
	// of '0'/'1', or a codeword is not exactly 8 characters of '0'/'1'.
	ErrInvalidInputShape = errors.New("invalid input shape")

	// ErrInvalidPosition is returned when a bit position is outside the codeword.
	ErrInvalidPosition = errors.New("invalid bit position")
)
