package selftest

import (
	"errors"
	"fmt"

	"github.com/arloliu/hamming84/format"
)

// ErrRoundTripMismatch is matched by every *MismatchError.
var ErrRoundTripMismatch = errors.New("round-trip mismatch")

// MismatchError describes a case whose decoded value differs from the original data.
type MismatchError struct {
	Data        string          // original data block
	Transmitted string          // codeword handed to the decoder
	Flipped     format.Position // flipped bit, format.PosNone if none
	Decoded     string          // decoder output
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("decoding unsuccessful for original data %s and transmitted data %s (flipped %s): got %s",
		e.Data, e.Transmitted, e.Flipped, e.Decoded)
}

func (e *MismatchError) Unwrap() error {
	return ErrRoundTripMismatch
}

// AsMismatch returns the *MismatchError in err's chain, if any.
func AsMismatch(err error) (*MismatchError, bool) {
	var m *MismatchError
	if errors.As(err, &m) {
		return m, true
	}

	return nil, false
}
