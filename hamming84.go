// Package hamming84 provides Hamming(8,4) single-error-correcting encoding and
// decoding of 4-bit data blocks.
//
// Each 4-bit block (D1 D2 D3 D4) is carried in an 8-bit codeword
// (P H1 H2 H3 D1 D2 D3 D4): three Hamming bits that each cover a distinct
// 3-of-4 subset of the data bits, and an overall parity bit P over the data
// bits. Any single flipped bit in a received codeword is corrected silently.
//
// # Core Features
//
//   - Pure, allocation-light functions with no shared state, safe for concurrent use
//   - String API over '0'/'1' text with strict shape validation
//   - Typed API over fixed-size bit arrays in the hamming package
//   - Correction report naming the bit a flip was attributed to
//   - Self-test harness in the selftest package
//
// # Basic Usage
//
// Encoding and decoding text:
//
//	import "github.com/arloliu/hamming84"
//
//	encoded, err := hamming84.Encode("1010") // "01011010"
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// the first bit was flipped in transit
//	data, err := hamming84.Decode("11011010") // "1010"
//
// Input that is not exactly 4 (encode) or 8 (decode) characters of '0'/'1'
// fails with errs.ErrInvalidInputShape:
//
//	if _, err := hamming84.Encode("10a0"); errors.Is(err, errs.ErrInvalidInputShape) {
//	    // reject
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the hamming
// package, simplifying the most common use cases. For the typed API,
// correction reports and byte conversions, use the hamming package directly.
package hamming84

import (
	"github.com/arloliu/hamming84/hamming"
)

var defaultCodec = hamming.NewStringCodec()

// Encode encodes a 4-character '0'/'1' data block into an 8-character codeword.
//
// Parameters:
//   - data: Exactly 4 characters, each '0' or '1', D1 first
//
// Returns:
//   - string: The codeword laid out as P H1 H2 H3 D1 D2 D3 D4
//   - error: errs.ErrInvalidInputShape if data is malformed
//
// Example:
//
//	encoded, err := hamming84.Encode("1010") // "01011010"
func Encode(data string) (string, error) {
	return defaultCodec.Encode(data)
}

// Decode decodes an 8-character '0'/'1' codeword, correcting at most one flipped bit.
//
// A corrected flip is not an error. If two or more bits were flipped the
// result is unspecified.
//
// Parameters:
//   - encoded: Exactly 8 characters, each '0' or '1'
//
// Returns:
//   - string: The 4-character data block
//   - error: errs.ErrInvalidInputShape if encoded is malformed
func Decode(encoded string) (string, error) {
	return defaultCodec.Decode(encoded)
}

// NewCodec returns the string codec used by Encode and Decode, for callers
// that accept a hamming.Codec.
func NewCodec() hamming.Codec {
	return hamming.NewStringCodec()
}
