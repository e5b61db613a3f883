// Package hamming implements the Hamming(8,4) single-error-correcting code.
//
// A 4-bit DataBlock (D1 D2 D3 D4) is encoded into an 8-bit Codeword laid out as
//
//	index:  0  1   2   3   4   5   6   7
//	bit:    P  H1  H2  H3  D1  D2  D3  D4
//
// where the Hamming bits each cover a distinct 3-of-4 subset of the data bits
//
//	H1 = D1 ^ D2 ^ D4
//	H2 = D1 ^ D3 ^ D4
//	H3 = D2 ^ D3 ^ D4
//
// and P is the even parity of the data bits, P = D1 ^ D2 ^ D3 ^ D4.
//
// # Decoding
//
// Decode first recomputes P from the received data bits. If it matches the
// received P the data bits are returned as-is. Otherwise the three Hamming bits
// are recomputed and compared with the received ones; the set of mismatching
// checks (the syndrome) identifies which single bit flipped:
//
//	H1 H2 H3 mismatch   flip in D4
//	H1 H2    mismatch   flip in D1
//	H1    H3 mismatch   flip in D2
//	   H2 H3 mismatch   flip in D3
//	anything else       flip in P or one H, data intact
//
// Any single flipped bit is corrected. Two or more flipped bits may be
// mis-corrected; this is a single-error-correcting code.
//
// # Representations
//
// The typed API works on fixed-size arrays of format.Bit, so shape errors
// are impossible once a value exists:
//
//	cw := hamming.Encode(hamming.DataBlock{1, 0, 1, 0})
//	data := hamming.Decode(cw)
//
// Text input is validated by ParseDataBlock and ParseCodeword, which reject
// anything but exactly 4 (or 8) characters of '0'/'1' with
// errs.ErrInvalidInputShape. StringCodec bundles parsing, coding and
// formatting behind the Codec interface.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package hamming
