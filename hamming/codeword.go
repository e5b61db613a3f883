package hamming

import (
	"fmt"

	"github.com/arloliu/hamming84/errs"
	"github.com/arloliu/hamming84/format"
)

// Codeword holds the 8 transmitted bits in the order P, H1, H2, H3, D1, D2, D3, D4.
type Codeword [format.CodewordBits]format.Bit

// ParseCodeword parses a string of exactly 8 '0'/'1' characters.
//
// Returns errs.ErrInvalidInputShape, wrapped with the received value, if the
// length is wrong or any character is not '0' or '1'.
func ParseCodeword(s string) (Codeword, error) {
	var cw Codeword
	if err := parseBits(cw[:], s, "codeword"); err != nil {
		return Codeword{}, err
	}

	return cw, nil
}

// MustCodeword is like ParseCodeword but panics on error.
func MustCodeword(s string) Codeword {
	cw, err := ParseCodeword(s)
	if err != nil {
		panic(err)
	}

	return cw
}

// CodewordFromByte unpacks a byte laid out as described by PMask..D4Mask.
func CodewordFromByte(b uint8) Codeword {
	var cw Codeword
	for i := range cw {
		cw[i] = format.Bit((b >> byteShift(format.Position(i))) & 1)
	}

	return cw
}

// Byte packs the codeword into a byte, P in bit 7 and D4 in bit 0.
func (cw Codeword) Byte() uint8 {
	var b uint8
	for i, bit := range cw {
		b |= uint8(bit.Low()) << byteShift(format.Position(i))
	}

	return b
}

// At returns the bit at position p. Panics if p is not a valid position.
func (cw Codeword) At(p format.Position) format.Bit {
	return cw[p]
}

// Data returns the received data bits D1..D4 as they are, without correction.
func (cw Codeword) Data() DataBlock {
	var d DataBlock
	copy(d[:], cw[format.DataOffset:])

	return d
}

// Valid reports whether every element of cw is format.Zero or format.One.
func (cw Codeword) Valid() bool {
	return validBits(cw[:])
}

// Validate returns errs.ErrInvalidInputShape, naming the first offending bit,
// if cw is not Valid.
func (cw Codeword) Validate() error {
	return checkBits(cw[:], "codeword", 0)
}

func (cw Codeword) normalize() Codeword {
	for i := range cw {
		cw[i] = cw[i].Low()
	}

	return cw
}

// Flip returns a copy of the codeword with the bit at p inverted.
func (cw Codeword) Flip(p format.Position) (Codeword, error) {
	if !p.Valid() {
		return cw, fmt.Errorf("%w: %d is outside 0..%d", errs.ErrInvalidPosition, p, format.CodewordBits-1)
	}
	cw[p] = cw[p].Not()

	return cw, nil
}

// Syndrome compares the received Hamming bits with the ones recomputed from
// the received data bits.
func (cw Codeword) Syndrome() Syndrome {
	cw = cw.normalize()
	h1, h2, h3 := hammingBits(cw.Data())

	return Syndrome{
		H1: h1 != cw[format.PosH1],
		H2: h2 != cw[format.PosH2],
		H3: h3 != cw[format.PosH3],
	}
}

// String returns the codeword as 8 '0'/'1' characters.
func (cw Codeword) String() string {
	return formatBits(cw[:])
}
