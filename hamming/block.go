package hamming

import (
	"fmt"

	"github.com/arloliu/hamming84/errs"
	"github.com/arloliu/hamming84/format"
)

// DataBlock holds the 4 data bits D1..D4, D1 first.
type DataBlock [format.DataBits]format.Bit

// ParseDataBlock parses a string of exactly 4 '0'/'1' characters.
//
// Returns errs.ErrInvalidInputShape, wrapped with the received value, if the
// length is wrong or any character is not '0' or '1'.
func ParseDataBlock(s string) (DataBlock, error) {
	var d DataBlock
	if err := parseBits(d[:], s, "data"); err != nil {
		return DataBlock{}, err
	}

	return d, nil
}

// MustDataBlock is like ParseDataBlock but panics on error.
// Meant for literals in tests and examples.
func MustDataBlock(s string) DataBlock {
	d, err := ParseDataBlock(s)
	if err != nil {
		panic(err)
	}

	return d
}

// DataBlockFromNibble builds a block from the low 4 bits of n, D1 taken from bit 3.
func DataBlockFromNibble(n uint8) (DataBlock, error) {
	if n > MaxNibble {
		return DataBlock{}, fmt.Errorf("%w: nibble 0x%02x exceeds 0x%02x", errs.ErrInvalidInputShape, n, MaxNibble)
	}

	var d DataBlock
	for i := range d {
		d[i] = format.Bit((n >> uint(format.DataBits-1-i)) & 1)
	}

	return d, nil
}

// AllDataBlocks returns the 16 possible blocks in ascending nibble order.
func AllDataBlocks() []DataBlock {
	blocks := make([]DataBlock, 0, NumBlocks)
	for n := range uint8(NumBlocks) {
		d, _ := DataBlockFromNibble(n)
		blocks = append(blocks, d)
	}

	return blocks
}

// Nibble packs the block into the low 4 bits of a byte, D1 in bit 3.
func (d DataBlock) Nibble() uint8 {
	var n uint8
	for _, b := range d {
		n = n<<1 | uint8(b.Low())
	}

	return n
}

// Valid reports whether every element of d is format.Zero or format.One.
func (d DataBlock) Valid() bool {
	return validBits(d[:])
}

// Validate returns errs.ErrInvalidInputShape, naming the first offending bit,
// if d is not Valid.
func (d DataBlock) Validate() error {
	return checkBits(d[:], "data", format.DataOffset)
}

func (d DataBlock) normalize() DataBlock {
	for i := range d {
		d[i] = d[i].Low()
	}

	return d
}

// String returns the block as 4 '0'/'1' characters.
func (d DataBlock) String() string {
	return formatBits(d[:])
}

func parseBits(dst []format.Bit, s string, what string) error {
	if len(s) != len(dst) {
		return shapeError(what, s, len(dst))
	}

	for i := 0; i < len(s); i++ {
		b, ok := format.BitFromChar(s[i])
		if !ok {
			return shapeError(what, s, len(dst))
		}
		dst[i] = b
	}

	return nil
}

func validBits(src []format.Bit) bool {
	for _, b := range src {
		if !b.Valid() {
			return false
		}
	}

	return true
}

// checkBits reports the first non-binary element of src; offset maps its
// index to a codeword position for the message.
func checkBits(src []format.Bit, what string, offset int) error {
	for i, b := range src {
		if !b.Valid() {
			return fmt.Errorf("%w: %s bit %s holds %d, want 0 or 1",
				errs.ErrInvalidInputShape, what, format.Position(i+offset), uint8(b))
		}
	}

	return nil
}

func shapeError(what string, s string, n int) error {
	return fmt.Errorf("%w: %s %q must be %d characters of 0 or 1", errs.ErrInvalidInputShape, what, s, n)
}

func formatBits(src []format.Bit) string {
	var buf [format.CodewordBits]byte
	for i, b := range src {
		buf[i] = b.Char()
	}

	return string(buf[:len(src)])
}
