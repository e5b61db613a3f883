package format

type (
	Bit      uint8
	Position uint8
)

const (
	Zero Bit = 0x0 // Zero represents a cleared bit.
	One  Bit = 0x1 // One represents a set bit.

	PosP  Position = 0x0 // PosP is the overall parity bit.
	PosH1 Position = 0x1 // PosH1 is the Hamming bit over D1, D2, D4.
	PosH2 Position = 0x2 // PosH2 is the Hamming bit over D1, D3, D4.
	PosH3 Position = 0x3 // PosH3 is the Hamming bit over D2, D3, D4.
	PosD1 Position = 0x4 // PosD1 is the first (most significant) data bit.
	PosD2 Position = 0x5 // PosD2 is the second data bit.
	PosD3 Position = 0x6 // PosD3 is the third data bit.
	PosD4 Position = 0x7 // PosD4 is the fourth (least significant) data bit.

	PosNone Position = 0xFF // PosNone means no position, e.g. nothing was corrected.
)

const (
	DataBits     = 4 // number of bits in a data block
	CodewordBits = 8 // number of bits in a codeword
	DataOffset   = 4 // codeword index of D1
)

// Valid reports whether b is Zero or One.
func (b Bit) Valid() bool {
	return b <= One
}

// Low returns the least significant bit of b, the only part the codec reads.
func (b Bit) Low() Bit {
	return b & One
}

// Char returns the '0' or '1' character for the low bit of b.
func (b Bit) Char() byte {
	if b.Low() == One {
		return '1'
	}

	return '0'
}

// Not returns the inverted bit.
func (b Bit) Not() Bit {
	return b.Low() ^ One
}

func (b Bit) String() string {
	return string(b.Char())
}

// BitFromChar converts a '0' or '1' character to a Bit.
// The second return value is false for any other character.
func BitFromChar(c byte) (Bit, bool) {
	switch c {
	case '0':
		return Zero, true
	case '1':
		return One, true
	default:
		return Zero, false
	}
}

// Valid reports whether p indexes a codeword bit.
func (p Position) Valid() bool {
	return p < CodewordBits
}

// IsData reports whether p is one of D1..D4.
func (p Position) IsData() bool {
	return p >= PosD1 && p <= PosD4
}

// IsRedundant reports whether p is P or one of H1..H3.
func (p Position) IsRedundant() bool {
	return p <= PosH3
}

func (p Position) String() string {
	switch p {
	case PosP:
		return "P"
	case PosH1:
		return "H1"
	case PosH2:
		return "H2"
	case PosH3:
		return "H3"
	case PosD1:
		return "D1"
	case PosD2:
		return "D2"
	case PosD3:
		return "D3"
	case PosD4:
		return "D4"
	case PosNone:
		return "none"
	default:
		return "Unknown"
	}
}
