package hamming

import "github.com/arloliu/hamming84/format"

const (
	// Bit masks for the packed byte form of a codeword, P in the most significant bit.
	PMask  = 0x80 // Mask for overall parity bit (bit 7)
	H1Mask = 0x40 // Mask for H1 (bit 6)
	H2Mask = 0x20 // Mask for H2 (bit 5)
	H3Mask = 0x10 // Mask for H3 (bit 4)
	D1Mask = 0x08 // Mask for D1 (bit 3)
	D2Mask = 0x04 // Mask for D2 (bit 2)
	D3Mask = 0x02 // Mask for D3 (bit 1)
	D4Mask = 0x01 // Mask for D4 (bit 0)

	HammingMask = H1Mask | H2Mask | H3Mask         // Mask for the three Hamming bits
	DataMask    = D1Mask | D2Mask | D3Mask | D4Mask // Mask for the data nibble

	MaxNibble = DataMask // largest value accepted by DataBlockFromNibble
	NumBlocks = 1 << format.DataBits
)

// byteShift returns the shift that moves codeword position p to bit 0 of the packed byte.
func byteShift(p format.Position) uint {
	return uint(format.CodewordBits - 1 - p)
}

// hammingBits computes H1, H2, H3 over the data bits.
func hammingBits(d DataBlock) (h1, h2, h3 format.Bit) {
	h1 = d[0] ^ d[1] ^ d[3]
	h2 = d[0] ^ d[2] ^ d[3]
	h3 = d[1] ^ d[2] ^ d[3]

	return h1, h2, h3
}

// overallParity computes P, the even parity of the data bits.
func overallParity(d DataBlock) format.Bit {
	return d[0] ^ d[1] ^ d[2] ^ d[3]
}
