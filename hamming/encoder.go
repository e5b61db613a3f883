package hamming

// Encode computes the codeword for the given data block.
//
//	P  = D1 ^ D2 ^ D3 ^ D4
//	H1 = D1 ^ D2 ^ D4
//	H2 = D1 ^ D3 ^ D4
//	H3 = D2 ^ D3 ^ D4
//
// The result is laid out as [P, H1, H2, H3, D1, D2, D3, D4].
//
// Only the low bit of each element is read, so the result is always a
// codebook member. Callers holding blocks of unknown origin should check
// DataBlock.Validate first; ParseDataBlock and DataBlockFromNibble only
// produce valid blocks.
func Encode(data DataBlock) Codeword {
	data = data.normalize()
	h1, h2, h3 := hammingBits(data)

	return Codeword{
		overallParity(data),
		h1, h2, h3,
		data[0], data[1], data[2], data[3],
	}
}
