package hamming

import (
	"fmt"

	"github.com/arloliu/hamming84/format"
)

// Syndrome records which Hamming checks failed; true means the received bit
// differs from the one recomputed from the received data bits.
type Syndrome struct {
	H1 bool
	H2 bool
	H3 bool
}

// Position maps the syndrome to the single bit it blames.
//
// The checks are evaluated as a fixed priority chain, so a pattern with all
// three mismatches resolves to D4 before any pair is considered.
func (s Syndrome) Position() format.Position {
	switch {
	case s.H1 && s.H2 && s.H3:
		return format.PosD4
	case s.H1 && s.H2:
		return format.PosD1
	case s.H1 && s.H3:
		return format.PosD2
	case s.H2 && s.H3:
		return format.PosD3
	case s.H1:
		return format.PosH1
	case s.H2:
		return format.PosH2
	case s.H3:
		return format.PosH3
	default:
		return format.PosP
	}
}

// Clean reports whether all three checks matched.
func (s Syndrome) Clean() bool {
	return !s.H1 && !s.H2 && !s.H3
}

// String renders the syndrome as three characters, '1' marking a failed check.
func (s Syndrome) String() string {
	return formatBits([]format.Bit{flagBit(s.H1), flagBit(s.H2), flagBit(s.H3)})
}

func flagBit(mismatch bool) format.Bit {
	if mismatch {
		return format.One
	}

	return format.Zero
}

// Correction describes what the decoder did with a codeword.
type Correction struct {
	// Position is the bit the decoder attributed a flip to, or format.PosNone
	// when the overall parity matched and nothing was corrected.
	Position format.Position
	// Syndrome is the result of the Hamming checks; all false when the
	// parity fast path was taken.
	Syndrome Syndrome
}

// Corrected reports whether the decoder detected a flipped bit.
func (c Correction) Corrected() bool {
	return c.Position != format.PosNone
}

// DataCorrected reports whether a data bit was inverted in the result.
func (c Correction) DataCorrected() bool {
	return c.Position.IsData()
}

func (c Correction) String() string {
	if !c.Corrected() {
		return "clean"
	}

	return fmt.Sprintf("flip at %s (syndrome %s)", c.Position, c.Syndrome)
}

// Decode recovers the data block from a codeword with at most one flipped bit.
//
// It never fails: every 8-bit input yields a data block. The result equals
// the encoded data whenever no more than one bit was flipped.
func Decode(cw Codeword) DataBlock {
	data, _ := Correct(cw)

	return data
}

// Correct decodes cw like Decode and also reports which bit, if any, it
// attributed a flip to.
//
// Like Encode, it reads only the low bit of each element; use
// Codeword.Validate to reject non-binary values instead.
func Correct(cw Codeword) (DataBlock, Correction) {
	cw = cw.normalize()
	data := cw.Data()

	// fast path: parity over the received data bits agrees with P
	if overallParity(data) == cw[format.PosP] {
		return data, Correction{Position: format.PosNone}
	}

	syn := cw.Syndrome()
	pos := syn.Position()
	if pos.IsData() {
		i := pos - format.DataOffset
		data[i] = data[i].Not()
	}

	return data, Correction{Position: pos, Syndrome: syn}
}
