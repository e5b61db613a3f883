package hash

import "github.com/cespare/xxhash/v2"

// Seed derives a pair of 64-bit seeds from a run label using xxHash64.
//
// The first value is the plain hash of label; the second continues the same
// digest over a separator byte so the two halves differ even for "".
// Suitable for rand.NewPCG.
func Seed(label string) (uint64, uint64) {
	d := xxhash.New()
	_, _ = d.WriteString(label)
	hi := d.Sum64()

	_, _ = d.Write([]byte{0})
	lo := d.Sum64()

	return hi, lo
}
