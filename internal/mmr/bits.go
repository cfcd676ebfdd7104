package mmr

import "math/bits"

// BitLength returns the number of bits needed to represent num (0 for
// num == 0), the bit-length primitive the position arithmetic below is
// built from.
func BitLength(num uint64) int {
	return bits.Len64(num)
}

// BitLength64 is BitLength with a uint64 result, the form position.go's
// peak-mask computation wants.
func BitLength64(num uint64) uint64 { return uint64(BitLength(num)) }
