package mmrtesting

import "encoding/hex"

// S1Root11Leaves is the known-answer root for pushing leaves
// blake2bmerge.LeafDigest(0)..LeafDigest(10) (11 leaves total) in order,
// under blake2bmerge.Merge.
const S1Root11Leaves = "f6794677f37a57df6a5ec36ce61036e43a36c1a009d05c81c9aa685dde1fd6e3"

// MustDecodeHex32 decodes a 64-character hex string into a 32-byte array,
// panicking on malformed input - only meant for fixed test constants.
func MustDecodeHex32(s string) [32]byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	if len(b) != 32 {
		panic("mmrtesting: expected 32 decoded bytes")
	}
	var out [32]byte
	copy(out[:], b)
	return out
}

// FlipByte returns a copy of b with the byte at index i's bits inverted, for
// tamper-rejection tests that flip a single byte of an otherwise-valid
// proof or root and expect verification to fail.
func FlipByte(b []byte, i int) []byte {
	out := append([]byte(nil), b...)
	out[i] ^= 0xFF
	return out
}
