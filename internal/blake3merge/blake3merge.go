// Package blake3merge supplies a concrete Merge and Packable digest type
// built on blake3-256, with domain-separated leaf/internal prefixes so a
// leaf digest can never collide with an internal node digest of the same
// bytes.
package blake3merge

import (
	"fmt"

	"lukechampine.com/blake3"
)

const (
	leafPrefix     = 0x00
	internalPrefix = 0x01
)

// Digest is a blake3-256 output. It satisfies mmr.Packable and is the H
// this package's Merge operates over.
type Digest [32]byte

// LeafDigest tags payload as a leaf before hashing, so a leaf's digest can
// never be replayed as an internal node's.
func LeafDigest(payload []byte) Digest {
	buf := make([]byte, 1+len(payload))
	buf[0] = leafPrefix
	copy(buf[1:], payload)
	return Digest(blake3.Sum256(buf))
}

// Merge implements mmr.Merge[Digest]. Both node merging and peak bagging
// use the same internal-tagged hash: a peak bag is just another internal
// node one level removed from the tree it bags.
type Merge struct{}

func (Merge) Merge(lhs, rhs Digest) Digest      { return hashInternal(lhs, rhs) }
func (Merge) MergePeaks(lhs, rhs Digest) Digest { return hashInternal(lhs, rhs) }

func hashInternal(left, right Digest) Digest {
	buf := make([]byte, 1+32+32)
	buf[0] = internalPrefix
	copy(buf[1:33], left[:])
	copy(buf[33:], right[:])
	return Digest(blake3.Sum256(buf))
}

// Pack serializes the digest as its raw 32 bytes.
func (d Digest) Pack() ([]byte, error) {
	out := make([]byte, 32)
	copy(out, d[:])
	return out, nil
}

// UnpackDigest reads 32 bytes from the front of data into a fresh Digest.
// Pass this as the mmr.Unpacker[Digest] to NewPackedMerkleProof/NewPackedLeaves.
func UnpackDigest(data []byte) (Digest, int, error) {
	if len(data) < 32 {
		return Digest{}, 0, fmt.Errorf("blake3merge: short digest: need 32 bytes, got %d", len(data))
	}
	var d Digest
	copy(d[:], data[:32])
	return d, 32, nil
}
