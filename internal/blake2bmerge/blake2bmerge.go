// Package blake2bmerge supplies a concrete Merge and Packable digest type
// built on blake2b-256, matching the known-answer-test fixtures this
// library is validated against: merge(lhs, rhs) = blake2b(lhs||rhs), and
// leaf i = blake2b(u32_le(i)).
package blake2bmerge

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Digest is a blake2b-256 output. It satisfies mmr.Packable and is the H
// this package's Merge operates over.
type Digest [32]byte

// LeafDigest hashes a leaf index the way the reference fixtures do:
// blake2b256(little-endian uint32 index). Use this only for test/KAT
// parity; real callers normally hash their own leaf payloads and pass the
// resulting Digest to MMR.Push directly.
func LeafDigest(i uint32) Digest {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], i)
	return Digest(blake2b.Sum256(buf[:]))
}

// HashLeaf hashes arbitrary leaf payload bytes: blake2b256(payload). Use
// this for real leaf data; LeafDigest exists only to reproduce the
// index-keyed known-answer fixtures.
func HashLeaf(payload []byte) Digest {
	return Digest(blake2b.Sum256(payload))
}

// Merge implements mmr.Merge[Digest] over plain concatenation hashing, with
// no domain separation between Merge and MergePeaks: both reduce to the
// same blake2b(lhs||rhs) the fixtures specify.
type Merge struct{}

func (Merge) Merge(lhs, rhs Digest) Digest      { return hashPair(lhs, rhs) }
func (Merge) MergePeaks(lhs, rhs Digest) Digest { return hashPair(lhs, rhs) }

func hashPair(lhs, rhs Digest) Digest {
	var buf [64]byte
	copy(buf[:32], lhs[:])
	copy(buf[32:], rhs[:])
	return Digest(blake2b.Sum256(buf[:]))
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
		return Digest{}, 0, fmt.Errorf("blake2bmerge: short digest: need 32 bytes, got %d", len(data))
	}
	var d Digest
	copy(d[:], data[:32])
	return d, 32, nil
}
