package mmr

import (
	"errors"
	"fmt"
)

// Error kinds the core can raise, as package-level sentinels checked with
// errors.Is and, where a kind carries extra context, wrapped with
// fmt.Errorf("%w: ...", ...) rather than stringly-typed.
var (
	// ErrGetRootOnEmpty is returned by Root when mmr size is 0.
	ErrGetRootOnEmpty = errors.New("mmr: get root on empty mmr")

	// ErrInconsistentStore is returned when a position below mmr size is
	// absent from both the batch and the backing store.
	ErrInconsistentStore = errors.New("mmr: inconsistent store")

	// ErrStoreError wraps a backing store failure. Use errors.Is against
	// this sentinel; the wrapped error carries the store's own message.
	ErrStoreError = errors.New("mmr: store error")

	// ErrCorruptedProof is returned when a proof or leaf stream fails to
	// reduce to exactly one verified item, a sibling check fails, or
	// leftover items remain after verification.
	ErrCorruptedProof = errors.New("mmr: corrupted proof")

	// ErrCorruptedStack is returned when a compiled proof instruction would
	// underflow the verifier's stack or grow it past maxStackDepth, or when
	// CmdNextLeaf finds no leaf left.
	ErrCorruptedStack = errors.New("mmr: corrupted stack")

	// ErrInvalidCommand is returned when a packed proof contains an
	// unrecognised opcode byte.
	ErrInvalidCommand = errors.New("mmr: invalid command byte")

	// ErrUnpackEOF is returned by PackedLeaves when fewer than 8 bytes remain
	// for a leaf's position prefix. A truncated digest, in either packed
	// stream, is reported with the Unpacker's own error, not ErrUnpackEOF.
	ErrUnpackEOF = errors.New("mmr: unpack: unexpected end of data")

	// ErrNodeProofsNotSupported is returned when a position with height > 0
	// is submitted where only leaf positions are accepted.
	ErrNodeProofsNotSupported = errors.New("mmr: proofs for non-leaf nodes are not supported")

	// ErrGenProofForInvalidLeaves is returned when GenProof is given an
	// empty position list, or positions outside the mmr.
	ErrGenProofForInvalidLeaves = errors.New("mmr: cannot generate proof for the given leaves")

	// ErrLeavesUnsorted is returned when Compile receives unsorted or
	// duplicate leaf positions.
	ErrLeavesUnsorted = errors.New("mmr: leaf positions must be sorted and unique")

	// ErrInvalidRange is returned when the compiler detects that two
	// adjacent peaks which both cover proven leaves do not cover a
	// contiguous range of leaf indices.
	ErrInvalidRange = errors.New("mmr: non-contiguous leaf range across peaks")
)

// WrapStoreError wraps a backing store's own error so that errors.Is(err,
// ErrStoreError) holds while the underlying message is preserved.
func WrapStoreError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrStoreError, err.Error())
}
