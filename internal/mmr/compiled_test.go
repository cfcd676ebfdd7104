package mmr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datatrails/go-mmrcore/internal/blake2bmerge"
)

func TestCompile_RejectsUnsortedPositions(t *testing.T) {
	_, err := Compile[blake2bmerge.Digest](20, nil, []uint64{5, 3})
	require.ErrorIs(t, err, ErrLeavesUnsorted)
}

func TestCompile_RejectsDuplicatePositions(t *testing.T) {
	_, err := Compile[blake2bmerge.Digest](20, nil, []uint64{5, 5})
	require.ErrorIs(t, err, ErrLeavesUnsorted)
}

func TestCompile_RejectsEmptyPositions(t *testing.T) {
	_, err := Compile[blake2bmerge.Digest](20, nil, nil)
	require.ErrorIs(t, err, ErrGenProofForInvalidLeaves)
}

func TestCompiledMerkleProof_CorruptedStackOnUnderflow(t *testing.T) {
	proof := &CompiledMerkleProof[blake2bmerge.Digest]{
		Commands: []Command[blake2bmerge.Digest]{{Kind: CmdHash}},
	}
	_, err := proof.CalculateRoot(blake2bmerge.Merge{}, 1, nil)
	require.ErrorIs(t, err, ErrCorruptedStack)
}

func TestCompiledMerkleProof_InvalidCommandByte(t *testing.T) {
	proof := &CompiledMerkleProof[blake2bmerge.Digest]{
		Commands: []Command[blake2bmerge.Digest]{{Kind: CommandKind(99)}},
	}
	_, err := proof.CalculateRoot(blake2bmerge.Merge{}, 1, nil)
	require.ErrorIs(t, err, ErrInvalidCommand)
}
