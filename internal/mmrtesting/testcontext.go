// Package mmrtesting is test tooling for callers of internal/mmr: a
// deterministic leaf generator and the known-answer fixtures it reproduces.
// NewTestContext builds its MMR over a fresh in-memory mmr.MemStore.
package mmrtesting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datatrails/go-mmrcore/internal/blake2bmerge"
	"github.com/datatrails/go-mmrcore/internal/mmr"
)

// TestConfig is accepted by NewTestContext but none of its fields are read:
// the generated leaves are always blake2bmerge.LeafDigest(0), (1), ..., so
// successive test runs generate identical leaf sequences.
type TestConfig struct {
	StartTimeMS     int64
	TestLabelPrefix string
}

// TestContext bundles what the core's tests need: a fresh in-memory MMR
// using blake2bmerge (the hash the package's known-answer fixtures are
// defined against) and the testing.T to assert against.
type TestContext struct {
	T   *testing.T
	MMR *mmr.MMR[blake2bmerge.Digest]
}

// NewTestContext builds a TestContext over a fresh MemStore.
func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	store := mmr.NewMemStore[blake2bmerge.Digest]()
	return TestContext{
		T:   t,
		MMR: mmr.New[blake2bmerge.Digest](0, store, blake2bmerge.Merge{}),
	}
}

// GenerateLeaves pushes count leaves (blake2bmerge.LeafDigest(0), (1), ...)
// into c.MMR and commits after each push, returning their positions in
// push order. This is the sequence this package's own KAT constants and
// scenario fixtures are defined against.
func (c *TestContext) GenerateLeaves(count int) []uint64 {
	positions := make([]uint64, count)
	for i := 0; i < count; i++ {
		pos, err := c.MMR.Push(blake2bmerge.LeafDigest(uint32(i)))
		require.NoError(c.T, err)
		require.NoError(c.T, c.MMR.Commit())
		positions[i] = pos
	}
	return positions
}
