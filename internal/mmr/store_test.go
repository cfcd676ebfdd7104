package mmr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingStore struct {
	failAt int
	calls  int
	inner  *MemStore[uint64]
}

func (f *failingStore) Get(pos uint64) (uint64, bool, error) {
	return f.inner.Get(pos)
}

func (f *failingStore) Insert(pos uint64, value uint64) error {
	if f.calls == f.failAt {
		f.calls++
		return errors.New("boom")
	}
	f.calls++
	return f.inner.Insert(pos, value)
}

func TestBatch_ReadsOwnStagedWritesBeforeStore(t *testing.T) {
	store := NewMemStore[uint64]()
	b := newBatch[uint64](store)
	b.stage(5, 42)

	v, ok, err := b.get(5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(42), v)
}

func TestBatch_FallsThroughToStore(t *testing.T) {
	store := NewMemStore[uint64]()
	require.NoError(t, store.Insert(7, 99))
	b := newBatch[uint64](store)

	v, ok, err := b.get(7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(99), v)
}

func TestBatch_CommitDrainsInOrder(t *testing.T) {
	store := NewMemStore[uint64]()
	b := newBatch[uint64](store)
	b.stage(0, 10)
	b.stage(1, 20)
	require.NoError(t, b.commit())

	v0, ok, err := store.Get(0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(10), v0)

	v1, ok, err := store.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(20), v1)

	// A committed batch is empty; re-committing is a no-op.
	require.NoError(t, b.commit())
}

func TestBatch_PartialCommitFailureLeavesRemainderStaged(t *testing.T) {
	inner := NewMemStore[uint64]()
	store := &failingStore{failAt: 1, inner: inner}
	b := newBatch[uint64](store)
	b.stage(0, 10)
	b.stage(1, 20)
	b.stage(2, 30)

	err := b.commit()
	require.Error(t, err)

	// Entry 0 made it through; 1 failed; 2 should still be staged for retry.
	v, ok, err := inner.Get(0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(10), v)

	_, ok, err = inner.Get(2)
	require.NoError(t, err)
	require.False(t, ok)

	staged, ok, err := b.get(2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(30), staged)
}
