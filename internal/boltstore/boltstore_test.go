package boltstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/datatrails/go-mmrcore/internal/blake2bmerge"
)

func openTestStore(t *testing.T) *Store[blake2bmerge.Digest] {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mmr.db")
	store, err := Open[blake2bmerge.Digest](path, blake2bmerge.UnpackDigest)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestInsertAndGet(t *testing.T) {
	store := openTestStore(t)
	d := blake2bmerge.LeafDigest(42)

	require.NoError(t, store.Insert(7, d))

	got, ok, err := store.Get(7)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, d, got)
}

func TestGet_MissingPosition(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Get(123)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSizePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mmr.db")

	store, err := Open[blake2bmerge.Digest](path, blake2bmerge.UnpackDigest)
	require.NoError(t, err)
	require.NoError(t, store.SetSize(19))
	require.NoError(t, store.Close())

	reopened, err := Open[blake2bmerge.Digest](path, blake2bmerge.UnpackDigest)
	require.NoError(t, err)
	defer reopened.Close() //nolint:errcheck

	size, err := reopened.Size()
	require.NoError(t, err)
	require.Equal(t, uint64(19), size)
}

func TestSize_DefaultsToZero(t *testing.T) {
	store := openTestStore(t)

	size, err := store.Size()
	require.NoError(t, err)
	require.Equal(t, uint64(0), size)
}
