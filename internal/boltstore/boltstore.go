// Package boltstore is a bbolt-backed implementation of the core's
// Reader/Writer contract, for callers who want a durable single-file store
// instead of the in-memory one the core ships for tests.
package boltstore

import (
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/datatrails/go-mmrcore/internal/mmr"
)

var (
	nodesBucket = []byte("mmr-nodes")
	metaBucket  = []byte("mmr-meta")
	sizeKey     = []byte("size")
)

// Store persists MMR nodes in a single bbolt bucket, keyed by an 8-byte
// big-endian position so bbolt's natural byte-order iteration also walks
// positions in order.
type Store[H mmr.Packable] struct {
	db     *bbolt.DB
	unpack mmr.Unpacker[H]
}

// Open opens (creating if absent) a bbolt database at path and ensures the
// node bucket exists. unpack decodes a stored H back from its packed bytes.
func Open[H mmr.Packable](path string, unpack mmr.Unpacker[H]) (*Store[H], error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("boltstore: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		if _, e := tx.CreateBucketIfNotExists(nodesBucket); e != nil {
			return e
		}
		_, e := tx.CreateBucketIfNotExists(metaBucket)
		return e
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("boltstore: create bucket: %w", err)
	}
	return &Store[H]{db: db, unpack: unpack}, nil
}

// Close releases the underlying database file.
func (s *Store[H]) Close() error { return s.db.Close() }

func posKey(pos uint64) []byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], pos)
	return key[:]
}

// Get implements mmr.Reader[H].
func (s *Store[H]) Get(pos uint64) (value H, ok bool, err error) {
	var zero H
	var raw []byte
	err = s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(nodesBucket).Get(posKey(pos))
		if v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return zero, false, mmr.WrapStoreError(err)
	}
	if raw == nil {
		return zero, false, nil
	}
	decoded, _, err := s.unpack(raw)
	if err != nil {
		return zero, false, mmr.WrapStoreError(err)
	}
	return decoded, true, nil
}

// Size returns the persisted mmr size (0 if never set), the way a caller
// resumes an MMR view across process restarts using a metadata bucket that
// persists size alongside the nodes themselves.
func (s *Store[H]) Size() (uint64, error) {
	var size uint64
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(metaBucket).Get(sizeKey)
		if v != nil {
			size = binary.BigEndian.Uint64(v)
		}
		return nil
	})
	if err != nil {
		return 0, mmr.WrapStoreError(err)
	}
	return size, nil
}

// SetSize persists the current mmr size. Callers should call this after
// every mmr.MMR.Commit.
func (s *Store[H]) SetSize(size uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], size)
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(metaBucket).Put(sizeKey, buf[:])
	})
	if err != nil {
		return mmr.WrapStoreError(err)
	}
	return nil
}

// Insert implements mmr.Writer[H].
func (s *Store[H]) Insert(pos uint64, value H) error {
	packed, err := value.Pack()
	if err != nil {
		return mmr.WrapStoreError(err)
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(nodesBucket).Put(posKey(pos), packed)
	})
	if err != nil {
		return mmr.WrapStoreError(err)
	}
	return nil
}
