package main

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/datatrails/go-mmrcore/internal/blake2bmerge"
	"github.com/datatrails/go-mmrcore/internal/blake3merge"
	"github.com/datatrails/go-mmrcore/internal/boltstore"
	"github.com/datatrails/go-mmrcore/internal/mmr"
)

// sortedUnique returns positions sorted and deduplicated, matching the
// order GenProof/Compile both expect and the order genProof's own items
// were emitted against.
func sortedUnique(positions []uint64) []uint64 {
	out := append([]uint64(nil), positions...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	deduped := out[:0]
	for i, p := range out {
		if i == 0 || p != out[i-1] {
			deduped = append(deduped, p)
		}
	}
	return deduped
}

// Engine is the non-generic surface the cobra commands drive. engine[H]
// implements it once per supported digest algorithm so command bodies never
// need to know which H they're talking to.
type Engine interface {
	Push(payload []byte) (pos uint64, mmrSize uint64, err error)
	RootHex() (string, error)
	Size() uint64
	ProveClassic(positions []uint64) (packedProof, packedLeaves []byte, mmrSize uint64, err error)
	ProveCompiled(positions []uint64) (packedProof, packedLeaves []byte, mmrSize uint64, err error)
	VerifyClassic(packedProof, packedLeaves []byte, mmrSize uint64, rootHex string) (bool, error)
	VerifyCompiled(packedProof, packedLeaves []byte, mmrSize uint64, rootHex string) (bool, error)
	Close() error
}

// engine wires internal/mmr's generic core to a concrete digest/merge pair.
type engine[H mmr.Packable] struct {
	store    *boltstore.Store[H]
	view     *mmr.MMR[H]
	merge    mmr.Merge[H]
	hashLeaf func([]byte) H
	unpack   mmr.Unpacker[H]
	hexOf    func(H) string
	hexTo    func(string) (H, error)
}

func newEngine(cfg Config) (Engine, error) {
	switch cfg.Algo {
	case "blake2b":
		return newTypedEngine(cfg, blake2bmerge.Merge{}, blake2bmerge.HashLeaf, blake2bmerge.UnpackDigest, digestHex, digestFromHex)
	case "blake3":
		return newTypedEngine(cfg, blake3merge.Merge{}, blake3merge.LeafDigest, blake3merge.UnpackDigest, blake3Hex, blake3FromHex)
	default:
		return nil, fmt.Errorf("mmrcli: unknown algorithm %q (want blake2b or blake3)", cfg.Algo)
	}
}

func newTypedEngine[H mmr.Packable](
	cfg Config,
	merge mmr.Merge[H],
	hashLeaf func([]byte) H,
	unpack mmr.Unpacker[H],
	hexOf func(H) string,
	hexTo func(string) (H, error),
) (Engine, error) {
	store, err := boltstore.Open[H](cfg.DBPath, unpack)
	if err != nil {
		return nil, err
	}
	size, err := store.Size()
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return &engine[H]{
		store:    store,
		view:     mmr.New[H](size, store, merge),
		merge:    merge,
		hashLeaf: hashLeaf,
		unpack:   unpack,
		hexOf:    hexOf,
		hexTo:    hexTo,
	}, nil
}

func (e *engine[H]) Close() error { return e.store.Close() }

func (e *engine[H]) Size() uint64 { return e.view.MMRSize() }

func (e *engine[H]) Push(payload []byte) (uint64, uint64, error) {
	pos, err := e.view.Push(e.hashLeaf(payload))
	if err != nil {
		return 0, 0, err
	}
	if err := e.view.Commit(); err != nil {
		return 0, 0, err
	}
	if err := e.store.SetSize(e.view.MMRSize()); err != nil {
		return 0, 0, err
	}
	return pos, e.view.MMRSize(), nil
}

func (e *engine[H]) RootHex() (string, error) {
	root, err := e.view.Root()
	if err != nil {
		return "", err
	}
	return e.hexOf(root), nil
}

func (e *engine[H]) leavesFor(positions []uint64) ([]mmr.LeafEntry[H], error) {
	leaves := make([]mmr.LeafEntry[H], len(positions))
	for i, pos := range positions {
		v, _, err := e.store.Get(pos)
		if err != nil {
			return nil, err
		}
		leaves[i] = mmr.LeafEntry[H]{Position: pos, Value: v}
	}
	return leaves, nil
}

func (e *engine[H]) ProveClassic(positions []uint64) ([]byte, []byte, uint64, error) {
	positions = sortedUnique(positions)
	proof, err := e.view.GenProof(positions)
	if err != nil {
		return nil, nil, 0, err
	}
	packedProof, err := packClassicItems(proof.Items())
	if err != nil {
		return nil, nil, 0, err
	}
	leaves, err := e.leavesFor(positions)
	if err != nil {
		return nil, nil, 0, err
	}
	packedLeaves, err := mmr.PackLeaves(leaves)
	if err != nil {
		return nil, nil, 0, err
	}
	return packedProof, packedLeaves, proof.MMRSize(), nil
}

func (e *engine[H]) ProveCompiled(positions []uint64) ([]byte, []byte, uint64, error) {
	positions = sortedUnique(positions)
	proof, err := e.view.GenProof(positions)
	if err != nil {
		return nil, nil, 0, err
	}
	compiled, err := mmr.Compile[H](proof.MMRSize(), proof.Items(), positions)
	if err != nil {
		return nil, nil, 0, err
	}
	packedProof, err := mmr.PackCompiledMerkleProof(compiled)
	if err != nil {
		return nil, nil, 0, err
	}
	leaves, err := e.leavesFor(positions)
	if err != nil {
		return nil, nil, 0, err
	}
	packedLeaves, err := mmr.PackLeaves(leaves)
	if err != nil {
		return nil, nil, 0, err
	}
	return packedProof, packedLeaves, proof.MMRSize(), nil
}

func (e *engine[H]) VerifyClassic(packedProof, packedLeaves []byte, mmrSize uint64, rootHex string) (bool, error) {
	items, err := unpackClassicItems(packedProof, e.unpack)
	if err != nil {
		return false, err
	}
	leaves, err := mmr.NewPackedLeaves[H](packedLeaves, e.unpack).Decode()
	if err != nil {
		return false, err
	}
	root, err := e.hexTo(rootHex)
	if err != nil {
		return false, err
	}
	proof := mmr.NewMerkleProof(mmrSize, items, e.merge)
	return proof.Verify(root, leaves)
}

func (e *engine[H]) VerifyCompiled(packedProof, packedLeaves []byte, mmrSize uint64, rootHex string) (bool, error) {
	compiled, err := mmr.NewPackedMerkleProof[H](packedProof, e.unpack).Decode()
	if err != nil {
		return false, err
	}
	leaves, err := mmr.NewPackedLeaves[H](packedLeaves, e.unpack).Decode()
	if err != nil {
		return false, err
	}
	root, err := e.hexTo(rootHex)
	if err != nil {
		return false, err
	}
	return compiled.Verify(e.merge, root, mmrSize, leaves)
}

// packClassicItems/unpackClassicItems are the CLI's own convenience codec
// for a classic MerkleProof's bare item list - a count prefix plus each
// item's Pack() output back to back. Unlike the compiled-proof format in
// packed.go, this isn't a fixed interchange format; it only needs to
// round-trip between this CLI's own prove and verify subcommands.
func packClassicItems[H mmr.Packable](items []H) ([]byte, error) {
	var out []byte
	var countBuf [8]byte
	binary.LittleEndian.PutUint64(countBuf[:], uint64(len(items)))
	out = append(out, countBuf[:]...)
	for _, item := range items {
		b, err := item.Pack()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func unpackClassicItems[H mmr.Packable](data []byte, unpack mmr.Unpacker[H]) ([]H, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("mmrcli: truncated classic proof header")
	}
	count := binary.LittleEndian.Uint64(data[:8])
	data = data[8:]
	items := make([]H, 0, count)
	for i := uint64(0); i < count; i++ {
		v, consumed, err := unpack(data)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		data = data[consumed:]
	}
	return items, nil
}
