package main

import (
	"encoding/hex"
	"fmt"

	"github.com/datatrails/go-mmrcore/internal/blake2bmerge"
	"github.com/datatrails/go-mmrcore/internal/blake3merge"
)

func digestHex(d blake2bmerge.Digest) string { return hex.EncodeToString(d[:]) }

func digestFromHex(s string) (blake2bmerge.Digest, error) {
	var zero blake2bmerge.Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return zero, fmt.Errorf("mmrcli: invalid hex digest: %w", err)
	}
	if len(b) != 32 {
		return zero, fmt.Errorf("mmrcli: digest must be 32 bytes, got %d", len(b))
	}
	var out blake2bmerge.Digest
	copy(out[:], b)
	return out, nil
}

func blake3Hex(d blake3merge.Digest) string { return hex.EncodeToString(d[:]) }

func blake3FromHex(s string) (blake3merge.Digest, error) {
	var zero blake3merge.Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return zero, fmt.Errorf("mmrcli: invalid hex digest: %w", err)
	}
	if len(b) != 32 {
		return zero, fmt.Errorf("mmrcli: digest must be 32 bytes, got %d", len(b))
	}
	var out blake3merge.Digest
	copy(out[:], b)
	return out, nil
}
