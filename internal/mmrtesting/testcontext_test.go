package mmrtesting

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateLeaves_ReproducesS1RootFixture(t *testing.T) {
	ctx := NewTestContext(t, TestConfig{TestLabelPrefix: "kat"})
	positions := ctx.GenerateLeaves(11)
	require.Len(t, positions, 11)

	root, err := ctx.MMR.Root()
	require.NoError(t, err)
	require.Equal(t, S1Root11Leaves, hex.EncodeToString(root[:]))
}

func TestMustDecodeHex32(t *testing.T) {
	want := MustDecodeHex32(S1Root11Leaves)
	require.Equal(t, S1Root11Leaves, hex.EncodeToString(want[:]))
}

func TestFlipByte(t *testing.T) {
	orig := []byte{0x00, 0xAA, 0xFF}
	flipped := FlipByte(orig, 1)
	require.Equal(t, byte(0xAA), orig[1], "input must not be mutated")
	require.Equal(t, byte(0x55), flipped[1])
}

func TestNewTestContext_StartsEmpty(t *testing.T) {
	ctx := NewTestContext(t, TestConfig{})
	require.True(t, ctx.MMR.IsEmpty())
}
