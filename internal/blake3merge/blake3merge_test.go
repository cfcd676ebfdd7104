package blake3merge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeafDigest_DomainSeparatedFromInternal(t *testing.T) {
	var a, b Digest
	a[0] = 0xAB
	b[0] = 0xCD

	// Constructing an internal node from the same 64 bytes a leaf digest of
	// a||b would hash must not collide with that leaf digest.
	leaf := LeafDigest(append(append([]byte(nil), a[:]...), b[:]...))
	internal := hashInternal(a, b)
	require.NotEqual(t, leaf, internal)
}

func TestMerge_OrderSensitive(t *testing.T) {
	var a, b Digest
	a[0] = 0x01
	b[0] = 0x02

	m := Merge{}
	require.NotEqual(t, m.Merge(a, b), m.Merge(b, a))
}

func TestMergePeaks_MatchesMerge(t *testing.T) {
	var a, b Digest
	a[0] = 0x01
	b[0] = 0x02

	m := Merge{}
	require.Equal(t, m.Merge(a, b), m.MergePeaks(a, b))
}

func TestPackUnpackRoundTrip(t *testing.T) {
	d := LeafDigest([]byte("payload"))
	packed, err := d.Pack()
	require.NoError(t, err)
	require.Len(t, packed, 32)

	decoded, consumed, err := UnpackDigest(packed)
	require.NoError(t, err)
	require.Equal(t, 32, consumed)
	require.Equal(t, d, decoded)
}

func TestUnpackDigest_ShortInput(t *testing.T) {
	_, _, err := UnpackDigest([]byte{0x01, 0x02})
	require.Error(t, err)
}
