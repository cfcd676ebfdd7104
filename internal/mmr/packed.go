package mmr

import "encoding/binary"

// Packable lets a digest type serialize itself into a compiled proof's byte
// stream. comparable is embedded because every packable digest type is
// also the H a CompiledMerkleProof[H]/LeafEntry[H] is built over, and those
// require it.
//
// Decoding is deliberately not a Packable method: Go has no way for an
// interface to say "a method that returns Self", so unpacking a fresh H is
// done via a plain `func([]byte) (H, int, error)` passed to
// NewPackedMerkleProof/NewPackedLeaves instead, mirroring how the original
// crate's Packable::unpack is an associated function rather than an
// instance method.
type Packable interface {
	comparable
	Pack() ([]byte, error)
}

// Unpacker decodes one H from the front of data, returning how many bytes
// it consumed.
type Unpacker[H Packable] func(data []byte) (value H, consumed int, err error)

// opcode tags a packed command. These byte values are part of the wire
// format and must never change once anything depends on them.
const (
	opNextLeaf byte = 0x01
	opProof    byte = 0x02
	opHash     byte = 0x03
	opHashPeak byte = 0x04
	opToPeak   byte = 0x05
)

// PackCompiledMerkleProof serializes proof as a self-delimiting byte stream:
// one opcode byte per command, with CmdProof additionally followed by the
// packed proof digest.
func PackCompiledMerkleProof[H Packable](proof *CompiledMerkleProof[H]) ([]byte, error) {
	var out []byte
	for _, cmd := range proof.Commands {
		switch cmd.Kind {
		case CmdNextLeaf:
			out = append(out, opNextLeaf)
		case CmdProof:
			out = append(out, opProof)
			b, err := cmd.Proof.Pack()
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		case CmdHash:
			out = append(out, opHash)
		case CmdHashPeak:
			out = append(out, opHashPeak)
		case CmdToPeak:
			out = append(out, opToPeak)
		default:
			return nil, ErrInvalidCommand
		}
	}
	return out, nil
}

// PackLeaves serializes leaves as a self-delimiting byte stream: each entry
// is an 8-byte little-endian position followed by the packed leaf digest.
func PackLeaves[H Packable](leaves []LeafEntry[H]) ([]byte, error) {
	var out []byte
	for _, l := range leaves {
		var posBuf [8]byte
		binary.LittleEndian.PutUint64(posBuf[:], l.Position)
		out = append(out, posBuf[:]...)
		b, err := l.Value.Pack()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// PackedMerkleProof is a forward-only iterator over a packed command stream,
// unpacking one Command at a time without materializing the whole
// CompiledMerkleProof up front.
type PackedMerkleProof[H Packable] struct {
	data   []byte
	index  int
	unpack Unpacker[H]
}

// NewPackedMerkleProof wraps data for iteration. unpack decodes one H from
// the front of a byte slice, as produced by H's own Pack.
func NewPackedMerkleProof[H Packable](data []byte, unpack Unpacker[H]) *PackedMerkleProof[H] {
	return &PackedMerkleProof[H]{data: data, unpack: unpack}
}

// Next returns the next command, or ok == false once data is exhausted.
func (p *PackedMerkleProof[H]) Next() (cmd Command[H], ok bool, err error) {
	if p.index >= len(p.data) {
		return Command[H]{}, false, nil
	}
	op := p.data[p.index]
	p.index++

	switch op {
	case opNextLeaf:
		return Command[H]{Kind: CmdNextLeaf}, true, nil
	case opProof:
		v, consumed, uerr := p.unpack(p.data[p.index:])
		if uerr != nil {
			return Command[H]{}, false, uerr
		}
		p.index += consumed
		return Command[H]{Kind: CmdProof, Proof: v}, true, nil
	case opHash:
		return Command[H]{Kind: CmdHash}, true, nil
	case opHashPeak:
		return Command[H]{Kind: CmdHashPeak}, true, nil
	case opToPeak:
		return Command[H]{Kind: CmdToPeak}, true, nil
	default:
		return Command[H]{}, false, ErrInvalidCommand
	}
}

// Decode drains p into a full CompiledMerkleProof. Prefer Next directly
// when streaming through a fixed-depth verifier without allocating the
// whole command slice.
func (p *PackedMerkleProof[H]) Decode() (*CompiledMerkleProof[H], error) {
	var commands []Command[H]
	for {
		cmd, ok, err := p.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		commands = append(commands, cmd)
	}
	return &CompiledMerkleProof[H]{Commands: commands}, nil
}

// PackedLeaves is a forward-only iterator over a packed (position, digest)
// stream, the counterpart to PackLeaves.
type PackedLeaves[H Packable] struct {
	data   []byte
	index  int
	unpack Unpacker[H]
}

// NewPackedLeaves wraps data for iteration; unpack is used the same way as
// in NewPackedMerkleProof.
func NewPackedLeaves[H Packable](data []byte, unpack Unpacker[H]) *PackedLeaves[H] {
	return &PackedLeaves[H]{data: data, unpack: unpack}
}

// Next returns the next leaf entry, or ok == false once data is exhausted.
func (p *PackedLeaves[H]) Next() (entry LeafEntry[H], ok bool, err error) {
	if p.index >= len(p.data) {
		return LeafEntry[H]{}, false, nil
	}
	if len(p.data)-p.index < 8 {
		return LeafEntry[H]{}, false, ErrUnpackEOF
	}
	pos := binary.LittleEndian.Uint64(p.data[p.index : p.index+8])
	p.index += 8

	v, consumed, err := p.unpack(p.data[p.index:])
	if err != nil {
		return LeafEntry[H]{}, false, err
	}
	p.index += consumed
	return LeafEntry[H]{Position: pos, Value: v}, true, nil
}

// Decode drains p into a full leaf slice.
func (p *PackedLeaves[H]) Decode() ([]LeafEntry[H], error) {
	var leaves []LeafEntry[H]
	for {
		l, ok, err := p.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		leaves = append(leaves, l)
	}
	return leaves, nil
}
