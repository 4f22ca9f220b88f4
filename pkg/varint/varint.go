// Package varint implements the Bitcoin CompactSize variable-length integer
// while keeping the exact bytes a value was read from.
package varint

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/wire"
)

const (
	prefix16 = 0xfd
	prefix32 = 0xfe
	prefix64 = 0xff
)

// VarInt is a decoded CompactSize value together with its literal encoding.
// Raw is what hashes must consume; re-encoding Value may yield different bytes.
type VarInt struct {
	Value uint64
	Raw   []byte
}

// Width returns the number of bytes the value occupied on the wire (1, 3, 5 or 9).
func (v VarInt) Width() int {
	return len(v.Raw)
}

// Canonical reports whether Raw is the minimal encoding of Value.
func (v VarInt) Canonical() bool {
	return len(v.Raw) == Width(v.Value)
}

// Decode reads one CompactSize from r. It accepts non-minimal encodings such as
// fd 05 00 for the value 5. A stream that ends before the prefix byte returns
// io.EOF; one that ends after it returns an error wrapping io.ErrUnexpectedEOF.
func Decode(r io.Reader) (VarInt, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return VarInt{}, err
	}

	var n int
	switch prefix[0] {
	case prefix16:
		n = 2
	case prefix32:
		n = 4
	case prefix64:
		n = 8
	default:
		return VarInt{Value: uint64(prefix[0]), Raw: []byte{prefix[0]}}, nil
	}

	raw := make([]byte, 1+n)
	raw[0] = prefix[0]
	if _, err := io.ReadFull(r, raw[1:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return VarInt{}, fmt.Errorf("read %d-byte varint payload: %w", n, err)
	}

	var value uint64
	switch n {
	case 2:
		value = uint64(binary.LittleEndian.Uint16(raw[1:]))
	case 4:
		value = uint64(binary.LittleEndian.Uint32(raw[1:]))
	default:
		value = binary.LittleEndian.Uint64(raw[1:])
	}
	return VarInt{Value: value, Raw: raw}, nil
}

// Encode returns the minimal CompactSize encoding of v.
func Encode(v uint64) []byte {
	var buf bytes.Buffer
	buf.Grow(Width(v))
	// bytes.Buffer writes never fail.
	_ = wire.WriteVarInt(&buf, 0, v)
	return buf.Bytes()
}

// New builds a VarInt carrying the minimal encoding of v.
func New(v uint64) VarInt {
	return VarInt{Value: v, Raw: Encode(v)}
}

// Width returns the size of the minimal encoding of v.
func Width(v uint64) int {
	return wire.VarIntSerializeSize(v)
}
