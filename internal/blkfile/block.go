package blkfile

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/varint"
)

// HeaderSize is the serialized size of a block header.
const HeaderSize = 80

// Header holds the six header fields in on-disk byte order.
type Header struct {
	Version    [4]byte
	PrevHash   [32]byte
	MerkleRoot [32]byte
	Time       [4]byte
	Bits       [4]byte
	Nonce      [4]byte
}

// ParseHeader splits an 80-byte serialized header.
func ParseHeader(raw [HeaderSize]byte) Header {
	var h Header
	copy(h.Version[:], raw[0:4])
	copy(h.PrevHash[:], raw[4:36])
	copy(h.MerkleRoot[:], raw[36:68])
	copy(h.Time[:], raw[68:72])
	copy(h.Bits[:], raw[72:76])
	copy(h.Nonce[:], raw[76:80])
	return h
}

// Bytes re-serializes the header.
func (h Header) Bytes() [HeaderSize]byte {
	var raw [HeaderSize]byte
	copy(raw[0:4], h.Version[:])
	copy(raw[4:36], h.PrevHash[:])
	copy(raw[36:68], h.MerkleRoot[:])
	copy(raw[68:72], h.Time[:])
	copy(raw[72:76], h.Bits[:])
	copy(raw[76:80], h.Nonce[:])
	return raw
}

// Timestamp decodes the header time as UTC.
func (h Header) Timestamp() time.Time {
	return time.Unix(int64(binary.LittleEndian.Uint32(h.Time[:])), 0).UTC()
}

// Hash returns the block hash.
func (h Header) Hash() chainhash.Hash {
	raw := h.Bytes()
	return chainhash.DoubleHashH(raw[:])
}

// Block is one decoded frame of a block file.
type Block struct {
	FileIndex    int
	Index        uint64
	Offset       int64
	DeclaredSize uint32
	Header       Header
	TxCount      varint.VarInt
	Transactions []Transaction
	// ConsumedSize counts header and transaction bytes actually read. It is not
	// checked against DeclaredSize.
	ConsumedSize int64
}

// DecodeHeader reads the fixed 80-byte header.
func DecodeHeader(r *CountingReader) (Header, error) {
	var raw [HeaderSize]byte
	if err := r.readFull(raw[:]); err != nil {
		return Header{}, wrapField("header", shortRead(err))
	}
	return ParseHeader(raw), nil
}

// DecodeBlockBody reads the transaction count and that many transactions.
func DecodeBlockBody(r *CountingReader, policy VersionPolicy) (varint.VarInt, []Transaction, error) {
	count, err := varint.Decode(r)
	if err != nil {
		return varint.VarInt{}, nil, wrapField("tx count", shortRead(err))
	}

	txs := make([]Transaction, 0, capHint(count.Value))
	for i := uint64(0); i < count.Value; i++ {
		tx, err := DecodeTransaction(r, policy)
		if err != nil {
			return count, txs, wrapField(fmt.Sprintf("tx %d", i), err)
		}
		txs = append(txs, tx)
	}
	return count, txs, nil
}

// capHint bounds preallocation by a declared element count.
func capHint(n uint64) int {
	const maxHint = 1024
	if n > maxHint {
		return maxHint
	}
	return int(n)
}
