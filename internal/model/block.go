// Package model defines the records produced while decoding block files.
package model

import "time"

// Block is the record emitted for every decoded block frame.
// Header fields are hex of the raw on-disk bytes, not of reversed values.
type Block struct {
	Coin         Coin
	Network      Network
	FileIndex    int
	FileOffset   int64
	BlockIndex   uint64
	Hash         string
	Timestamp    time.Time
	Version      string
	PrevHash     string
	MerkleRoot   string
	Bits         string
	Nonce        string
	DeclaredSize uint32
	ConsumedSize int64
	TXCount      uint64
}

// Date renders the block timestamp date part as YYYY-MM-DD.
func (b Block) Date() string {
	return b.Timestamp.UTC().Format("2006-01-02")
}

// Time renders the block timestamp time part as HH:MM:SS.
func (b Block) Time() string {
	return b.Timestamp.UTC().Format("15:04:05")
}
