package blkfile

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// TxID hashes a witness-stripped serialization. The result is in natural byte
// order; Hash.String gives the reversed form block explorers display.
func TxID(base []byte) chainhash.Hash {
	return chainhash.DoubleHashH(base)
}
