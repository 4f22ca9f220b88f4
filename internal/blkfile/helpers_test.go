package blkfile

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

func frame(t *testing.T, net wire.BitcoinNet, blk *wire.MsgBlock) []byte {
	t.Helper()
	var body bytes.Buffer
	require.NoError(t, blk.Serialize(&body))
	return rawFrame(net, body.Bytes())
}

func rawFrame(net wire.BitcoinNet, body []byte) []byte {
	out := make([]byte, 8, 8+len(body))
	binary.LittleEndian.PutUint32(out[0:4], uint32(net))
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(body)))
	return append(out, body...)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func legacyTx(seed byte) *wire.MsgTx {
	tx := wire.NewMsgTx(1)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{seed}, uint32(seed)), []byte{0x51, seed}, nil))
	tx.AddTxOut(wire.NewTxOut(int64(seed)*1000, []byte{0x76, 0xa9, 0x01, seed, 0x88, 0xac}))
	tx.LockTime = uint32(seed)
	return tx
}

func segwitTx(seed byte) *wire.MsgTx {
	tx := wire.NewMsgTx(2)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{seed, 1}, 0), nil, wire.TxWitness{
		bytes.Repeat([]byte{seed}, 71),
		bytes.Repeat([]byte{0x02}, 33),
	}))
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{seed, 2}, 1), nil, wire.TxWitness{}))
	tx.AddTxOut(wire.NewTxOut(5000, append([]byte{0x00, 0x14}, bytes.Repeat([]byte{seed}, 20)...)))
	tx.AddTxOut(wire.NewTxOut(0, []byte{0x6a, 0x01, seed}))
	return tx
}

func msgBlock(prev chainhash.Hash, ts int64, txs ...*wire.MsgTx) *wire.MsgBlock {
	hdr := wire.NewBlockHeader(1, &prev, &chainhash.Hash{0xee}, 0x1d00ffff, uint32(ts))
	hdr.Timestamp = time.Unix(ts, 0)
	blk := wire.NewMsgBlock(hdr)
	for _, tx := range txs {
		_ = blk.AddTransaction(tx)
	}
	return blk
}

func noWitness(t *testing.T, tx *wire.MsgTx) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tx.SerializeNoWitness(&buf))
	return buf.Bytes()
}

func serialized(t *testing.T, tx *wire.MsgTx) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tx.Serialize(&buf))
	return buf.Bytes()
}
