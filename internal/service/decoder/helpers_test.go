package decoder

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile"
	"github.com/stretchr/testify/require"
)

func frame(t *testing.T, blk *wire.MsgBlock) []byte {
	t.Helper()
	var body bytes.Buffer
	require.NoError(t, blk.Serialize(&body))
	out := make([]byte, 8, 8+body.Len())
	binary.LittleEndian.PutUint32(out[0:4], uint32(wire.MainNet))
	binary.LittleEndian.PutUint32(out[4:8], uint32(body.Len()))
	return append(out, body.Bytes()...)
}

func testBlock(ts int64, txs ...*wire.MsgTx) *wire.MsgBlock {
	hdr := wire.NewBlockHeader(1, &chainhash.Hash{}, &chainhash.Hash{0xee}, 0x1d00ffff, uint32(ts))
	hdr.Timestamp = time.Unix(ts, 0)
	blk := wire.NewMsgBlock(hdr)
	for _, tx := range txs {
		_ = blk.AddTransaction(tx)
	}
	return blk
}

func testTx(seed byte, pkScript []byte, witness bool) *wire.MsgTx {
	tx := wire.NewMsgTx(1)
	in := wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{seed}, uint32(seed)), []byte{0x51}, nil)
	if witness {
		tx.Version = 2
		in.SignatureScript = nil
		in.Witness = wire.TxWitness{bytes.Repeat([]byte{seed}, 4), {}}
	}
	tx.AddTxIn(in)
	tx.AddTxOut(wire.NewTxOut(int64(seed)*100, pkScript))
	return tx
}

// decodeAll runs files through a sequential session and returns every block.
func decodeAll(t *testing.T, files ...[]byte) []*blkfile.Block {
	t.Helper()
	s := blkfile.NewSession(blkfile.MemorySources(files...))
	var blocks []*blkfile.Block
	for {
		b, err := s.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return blocks
		}
		require.NoError(t, err)
		blocks = append(blocks, b)
	}
}
