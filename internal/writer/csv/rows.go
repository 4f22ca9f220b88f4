package csv

import (
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/safe"
)

// listSeparator joins multi-valued cells.
const listSeparator = "|"

type blockRow struct {
	File         int    `csv:"FILE"`
	Block        uint64 `csv:"BLOCK"`
	Date         string `csv:"DATE"`
	Time         string `csv:"TIME"`
	Version      string `csv:"VERSION"`
	PrevHash     string `csv:"PREV_HASH"`
	MerkleRoot   string `csv:"MERKLE_ROOT"`
	Bits         string `csv:"BITS"`
	Nonce        string `csv:"NONCE"`
	TxCount      uint64 `csv:"TX_COUNT"`
	Hash         string `csv:"HASH"`
	Offset       int64  `csv:"OFFSET"`
	DeclaredSize uint32 `csv:"DECLARED_SIZE"`
	Size         int64  `csv:"SIZE"`
}

type txRow struct {
	Block      uint64 `csv:"BLOCK"`
	TxID       string `csv:"TXID"`
	InputCount uint32 `csv:"INP_COUNT"`
	OutCount   uint32 `csv:"OUT_COUNT"`
	Version    uint32 `csv:"VERSION"`
	LockTime   uint32 `csv:"LOCKTIME"`
	Segwit     bool   `csv:"SEGWIT"`
	BaseSize   uint32 `csv:"BASE_SIZE"`
}

type inputRow struct {
	TxID      string `csv:"TXID"`
	PrevTxID  string `csv:"TIN"`
	PrevVout  uint32 `csv:"VOUT"`
	Script    string `csv:"SCRIPT"`
	Index     uint32 `csv:"INDEX"`
	Sequence  uint32 `csv:"SEQUENCE"`
	Coinbase  bool   `csv:"COINBASE"`
	Witness   string `csv:"WITNESS"`
	ScriptErr string `csv:"SCRIPT_ERR"`
}

type outputRow struct {
	TxID      string `csv:"TXID"`
	Amount    string `csv:"AMOUNT"`
	Script    string `csv:"SCRIPT"`
	Index     uint32 `csv:"INDEX"`
	Value     uint64 `csv:"VALUE"`
	Type      string `csv:"TYPE"`
	Addresses string `csv:"ADDRESSES"`
	ScriptErr string `csv:"SCRIPT_ERR"`
}

func toBlockRow(b model.Block) blockRow {
	return blockRow{
		File:         b.FileIndex,
		Block:        b.BlockIndex,
		Date:         b.Date(),
		Time:         b.Time(),
		Version:      b.Version,
		PrevHash:     b.PrevHash,
		MerkleRoot:   b.MerkleRoot,
		Bits:         b.Bits,
		Nonce:        b.Nonce,
		TxCount:      b.TXCount,
		Hash:         b.Hash,
		Offset:       b.FileOffset,
		DeclaredSize: b.DeclaredSize,
		Size:         b.ConsumedSize,
	}
}

func toTxRows(txs []model.Transaction) []txRow {
	rows := make([]txRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, txRow{
			Block:      tx.BlockIndex,
			TxID:       tx.TxID,
			InputCount: tx.InputCount,
			OutCount:   tx.OutputCount,
			Version:    tx.Version,
			LockTime:   tx.LockTime,
			Segwit:     tx.HasWitness,
			BaseSize:   tx.BaseSize,
		})
	}
	return rows
}

func toInputRows(inputs []model.TransactionInput) []inputRow {
	rows := make([]inputRow, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, inputRow{
			TxID:      in.TxID,
			PrevTxID:  in.PrevTxID,
			PrevVout:  in.PrevVout,
			Script:    in.ScriptSigAsm,
			Index:     in.Index,
			Sequence:  in.Sequence,
			Coinbase:  in.IsCoinbase,
			Witness:   strings.Join(in.Witness, listSeparator),
			ScriptErr: in.ScriptErr,
		})
	}
	return rows
}

func toOutputRows(outputs []model.TransactionOutput) []outputRow {
	rows := make([]outputRow, 0, len(outputs))
	for _, out := range outputs {
		rows = append(rows, outputRow{
			TxID:      out.TxID,
			Amount:    formatAmount(out.Value),
			Script:    out.ScriptAsm,
			Index:     out.Index,
			Value:     out.Value,
			Type:      out.ScriptType,
			Addresses: strings.Join(out.Addresses, listSeparator),
			ScriptErr: out.ScriptErr,
		})
	}
	return rows
}

// formatAmount renders satoshis as BTC with eight decimals. Values outside the
// int64 range are left empty.
func formatAmount(sat uint64) string {
	v, err := safe.Int64(sat)
	if err != nil {
		return ""
	}
	return strconv.FormatFloat(btcutil.Amount(v).ToBTC(), 'f', 8, 64)
}
