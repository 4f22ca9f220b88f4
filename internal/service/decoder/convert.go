package decoder

import (
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/script"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/safe"
)

const (
	positionInput  = "input"
	positionOutput = "output"
)

// ScriptIssue is a script that could not be fully disassembled.
type ScriptIssue struct {
	Position string
	TxID     string
	Index    uint32
	Err      error
}

// converter turns decoded blocks into records. Disassembly runs on the decoded
// script bytes only, after the transaction id has been computed.
type converter struct {
	coin       model.Coin
	network    model.Network
	classifier ScriptClassifier
	details    bool
}

func (c *converter) convert(b *blkfile.Block) (model.InsertBlock, []ScriptIssue, error) {
	ts := b.Header.Timestamp()
	out := model.InsertBlock{
		Block: model.Block{
			Coin:         c.coin,
			Network:      c.network,
			FileIndex:    b.FileIndex,
			FileOffset:   b.Offset,
			BlockIndex:   b.Index,
			Hash:         b.Header.Hash().String(),
			Timestamp:    ts,
			Version:      hex.EncodeToString(b.Header.Version[:]),
			PrevHash:     hex.EncodeToString(b.Header.PrevHash[:]),
			MerkleRoot:   hex.EncodeToString(b.Header.MerkleRoot[:]),
			Bits:         hex.EncodeToString(b.Header.Bits[:]),
			Nonce:        hex.EncodeToString(b.Header.Nonce[:]),
			DeclaredSize: b.DeclaredSize,
			ConsumedSize: b.ConsumedSize,
			TXCount:      b.TxCount.Value,
		},
		Txs: make([]model.Transaction, 0, len(b.Transactions)),
	}

	var issues []ScriptIssue
	for i := range b.Transactions {
		tx := &b.Transactions[i]
		txid := tx.ID.String()

		inputCount, err := safe.Uint32(len(tx.Inputs))
		if err != nil {
			return out, issues, fmt.Errorf("tx %s input count: %w", txid, err)
		}
		outputCount, err := safe.Uint32(len(tx.Outputs))
		if err != nil {
			return out, issues, fmt.Errorf("tx %s output count: %w", txid, err)
		}
		baseSize, err := safe.Uint32(len(tx.Base))
		if err != nil {
			return out, issues, fmt.Errorf("tx %s base size: %w", txid, err)
		}

		out.Txs = append(out.Txs, model.Transaction{
			Coin:        c.coin,
			Network:     c.network,
			BlockIndex:  b.Index,
			BlockTime:   ts,
			TxID:        txid,
			Version:     tx.Version,
			LockTime:    tx.LockTimeValue(),
			HasWitness:  tx.HasWitness,
			BaseSize:    baseSize,
			InputCount:  inputCount,
			OutputCount: outputCount,
		})

		if !c.details {
			continue
		}

		coinbase := tx.IsCoinbase()
		for j := range tx.Inputs {
			in := &tx.Inputs[j]
			idx := uint32(j)
			record := model.TransactionInput{
				Coin:         c.coin,
				Network:      c.network,
				BlockIndex:   b.Index,
				BlockTime:    ts,
				TxID:         txid,
				Index:        idx,
				PrevTxID:     in.PrevTxID.String(),
				PrevVout:     in.PrevIndex,
				Sequence:     in.Sequence,
				IsCoinbase:   coinbase,
				ScriptSigHex: hex.EncodeToString(in.Script),
			}
			asm, err := script.Asm(in.Script)
			record.ScriptSigAsm = asm
			if err != nil {
				record.ScriptErr = err.Error()
				issues = append(issues, ScriptIssue{Position: positionInput, TxID: txid, Index: idx, Err: err})
			}
			if tx.HasWitness && j < len(tx.Witnesses) {
				record.Witness = witnessHex(tx.Witnesses[j])
			}
			out.Inputs = append(out.Inputs, record)
		}

		for j := range tx.Outputs {
			o := &tx.Outputs[j]
			idx := uint32(j)
			record := model.TransactionOutput{
				Coin:       c.coin,
				Network:    c.network,
				BlockIndex: b.Index,
				BlockTime:  ts,
				TxID:       txid,
				Index:      idx,
				Value:      o.Value,
				ScriptHex:  hex.EncodeToString(o.Script),
			}
			if len(o.Script) > 0 {
				asm, err := script.Asm(o.Script)
				record.ScriptAsm = asm
				if err != nil {
					record.ScriptErr = err.Error()
					issues = append(issues, ScriptIssue{Position: positionOutput, TxID: txid, Index: idx, Err: err})
				}
			}
			if c.classifier != nil {
				record.ScriptType, record.Addresses = c.classifier.Classify(o.Script)
			}
			out.Outputs = append(out.Outputs, record)
		}
	}
	return out, issues, nil
}

func witnessHex(w blkfile.Witness) []string {
	items := make([]string, 0, len(w.Items))
	for _, item := range w.Items {
		items = append(items, hex.EncodeToString(item))
	}
	return items
}
