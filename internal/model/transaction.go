package model

import "time"

// Transaction is the per-transaction record.
type Transaction struct {
	Coin        Coin
	Network     Network
	BlockIndex  uint64
	BlockTime   time.Time
	TxID        string
	Version     uint32
	LockTime    uint32
	HasWitness  bool
	BaseSize    uint32
	InputCount  uint32
	OutputCount uint32
}

// TransactionInput describes a reference to a previous transaction output.
// ScriptErr is set when the scriptSig could not be fully disassembled.
type TransactionInput struct {
	Coin         Coin
	Network      Network
	BlockIndex   uint64
	BlockTime    time.Time
	TxID         string
	Index        uint32
	PrevTxID     string
	PrevVout     uint32
	Sequence     uint32
	IsCoinbase   bool
	ScriptSigHex string
	ScriptSigAsm string
	ScriptErr    string
	Witness      []string
}

// TransactionOutput represents an output produced by a transaction.
type TransactionOutput struct {
	Coin       Coin
	Network    Network
	BlockIndex uint64
	BlockTime  time.Time
	TxID       string
	Index      uint32
	Value      uint64
	ScriptType string
	ScriptHex  string
	ScriptAsm  string
	ScriptErr  string
	Addresses  []string
}
