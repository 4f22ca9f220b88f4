package model

// InsertBlock groups a block with its transactions and, when requested, their inputs and outputs.
type InsertBlock struct {
	Block   Block
	Txs     []Transaction
	Inputs  []TransactionInput
	Outputs []TransactionOutput
}
