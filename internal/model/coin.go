package model

// Coin identifies the chain a record belongs to.
type Coin string

// Network identifies the network the block files were written for.
type Network string

var (
	BTC Coin = "BTC"
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)
