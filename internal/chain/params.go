// Package chain resolves network parameters shared by the decoding components.
package chain

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/model"
)

// ParamsForNetwork returns chain parameters for the given network name.
func ParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// Magic returns the block-file frame magic for params.
func Magic(params *chaincfg.Params) wire.BitcoinNet {
	if params == nil {
		return wire.MainNet
	}
	return params.Net
}
