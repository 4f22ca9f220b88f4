package script

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// Classifier names output scripts and extracts their addresses for one network.
type Classifier struct {
	params *chaincfg.Params
}

// NewClassifier returns a classifier bound to params; nil means mainnet.
func NewClassifier(params *chaincfg.Params) *Classifier {
	if params == nil {
		params = &chaincfg.MainNetParams
	}
	return &Classifier{params: params}
}

// Classify returns the standard script class (pubkeyhash, witness_v0_keyhash, ...)
// and the encoded addresses it pays to. Scripts that cannot be parsed are reported
// as nonstandard without addresses.
func (c *Classifier) Classify(pkScript []byte) (string, []string) {
	if len(pkScript) == 0 {
		return txscript.NonStandardTy.String(), nil
	}
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, c.params)
	if err != nil {
		return txscript.NonStandardTy.String(), nil
	}
	if len(addrs) == 0 {
		return class.String(), nil
	}

	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return class.String(), result
}
