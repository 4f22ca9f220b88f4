package blkfile

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/varint"
)

// VersionPolicy decides which transaction versions are decoded.
type VersionPolicy int

const (
	// AcceptAnyVersion decodes every version with the same layout.
	AcceptAnyVersion VersionPolicy = iota
	// RejectUnknownVersions fails on any version other than 1.
	RejectUnknownVersions
)

// ParseVersionPolicy maps a config value to a VersionPolicy.
func ParseVersionPolicy(s string) (VersionPolicy, error) {
	switch s {
	case "", "any":
		return AcceptAnyVersion, nil
	case "strict", "v1":
		return RejectUnknownVersions, nil
	default:
		return 0, fmt.Errorf("unknown version policy %q", s)
	}
}

const segwitFlag = 0x01

// Transaction is a decoded transaction. Base holds the witness-stripped
// serialization that ID is computed from.
type Transaction struct {
	Version    uint32
	HasWitness bool
	InputCount varint.VarInt
	Inputs     []Input
	Outputs    []Output
	Witnesses  []Witness
	LockTime   [4]byte
	ID         chainhash.Hash
	Base       []byte
}

// IsCoinbase reports whether tx spends the null outpoint.
func (tx *Transaction) IsCoinbase() bool {
	return len(tx.Inputs) == 1 && tx.Inputs[0].IsCoinbase()
}

// LockTimeValue decodes LockTime.
func (tx *Transaction) LockTimeValue() uint32 {
	return binary.LittleEndian.Uint32(tx.LockTime[:])
}

// Input spends a previous output.
type Input struct {
	PrevTxID  chainhash.Hash
	PrevIndex uint32
	ScriptLen varint.VarInt
	Script    []byte
	Sequence  uint32
}

// IsCoinbase reports whether the input references the null outpoint.
func (in *Input) IsCoinbase() bool {
	return in.PrevIndex == 0xffffffff && in.PrevTxID == (chainhash.Hash{})
}

// Output carries a value in base units and its locking script.
type Output struct {
	Value     uint64
	ScriptLen varint.VarInt
	Script    []byte
}

// Witness is the stack of one input.
type Witness struct {
	Items [][]byte
}

// txDecoder reads one transaction and mirrors every base byte into base.
type txDecoder struct {
	r    *CountingReader
	base bytes.Buffer
}

// DecodeTransaction reads one transaction starting at the current position of r.
func DecodeTransaction(r *CountingReader, policy VersionPolicy) (Transaction, error) {
	d := &txDecoder{r: r}
	var tx Transaction

	var version [4]byte
	if err := d.fixed("version", version[:], true); err != nil {
		return tx, err
	}
	tx.Version = binary.LittleEndian.Uint32(version[:])
	if policy == RejectUnknownVersions && tx.Version != 1 {
		return tx, wrapField("version", fmt.Errorf("%w: %d", ErrUnsupportedVersion, tx.Version))
	}

	count, err := d.varint("input count", false)
	if err != nil {
		return tx, err
	}
	if count.Value == 0 {
		var flag [1]byte
		if err := d.fixed("segwit flag", flag[:], false); err != nil {
			return tx, err
		}
		if flag[0] != segwitFlag {
			return tx, wrapField("segwit flag", fmt.Errorf("%w: 0x%02x", ErrSegwitFlag, flag[0]))
		}
		tx.HasWitness = true
		if count, err = d.varint("input count", false); err != nil {
			return tx, err
		}
	}
	tx.InputCount = count
	d.base.Write(count.Raw)

	tx.Inputs = make([]Input, 0, capHint(count.Value))
	for i := uint64(0); i < count.Value; i++ {
		in, err := d.input()
		if err != nil {
			return tx, wrapField(fmt.Sprintf("input %d", i), err)
		}
		tx.Inputs = append(tx.Inputs, in)
	}

	outCount, err := d.varint("output count", true)
	if err != nil {
		return tx, err
	}
	tx.Outputs = make([]Output, 0, capHint(outCount.Value))
	for i := uint64(0); i < outCount.Value; i++ {
		out, err := d.output()
		if err != nil {
			return tx, wrapField(fmt.Sprintf("output %d", i), err)
		}
		tx.Outputs = append(tx.Outputs, out)
	}

	if tx.HasWitness {
		tx.Witnesses = make([]Witness, 0, len(tx.Inputs))
		for i := range tx.Inputs {
			w, err := d.witness()
			if err != nil {
				return tx, wrapField(fmt.Sprintf("witness %d", i), err)
			}
			tx.Witnesses = append(tx.Witnesses, w)
		}
	}

	if err := d.fixed("locktime", tx.LockTime[:], true); err != nil {
		return tx, err
	}

	tx.Base = d.base.Bytes()
	tx.ID = TxID(tx.Base)
	return tx, nil
}

func (d *txDecoder) input() (Input, error) {
	var in Input
	if err := d.fixed("prev txid", in.PrevTxID[:], true); err != nil {
		return in, err
	}
	var idx [4]byte
	if err := d.fixed("prev index", idx[:], true); err != nil {
		return in, err
	}
	in.PrevIndex = binary.LittleEndian.Uint32(idx[:])

	var err error
	if in.ScriptLen, in.Script, err = d.script("script", true); err != nil {
		return in, err
	}

	var seq [4]byte
	if err := d.fixed("sequence", seq[:], true); err != nil {
		return in, err
	}
	in.Sequence = binary.LittleEndian.Uint32(seq[:])
	return in, nil
}

func (d *txDecoder) output() (Output, error) {
	var out Output
	var value [8]byte
	if err := d.fixed("value", value[:], true); err != nil {
		return out, err
	}
	out.Value = binary.LittleEndian.Uint64(value[:])

	var err error
	out.ScriptLen, out.Script, err = d.script("script", true)
	return out, err
}

func (d *txDecoder) witness() (Witness, error) {
	count, err := d.varint("item count", false)
	if err != nil {
		return Witness{}, err
	}
	w := Witness{Items: make([][]byte, 0, capHint(count.Value))}
	for i := uint64(0); i < count.Value; i++ {
		_, item, err := d.script(fmt.Sprintf("item %d", i), false)
		if err != nil {
			return w, err
		}
		w.Items = append(w.Items, item)
	}
	return w, nil
}

// fixed reads len(p) bytes, mirroring them into the base serialization when inBase is set.
func (d *txDecoder) fixed(field string, p []byte, inBase bool) error {
	if err := d.r.readFull(p); err != nil {
		return wrapField(field, shortRead(err))
	}
	if inBase {
		d.base.Write(p)
	}
	return nil
}

func (d *txDecoder) varint(field string, inBase bool) (varint.VarInt, error) {
	v, err := varint.Decode(d.r)
	if err != nil {
		return v, wrapField(field, shortRead(err))
	}
	if inBase {
		d.base.Write(v.Raw)
	}
	return v, nil
}

// script reads a length-prefixed byte string.
func (d *txDecoder) script(field string, inBase bool) (varint.VarInt, []byte, error) {
	n, err := d.varint(field+" length", inBase)
	if err != nil {
		return n, nil, err
	}
	b, err := d.r.readBytes(n.Value)
	if err != nil {
		return n, nil, wrapField(field, err)
	}
	if inBase {
		d.base.Write(b)
	}
	return n, b, nil
}
