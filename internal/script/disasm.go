// Package script turns raw Bitcoin scripts into opcode tokens and classifies
// output scripts.
package script

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/txscript"
)

// ErrScriptOverrun is returned when a push length points past the end of the script.
var ErrScriptOverrun = errors.New("script push overruns script end")

// Token is one disassembled script element. Push tokens carry their payload in
// Data; Op holds the byte that introduced them.
type Token struct {
	Op      byte
	Data    []byte
	Push    bool
	Unknown bool
}

// String renders the token in asm form.
func (t Token) String() string {
	if t.Push {
		var prefix string
		switch t.Op {
		case txscript.OP_PUSHDATA1:
			prefix = "OP_PUSHDATA1"
		case txscript.OP_PUSHDATA2:
			prefix = "OP_PUSHDATA2"
		case txscript.OP_PUSHDATA4:
			prefix = "OP_PUSHDATA4"
		default:
			prefix = fmt.Sprintf("OP_PUSHBYTES_%d", t.Op)
		}
		return prefix + " " + hex.EncodeToString(t.Data)
	}
	if t.Unknown {
		return fmt.Sprintf("OP_UNKNOWN_0x%02x", t.Op)
	}
	name, _ := OpcodeName(t.Op)
	return name
}

// Disassemble splits script into tokens. Unknown opcodes never fail; a push
// whose length runs past the end of the script returns the tokens read so far
// together with an error wrapping ErrScriptOverrun.
func Disassemble(script []byte) ([]Token, error) {
	tokens := make([]Token, 0, len(script)/2+1)
	for pos := 0; pos < len(script); {
		op := script[pos]
		pos++

		var size int
		switch {
		case op >= txscript.OP_DATA_1 && op <= txscript.OP_DATA_75:
			size = int(op)
		case op == txscript.OP_PUSHDATA1, op == txscript.OP_PUSHDATA2, op == txscript.OP_PUSHDATA4:
			width := pushLenWidth(op)
			if len(script)-pos < width {
				return tokens, fmt.Errorf("offset %d: %s length: %w", pos-1, opcodeNames[op], ErrScriptOverrun)
			}
			n := readPushLen(script[pos:pos+width], width)
			pos += width
			if n > uint64(len(script)-pos) {
				return tokens, fmt.Errorf("offset %d: %s of %d bytes: %w", pos-1-width, opcodeNames[op], n, ErrScriptOverrun)
			}
			size = int(n)
		default:
			_, known := opcodeNames[op]
			tokens = append(tokens, Token{Op: op, Unknown: !known})
			continue
		}

		if size > len(script)-pos {
			return tokens, fmt.Errorf("offset %d: push of %d bytes: %w", pos-1, size, ErrScriptOverrun)
		}
		tokens = append(tokens, Token{Op: op, Data: script[pos : pos+size], Push: true})
		pos += size
	}
	return tokens, nil
}

// Format joins tokens into a space separated asm string.
func Format(tokens []Token) string {
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

// Asm disassembles and formats script in one step. On overrun the partial asm
// is returned along with the error.
func Asm(script []byte) (string, error) {
	tokens, err := Disassemble(script)
	return Format(tokens), err
}

func pushLenWidth(op byte) int {
	switch op {
	case txscript.OP_PUSHDATA1:
		return 1
	case txscript.OP_PUSHDATA2:
		return 2
	default:
		return 4
	}
}

func readPushLen(b []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	default:
		return uint64(binary.LittleEndian.Uint32(b))
	}
}
