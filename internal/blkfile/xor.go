package blkfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// XORKeyFile is the name of the obfuscation key file next to the block files.
const XORKeyFile = "xor.dat"

// LoadXORKey reads the obfuscation key at path. A missing file yields a nil key.
func LoadXORKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read xor key: %w", err)
	}
	if isZeroKey(key) {
		return nil, nil
	}
	return key, nil
}

type xorReader struct {
	r   io.Reader
	key []byte
	pos uint64
}

// NewXORReader undoes position-based XOR obfuscation. An empty or all-zero key
// returns r unchanged.
func NewXORReader(r io.Reader, key []byte) io.Reader {
	if isZeroKey(key) {
		return r
	}
	return &xorReader{r: r, key: append([]byte(nil), key...)}
}

func (x *xorReader) Read(p []byte) (int, error) {
	n, err := x.r.Read(p)
	size := uint64(len(x.key))
	for i := 0; i < n; i++ {
		p[i] ^= x.key[(x.pos+uint64(i))%size]
	}
	x.pos += uint64(n)
	return n, err
}

func isZeroKey(key []byte) bool {
	for _, b := range key {
		if b != 0 {
			return false
		}
	}
	return true
}
