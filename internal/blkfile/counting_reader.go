package blkfile

import (
	"bufio"
	"errors"
	"io"
)

const readBufferSize = 1 << 20

// CountingReader tracks the absolute offset of a buffered source.
type CountingReader struct {
	r      *bufio.Reader
	offset int64
}

// NewCountingReader wraps r with a read buffer and an offset counter.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{r: bufio.NewReaderSize(r, readBufferSize)}
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.offset += int64(n)
	return n, err
}

// Offset returns the number of bytes consumed so far.
func (c *CountingReader) Offset() int64 {
	return c.offset
}

// readFull fills p or returns io.EOF (nothing read) or io.ErrUnexpectedEOF.
func (c *CountingReader) readFull(p []byte) error {
	_, err := io.ReadFull(c, p)
	return err
}

// readBytes reads exactly n bytes. The buffer grows with the data actually read,
// never with the declared length alone.
func (c *CountingReader) readBytes(n uint64) ([]byte, error) {
	const chunk = 1 << 16
	if n <= chunk {
		buf := make([]byte, n)
		if err := c.readFull(buf); err != nil {
			return nil, shortRead(err)
		}
		return buf, nil
	}

	buf := make([]byte, 0, chunk)
	for remaining := n; remaining > 0; {
		step := remaining
		if step > chunk {
			step = chunk
		}
		start := len(buf)
		buf = append(buf, make([]byte, step)...)
		if err := c.readFull(buf[start:]); err != nil {
			return nil, shortRead(err)
		}
		remaining -= step
	}
	return buf, nil
}

// shortRead maps io.EOF to io.ErrUnexpectedEOF for fields that have already begun.
func shortRead(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

func isShortRead(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
