// Package blkfile decodes the block files a Bitcoin node keeps on disk.
package blkfile

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/wire"
)

// errSourceExhausted ends the current source cleanly.
var errSourceExhausted = errors.New("source exhausted")

// Option configures a Session.
type Option func(*Session)

// WithMagic sets the frame magic. The default is the mainnet value.
func WithMagic(net wire.BitcoinNet) Option {
	return func(s *Session) {
		binary.LittleEndian.PutUint32(s.magic[:], uint32(net))
	}
}

// WithVersionPolicy sets the transaction version policy.
func WithVersionPolicy(p VersionPolicy) Option {
	return func(s *Session) {
		s.policy = p
	}
}

// WithZeroPaddingAsEOF treats four zero bytes in place of a magic as the end of
// the source. Enabled by default.
func WithZeroPaddingAsEOF(enabled bool) Option {
	return func(s *Session) {
		s.zeroPaddingEOF = enabled
	}
}

// WithFirstBlockIndex starts the block counter at n.
func WithFirstBlockIndex(n uint64) Option {
	return func(s *Session) {
		s.counter = n
	}
}

type openSource struct {
	src Source
	rc  io.ReadCloser
	r   *CountingReader
	err error
}

// Session walks a fixed list of sources in order and yields one Block per frame.
// It is single use and not safe for concurrent calls.
type Session struct {
	sources        []Source
	next           int
	cur            *openSource
	counter        uint64
	magic          [4]byte
	policy         VersionPolicy
	zeroPaddingEOF bool
	done           bool
}

// NewSession prepares a pass over sources. Nothing is opened until the first Next.
func NewSession(sources []Source, opts ...Option) *Session {
	s := &Session{
		sources:        sources,
		policy:         AcceptAnyVersion,
		zeroPaddingEOF: true,
	}
	WithMagic(wire.MainNet)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next returns the next block. It returns io.EOF once every source is consumed,
// and keeps returning it afterwards. After a decoding error the same error is
// returned until SkipSource moves past the broken source. A source that cannot
// be opened is reported once and then passed over.
func (s *Session) Next(ctx context.Context) (*Block, error) {
	for {
		if s.done {
			return nil, io.EOF
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if s.cur == nil {
			if s.next >= len(s.sources) {
				s.done = true
				return nil, io.EOF
			}
			src := s.sources[s.next]
			s.next++
			if err := s.open(src); err != nil {
				return nil, err
			}
		}
		if s.cur.err != nil {
			return nil, s.cur.err
		}

		block, err := s.readFrame()
		if errors.Is(err, errSourceExhausted) {
			if err := s.closeCurrent(); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			s.cur.err = err
			return nil, err
		}
		return block, nil
	}
}

// SkipSource abandons the current source; the next call to Next continues with
// the following one. It is a no-op between sources.
func (s *Session) SkipSource() error {
	if s.cur == nil {
		return nil
	}
	return s.closeCurrent()
}

// Close releases the current source and ends the session.
func (s *Session) Close() error {
	s.done = true
	return s.SkipSource()
}

// BlockCount returns the number of frames fully decoded so far, plus the
// starting index.
func (s *Session) BlockCount() uint64 {
	return s.counter
}

// CurrentSource returns the source being read, if any.
func (s *Session) CurrentSource() (Source, bool) {
	if s.cur == nil {
		return Source{}, false
	}
	return s.cur.src, true
}

func (s *Session) open(src Source) error {
	rc, err := src.Open()
	if err != nil {
		return &OpenError{FileIndex: src.Index, Name: src.Name, Err: err}
	}
	s.cur = &openSource{src: src, rc: rc, r: NewCountingReader(rc)}
	return nil
}

func (s *Session) closeCurrent() error {
	cur := s.cur
	s.cur = nil
	if err := cur.rc.Close(); err != nil {
		return fmt.Errorf("close %s: %w", cur.src.Name, err)
	}
	return nil
}

func (s *Session) readFrame() (*Block, error) {
	r := s.cur.r
	start := r.Offset()

	var magic [4]byte
	if err := r.readFull(magic[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errSourceExhausted
		}
		return nil, s.formatError(start, wrapField("magic", err))
	}
	if magic != s.magic {
		if s.zeroPaddingEOF && magic == [4]byte{} {
			return nil, errSourceExhausted
		}
		return nil, s.formatError(start, wrapField("magic",
			fmt.Errorf("%w: got %x, want %x", ErrMagicMismatch, magic, s.magic)))
	}

	var size [4]byte
	if err := r.readFull(size[:]); err != nil {
		return nil, s.formatError(r.Offset(), wrapField("size", shortRead(err)))
	}
	bodyStart := r.Offset()

	header, err := DecodeHeader(r)
	if err != nil {
		return nil, s.formatError(r.Offset(), err)
	}
	count, txs, err := DecodeBlockBody(r, s.policy)
	if err != nil {
		return nil, s.formatError(r.Offset(), err)
	}

	block := &Block{
		FileIndex:    s.cur.src.Index,
		Index:        s.counter,
		Offset:       start,
		DeclaredSize: binary.LittleEndian.Uint32(size[:]),
		Header:       header,
		TxCount:      count,
		Transactions: txs,
		ConsumedSize: r.Offset() - bodyStart,
	}
	s.counter++
	return block, nil
}

func (s *Session) formatError(offset int64, err error) error {
	field := "frame"
	var fe *fieldError
	if errors.As(err, &fe) {
		field = fe.field
		err = fe.err
	}
	return &FormatError{
		FileIndex: s.cur.src.Index,
		Offset:    offset,
		Field:     field,
		Err:       err,
	}
}
