package blkfile

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedField means the source ended inside a mandatory field.
	ErrTruncatedField = errors.New("truncated field")
	// ErrMagicMismatch means a frame did not start with the network magic.
	ErrMagicMismatch = errors.New("magic mismatch")
	// ErrUnsupportedVersion means a transaction version was rejected by the VersionPolicy.
	ErrUnsupportedVersion = errors.New("unsupported transaction version")
	// ErrSegwitFlag means a zero input count was followed by a flag other than 1.
	ErrSegwitFlag = errors.New("invalid segwit flag")
)

// FormatError locates a decoding failure inside the block files.
type FormatError struct {
	FileIndex int
	Offset    int64
	Field     string
	Err       error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("blk%05d.dat offset %d: %s: %v", e.FileIndex, e.Offset, e.Field, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// OpenError reports a block file that could not be opened.
type OpenError struct {
	FileIndex int
	Name      string
	Err       error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Name, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// fieldError tags err with the path of the field being read. Short reads become
// ErrTruncatedField.
type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string {
	return e.field + ": " + e.err.Error()
}

func (e *fieldError) Unwrap() error {
	return e.err
}

func wrapField(field string, err error) error {
	if err == nil {
		return nil
	}
	var fe *fieldError
	if errors.As(err, &fe) {
		return &fieldError{field: field + " " + fe.field, err: fe.err}
	}
	if isShortRead(err) {
		err = fmt.Errorf("%w: %v", ErrTruncatedField, err)
	}
	return &fieldError{field: field, err: err}
}
