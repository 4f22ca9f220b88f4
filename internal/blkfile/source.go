package blkfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Source is one block file, opened lazily.
type Source struct {
	Index int
	Name  string
	Open  func() (io.ReadCloser, error)
}

// FileName returns the conventional name of block file i.
func FileName(i int) string {
	return fmt.Sprintf("blk%05d.dat", i)
}

// DirSources lists consecutive block files in dir starting at first and stopping
// at the first missing file. limit <= 0 means no limit. Every source is
// de-obfuscated with key.
func DirSources(dir string, first, limit int, key []byte) ([]Source, error) {
	if first < 0 {
		return nil, fmt.Errorf("negative first file index %d", first)
	}

	var sources []Source
	for i := first; limit <= 0 || len(sources) < limit; i++ {
		path := filepath.Join(dir, FileName(i))
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory", path)
		}
		sources = append(sources, fileSource(i, path, key))
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no %s in %s", FileName(first), dir)
	}
	return sources, nil
}

func fileSource(index int, path string, key []byte) Source {
	return Source{
		Index: index,
		Name:  filepath.Base(path),
		Open: func() (io.ReadCloser, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			return readCloser{Reader: NewXORReader(f, key), Closer: f}, nil
		},
	}
}

// MemorySources wraps in-memory files, indexed from 0.
func MemorySources(files ...[]byte) []Source {
	sources := make([]Source, 0, len(files))
	for i, data := range files {
		data := data
		sources = append(sources, Source{
			Index: i,
			Name:  FileName(i),
			Open: func() (io.ReadCloser, error) {
				return io.NopCloser(bytes.NewReader(data)), nil
			},
		})
	}
	return sources
}

type readCloser struct {
	io.Reader
	io.Closer
}
