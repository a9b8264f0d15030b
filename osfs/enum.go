package osfs

import (
	"errors"
	"fmt"
	"io"
	"os"

	extendedstorage "github.com/Clement-Micard/ExtendedStorage"
)

// enumerator is a find-first/find-next style cursor over one directory,
// reading entries from the OS in batches of batchHint. The directory handle
// is released the moment the cursor exhausts or errors, independent of the
// consumer's own Close.
type enumerator struct {
	dir       *os.File
	batchHint int
	pending   []os.DirEntry
	closed    bool
}

// Enumerate opens a cursor over path's immediate children. The open failure
// (absent path, access denied) is returned as-is so callers can distinguish
// it from a genuinely empty directory.
func (b *OSBackend) Enumerate(path string, batchHint int) (extendedstorage.DirEnumerator, error) {
	if batchHint <= 0 {
		batchHint = 1
	}
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	b.reads.Inc()
	return &enumerator{dir: dir, batchHint: batchHint}, nil
}

func (e *enumerator) Next() (extendedstorage.DirEntry, bool, error) {
	for {
		if e.closed {
			return extendedstorage.DirEntry{}, false, nil
		}
		if len(e.pending) == 0 {
			batch, err := e.dir.ReadDir(e.batchHint)
			if len(batch) == 0 {
				_ = e.Close()
				if err != nil && !errors.Is(err, io.EOF) {
					return extendedstorage.DirEntry{}, false, fmt.Errorf("read directory: %w", err)
				}
				return extendedstorage.DirEntry{}, false, nil
			}
			e.pending = batch
		}

		ent := e.pending[0]
		e.pending = e.pending[1:]

		name := ent.Name()
		if name == "." || name == ".." { // self/parent pseudo entries
			continue
		}

		raw, err := rawAttributes(ent)
		if err != nil {
			// entry vanished between the batch read and its stat
			continue
		}
		return extendedstorage.DirEntry{Name: name, Attributes: raw}, true, nil
	}
}

// Close releases the directory handle. Idempotent.
func (e *enumerator) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.pending = nil
	return e.dir.Close()
}
