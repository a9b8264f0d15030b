// Package osfs implements the storage backend against the local OS
// filesystem. Platform-specific attribute and creation-time extraction lives
// in build-tagged files; everything else is portable.
package osfs

import (
	"fmt"
	"io"
	"os"

	"github.com/puzpuzpuz/xsync/v3"

	extendedstorage "github.com/Clement-Micard/ExtendedStorage"
)

// OSBackend is the local-filesystem implementation of
// [extendedstorage.Backend]. It holds no per-path state; the striped I/O
// counters are the only mutable fields, so one instance may be shared across
// goroutines.
type OSBackend struct {
	reads  *xsync.Counter
	writes *xsync.Counter
}

var _ extendedstorage.Backend = (*OSBackend)(nil)
var _ extendedstorage.StatsReporter = (*OSBackend)(nil)

func New() *OSBackend {
	return &OSBackend{
		reads:  xsync.NewCounter(),
		writes: xsync.NewCounter(),
	}
}

// DiskReads returns the cumulative count of disk read operations.
func (b *OSBackend) DiskReads() int64 { return b.reads.Value() }

// DiskWrites returns the cumulative count of disk write operations.
func (b *OSBackend) DiskWrites() int64 { return b.writes.Value() }

// Query resolves a path to its attribute bitmask and raw creation time.
// Absence surfaces as the os.Stat error, matching os.ErrNotExist.
func (b *OSBackend) Query(path string) (extendedstorage.NodeInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return extendedstorage.NodeInfo{}, err
	}
	b.reads.Inc()
	return nodeInfoFromOS(path, info), nil
}

// CopyFile duplicates byte content from src to dst. With overwrite false an
// existing destination fails the copy with an os.ErrExist-matching error.
func (b *OSBackend) CopyFile(src, dst string, overwrite bool) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()
	b.reads.Inc()

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	out, err := os.OpenFile(dst, flags, 0o644)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy bytes: %w", err)
	}
	b.writes.Inc()

	return out.Sync()
}

// CopyPermissions applies src's permission bits to dst.
func (b *OSBackend) CopyPermissions(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	b.reads.Inc()

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	b.writes.Inc()
	return nil
}

// CreateDir creates a single directory entry; the parent must already exist.
func (b *OSBackend) CreateDir(path string) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		return err
	}
	b.writes.Inc()
	return nil
}

// CreateFile creates a new empty file, failing if the path is taken.
func (b *OSBackend) CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	b.writes.Inc()
	return f.Close()
}

func (b *OSBackend) RemoveFile(path string) error {
	if err := os.Remove(path); err != nil {
		return err
	}
	b.writes.Inc()
	return nil
}

// RemoveDir removes an empty directory.
func (b *OSBackend) RemoveDir(path string) error {
	if err := os.Remove(path); err != nil {
		return err
	}
	b.writes.Inc()
	return nil
}
