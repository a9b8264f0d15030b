// Package filesystem implements the folder and file entity model and the
// recursive tree operations on top of a storage backend.
package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	extendedstorage "github.com/Clement-Micard/ExtendedStorage"
	"github.com/Clement-Micard/ExtendedStorage/config"
	"github.com/Clement-Micard/ExtendedStorage/osfs"
	"github.com/Clement-Micard/ExtendedStorage/util"
)

// Storage ties the entity model to a backend and runtime configuration. It
// holds no filesystem state of its own: every operation re-resolves paths at
// call time, so entities handed out earlier can go stale and later calls
// against them surface absence rather than crashing.
type Storage struct {
	cfg     *config.Config
	backend extendedstorage.Backend
}

// New creates a Storage over the local OS filesystem.
// A nil cfg uses the defaults.
func New(cfg *config.Config) *Storage {
	return NewWithBackend(cfg, osfs.New())
}

// NewWithBackend creates a Storage over a custom backend.
func NewWithBackend(cfg *config.Config, backend extendedstorage.Backend) *Storage {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return &Storage{cfg: cfg, backend: backend}
}

// Stats returns the cumulative disk read/write counts when the backend
// tracks them; ok is false otherwise.
func (s *Storage) Stats() (reads, writes int64, ok bool) {
	r, tracks := s.backend.(extendedstorage.StatsReporter)
	if !tracks {
		return 0, 0, false
	}
	return r.DiskReads(), r.DiskWrites(), true
}

// GetFolderFromPath resolves path to a Folder snapshot. ok is false when the
// path does not exist or is not a directory; absence is an expected outcome,
// never an error. OS failures other than absence are logged and also reported
// as absent.
func (s *Storage) GetFolderFromPath(path string) (*Folder, bool) {
	item, ok := s.queryItem(path)
	if !ok || !item.attrs.IsDirectory() {
		return nil, false
	}
	return &Folder{item: item}, true
}

// GetFileFromPath resolves path to a File snapshot. ok is false when the path
// does not exist or is a directory.
func (s *Storage) GetFileFromPath(path string) (*File, bool) {
	item, ok := s.queryItem(path)
	if !ok || item.attrs.IsDirectory() {
		return nil, false
	}
	return &File{item: item}, true
}

// queryItem performs the attribute query behind every lookup factory and
// builds the snapshot.
func (s *Storage) queryItem(path string) (item, bool) {
	path = extendedstorage.NormalizePath(path)
	info, err := s.backend.Query(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger := util.GetLogger("Storage.queryItem")
			logger.Warn().Err(err).Str("path", path).Msg("Attribute query failed")
		}
		return item{}, false
	}

	created := info.Created.Time()
	if info.Created.IsZero() {
		// the lookup must still produce a snapshot; fall back to now but
		// surface the missing time query instead of inventing it silently
		logger := util.GetLogger("Storage.queryItem")
		logger.Warn().Str("path", path).Msg("No creation time from backend, defaulting to now")
		created = time.Now()
	}

	return item{
		s:       s,
		name:    filepath.Base(path),
		path:    path,
		attrs:   extendedstorage.DecodeAttributes(info.Attributes),
		created: created,
	}, true
}
