package filesystem

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	extendedstorage "github.com/Clement-Micard/ExtendedStorage"
)

// hookBackend delegates to a real backend but lets individual tests intercept
// queries and enumerations to simulate races and OS failures.
type hookBackend struct {
	extendedstorage.Backend
	queryFn func(path string) (extendedstorage.NodeInfo, error)
	enumFn  func(path string, batchHint int) (extendedstorage.DirEnumerator, error)
}

func (h *hookBackend) Query(path string) (extendedstorage.NodeInfo, error) {
	if h.queryFn != nil {
		return h.queryFn(path)
	}
	return h.Backend.Query(path)
}

func (h *hookBackend) Enumerate(path string, batchHint int) (extendedstorage.DirEnumerator, error) {
	if h.enumFn != nil {
		return h.enumFn(path, batchHint)
	}
	return h.Backend.Enumerate(path, batchHint)
}

// sliceEnumerator serves a fixed entry list.
type sliceEnumerator struct {
	entries []extendedstorage.DirEntry
	idx     int
	closed  bool
}

func (e *sliceEnumerator) Next() (extendedstorage.DirEntry, bool, error) {
	if e.closed || e.idx >= len(e.entries) {
		return extendedstorage.DirEntry{}, false, nil
	}
	entry := e.entries[e.idx]
	e.idx++
	return entry, true, nil
}

func (e *sliceEnumerator) Close() error {
	e.closed = true
	return nil
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	return New(nil)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func mustGetFolder(t *testing.T, s *Storage, path string) *Folder {
	t.Helper()
	folder, ok := s.GetFolderFromPath(path)
	require.True(t, ok, "folder %s must resolve", path)
	return folder
}
