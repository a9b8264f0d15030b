package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	extendedstorage "github.com/Clement-Micard/ExtendedStorage"
)

func TestFolder_GetFolder_GetFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	s := newTestStorage(t)
	folder := mustGetFolder(t, s, dir)

	sub, ok := folder.GetFolder("sub")
	require.True(t, ok)
	assert.Equal(t, "sub", sub.Name())

	file, ok := folder.GetFile("a.txt")
	require.True(t, ok)
	assert.Equal(t, "a.txt", file.Name())

	// wrong-kind lookups are absent, not errors
	_, ok = folder.GetFolder("a.txt")
	assert.False(t, ok)
	_, ok = folder.GetFile("sub")
	assert.False(t, ok)
	_, ok = folder.GetFile("missing.txt")
	assert.False(t, ok)
}

func TestFolder_CreateFolder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := newTestStorage(t)
	folder := mustGetFolder(t, s, dir)

	created, err := folder.CreateFolder("child", extendedstorage.FailIfExists)
	require.NoError(t, err)
	assert.Equal(t, "child", created.Name())
	assert.True(t, created.Attributes().IsDirectory())

	info, err := os.Stat(filepath.Join(dir, "child"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFolder_CreateFolder_FailIfExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := newTestStorage(t)
	folder := mustGetFolder(t, s, dir)

	existing, err := folder.CreateFolder("child", extendedstorage.FailIfExists)
	require.NoError(t, err)
	writeFile(t, filepath.Join(existing.Path(), "keep.txt"), "keep")

	_, err = folder.CreateFolder("child", extendedstorage.FailIfExists)
	require.Error(t, err)
	assert.True(t, errors.Is(err, extendedstorage.ErrExists))

	// pre-existing contents untouched
	assert.Equal(t, "keep", readFile(t, filepath.Join(existing.Path(), "keep.txt")))
}

func TestFolder_CreateFolder_OpenIfExists_Idempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := newTestStorage(t)
	folder := mustGetFolder(t, s, dir)

	first, err := folder.CreateFolder("child", extendedstorage.OpenIfExists)
	require.NoError(t, err)
	writeFile(t, filepath.Join(first.Path(), "keep.txt"), "keep")

	second, err := folder.CreateFolder("child", extendedstorage.OpenIfExists)
	require.NoError(t, err)

	assert.Equal(t, first.Path(), second.Path())
	assert.Equal(t, first.Name(), second.Name())
	assert.Equal(t, first.Attributes(), second.Attributes())
	assert.Equal(t, "keep", readFile(t, filepath.Join(second.Path(), "keep.txt")), "existing contents must not be altered")
}

func TestFolder_CreateFolder_NameHeldByFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "taken"), "a file")
	s := newTestStorage(t)
	folder := mustGetFolder(t, s, dir)

	// a non-directory collision is ErrExists under either policy
	_, err := folder.CreateFolder("taken", extendedstorage.OpenIfExists)
	assert.True(t, errors.Is(err, extendedstorage.ErrExists))
	_, err = folder.CreateFolder("taken", extendedstorage.FailIfExists)
	assert.True(t, errors.Is(err, extendedstorage.ErrExists))
}

func TestFolder_CreateFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := newTestStorage(t)
	folder := mustGetFolder(t, s, dir)

	created, err := folder.CreateFile("new.txt", extendedstorage.FailIfExists)
	require.NoError(t, err)
	assert.Equal(t, "new.txt", created.Name())
	assert.False(t, created.Attributes().IsDirectory())

	_, err = folder.CreateFile("new.txt", extendedstorage.FailIfExists)
	assert.True(t, errors.Is(err, extendedstorage.ErrExists))

	again, err := folder.CreateFile("new.txt", extendedstorage.OpenIfExists)
	require.NoError(t, err)
	assert.Equal(t, created.Path(), again.Path())
}

func TestFolder_GetItems_Partition(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.txt"), "1")
	writeFile(t, filepath.Join(dir, "two.txt"), "2")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "alpha"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "beta"), 0o755))
	s := newTestStorage(t)
	folder := mustGetFolder(t, s, dir)

	items := folder.GetItems()
	require.Len(t, items, 4)

	names := map[string]bool{}
	sawFolder := false
	for _, it := range items {
		names[it.Name()] = true
		if it.Attributes().IsDirectory() {
			sawFolder = true
		} else {
			// files must all precede folders
			assert.False(t, sawFolder, "file %s listed after a folder", it.Name())
		}
	}
	assert.Equal(t, map[string]bool{"one.txt": true, "two.txt": true, "alpha": true, "beta": true}, names)
}

func TestFolder_GetFiles_GetFolders_Empty(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	folder := mustGetFolder(t, s, t.TempDir())

	assert.Empty(t, folder.GetFiles())
	assert.Empty(t, folder.GetFolders())
	assert.Empty(t, folder.GetItems())
}

func TestFolder_GetItems_EnumOpenFailureIsEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	base := New(nil)
	s := NewWithBackend(nil, &hookBackend{
		Backend: base.backend,
		enumFn: func(string, int) (extendedstorage.DirEnumerator, error) {
			return nil, os.ErrPermission
		},
	})
	folder := mustGetFolder(t, s, dir)

	// open failure degrades to an empty listing, never a crash
	assert.Empty(t, folder.GetItems())
}

func TestFolder_GetFiles_DropsVanishedChildren(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "real.txt"), "here")
	base := New(nil)

	hb := &hookBackend{Backend: base.backend}
	hb.enumFn = func(path string, batchHint int) (extendedstorage.DirEnumerator, error) {
		return &sliceEnumerator{entries: []extendedstorage.DirEntry{
			{Name: "real.txt", Attributes: uint32(extendedstorage.AttrNormal)},
			{Name: "ghost.txt", Attributes: uint32(extendedstorage.AttrNormal)},
		}}, nil
	}
	s := NewWithBackend(nil, hb)
	folder := mustGetFolder(t, s, dir)

	// ghost.txt was enumerated but deleted before re-resolution
	files := folder.GetFiles()
	require.Len(t, files, 1)
	assert.Equal(t, "real.txt", files[0].Name())
}

func TestFolder_Delete_Subtree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	root := filepath.Join(dir, "A")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "B"), 0o755))
	writeFile(t, filepath.Join(root, "x.txt"), "x")
	writeFile(t, filepath.Join(root, "B", "y.txt"), "y")
	s := newTestStorage(t)
	folder := mustGetFolder(t, s, root)

	require.NoError(t, folder.Delete())

	_, err := os.Stat(root)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// snapshot is now stale; lookups against its path report absence
	_, ok := s.GetFolderFromPath(root)
	assert.False(t, ok)
}
