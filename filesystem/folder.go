package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	extendedstorage "github.com/Clement-Micard/ExtendedStorage"
	"github.com/Clement-Micard/ExtendedStorage/util"
)

// Folder is an immutable snapshot of a directory node.
type Folder struct {
	item
}

// GetFolder resolves the named child as a Folder. ok is false when the child
// is absent or not a directory.
func (f *Folder) GetFolder(name string) (*Folder, bool) {
	return f.s.GetFolderFromPath(filepath.Join(f.path, name))
}

// GetFile resolves the named child as a File. ok is false when the child is
// absent or a directory.
func (f *Folder) GetFile(name string) (*File, bool) {
	return f.s.GetFileFromPath(filepath.Join(f.path, name))
}

// CreateFolder creates a child directory. Under OpenIfExists an existing
// directory comes back untouched; under FailIfExists any existing entry
// surfaces [extendedstorage.ErrExists]. A collision with a non-directory
// entry is ErrExists under either policy.
func (f *Folder) CreateFolder(name string, opt extendedstorage.CollisionOption) (*Folder, error) {
	logger := util.GetLogger("Folder.CreateFolder")
	target := filepath.Join(f.path, name)

	if existing, ok := f.s.GetFolderFromPath(target); ok {
		if opt == extendedstorage.OpenIfExists {
			return existing, nil
		}
		return nil, fmt.Errorf("create folder %s: %w", target, extendedstorage.ErrExists)
	}

	if err := f.s.backend.CreateDir(target); err != nil {
		if errors.Is(err, os.ErrExist) {
			// lost a race, or the name is held by a file
			if opt == extendedstorage.OpenIfExists {
				if existing, ok := f.s.GetFolderFromPath(target); ok {
					return existing, nil
				}
			}
			return nil, fmt.Errorf("create folder %s: %w", target, extendedstorage.ErrExists)
		}
		logger.Error().Err(err).Str("path", target).Msg("Failed to create folder")
		return nil, fmt.Errorf("create folder %s: %w", target, err)
	}

	created, ok := f.s.GetFolderFromPath(target)
	if !ok {
		return nil, fmt.Errorf("create folder %s: created but not resolvable", target)
	}
	logger.Debug().Str("path", target).Msg("Created folder")
	return created, nil
}

// CreateFile creates an empty child file, with the same collision contract as
// [Folder.CreateFolder].
func (f *Folder) CreateFile(name string, opt extendedstorage.CollisionOption) (*File, error) {
	logger := util.GetLogger("Folder.CreateFile")
	target := filepath.Join(f.path, name)

	if existing, ok := f.s.GetFileFromPath(target); ok {
		if opt == extendedstorage.OpenIfExists {
			return existing, nil
		}
		return nil, fmt.Errorf("create file %s: %w", target, extendedstorage.ErrExists)
	}

	if err := f.s.backend.CreateFile(target); err != nil {
		if errors.Is(err, os.ErrExist) {
			if opt == extendedstorage.OpenIfExists {
				if existing, ok := f.s.GetFileFromPath(target); ok {
					return existing, nil
				}
			}
			return nil, fmt.Errorf("create file %s: %w", target, extendedstorage.ErrExists)
		}
		logger.Error().Err(err).Str("path", target).Msg("Failed to create file")
		return nil, fmt.Errorf("create file %s: %w", target, err)
	}

	created, ok := f.s.GetFileFromPath(target)
	if !ok {
		return nil, fmt.Errorf("create file %s: created but not resolvable", target)
	}
	logger.Debug().Str("path", target).Msg("Created file")
	return created, nil
}

// children runs one enumeration pass and returns the raw entries in
// enumerator order. An open failure degrades to an empty listing; a
// mid-enumeration failure yields the entries read so far. Both are logged.
func (f *Folder) children() []extendedstorage.DirEntry {
	logger := util.GetLogger("Folder.children")

	enum, err := f.s.backend.Enumerate(f.path, f.s.cfg.EnumBatchSize)
	if err != nil {
		logger.Warn().Err(err).Str("path", f.path).Msg("Failed to open enumeration, treating folder as empty")
		return nil
	}
	defer enum.Close()

	var entries []extendedstorage.DirEntry
	for {
		entry, ok, err := enum.Next()
		if err != nil {
			logger.Warn().Err(err).Str("path", f.path).Msg("Enumeration aborted mid-directory")
			return entries
		}
		if !ok {
			return entries
		}
		entries = append(entries, entry)
	}
}

// GetFiles returns the folder's immediate non-directory children in
// enumerator order. Each child is independently re-resolved through the
// lookup factory; children deleted between enumeration and resolution are
// dropped from the result.
func (f *Folder) GetFiles() []*File {
	var files []*File
	for _, entry := range f.children() {
		if extendedstorage.DecodeAttributes(entry.Attributes).IsDirectory() {
			continue
		}
		file, ok := f.GetFile(entry.Name)
		if !ok {
			logger := util.GetLogger("Folder.GetFiles")
			logger.Debug().
				Str("path", f.path).Str("name", entry.Name).Msg("Child vanished during listing")
			continue
		}
		files = append(files, file)
	}
	return files
}

// GetFolders returns the folder's immediate subdirectories in enumerator
// order, with the same re-resolution contract as [Folder.GetFiles].
func (f *Folder) GetFolders() []*Folder {
	var folders []*Folder
	for _, entry := range f.children() {
		if !extendedstorage.DecodeAttributes(entry.Attributes).IsDirectory() {
			continue
		}
		folder, ok := f.GetFolder(entry.Name)
		if !ok {
			logger := util.GetLogger("Folder.GetFolders")
			logger.Debug().
				Str("path", f.path).Str("name", entry.Name).Msg("Child vanished during listing")
			continue
		}
		folders = append(folders, folder)
	}
	return folders
}

// GetItems returns all immediate children, files first and folders second,
// each partition in enumerator order.
func (f *Folder) GetItems() []extendedstorage.StorageItem {
	files := f.GetFiles()
	folders := f.GetFolders()

	items := make([]extendedstorage.StorageItem, 0, len(files)+len(folders))
	for _, file := range files {
		items = append(items, file)
	}
	for _, folder := range folders {
		items = append(items, folder)
	}
	return items
}

// Delete removes the folder and its entire subtree, depth-first, files
// before subfolders. The first fatal failure aborts the walk with the
// subtree partially removed.
func (f *Folder) Delete() error {
	for _, entry := range f.children() {
		if extendedstorage.DecodeAttributes(entry.Attributes).IsDirectory() {
			child, ok := f.GetFolder(entry.Name)
			if !ok {
				continue
			}
			if err := child.Delete(); err != nil {
				return err
			}
			continue
		}
		target := filepath.Join(f.path, entry.Name)
		if err := f.s.backend.RemoveFile(target); err != nil {
			return fmt.Errorf("delete %s: %w", target, err)
		}
	}

	if err := f.s.backend.RemoveDir(f.path); err != nil {
		return fmt.Errorf("delete %s: %w", f.path, err)
	}
	logger := util.GetLogger("Folder.Delete")
	logger.Debug().Str("path", f.path).Msg("Deleted folder")
	return nil
}
