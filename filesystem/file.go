package filesystem

import (
	"fmt"
	"path/filepath"

	extendedstorage "github.com/Clement-Micard/ExtendedStorage"
	"github.com/Clement-Micard/ExtendedStorage/util"
)

// File is an immutable snapshot of a regular file node.
type File struct {
	item
}

// CopyTo copies the file into dest as newName, or the file's own name when
// empty. An existing destination resolves per opt: OpenIfExists returns its
// snapshot untouched, FailIfExists surfaces [extendedstorage.ErrExists].
func (f *File) CopyTo(dest *Folder, newName string, opt extendedstorage.CollisionOption) (*File, error) {
	name := newName
	if name == "" {
		name = f.name
	}
	dstPath := filepath.Join(dest.Path(), name)

	if existing, ok := dest.GetFile(name); ok {
		if opt == extendedstorage.OpenIfExists {
			return existing, nil
		}
		return nil, fmt.Errorf("copy file %s: %w", dstPath, extendedstorage.ErrExists)
	}

	if err := f.s.backend.CopyFile(f.path, dstPath, false); err != nil {
		return nil, fmt.Errorf("copy file %s: %w", f.path, err)
	}
	if err := f.s.backend.CopyPermissions(f.path, dstPath); err != nil {
		// best effort only
		logger := util.GetLogger("File.CopyTo")
		logger.Warn().Err(err).
			Str("src", f.path).Str("dst", dstPath).Msg("Failed to propagate permissions")
	}

	copied, ok := dest.GetFile(name)
	if !ok {
		return nil, fmt.Errorf("copy file %s: copied but not resolvable", dstPath)
	}
	return copied, nil
}

// MoveTo copies the file into dest and deletes the source. The source is
// only deleted once the copy succeeded.
func (f *File) MoveTo(dest *Folder, newName string) (*File, error) {
	moved, err := f.CopyTo(dest, newName, extendedstorage.FailIfExists)
	if err != nil {
		return nil, err
	}
	if err := f.s.backend.RemoveFile(f.path); err != nil {
		return nil, fmt.Errorf("move file %s: %w", f.path, err)
	}
	return moved, nil
}

// Delete removes the file.
func (f *File) Delete() error {
	if err := f.s.backend.RemoveFile(f.path); err != nil {
		return fmt.Errorf("delete %s: %w", f.path, err)
	}
	return nil
}
