package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	extendedstorage "github.com/Clement-Micard/ExtendedStorage"
	"github.com/Clement-Micard/ExtendedStorage/util"
)

// CopyTo recursively duplicates the folder's entire subtree under a newly
// created folder named name inside dest, returning the created destination
// root. Existing destination files stay in place unless OverwriteOnCopy is
// set; permission bits are propagated best-effort. A failed byte copy or
// destination create aborts the walk with the destination partially
// populated; there is no rollback.
func (f *Folder) CopyTo(dest *Folder, name string) (*Folder, error) {
	logger := util.GetLogger("Folder.CopyTo").With().Str("op", uuid.NewString()).Logger()
	return f.copyTree(logger, dest, name)
}

func (f *Folder) copyTree(logger util.Logger, dest *Folder, name string) (*Folder, error) {
	created, err := dest.CreateFolder(name, f.s.cfg.Collision)
	if err != nil {
		return nil, fmt.Errorf("copy %s: %w", f.path, err)
	}
	logger.Debug().Str("src", f.path).Str("dst", created.Path()).Msg("Copying folder")

	for _, entry := range f.children() {
		if extendedstorage.DecodeAttributes(entry.Attributes).IsDirectory() {
			child, ok := f.GetFolder(entry.Name)
			if !ok {
				logger.Warn().Str("src", f.path).Str("name", entry.Name).Msg("Subfolder vanished during copy, skipping")
				continue
			}
			// the already-created destination becomes the target, so the
			// subtree shape carries over one level down
			if _, err := child.copyTree(logger, created, child.Name()); err != nil {
				return nil, err
			}
			continue
		}

		if err := f.copyEntry(logger, entry.Name, created); err != nil {
			return nil, err
		}
	}

	return created, nil
}

// copyEntry copies a single child file into dst and propagates its
// permission bits. An existing destination under the no-overwrite policy is
// skipped, not failed.
func (f *Folder) copyEntry(logger util.Logger, name string, dst *Folder) error {
	srcPath := filepath.Join(f.path, name)
	dstPath := filepath.Join(dst.Path(), name)

	if err := f.s.backend.CopyFile(srcPath, dstPath, f.s.cfg.OverwriteOnCopy); err != nil {
		if errors.Is(err, os.ErrExist) {
			logger.Debug().Str("dst", dstPath).Msg("Destination file exists, not overwriting")
			return nil
		}
		return fmt.Errorf("copy %s: %w", srcPath, err)
	}

	if err := f.s.backend.CopyPermissions(srcPath, dstPath); err != nil {
		// best effort only
		logger.Warn().Err(err).Str("src", srcPath).Str("dst", dstPath).Msg("Failed to propagate permissions")
	}
	return nil
}

// MoveTo moves the folder's subtree into dest under newName, or the folder's
// own name when newName is empty. Each file is deleted from the source in the
// same pass as its copy; emptied source directories are left behind, so after
// a successful move the source skeleton still exists. Callers that want it
// gone use [Folder.Delete] afterwards.
func (f *Folder) MoveTo(dest *Folder, newName string) (*Folder, error) {
	logger := util.GetLogger("Folder.MoveTo").With().Str("op", uuid.NewString()).Logger()
	return f.moveTree(logger, dest, newName)
}

func (f *Folder) moveTree(logger util.Logger, dest *Folder, newName string) (*Folder, error) {
	name := newName
	if name == "" {
		name = f.name
	}
	created, err := dest.CreateFolder(name, f.s.cfg.Collision)
	if err != nil {
		return nil, fmt.Errorf("move %s: %w", f.path, err)
	}
	logger.Debug().Str("src", f.path).Str("dst", created.Path()).Msg("Moving folder")

	for _, entry := range f.children() {
		if extendedstorage.DecodeAttributes(entry.Attributes).IsDirectory() {
			child, ok := f.GetFolder(entry.Name)
			if !ok {
				logger.Warn().Str("src", f.path).Str("name", entry.Name).Msg("Subfolder vanished during move, skipping")
				continue
			}
			// unlike copyTree, recursion targets the created folder with no
			// explicit name; the child re-creates its own name inside it
			if _, err := child.moveTree(logger, created, ""); err != nil {
				return nil, err
			}
			continue
		}

		srcPath := filepath.Join(f.path, entry.Name)
		dstPath := filepath.Join(created.Path(), entry.Name)

		if err := f.s.backend.CopyFile(srcPath, dstPath, f.s.cfg.OverwriteOnCopy); err != nil {
			if errors.Is(err, os.ErrExist) {
				// destination holds a file of this name already; keep the
				// source rather than deleting what was never copied
				logger.Warn().Str("src", srcPath).Str("dst", dstPath).Msg("Destination file exists, source retained")
				continue
			}
			return nil, fmt.Errorf("move %s: %w", srcPath, err)
		}
		if err := f.s.backend.CopyPermissions(srcPath, dstPath); err != nil {
			logger.Warn().Err(err).Str("src", srcPath).Str("dst", dstPath).Msg("Failed to propagate permissions")
		}
		if err := f.s.backend.RemoveFile(srcPath); err != nil {
			return nil, fmt.Errorf("move %s: %w", srcPath, err)
		}
	}

	return created, nil
}
