//go:build windows

package osfs

import (
	"os"
	"syscall"

	extendedstorage "github.com/Clement-Micard/ExtendedStorage"
)

// Windows carries the attribute bitmask and the split creation filetime
// natively in the stat data; fall back to synthesis when the OS hands back
// something else.
func nodeInfoFromOS(path string, info os.FileInfo) extendedstorage.NodeInfo {
	if d, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return extendedstorage.NodeInfo{
			Attributes: d.FileAttributes,
			Created: extendedstorage.Filetime{
				High: d.CreationTime.HighDateTime,
				Low:  d.CreationTime.LowDateTime,
			},
		}
	}
	return extendedstorage.NodeInfo{
		Attributes: synthAttrs(info.Name(), info),
		Created:    extendedstorage.NewFiletime(info.ModTime()),
	}
}

func rawAttributes(ent os.DirEntry) (uint32, error) {
	info, err := ent.Info()
	if err != nil {
		return 0, err
	}
	if d, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return d.FileAttributes, nil
	}
	return synthAttrs(ent.Name(), info), nil
}
