//go:build !windows

package osfs

import (
	"os"

	extendedstorage "github.com/Clement-Micard/ExtendedStorage"
)

// Unix exposes neither a native attribute bitmask nor a portable creation
// timestamp, so the bitmask is synthesized and the modification time stands
// in for the creation time.
func nodeInfoFromOS(path string, info os.FileInfo) extendedstorage.NodeInfo {
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
	return synthAttrs(ent.Name(), info), nil
}
