package osfs

import (
	"io/fs"
	"strings"

	extendedstorage "github.com/Clement-Micard/ExtendedStorage"
)

// synthAttrs builds a platform-style attribute bitmask from portable file
// info, for platforms without a native one: the directory bit from the mode,
// readonly from a missing owner-write bit, hidden from the dot-file
// convention.
func synthAttrs(name string, info fs.FileInfo) uint32 {
	var raw uint32
	if info.IsDir() {
		raw |= uint32(extendedstorage.AttrDirectory)
	}
	if info.Mode().Perm()&0o200 == 0 {
		raw |= uint32(extendedstorage.AttrReadOnly)
	}
	if strings.HasPrefix(name, ".") {
		raw |= uint32(extendedstorage.AttrHidden)
	}
	if raw == 0 {
		raw = uint32(extendedstorage.AttrNormal)
	}
	return raw
}
