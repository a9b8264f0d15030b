package extendedstorage

import "path/filepath"

// NormalizePath canonicalizes a raw path string: separators collapse to the
// platform separator, dot segments resolve and any trailing separator is
// dropped. The result is stable for use as a comparison key and for joining
// child names. Pure lexical transform; input with no applicable rule passes
// through unchanged and nothing ever fails.
func NormalizePath(path string) string {
	if path == "" {
		return path
	}
	return filepath.Clean(filepath.FromSlash(path))
}
