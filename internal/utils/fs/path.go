package fs

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// IsUnsafePath checks if the given path is unsafe to remove. It must be
// called with the path as typed, before it is made absolute, so that "."
// and ".." are still visible.
func IsUnsafePath(path string) bool {
	base := filepath.Base(path)
	if base == "." || base == ".." {
		return true
	}

	// Check root path
	if filepath.Clean(path) == string(filepath.Separator) {
		return true
	}

	// Check double slashes and similar patterns
	return strings.HasPrefix(path, "//")
}

// DirSize returns the size of path, walking it when it is a directory.
// Symbolic links are counted by their own size.
func DirSize(path string) (int64, error) {
	var size int64
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		size += info.Size()
		return nil
	})
	return size, err
}
