//go:build !linux

package atomic

import "errors"

// RenameNoReplace is only available on Linux
func RenameNoReplace(src, dst string) error {
	return ErrNoReplaceUnsupported
}

// IsNoReplaceUnsupported reports whether RenameNoReplace could not be used
func IsNoReplaceUnsupported(err error) bool {
	return errors.Is(err, ErrNoReplaceUnsupported)
}
