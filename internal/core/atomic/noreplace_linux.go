package atomic

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// RenameNoReplace renames src to dst unless dst already exists, in one
// syscall. An occupied dst yields an error matching fs.ErrExist.
func RenameNoReplace(src, dst string) error {
	err := unix.Renameat2(unix.AT_FDCWD, src, unix.AT_FDCWD, dst, unix.RENAME_NOREPLACE)
	if err != nil {
		return &os.LinkError{Op: "renameat2", Old: src, New: dst, Err: err}
	}
	return nil
}

// IsNoReplaceUnsupported reports whether RenameNoReplace could not be used
// for this pair of paths: the kernel or filesystem lacks the flag, or the
// paths are on different devices.
func IsNoReplaceUnsupported(err error) bool {
	switch {
	case errors.Is(err, ErrNoReplaceUnsupported),
		errors.Is(err, unix.EXDEV),
		errors.Is(err, unix.EINVAL),
		errors.Is(err, unix.ENOSYS):
		return true
	}
	return false
}
