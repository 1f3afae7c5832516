package atomic

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	cp "github.com/otiai10/copy"
)

// MoveOptions specifies options for move operations
type MoveOptions struct {
	AllowCrossDev bool // Allow cross-device moves
	Force         bool // Replace the destination if it exists
}

// Move moves src to dst. A rename is tried first; across devices the source
// is copied to a staging name next to dst, renamed into place and only then
// removed, so an interrupted move never leaves a half-written dst.
func Move(src, dst string, opts MoveOptions) error {
	// 1. Validate paths
	if err := validatePaths(src, dst); err != nil {
		return err
	}

	// 2. Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return NewMoveError("create_parent", src, dst, err)
	}

	// 3. Check destination existence if not force mode
	if !opts.Force {
		if _, err := os.Lstat(dst); err == nil {
			return NewMoveError("check_destination", src, dst, ErrDestinationExists)
		}
	}

	// 4. Same device: a plain rename
	sameDevice, err := isSamePartition(src, dst)
	if err != nil {
		slog.Debug("failed to compare partitions", "src", src, "dst", dst, "error", err)
	}
	if sameDevice {
		err := os.Rename(src, dst)
		if err == nil {
			return nil
		}
		if !opts.AllowCrossDev {
			return NewMoveError("rename", src, dst, err)
		}
		slog.Debug("rename failed, falling back to copy", "src", src, "dst", dst, "error", err)
	} else {
		if !opts.AllowCrossDev {
			return NewMoveError("rename", src, dst, ErrCrossDeviceMove)
		}
		logCrossDevice(src, dst)
	}

	// 5. Fall back to copy and delete
	return copyAndDelete(src, dst)
}

// copyAndDelete copies a file or directory to a staging name, renames it to
// dst and then deletes the original
func copyAndDelete(src, dst string) error {
	stage := stagingPath(dst)

	opts := cp.Options{
		OnSymlink: func(string) cp.SymlinkAction {
			return cp.Shallow // keep links as links
		},
		PreserveTimes: true,
		PreserveOwner: os.Geteuid() == 0,
		Sync:          true,
	}

	if err := cp.Copy(src, stage, opts); err != nil {
		if rmErr := os.RemoveAll(stage); rmErr != nil {
			err = errors.Join(err, NewCleanupError(stage, rmErr))
		}
		return NewMoveError("copy", src, dst, err)
	}

	if err := os.Rename(stage, dst); err != nil {
		if rmErr := os.RemoveAll(stage); rmErr != nil {
			err = errors.Join(err, NewCleanupError(stage, rmErr))
		}
		return NewMoveError("commit", src, dst, err)
	}

	// dst is complete from here on. If the source cannot be removed the data
	// exists twice, which is reported but never resolved by deleting dst.
	if err := os.RemoveAll(src); err != nil {
		return NewMoveError("remove_source", src, dst,
			fmt.Errorf("copied to destination but the source could not be removed: %w", err))
	}

	return nil
}

// stagingPath returns a hidden sibling of dst used while copying
func stagingPath(dst string) string {
	return filepath.Join(
		filepath.Dir(dst),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(dst), uuid.NewString()),
	)
}

// IsStagingName reports whether name is a staging copy that an interrupted
// cross-device move left next to its destination
func IsStagingName(name string) bool {
	rest, ok := strings.CutPrefix(name, ".")
	if !ok {
		return false
	}
	rest, ok = strings.CutSuffix(rest, ".tmp")
	if !ok {
		return false
	}
	i := strings.LastIndexByte(rest, '.')
	if i <= 0 {
		return false
	}
	_, err := uuid.Parse(rest[i+1:])
	return err == nil
}

// validatePaths performs basic path validation
func validatePaths(src, dst string) error {
	if src == "" || dst == "" {
		return ErrInvalidPath
	}

	if _, err := os.Lstat(src); err != nil {
		if os.IsNotExist(err) {
			return NewMoveError("validate", src, dst, ErrSourceNotFound)
		}
		return NewMoveError("validate", src, dst, err)
	}

	if filepath.Clean(src) == filepath.Clean(dst) {
		return NewMoveError("validate", src, dst, ErrInvalidPath)
	}

	return nil
}

func logCrossDevice(src, dst string) {
	srcMount, _ := MountPoint(src)
	dstMount, _ := MountPoint(filepath.Dir(dst))
	slog.Debug("different partitions detected, falling back to copy-and-delete operation",
		"src", src, "src_mount", srcMount.Mountpoint,
		"dst", dst, "dst_mount", dstMount.Mountpoint)
}
