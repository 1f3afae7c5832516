package trash

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/babarot/trashcan/internal/trash/codec"
	"github.com/babarot/trashcan/internal/trash/core"
	"github.com/babarot/trashcan/internal/utils/fs"
	"github.com/samber/lo"
)

// Common paths that should never be trashed or purged
var protectedPaths = []string{
	"/",
	"/home",
	"/usr",
	"/etc",
	"/var",
	"/tmp",
}

// Gate validates a whole batch before anything is touched. The first
// violation rejects the batch with a *core.ValidationError.
type Gate struct {
	locator *Locator
}

// NewGate creates a Gate using the given locator
func NewGate(locator *Locator) *Gate {
	return &Gate{locator: locator}
}

// Check validates raw (as typed) paths for op and returns their normalized
// absolute forms, duplicates removed, in input order.
func (g *Gate) Check(op core.Op, raw []string) ([]string, error) {
	paths := make([]string, 0, len(raw))
	for _, r := range raw {
		p, err := g.check(op, r)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return lo.Uniq(paths), nil
}

func (g *Gate) check(op core.Op, raw string) (string, error) {
	reject := func(path, reason string) error {
		return &core.ValidationError{Op: op, Path: path, Reason: reason}
	}

	if raw == "" {
		return "", reject(raw, "empty path")
	}
	if fs.IsUnsafePath(raw) {
		return "", reject(raw, `"." and ".." (and the filesystem root) may not be removed`)
	}

	p, err := g.locator.Normalize(raw)
	if err != nil {
		return "", reject(raw, err.Error())
	}
	if g.isProtected(p) {
		return "", reject(p, "protected path")
	}

	switch op {
	case core.OpDelete, core.OpTrash:
		if g.locator.IsTrashDir(p) {
			return "", reject(p, "it is a trash directory and cannot be moved into a trash directory; "+
				"use an unconditional recursive delete (rm -rf) or --empty instead")
		}
		if _, inside := g.locator.IsInsideTrash(p, true); inside {
			if op == core.OpDelete {
				// deleting a trashed entry purges it
				return p, nil
			}
			return "", reject(p, "already in trash; purge it instead")
		}
		if _, err := g.locator.Place(p); err != nil {
			return "", reject(p, g.placeReason(err))
		}

	case core.OpPurge:
		if g.locator.IsTrashDir(p) {
			return "", reject(p, "it is a trash directory; use --empty instead")
		}
		if _, inside := g.locator.IsInsideTrash(p, true); !inside {
			return "", reject(p, "not inside a trash directory; move it to trash first")
		}

	case core.OpRestore, core.OpEmpty:
		if op == core.OpRestore && g.locator.IsTrashDir(p) {
			return "", reject(p, "it is a trash directory")
		}
		if op == core.OpEmpty && !g.locator.IsTrashDir(p) {
			return "", reject(p, "not a trash directory")
		}
	}

	return p, nil
}

func (g *Gate) isProtected(p string) bool {
	if root, err := g.locator.VolumeRoot(p); err == nil && filepath.Clean(root) == filepath.Clean(p) {
		return true
	}
	if runtime.GOOS == "windows" {
		return filepath.Dir(p) == p
	}
	return lo.Contains(protectedPaths, filepath.ToSlash(p))
}

func (g *Gate) placeReason(err error) string {
	switch {
	case errors.Is(err, codec.ErrEscapeInPath):
		return fmt.Sprintf("name contains the reserved character %q", g.locator.Layout().Escape)
	case errors.Is(err, codec.ErrOutsideRoot):
		return "not below the volume root of any trash directory"
	case errors.Is(err, codec.ErrVolumeRoot):
		return "it is a volume root"
	}
	return err.Error()
}
