package trash

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/babarot/trashcan/internal/core/atomic"
	"github.com/babarot/trashcan/internal/trash/core"
)

type restoreTarget struct {
	src string
	dst string
}

// RestoreOut moves every trashed path back to the location its name decodes
// to, recreating missing parent directories. All names are decoded before
// anything moves, so an unrecognized prefix aborts the batch untouched.
//
// A destination that already exists is skipped with a *core.RestoreConflict
// unless the engine was built WithOverwrite(true). Other I/O failures stop
// the batch.
func (e *Engine) RestoreOut(raw []string) (*Result, error) {
	paths, err := e.gate.Check(core.OpRestore, raw)
	if err != nil {
		return nil, err
	}

	targets := make([]restoreTarget, 0, len(paths))
	for _, p := range paths {
		dst, err := e.locator.Decode(p)
		if err != nil {
			return nil, &core.DecodeError{Path: p, Err: err}
		}
		targets = append(targets, restoreTarget{src: p, dst: dst})
	}

	res := newResult(core.OpRestore)
	for i, t := range targets {
		err := e.restoreOne(t.src, t.dst)
		var conflict *core.RestoreConflict
		switch {
		case err == nil:
			res.Moved = append(res.Moved, Move{From: t.src, To: t.dst})
			e.observers.OnMoved(t.src, t.dst)
			continue
		case errors.As(err, &conflict), core.IsNotFound(err):
			e.logger.Warn("restore skipped", "path", t.src, "error", err)
			res.Skipped = append(res.Skipped, Failure{Path: t.src, Err: err})
			continue
		}
		res.Failed = &Failure{Path: t.src, Err: err}
		res.Pending = paths[i+1:]
		break
	}

	e.logResult(res)
	return res, nil
}

func (e *Engine) restoreOne(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.NewIOError(core.OpRestore, src, core.ErrNotFound)
		}
		return core.NewIOError(core.OpRestore, src, err)
	}

	if _, err := os.Lstat(dst); err == nil {
		if !e.overwrite {
			return &core.RestoreConflict{Path: src, Destination: dst}
		}
		e.logger.Debug("overwriting restore destination", "dst", dst)
		if err := os.RemoveAll(dst); err != nil {
			return core.NewIOError(core.OpRestore, dst, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return core.NewIOError(core.OpRestore, dst, err)
	}

	// the parent may itself have been trashed and never restored
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return core.NewIOError(core.OpRestore, filepath.Dir(dst), err)
	}

	e.logger.Debug("restoring", "src", src, "dst", dst, "is_dir", info.IsDir())
	if info.IsDir() {
		return e.restoreDir(src, dst, info.Mode().Perm())
	}
	if err := atomic.Move(src, dst, atomic.MoveOptions{AllowCrossDev: true}); err != nil {
		return core.NewIOError(core.OpRestore, src, err)
	}
	return nil
}

// restoreDir recreates dst and moves the immediate children of src into it
// one by one, then removes the emptied src.
func (e *Engine) restoreDir(src, dst string, perm fs.FileMode) error {
	if err := os.Mkdir(dst, perm); err != nil {
		return core.NewIOError(core.OpRestore, dst, err)
	}

	children, err := os.ReadDir(src)
	if err != nil {
		return core.NewIOError(core.OpRestore, src, err)
	}
	for _, child := range children {
		from := filepath.Join(src, child.Name())
		to := filepath.Join(dst, child.Name())
		if err := atomic.Move(from, to, atomic.MoveOptions{AllowCrossDev: true}); err != nil {
			return core.NewIOError(core.OpRestore, from, err)
		}
	}

	if err := os.Remove(src); err != nil {
		return core.NewIOError(core.OpRestore, src, fmt.Errorf("children restored but the directory could not be removed: %w", err))
	}
	return nil
}

// Locate returns the trashed entry an original path was placed at. Only the
// unsuffixed name is considered; older generations are found with List.
func (e *Engine) Locate(original string) (core.Entry, error) {
	p, err := e.locator.Normalize(original)
	if err != nil {
		return core.Entry{}, err
	}
	trashPath, err := e.locator.Place(p)
	if err != nil {
		return core.Entry{}, err
	}
	info, err := os.Lstat(trashPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.Entry{}, fmt.Errorf("%s: %w", original, core.ErrNotFound)
		}
		return core.Entry{}, err
	}
	trashDir, err := e.locator.TrashDirFor(p)
	if err != nil {
		return core.Entry{}, err
	}
	return e.newEntry(trashDir, trashPath, info)
}
