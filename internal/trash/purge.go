package trash

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/babarot/trashcan/internal/trash/core"
)

// Purge permanently removes trashed paths after the confirmer agrees. A path
// that disappeared since it was selected is skipped, and so is one that
// cannot be removed; neither stops the batch.
func (e *Engine) Purge(raw []string) (*Result, error) {
	paths, err := e.gate.Check(core.OpPurge, raw)
	if err != nil {
		return nil, err
	}

	res := newResult(core.OpPurge)
	if len(paths) == 0 {
		return res, nil
	}

	ok, err := e.confirm(fmt.Sprintf("Permanently delete %d item(s)?", len(paths)))
	if err != nil {
		return nil, err
	}
	if !ok {
		res.Declined = true
		return res, nil
	}

	for _, p := range paths {
		e.purgeOne(res, p)
	}

	e.logResult(res)
	return res, nil
}

func (e *Engine) purgeOne(res *Result, p string) {
	if _, err := os.Lstat(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = core.ErrNotFound
		}
		e.logger.Warn("purge skipped", "path", p, "error", err)
		res.Skipped = append(res.Skipped, Failure{Path: p, Err: core.NewIOError(core.OpPurge, p, err)})
		return
	}

	e.logger.Debug("purging", "path", p)
	if err := os.RemoveAll(p); err != nil {
		res.Skipped = append(res.Skipped, Failure{Path: p, Err: core.NewIOError(core.OpPurge, p, err)})
		return
	}
	res.Removed = append(res.Removed, p)
	e.observers.OnRemoved(p)
}

// Empty removes every entry of a trash directory after confirmation. The
// directory itself is kept.
func (e *Engine) Empty(trashDir string) (*Result, error) {
	paths, err := e.gate.Check(core.OpEmpty, []string{trashDir})
	if err != nil {
		return nil, err
	}
	dir := paths[0]

	res := newResult(core.OpEmpty)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, nil
		}
		return nil, core.NewIOError(core.OpEmpty, dir, err)
	}
	if len(entries) == 0 {
		return res, nil
	}

	ok, err := e.confirm(fmt.Sprintf("Permanently delete all %d item(s) in %s?", len(entries), dir))
	if err != nil {
		return nil, err
	}
	if !ok {
		res.Declined = true
		return res, nil
	}

	for _, entry := range entries {
		e.purgeOne(res, filepath.Join(dir, entry.Name()))
	}

	e.logResult(res)
	return res, nil
}
