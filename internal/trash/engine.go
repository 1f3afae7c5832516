// Package trash moves files into per-volume trash directories and back.
//
// A delete request goes through the Gate, then the Locator decides whether
// the target is already trashed: trashed entries are purged, everything else
// is encoded, given a free name and moved into its trash directory. Restore
// decodes the trashed name and moves the entry back.
//
// Every batch is processed strictly in input order with no parallelism.
package trash

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/babarot/trashcan/internal/core/atomic"
	"github.com/babarot/trashcan/internal/trash/codec"
	"github.com/babarot/trashcan/internal/trash/core"
)

// Engine orchestrates moves in and out of trash
type Engine struct {
	locator   *Locator
	gate      *Gate
	observers core.Observers
	confirmer core.Confirmer
	logger    *slog.Logger

	// overwrite lets a restore replace an existing destination
	overwrite bool

	// exclusive claims collision-free names atomically instead of probing
	exclusive bool
}

// Option configures an Engine
type Option func(*Engine)

// WithObserver registers an observer notified after every move and removal
func WithObserver(o core.Observer) Option {
	return func(e *Engine) {
		e.observers = append(e.observers, o)
	}
}

// WithConfirmer sets who is asked before irreversible operations
func WithConfirmer(c core.Confirmer) Option {
	return func(e *Engine) {
		e.confirmer = c
	}
}

// WithLogger sets the logger (slog.Default() otherwise)
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithOverwrite sets the restore overwrite policy
func WithOverwrite(overwrite bool) Option {
	return func(e *Engine) {
		e.overwrite = overwrite
	}
}

// WithExclusiveCreate toggles claiming trash names atomically. It is ignored
// where neither a non-replacing rename nor a replaceable placeholder exists.
func WithExclusiveCreate(exclusive bool) Option {
	return func(e *Engine) {
		e.exclusive = exclusive && canReplacePlaceholder
	}
}

// New creates an Engine for the given layout
func New(layout codec.Layout, opts ...Option) (*Engine, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	locator := NewLocator(layout)
	e := &Engine{
		locator:   locator,
		gate:      NewGate(locator),
		confirmer: core.NeverConfirm,
		logger:    slog.Default(),
		exclusive: canReplacePlaceholder,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.logger.Debug("trash engine initialized",
		"style", layout.Style,
		"home_root", layout.HomeRoot,
		"dir_name", layout.DirName,
		"escape", string(layout.Escape),
		"exclusive_create", e.exclusive,
		"overwrite", e.overwrite)
	return e, nil
}

// Locator returns the locator used by the engine
func (e *Engine) Locator() *Locator {
	return e.locator
}

// Delete is the entry point for a delete request: paths already inside a
// trash directory are purged (after confirmation), all others are moved to
// trash. Validation covers the whole batch before anything is touched; the
// confirmation is asked once, up front, so declining has no side effects.
func (e *Engine) Delete(raw []string) (*Result, error) {
	paths, err := e.gate.Check(core.OpDelete, raw)
	if err != nil {
		return nil, err
	}

	res := newResult(core.OpDelete)

	var purging int
	for _, p := range paths {
		if _, inside := e.locator.IsInsideTrash(p, true); inside {
			purging++
		}
	}
	if purging > 0 {
		ok, err := e.confirm(fmt.Sprintf("Permanently delete %d trashed item(s)?", purging))
		if err != nil {
			return nil, err
		}
		if !ok {
			res.Declined = true
			return res, nil
		}
	}

	for i, p := range paths {
		if _, inside := e.locator.IsInsideTrash(p, true); inside {
			e.purgeOne(res, p)
			continue
		}
		dst, err := e.trashOne(p)
		if err != nil {
			res.Failed = &Failure{Path: p, Err: err}
			res.Pending = paths[i+1:]
			break
		}
		res.Moved = append(res.Moved, Move{From: p, To: dst})
		e.observers.OnMoved(p, dst)
	}

	e.logResult(res)
	return res, nil
}

// TrashIn moves every path into the trash directory of its volume root. It
// stops at the first failure and reports what was moved; earlier moves are
// not rolled back.
func (e *Engine) TrashIn(raw []string) (*Result, error) {
	paths, err := e.gate.Check(core.OpTrash, raw)
	if err != nil {
		return nil, err
	}

	res := newResult(core.OpTrash)
	for i, p := range paths {
		dst, err := e.trashOne(p)
		if err != nil {
			res.Failed = &Failure{Path: p, Err: err}
			res.Pending = paths[i+1:]
			break
		}
		res.Moved = append(res.Moved, Move{From: p, To: dst})
		e.observers.OnMoved(p, dst)
	}

	e.logResult(res)
	return res, nil
}

// trashOne moves a single validated path into trash and returns where it went
func (e *Engine) trashOne(src string) (string, error) {
	info, err := os.Lstat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return "", core.NewIOError(core.OpTrash, src, core.ErrNotFound)
		}
		return "", core.NewIOError(core.OpTrash, src, err)
	}

	trashDir, err := e.locator.TrashDirFor(src)
	if err != nil {
		return "", core.NewIOError(core.OpTrash, src, err)
	}
	if err := os.MkdirAll(trashDir, 0700); err != nil {
		return "", core.NewIOError(core.OpTrash, trashDir, err)
	}

	candidate, err := e.locator.Place(src)
	if err != nil {
		return "", core.NewIOError(core.OpTrash, src, err)
	}

	e.logger.Debug("moving to trash", "src", src, "candidate", candidate, "is_dir", info.IsDir())
	var dst string
	if e.exclusive {
		dst, err = e.moveExclusive(src, candidate, info.IsDir())
	} else {
		dst, err = moveFirstFree(src, candidate)
	}
	if err != nil {
		return "", core.NewIOError(core.OpTrash, src, err)
	}
	return dst, nil
}

// moveExclusive claims the first free name among candidate, candidate.1, ...
// with a rename that fails instead of replacing. Where that rename is not
// available, files claim their name with an empty placeholder which the move
// then replaces. Directories cannot replace one and take the first free name.
func (e *Engine) moveExclusive(src, candidate string, dir bool) (string, error) {
	for n := 0; ; n++ {
		dst := codec.WithSuffix(candidate, n)
		err := atomic.RenameNoReplace(src, dst)
		if err == nil {
			return dst, nil
		}
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if !atomic.IsNoReplaceUnsupported(err) {
			return "", err
		}
		e.logger.Debug("rename without replace unavailable", "src", src, "dst", dst, "error", err)
		break
	}

	if dir {
		return moveFirstFree(src, candidate)
	}

	dst, err := Reserve(candidate)
	if err != nil {
		return "", err
	}
	if err := atomic.Move(src, dst, atomic.MoveOptions{AllowCrossDev: true, Force: true}); err != nil {
		if rmErr := os.Remove(dst); rmErr != nil && !os.IsNotExist(rmErr) {
			e.logger.Warn("failed to remove placeholder", "path", dst, "error", rmErr)
		}
		return "", err
	}
	return dst, nil
}

// moveFirstFree moves src to the first name that looked free when checked
func moveFirstFree(src, candidate string) (string, error) {
	dst, err := ResolveFreeName(candidate)
	if err != nil {
		return "", err
	}
	if err := atomic.Move(src, dst, atomic.MoveOptions{AllowCrossDev: true}); err != nil {
		return "", err
	}
	return dst, nil
}

func (e *Engine) confirm(prompt string) (bool, error) {
	ok, err := e.confirmer.Confirm(prompt)
	if err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	e.logger.Debug("confirmation", "prompt", prompt, "accepted", ok)
	return ok, nil
}

func (e *Engine) logResult(res *Result) {
	attrs := []any{
		"op", res.Op,
		"moved", len(res.Moved),
		"removed", len(res.Removed),
		"skipped", len(res.Skipped),
		"pending", len(res.Pending),
		"declined", res.Declined,
	}
	if res.Failed != nil {
		e.logger.Error("batch stopped", append(attrs, "path", res.Failed.Path, "error", res.Failed.Err)...)
		return
	}
	e.logger.Info("batch finished", attrs...)
}
