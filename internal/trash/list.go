package trash

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/babarot/trashcan/internal/core/atomic"
	"github.com/babarot/trashcan/internal/trash/codec"
	"github.com/babarot/trashcan/internal/trash/core"
	fsutil "github.com/babarot/trashcan/internal/utils/fs"
	"golang.org/x/sync/errgroup"
)

// maxSizeWorkers bounds concurrent directory walks in List
const maxSizeWorkers = 8

// List decodes the entries of the given trash directories, newest first.
// Names that do not decode and staging copies of unfinished moves are
// skipped. Missing trash directories are empty.
func (e *Engine) List(trashDirs ...string) ([]core.Entry, error) {
	var entries []core.Entry
	for _, dir := range trashDirs {
		dirEntries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				e.logger.Debug("trash directory does not exist", "dir", dir)
				continue
			}
			return nil, core.NewIOError("list", dir, err)
		}
		for _, de := range dirEntries {
			trashPath := filepath.Join(dir, de.Name())
			if atomic.IsStagingName(de.Name()) {
				e.logger.Debug("skipping staging copy of an unfinished move", "path", trashPath)
				continue
			}
			info, err := de.Info()
			if err != nil {
				e.logger.Debug("skipping entry", "path", trashPath, "error", err)
				continue
			}
			entry, err := e.newEntry(dir, trashPath, info)
			if err != nil {
				e.logger.Debug("skipping undecodable entry", "path", trashPath, "error", err)
				continue
			}
			entries = append(entries, entry)
		}
	}

	// directory sizes are read-only walks and can run concurrently
	var eg errgroup.Group
	eg.SetLimit(maxSizeWorkers)
	for i := range entries {
		if !entries[i].IsDir {
			continue
		}
		eg.Go(func() error {
			size, err := fsutil.DirSize(entries[i].TrashPath)
			if err != nil {
				e.logger.Debug("failed to compute size", "path", entries[i].TrashPath, "error", err)
				size = -1
			}
			entries[i].Size = size
			return nil
		})
	}
	_ = eg.Wait()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DeletedAt.After(entries[j].DeletedAt)
	})
	return entries, nil
}

func (e *Engine) newEntry(trashDir, trashPath string, info fs.FileInfo) (core.Entry, error) {
	original, err := e.locator.Decode(trashPath)
	if err != nil {
		return core.Entry{}, &core.DecodeError{Path: trashPath, Err: err}
	}
	_, generation := codec.SplitSuffix(filepath.Base(trashPath))
	return core.Entry{
		Name:         filepath.Base(original),
		OriginalPath: original,
		TrashPath:    trashPath,
		TrashDir:     trashDir,
		Generation:   generation,
		DeletedAt:    changeTime(info),
		Size:         info.Size(),
		IsDir:        info.IsDir(),
		FileMode:     info.Mode(),
	}, nil
}
