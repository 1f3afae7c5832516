package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/babarot/trashcan/internal/trash"
	"github.com/babarot/trashcan/internal/trash/core"
	"github.com/babarot/trashcan/internal/ui"
)

// Restore moves trashed files back. Each argument is either a path inside
// a trash directory or the original path of a trashed file.
func (c *CLI) Restore(args []string) error {
	slog.Debug("cli.restore started")
	defer slog.Debug("cli.restore finished")

	if len(args) == 0 {
		return errors.New("too few arguments: give trashed or original paths (see --list)")
	}

	var observers []core.Observer
	if c.option.Rm.Verbose || c.config.Core.Restore.Verbose {
		observers = append(observers, ui.NewRestoreVerbose(c.stdout))
	}
	engine, err := c.newEngine(c.confirmer(false), observers...)
	if err != nil {
		return err
	}

	paths, err := trashedPaths(engine, args)
	if err != nil {
		return err
	}

	res, err := engine.RestoreOut(paths)
	if err != nil {
		return err
	}
	return c.report(res)
}

// trashedPaths maps original paths to the entry they were trashed as.
// Paths already inside a trash directory are kept as they are.
func trashedPaths(engine *trash.Engine, args []string) ([]string, error) {
	locator := engine.Locator()
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		p, err := locator.Normalize(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		if _, inside := locator.IsInsideTrash(p, true); inside {
			paths = append(paths, p)
			continue
		}

		entry, err := engine.Locate(p)
		if err != nil {
			if core.IsNotFound(err) {
				return nil, fmt.Errorf("%s: not found in trash", arg)
			}
			return nil, err
		}
		slog.Debug("located trashed entry", "original", p, "trash_path", entry.TrashPath)
		paths = append(paths, entry.TrashPath)
	}
	return paths, nil
}
