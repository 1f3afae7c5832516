package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/babarot/trashcan/internal/trash/core"
	"github.com/babarot/trashcan/internal/ui"
	"golang.org/x/sync/errgroup"
)

// maxStatWorkers bounds concurrent argument checks
const maxStatWorkers = 16

// Put deletes the given paths: live files go to trash, files already in
// trash are removed permanently after confirmation.
func (c *CLI) Put(args []string) error {
	slog.Debug("cli.put started")
	defer slog.Debug("cli.put finished")

	if len(args) == 0 {
		return errors.New("too few arguments")
	}

	paths, err := existingPaths(args, c.option.Rm.Force)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return nil
	}

	var observers []core.Observer
	if c.option.Rm.Verbose || c.config.Core.Verbose {
		observers = append(observers, ui.NewVerbose(c.stdout))
	}
	engine, err := c.newEngine(c.confirmer(false), observers...)
	if err != nil {
		return err
	}

	res, err := engine.Delete(paths)
	if err != nil {
		return err
	}
	return c.report(res)
}

// existingPaths checks every argument up front, in parallel, and keeps the
// input order. Missing paths fail the whole command unless ignoreMissing.
func existingPaths(args []string, ignoreMissing bool) ([]string, error) {
	missing := make([]bool, len(args))

	var eg errgroup.Group
	eg.SetLimit(maxStatWorkers)
	for i, arg := range args {
		eg.Go(func() error {
			_, err := os.Lstat(arg)
			switch {
			case err == nil:
				return nil
			case os.IsNotExist(err):
				missing[i] = true
				return nil
			default:
				return fmt.Errorf("cannot remove %q: %w", arg, err)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var (
		paths []string
		errs  []error
	)
	for i, arg := range args {
		if !missing[i] {
			paths = append(paths, arg)
			continue
		}
		if ignoreMissing {
			slog.Debug("ignoring nonexistent file", "path", arg)
			continue
		}
		errs = append(errs, fmt.Errorf("cannot remove %q: no such file or directory", arg))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return paths, nil
}
