package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/babarot/trashcan/internal/trash/core"
	"github.com/babarot/trashcan/internal/ui"
)

// Purge permanently deletes entries that are already in trash
func (c *CLI) Purge(args []string) error {
	slog.Debug("cli.purge started")
	defer slog.Debug("cli.purge finished")

	if len(args) == 0 {
		return errors.New("too few arguments")
	}

	engine, err := c.newEngine(c.confirmer(false), c.purgeObservers()...)
	if err != nil {
		return err
	}

	res, err := engine.Purge(args)
	if err != nil {
		return err
	}
	return c.report(res)
}

// Empty wipes the trash directory of the current directory's root
func (c *CLI) Empty() error {
	slog.Debug("cli.empty started")
	defer slog.Debug("cli.empty finished")

	engine, err := c.newEngine(c.confirmer(true), c.purgeObservers()...)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	trashDir, err := engine.Locator().TrashDirFor(cwd)
	if err != nil {
		return fmt.Errorf("no trash directory for %s: %w", cwd, err)
	}

	res, err := engine.Empty(trashDir)
	if err != nil {
		return err
	}
	if len(res.Removed) == 0 && res.OK() {
		fmt.Fprintf(c.stderr, "%s is already empty\n", trashDir)
	}
	return c.report(res)
}

func (c *CLI) purgeObservers() []core.Observer {
	if c.option.Rm.Verbose || c.config.Core.Verbose {
		return []core.Observer{ui.NewVerbose(c.stdout)}
	}
	return nil
}
