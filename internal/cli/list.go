package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/babarot/trashcan/internal/core/atomic"
	"github.com/babarot/trashcan/internal/trash"
	"github.com/babarot/trashcan/internal/trash/core"
	"github.com/babarot/trashcan/internal/ui"
	"github.com/babarot/trashcan/internal/ui/table"
	fsutil "github.com/babarot/trashcan/internal/utils/fs"
)

const maxNameWidth = 60

// List prints the trashed entries of the relevant trash directories
func (c *CLI) List() error {
	slog.Debug("cli.list started")
	defer slog.Debug("cli.list finished")

	engine, err := c.newEngine(core.NeverConfirm)
	if err != nil {
		return err
	}
	dirs, err := c.trashDirs(engine)
	if err != nil {
		return err
	}

	entries, err := engine.List(dirs...)
	if err != nil {
		return err
	}
	filtered := trash.Filter(entries, c.filterOptions())
	slog.Debug("listing entries", "dirs", dirs, "total", len(entries), "shown", len(filtered))

	if len(filtered) == 0 {
		fmt.Fprintln(c.stderr, "no files in trash")
		return nil
	}

	table.PrintFiles(c.stdout, filtered, table.PrintOptions{
		ShowRelativeTime: true,
		Long:             c.option.List.Long,
		MaxNameWidth:     maxNameWidth,
	})
	return nil
}

func (c *CLI) filterOptions() trash.FilterOptions {
	opts := trash.FilterOptions{Within: c.option.List.Within}
	if !c.option.List.All {
		opts.Include = c.config.List.Include
		opts.Exclude = c.config.List.Exclude
	}
	return opts
}

// Info prints where the trash directories are and what they hold
func (c *CLI) Info() error {
	engine, err := c.newEngine(core.NeverConfirm)
	if err != nil {
		return err
	}
	dirs, err := c.trashDirs(engine)
	if err != nil {
		return err
	}

	infos := make([]ui.TrashDirInfo, 0, len(dirs))
	for _, dir := range dirs {
		info := ui.TrashDirInfo{Path: dir}
		if m, err := atomic.MountPoint(dir); err == nil {
			info.Mountpoint = m.Mountpoint
			info.FSType = m.FSType
		} else {
			slog.Debug("failed to get mount point", "dir", dir, "error", err)
		}

		entries, err := os.ReadDir(dir)
		if err == nil {
			info.Exists = true
			info.Entries = len(entries)
			info.Size, err = fsutil.DirSize(dir)
			if err != nil {
				info.Size = -1
			}
		}
		infos = append(infos, info)
	}

	ui.PrintInfo(c.stdout, infos)
	return nil
}
