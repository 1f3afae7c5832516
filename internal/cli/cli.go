package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/babarot/trashcan/internal/config"
	"github.com/babarot/trashcan/internal/env"
	"github.com/babarot/trashcan/internal/trash"
	"github.com/babarot/trashcan/internal/trash/core"
	"github.com/babarot/trashcan/internal/ui"
	"github.com/babarot/trashcan/internal/utils/debug"
	"github.com/babarot/trashcan/internal/utils/log"
	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"github.com/rs/xid"
	"github.com/samber/lo"
)

type Option struct {
	Restore bool   `short:"b" long:"restore" description:"Restore trashed files (trashed paths or original paths)"`
	Purge   bool   `long:"purge" description:"Permanently delete trashed files"`
	Empty   bool   `long:"empty" description:"Permanently delete everything in the trash of the current root"`
	Config  string `long:"config" description:"Path to config file" default:""`

	List ListOption `group:"List Options"`
	Meta MetaOption `group:"Meta Options"`
	Rm   RmOption   `group:"Compatible (rm) Options"`
}

type ListOption struct {
	List   bool   `short:"l" long:"list" description:"List trashed files"`
	Long   bool   `long:"long" description:"Show size and content type"`
	Within string `long:"within" description:"Only list files deleted within the period (e.g. \"3 days\")"`
	All    bool   `long:"all" description:"Ignore the list filters of the config"`
	Info   bool   `long:"info" description:"Show the trash directories"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

// RmOption provides compatibility with rm command options
type RmOption struct {
	Interactive bool `short:"i" description:"(dummy) prompt before every removal"`
	Recursive   bool `short:"r" long:"recursive" description:"(dummy) remove directories and their contents recursively"`
	Recursive2  bool `short:"R" description:"(dummy) same as -r"`
	Force       bool `short:"f" long:"force" description:"ignore nonexistent files, never prompt"`
	Directory   bool `short:"d" long:"dir" description:"(dummy) remove empty directories"`
	Verbose     bool `short:"v" long:"verbose" description:"explain what is being done"`
}

type CLI struct {
	version Version
	option  Option
	config  config.Config
	runID   string

	stdout io.Writer
	stderr io.Writer
}

var runID = sync.OnceValue(func() string {
	id := xid.New().String()
	return id
})

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[OPTIONS] files..."
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}

	closeLog, err := setupLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	defer slog.Debug("main function finished")
	slog.Debug("main function started", "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)
	slog.Debug("config loaded", "config", dump(cfg))

	cli := CLI{
		version: v,
		option:  opt,
		config:  cfg,
		runID:   runID(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	if err := cli.Run(args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

// setupLogger installs the default logger. Records go to the rotating log
// file, or nowhere when logging is disabled.
func setupLogger(cfg config.LoggingConfig) (func(), error) {
	if !cfg.Enabled {
		log.New(log.UseOutput(io.Discard), log.AsDefault())
		return func() {}, nil
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	w, err := log.NewRotateWriter(env.TRASHCAN_LOG_PATH, cfg.Rotation.MaxSize, cfg.Rotation.MaxFiles)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log.New(
		log.UseOutput(w),
		log.UseLevel(level),
		log.UseReportCaller(true),
		log.UseReportTimestamp(true),
		log.UseTimeFormat(time.DateTime),
		log.UseAttrs("run_id", runID()),
		log.AsDefault(),
	)
	return func() { _ = w.Close() }, nil
}

func dump(v any) string {
	p := pp.New()
	p.SetColoringEnabled(false)
	return p.Sprint(v)
}

func (c CLI) Run(args []string) error {
	switch {
	case c.option.Meta.Version:
		layout, err := c.config.Layout()
		if err != nil {
			return err
		}
		fmt.Fprint(c.stdout, c.version.Print(layout))
		return nil

	case c.option.Meta.Debug != "":
		live := c.option.Meta.Debug == "live"
		return debug.Logs(c.stdout, env.TRASHCAN_LOG_PATH, c.config.Logging.Enabled, live)

	case c.option.List.Info:
		return c.Info()

	case c.option.List.List:
		return c.List()

	case c.option.Restore:
		return c.Restore(args)

	case c.option.Purge:
		return c.Purge(args)

	case c.option.Empty:
		return c.Empty()

	default:
		return c.Put(args)
	}
}

// newEngine builds the engine from the configured layout
func (c CLI) newEngine(confirmer core.Confirmer, observers ...core.Observer) (*trash.Engine, error) {
	layout, err := c.config.Layout()
	if err != nil {
		return nil, err
	}

	opts := []trash.Option{
		trash.WithConfirmer(confirmer),
		trash.WithLogger(slog.Default()),
		trash.WithOverwrite(c.config.Core.Restore.Overwrite),
		trash.WithExclusiveCreate(c.config.Core.Trash.ExclusiveCreate),
		trash.WithObserver(logObserver()),
	}
	for _, o := range observers {
		opts = append(opts, trash.WithObserver(o))
	}
	return trash.New(layout, opts...)
}

// confirmer decides who answers before irreversible operations
func (c CLI) confirmer(typed bool) core.Confirmer {
	if c.option.Rm.Force || !c.config.Core.Purge.Confirm {
		return core.AlwaysConfirm
	}
	if typed {
		return ui.NewPrompter(ui.Typed())
	}
	return ui.NewPrompter()
}

func logObserver() core.Observer {
	return core.ObserverFuncs{
		Moved: func(original, destination string) {
			slog.Info("moved", "from", original, "to", destination)
		},
		Removed: func(path string) {
			slog.Info("removed permanently", "path", path)
		},
	}
}

// trashDirs returns the trash directories relevant to the current
// directory together with the one of the home root
func (c CLI) trashDirs(engine *trash.Engine) ([]string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	locator := engine.Locator()
	dirs := locator.TrashDirs(cwd)
	if home := locator.Layout().HomeRoot; home != "" {
		dirs = append(dirs, locator.TrashDirs(filepath.FromSlash(home))...)
	}
	return lo.Uniq(dirs), nil
}

// report prints what a batch did not do and returns its error
func (c CLI) report(res *trash.Result) error {
	if res.Declined {
		fmt.Fprintln(c.stderr, "aborted: nothing was changed")
		return nil
	}
	for _, s := range res.Skipped {
		fmt.Fprintf(c.stderr, "skipped %s: %v\n", s.Path, s.Err)
	}
	if res.Failed == nil {
		if len(res.Skipped) > 0 {
			return fmt.Errorf("%d item(s) skipped", len(res.Skipped))
		}
		return nil
	}
	for _, p := range res.Pending {
		fmt.Fprintf(c.stderr, "not processed: %s\n", p)
	}
	return errors.Join(res.Failed, fmt.Errorf("%d item(s) done, %d not processed",
		len(res.Moved)+len(res.Removed), len(res.Pending)))
}
