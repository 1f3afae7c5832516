package debug

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/babarot/trashcan/internal/utils/log"
	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"
)

// Logs prints the log file at path. With live, only new entries are shown
// and followed as long as stdout is a terminal.
func Logs(w io.Writer, path string, enabled, live bool) error {
	if live {
		return tailLiveLogs(w, path, enabled)
	}
	return showExistingLogs(w, path, enabled)
}

// tailLiveLogs follows log entries in real-time
func tailLiveLogs(w io.Writer, path string, enabled bool) error {
	if !enabled {
		return fmt.Errorf("logging is not enabled in config: enable logging in config for live debugging")
	}

	shouldFollow := isatty.IsTerminal(os.Stdout.Fd())
	t, err := tail.TailFile(path, tail.Config{
		ReOpen:    shouldFollow,
		Follow:    shouldFollow,
		MustExist: true,
		Poll:      true,
		Logger:    tail.DiscardingLogger,
		Location: &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekEnd,
		},
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("log file does not exist: try running some commands with logging enabled")
		}
		return err
	}
	defer t.Cleanup()

	if shouldFollow {
		fmt.Fprintln(w, log.Highlight("following "+path))
	}
	for line := range t.Lines {
		fmt.Fprintln(w, line.Text)
	}

	return nil
}

// showExistingLogs displays the current content of the log file
func showExistingLogs(w io.Writer, path string, enabled bool) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if !enabled {
				return fmt.Errorf("logging is not enabled in config: enable logging to create log files")
			}
			return fmt.Errorf("no log file exists yet: try running some commands first")
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fmt.Fprintln(w, scanner.Text())
	}

	return scanner.Err()
}
