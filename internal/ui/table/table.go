package table

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gabriel-vasile/mimetype"
	"github.com/muesli/termenv"
)

const (
	timeFormat = "2006-01-02 15:04:05"
	ellipsis   = "…"
)

// FileEntry is a trashed entry that can be printed
type FileEntry interface {
	GetName() string
	GetPath() string
	GetDeletedAt() time.Time
	GetSize() int64
}

// Original is implemented by entries that know where they are restored to
type Original interface {
	OriginalDir() string
}

type SortOrder int

const (
	SortDesc SortOrder = iota
	SortAsc
)

type PrintOptions struct {
	ShowRelativeTime bool
	Order            SortOrder

	// Long adds size and content type columns
	Long bool

	// MaxNameWidth truncates long names (0 means no limit)
	MaxNameWidth int
}

// PrintFiles writes one line per entry, newest first by default
func PrintFiles[T FileEntry](w io.Writer, files []T, opts PrintOptions) {
	// Make a copy to avoid modifying the original slice
	sortedFiles := make([]T, len(files))
	copy(sortedFiles, files)

	sort.SliceStable(sortedFiles, func(i, j int) bool {
		switch opts.Order {
		case SortAsc:
			return sortedFiles[i].GetDeletedAt().Before(sortedFiles[j].GetDeletedAt())
		default: // SortDesc
			return sortedFiles[i].GetDeletedAt().After(sortedFiles[j].GetDeletedAt())
		}
	})

	green := color.New(color.FgHiGreen).SprintfFunc()
	white := color.New(color.FgWhite).SprintfFunc()
	faint := lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(termenv.ANSIBrightBlack))

	// Print header
	if opts.Long {
		fmt.Fprintf(w, "%s %s %s %s %s\n",
			green("%-20s", "Deleted At"),
			green("%-18s", ""),
			green("%8s", "Size"),
			green("%-24s", "Type"),
			green("%-30s", "Path"),
		)
	} else {
		fmt.Fprintf(w, "%s %s %s\n",
			green("%-20s", "Deleted At"),
			green("%-18s", ""),
			green("%-30s", "Path"),
		)
	}

	for _, file := range sortedFiles {
		var middleColumn string
		if opts.ShowRelativeTime {
			middleColumn = "(" + humanize.Time(file.GetDeletedAt()) + ")"
		}

		name := file.GetName()
		if opts.MaxNameWidth > 0 {
			name = ansi.Truncate(name, opts.MaxNameWidth, ellipsis)
		}
		if o, ok := any(file).(Original); ok {
			name += " " + faint.Render("("+o.OriginalDir()+")")
		}

		if opts.Long {
			fmt.Fprintf(w, "%s %s %s %s %s\n",
				white("%-20s", file.GetDeletedAt().Format(timeFormat)),
				white("%-18s", middleColumn),
				white("%8s", formatSize(file.GetSize())),
				white("%-24s", contentType(file.GetPath())),
				name,
			)
			continue
		}
		fmt.Fprintf(w, "%s %s %s\n",
			white("%-20s", file.GetDeletedAt().Format(timeFormat)),
			white("%-18s", middleColumn),
			name,
		)
	}

	fmt.Fprintln(w)
}

func formatSize(size int64) string {
	if size < 0 {
		return "?"
	}
	return humanize.Bytes(uint64(size))
}

// contentType detects the MIME type from the file content
func contentType(path string) string {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		// directories and unreadable entries
		return "-"
	}
	return mtype.String()
}
