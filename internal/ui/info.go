package ui

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// TrashDirInfo summarizes one trash directory
type TrashDirInfo struct {
	Path       string
	Exists     bool
	Entries    int
	Size       int64
	Mountpoint string
	FSType     string
}

// PrintInfo renders the trash directories as a table
func PrintInfo(w io.Writer, dirs []TrashDirInfo) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Trash Directory", "Entries", "Size", "Mount", "Type"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	for _, d := range dirs {
		if !d.Exists {
			table.Append([]string{d.Path, "-", "-", d.Mountpoint, d.FSType})
			continue
		}
		size := "?"
		if d.Size >= 0 {
			size = humanize.Bytes(uint64(d.Size))
		}
		table.Append([]string{d.Path, fmt.Sprint(d.Entries), size, d.Mountpoint, d.FSType})
	}
	table.Render()
}
