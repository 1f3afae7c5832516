package ui

import (
	"fmt"
	"io"

	"al.essio.dev/pkg/shellescape"
	"github.com/babarot/trashcan/internal/trash/core"
)

// Verbose prints every move and removal the way rm -v does
type Verbose struct {
	w io.Writer

	// restoring switches the wording of moves out of trash
	restoring bool
}

var _ core.Observer = (*Verbose)(nil)

// NewVerbose prints moves into trash as "removed"
func NewVerbose(w io.Writer) *Verbose {
	return &Verbose{w: w}
}

// NewRestoreVerbose prints moves out of trash as "restored"
func NewRestoreVerbose(w io.Writer) *Verbose {
	return &Verbose{w: w, restoring: true}
}

func (v *Verbose) OnMoved(original, destination string) {
	if v.restoring {
		fmt.Fprintf(v.w, "restored %s\n", shellescape.Quote(destination))
		return
	}
	fmt.Fprintf(v.w, "removed %s\n", shellescape.Quote(original))
}

func (v *Verbose) OnRemoved(path string) {
	fmt.Fprintf(v.w, "purged %s\n", shellescape.Quote(path))
}
