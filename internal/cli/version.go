package cli

import (
	"fmt"
	"path"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/babarot/trashcan/internal/trash/codec"
)

const (
	appURL = "https://github.com/babarot/trashcan"
)

type Version struct {
	AppName   string
	Version   string
	Revision  string
	BuildDate string
}

// Print renders the build information followed by the trash layout in use
func (v Version) Print(layout codec.Layout) string {
	var s strings.Builder
	switch v.Version {
	case "unset", "unknown", "develop":
		if info, ok := debug.ReadBuildInfo(); ok {
			v.Version = info.Main.Version
		}
	}
	fmt.Fprintln(&s, v.AppName+" - a recoverable rm for the command line")
	fmt.Fprintln(&s, appURL)
	fmt.Fprintln(&s, "")
	fmt.Fprintln(&s, "version: "+v.Version)
	fmt.Fprintln(&s, "revision: "+v.Revision)
	fmt.Fprintln(&s, "buildDate: "+v.BuildDate)
	fmt.Fprintf(&s, "platform: %s/%s (%s)\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
	fmt.Fprintln(&s, "trash: "+describeLayout(layout))
	return s.String()
}

func describeLayout(l codec.Layout) string {
	var dir string
	switch l.Style {
	case codec.StyleDrive:
		dir = path.Join("<drive>:/", l.DirName)
	default:
		dir = path.Join(l.HomeRoot, l.DirName)
	}
	return fmt.Sprintf("%s style, %s, escape %q", l.Style, dir, l.Escape)
}
