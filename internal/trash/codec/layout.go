// Package codec maps absolute paths to and from their flat names inside a
// trash directory. It never touches the filesystem: every function works on
// slash-separated strings, so both root conventions can be exercised on any
// platform.
package codec

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// RootStyle describes how a volume root is derived from a path
type RootStyle int

const (
	// StyleHome anchors every path at a single home root (e.g. /home)
	StyleHome RootStyle = iota

	// StyleDrive anchors every path at its drive letter (e.g. D:/)
	StyleDrive
)

func (s RootStyle) String() string {
	switch s {
	case StyleHome:
		return "home"
	case StyleDrive:
		return "drive"
	}
	return "unknown"
}

// ParseRootStyle converts a config value into a RootStyle
func ParseRootStyle(s string) (RootStyle, error) {
	switch strings.ToLower(s) {
	case "home", "":
		return StyleHome, nil
	case "drive":
		return StyleDrive, nil
	}
	return StyleHome, fmt.Errorf("unknown root style: %q", s)
}

const (
	DefaultDirName = ".TRASHCAN"
	DefaultEscape  = '!'
)

var (
	// ErrNotAbsolute is returned for paths that are neither drive-rooted nor slash-rooted
	ErrNotAbsolute = errors.New("path is not absolute")

	// ErrOutsideRoot is returned when a path does not belong to any volume root
	ErrOutsideRoot = errors.New("path is outside of the volume root")

	// ErrVolumeRoot is returned when the path is the volume root itself
	ErrVolumeRoot = errors.New("path is a volume root")

	// ErrEscapeInPath is returned when a path already contains the escape character
	ErrEscapeInPath = errors.New("path contains the escape character")

	// ErrNotTrashed is returned by Decode for paths outside of any trash directory
	ErrNotTrashed = errors.New("path is not inside a trash directory")
)

// Layout is the immutable description of where trash directories live and
// how names are flattened into them.
type Layout struct {
	Style RootStyle

	// HomeRoot is the volume root for StyleHome (slash-separated, absolute).
	// It is also consulted by Decode when Style is StyleDrive.
	HomeRoot string

	// DirName is the trash directory segment appended to a volume root
	DirName string

	// Escape replaces every separator of an encoded entry
	Escape rune
}

// Validate checks the layout is usable
func (l Layout) Validate() error {
	if l.DirName == "" || l.DirName == "." || l.DirName == ".." || strings.ContainsAny(l.DirName, `/\`) {
		return fmt.Errorf("invalid trash directory name: %q", l.DirName)
	}
	if l.Escape == 0 || l.Escape == '/' || l.Escape == '\\' || l.Escape == '.' {
		return fmt.Errorf("invalid escape character: %q", l.Escape)
	}
	if strings.ContainsRune(l.DirName, l.Escape) {
		return fmt.Errorf("trash directory name %q contains the escape character", l.DirName)
	}
	if l.Style == StyleHome && !isSlashRooted(l.HomeRoot) {
		return fmt.Errorf("home root must be an absolute path: %q", l.HomeRoot)
	}
	return nil
}

// VolumeRoot returns the root p is anchored at according to the configured style
func (l Layout) VolumeRoot(p string) (string, error) {
	if !IsAbs(p) {
		return "", fmt.Errorf("%s: %w", p, ErrNotAbsolute)
	}
	switch l.Style {
	case StyleDrive:
		if root, ok := driveRoot(p); ok {
			return root, nil
		}
	case StyleHome:
		if root := l.homeRoot(); root != "" && within(p, root) {
			return root, nil
		}
	}
	return "", fmt.Errorf("%s: %w", p, ErrOutsideRoot)
}

// TrashDirFor returns VolumeRoot(p) + DirName
func (l Layout) TrashDirFor(p string) (string, error) {
	root, err := l.VolumeRoot(p)
	if err != nil {
		return "", err
	}
	return joinRoot(root, l.DirName), nil
}

// TrashDirs returns every trash directory p could belong to, drive style
// first. Both conventions are considered whatever the configured style is.
func (l Layout) TrashDirs(p string) []string {
	var dirs []string
	if root, ok := driveRoot(p); ok {
		dirs = append(dirs, joinRoot(root, l.DirName))
	}
	if root := l.homeRoot(); root != "" && within(p, root) {
		dirs = append(dirs, joinRoot(root, l.DirName))
	}
	return dirs
}

// IsAbs reports whether p is drive-rooted or slash-rooted
func IsAbs(p string) bool {
	if _, ok := driveRoot(p); ok {
		return true
	}
	return isSlashRooted(p)
}

func (l Layout) homeRoot() string {
	if l.HomeRoot == "" {
		return ""
	}
	return path.Clean(l.HomeRoot)
}

// driveRoot returns "X:/" for paths such as "X:/foo" or "X:"
func driveRoot(p string) (string, bool) {
	if len(p) < 2 || p[1] != ':' || !isLetter(p[0]) {
		return "", false
	}
	if len(p) > 2 && p[2] != '/' {
		return "", false
	}
	return p[:2] + "/", true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isSlashRooted(p string) bool {
	return strings.HasPrefix(p, "/")
}

// within reports whether p is root or lies below it
func within(p, root string) bool {
	if root == "/" {
		return isSlashRooted(p)
	}
	return p == root || strings.HasPrefix(p, root+"/")
}

func joinRoot(root, name string) string {
	if strings.HasSuffix(root, "/") {
		return root + name
	}
	return root + "/" + name
}
