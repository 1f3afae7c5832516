package trash

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/babarot/trashcan/internal/trash/codec"
)

// Locator answers where the trash directory of a path is and whether a path
// already lies inside one. Membership is decided from the path string alone:
// the trash directory tree is the only catalog there is.
//
// All methods take and return native paths; the codec works on
// slash-separated ones.
type Locator struct {
	layout codec.Layout
}

// NewLocator creates a Locator for the given layout
func NewLocator(layout codec.Layout) *Locator {
	return &Locator{layout: layout}
}

// Layout returns the layout the locator was built with
func (l *Locator) Layout() codec.Layout {
	return l.layout
}

// TrashDirFor returns VolumeRoot(p) + TrashDirectoryName
func (l *Locator) TrashDirFor(p string) (string, error) {
	dir, err := l.layout.TrashDirFor(filepath.ToSlash(p))
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(dir), nil
}

// IsInsideTrash returns the trash directory p's parent equals or, with
// includeSubdirectories, is nested under. Both root styles are checked.
func (l *Locator) IsInsideTrash(p string, includeSubdirectories bool) (string, bool) {
	sp := filepath.ToSlash(p)
	parent := slashDir(sp)
	for _, dir := range l.layout.TrashDirs(sp) {
		if parent == dir {
			return filepath.FromSlash(dir), true
		}
		if includeSubdirectories && strings.HasPrefix(parent, dir+"/") {
			return filepath.FromSlash(dir), true
		}
	}
	return "", false
}

// TrashDirs returns every trash directory p could belong to
func (l *Locator) TrashDirs(p string) []string {
	dirs := l.layout.TrashDirs(filepath.ToSlash(p))
	for i := range dirs {
		dirs[i] = filepath.FromSlash(dirs[i])
	}
	return dirs
}

// IsTrashDir reports whether p is the trash directory of a recognized root
func (l *Locator) IsTrashDir(p string) bool {
	sp := filepath.ToSlash(p)
	for _, dir := range l.layout.TrashDirs(sp) {
		if sp == dir {
			return true
		}
	}
	return false
}

// Place returns where p goes inside its trash directory, without suffix
func (l *Locator) Place(p string) (string, error) {
	placed, err := l.layout.Place(filepath.ToSlash(p))
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(placed), nil
}

// Decode returns the original location of a trashed path
func (l *Locator) Decode(trashed string) (string, error) {
	original, err := l.layout.Decode(filepath.ToSlash(trashed))
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(original), nil
}

// VolumeRoot returns the native volume root of p
func (l *Locator) VolumeRoot(p string) (string, error) {
	root, err := l.layout.VolumeRoot(filepath.ToSlash(p))
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(root), nil
}

// Normalize turns user input into an AbsolutePath: absolute, cleaned, and
// with symbolic links in the parent chain expanded. The last element is kept
// as is so that trashing a symlink moves the link, not its target.
func (l *Locator) Normalize(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("empty path")
	}
	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	dir, base := filepath.Dir(abs), filepath.Base(abs)
	if dir == abs {
		// filesystem or drive root
		return abs, nil
	}
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		abs = filepath.Join(real, base)
	}
	return abs, nil
}

func slashDir(p string) string {
	i := strings.LastIndexByte(p, '/')
	switch {
	case i < 0:
		return ""
	case i == 0:
		return "/"
	case i == 2 && p[1] == ':':
		// "X:/name"
		return p[:3]
	}
	return p[:i]
}
