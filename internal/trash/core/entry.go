package core

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Entry is a live filesystem entry inside a trash directory together with
// the path it was decoded to. Nothing else is persisted: the name is the
// only record of where the entry came from.
type Entry struct {
	// Name is the base name of the original path
	Name string

	// OriginalPath is the decoded location the entry is restored to
	OriginalPath string

	// TrashPath is the absolute path of the entry inside the trash directory
	TrashPath string

	// TrashDir is the trash directory holding the entry
	TrashDir string

	// Generation is the collision suffix of the entry (0 when none)
	Generation int

	// DeletedAt approximates when the entry was moved to trash
	DeletedAt time.Time

	// Size is the size in bytes (recursive for directories)
	Size int64

	IsDir    bool
	FileMode fs.FileMode
}

// Exists checks if the entry still exists in the trash
func (e Entry) Exists() bool {
	_, err := os.Lstat(e.TrashPath)
	return err == nil
}

func (e Entry) GetName() string {
	return e.Name
}

func (e Entry) GetPath() string {
	return e.TrashPath
}

func (e Entry) GetDeletedAt() time.Time {
	return e.DeletedAt
}

func (e Entry) GetSize() int64 {
	return e.Size
}

// OriginalDir returns the directory the entry is restored into
func (e Entry) OriginalDir() string {
	return filepath.Dir(e.OriginalPath)
}
