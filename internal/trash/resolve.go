package trash

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/babarot/trashcan/internal/trash/codec"
)

// ResolveFreeName returns candidate if nothing exists there, otherwise the
// first of candidate.1, candidate.2, ... that is unused. The check and the
// later move are not atomic; a concurrent process can still take the name.
func ResolveFreeName(candidate string) (string, error) {
	for n := 0; ; n++ {
		name := codec.WithSuffix(candidate, n)
		_, err := os.Lstat(name)
		if errors.Is(err, fs.ErrNotExist) {
			return name, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", name, err)
		}
	}
}

// Reserve is the exclusive-create flavour of ResolveFreeName: it claims the
// free name by creating an empty file, which the caller then replaces with a
// rename. Only files may replace it; a directory cannot be renamed onto it.
func Reserve(candidate string) (string, error) {
	for n := 0; ; n++ {
		name := codec.WithSuffix(candidate, n)
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if err == nil {
			return name, f.Close()
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("failed to reserve %s: %w", name, err)
		}
	}
}
