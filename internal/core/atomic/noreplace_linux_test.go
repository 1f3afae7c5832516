package atomic

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func renameNoReplaceOrSkip(t *testing.T, src, dst string) error {
	t.Helper()
	err := RenameNoReplace(src, dst)
	if err != nil && IsNoReplaceUnsupported(err) {
		t.Skipf("renameat2 not usable here: %v", err)
	}
	return err
}

func TestRenameNoReplace(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "proj")
	dst := filepath.Join(dir, "trash!proj")
	createTestFile(t, filepath.Join(src, "a.txt"), "a")

	if err := renameNoReplaceOrSkip(t, src, dst); err != nil {
		t.Fatalf("RenameNoReplace failed: %v", err)
	}
	assertNotExist(t, src)
	assertContent(t, filepath.Join(dst, "a.txt"), "a")
}

func TestRenameNoReplaceOccupied(t *testing.T) {
	tests := []struct {
		name     string
		occupant func(t *testing.T, path string)
	}{
		{"file", func(t *testing.T, path string) { createTestFile(t, path, "") }},
		{"empty directory", func(t *testing.T, path string) {
			if err := os.Mkdir(path, 0700); err != nil {
				t.Fatal(err)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(dir, "proj")
			dst := filepath.Join(dir, "taken")
			createTestFile(t, filepath.Join(src, "a.txt"), "a")
			tt.occupant(t, dst)

			err := renameNoReplaceOrSkip(t, src, dst)
			if !errors.Is(err, fs.ErrExist) {
				t.Fatalf("expected an fs.ErrExist error, got %v", err)
			}
			assertContent(t, filepath.Join(src, "a.txt"), "a")
		})
	}
}
