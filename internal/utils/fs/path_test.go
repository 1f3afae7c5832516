package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsUnsafePath(t *testing.T) {
	tests := []struct {
		path   string
		unsafe bool
	}{
		{".", true},                 // original dot
		{"..", true},                // original double dot
		{"./", true},                // dot with slash
		{"./.", true},               // multiple dots
		{"./../../foo/../..", true}, // complex path ending in ..
		{"foo/.", true},             // trailing dot
		{"/", true},                 // root
		{"//", true},                // double slash
		{"//foo", true},             // path with double slash
		{"/foo", false},             // normal absolute path
		{"foo", false},              // normal relative path
		{"foo/bar", false},          // normal nested path
		{"..foo", false},            // dots inside a name
		{".hidden", false},          // dotfile
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsUnsafePath(tt.path); got != tt.unsafe {
				t.Errorf("IsUnsafePath(%q) = %v, want %v", tt.path, got, tt.unsafe)
			}
		})
	}
}

func TestDirSize(t *testing.T) {
	dir := t.TempDir()
	files := map[string]int{
		"a.txt":         10,
		"sub/b.txt":     100,
		"sub/deep/c.md": 1000,
	}
	for name, n := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, make([]byte, n), 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := DirSize(dir)
	if err != nil {
		t.Fatalf("DirSize() error: %v", err)
	}
	if got != 1110 {
		t.Errorf("DirSize() = %d, want 1110", got)
	}

	got, err = DirSize(filepath.Join(dir, "a.txt"))
	if err != nil {
		t.Fatalf("DirSize(file) error: %v", err)
	}
	if got != 10 {
		t.Errorf("DirSize(file) = %d, want 10", got)
	}

	if _, err := DirSize(filepath.Join(dir, "missing")); err == nil {
		t.Error("DirSize(missing) should fail")
	}
}
