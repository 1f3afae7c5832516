package trash

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestResolveFreeName(t *testing.T) {
	tests := []struct {
		name     string
		existing int
		want     string
	}{
		{"free", 0, "alice!notes.txt"},
		{"one collision", 1, "alice!notes.txt.1"},
		{"three collisions", 3, "alice!notes.txt.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			candidate := filepath.Join(dir, "alice!notes.txt")
			for n := 0; n < tt.existing; n++ {
				name := candidate
				if n > 0 {
					name += "." + strconv.Itoa(n)
				}
				writeFile(t, name, "x")
			}

			got, err := ResolveFreeName(candidate)
			if err != nil {
				t.Fatalf("ResolveFreeName failed: %v", err)
			}
			if want := filepath.Join(dir, tt.want); got != want {
				t.Errorf("ResolveFreeName = %q, want %q", got, want)
			}
			if exists(got) {
				t.Errorf("ResolveFreeName returned an existing path %q", got)
			}
		})
	}
}

func TestResolveFreeNameGap(t *testing.T) {
	dir := t.TempDir()
	candidate := filepath.Join(dir, "x")
	writeFile(t, candidate, "")
	writeFile(t, candidate+".2", "")

	got, err := ResolveFreeName(candidate)
	if err != nil {
		t.Fatal(err)
	}
	if got != candidate+".1" {
		t.Errorf("ResolveFreeName = %q, want %q", got, candidate+".1")
	}
}

func TestResolveFreeNameDanglingSymlink(t *testing.T) {
	dir := t.TempDir()
	candidate := filepath.Join(dir, "link")
	if err := os.Symlink(filepath.Join(dir, "missing"), candidate); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got, err := ResolveFreeName(candidate)
	if err != nil {
		t.Fatal(err)
	}
	if got != candidate+".1" {
		t.Errorf("a dangling symlink still occupies its name: got %q", got)
	}
}

func TestReserve(t *testing.T) {
	tests := []struct {
		name     string
		occupant func(t *testing.T, path string)
		want     string
	}{
		{"free", nil, "alice!notes.txt"},
		{"taken by a file", func(t *testing.T, path string) { writeFile(t, path, "x") }, "alice!notes.txt.1"},
		{"taken by a directory", func(t *testing.T, path string) {
			if err := os.Mkdir(path, 0700); err != nil {
				t.Fatal(err)
			}
		}, "alice!notes.txt.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			candidate := filepath.Join(dir, "alice!notes.txt")
			if tt.occupant != nil {
				tt.occupant(t, candidate)
			}

			got, err := Reserve(candidate)
			if err != nil {
				t.Fatalf("Reserve failed: %v", err)
			}
			if want := filepath.Join(dir, tt.want); got != want {
				t.Errorf("Reserve = %q, want %q", got, want)
			}
			info, err := os.Lstat(got)
			if err != nil || !info.Mode().IsRegular() || info.Size() != 0 {
				t.Errorf("expected an empty file placeholder at %s", got)
			}
		})
	}
}
