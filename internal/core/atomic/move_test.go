package atomic

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// createTestFile creates a test file with given content
func createTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func assertContent(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	if string(got) != want {
		t.Fatalf("Content mismatch in %s. Expected %q, got %q", path, want, got)
	}
}

func assertNotExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Fatalf("%s should not exist (err: %v)", path, err)
	}
}

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source.txt")
	dst := filepath.Join(dir, "nested", "destination.txt")
	createTestFile(t, src, "test content")

	if err := Move(src, dst, MoveOptions{}); err != nil {
		t.Fatalf("Failed to move file: %v", err)
	}

	assertNotExist(t, src)
	assertContent(t, dst, "test content")
}

func TestMoveDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "proj")
	dst := filepath.Join(dir, "trash", "proj")
	createTestFile(t, filepath.Join(src, "a.txt"), "a")
	createTestFile(t, filepath.Join(src, "sub", "b.txt"), "b")

	if err := Move(src, dst, MoveOptions{AllowCrossDev: true}); err != nil {
		t.Fatalf("Failed to move directory: %v", err)
	}

	assertNotExist(t, src)
	assertContent(t, filepath.Join(dst, "a.txt"), "a")
	assertContent(t, filepath.Join(dst, "sub", "b.txt"), "b")
}

func TestMoveDestinationExists(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	createTestFile(t, src, "new")
	createTestFile(t, dst, "old")

	err := Move(src, dst, MoveOptions{})
	if !IsDestinationExists(err) {
		t.Fatalf("Expected ErrDestinationExists, got %v", err)
	}
	assertContent(t, src, "new")
	assertContent(t, dst, "old")

	if err := Move(src, dst, MoveOptions{Force: true}); err != nil {
		t.Fatalf("Forced move failed: %v", err)
	}
	assertNotExist(t, src)
	assertContent(t, dst, "new")
}

func TestMoveSourceNotFound(t *testing.T) {
	dir := t.TempDir()

	err := Move(filepath.Join(dir, "missing"), filepath.Join(dir, "dst"), MoveOptions{})
	if !IsSourceNotFound(err) {
		t.Fatalf("Expected ErrSourceNotFound, got %v", err)
	}

	var moveErr *MoveError
	if !errors.As(err, &moveErr) || moveErr.Op != "validate" {
		t.Fatalf("Expected a validate MoveError, got %#v", err)
	}
}

func TestMoveInvalidPath(t *testing.T) {
	if err := Move("", "x", MoveOptions{}); !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("Expected ErrInvalidPath, got %v", err)
	}
}

func TestMoveSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link")
	dst := filepath.Join(dir, "moved-link")
	createTestFile(t, target, "target")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if err := Move(link, dst, MoveOptions{}); err != nil {
		t.Fatalf("Failed to move symlink: %v", err)
	}

	info, err := os.Lstat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Fatalf("Expected %s to stay a symlink, mode %v", dst, info.Mode())
	}
	assertContent(t, target, "target")
}

func TestCopyAndDelete(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "proj")
	dst := filepath.Join(dir, "copy")
	createTestFile(t, filepath.Join(src, "a.txt"), "a")

	if err := copyAndDelete(src, dst); err != nil {
		t.Fatalf("copyAndDelete failed: %v", err)
	}

	assertNotExist(t, src)
	assertContent(t, filepath.Join(dst, "a.txt"), "a")

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("staging copy %s left behind", e.Name())
		}
	}
}

func TestCopyAndDeleteOntoPlaceholder(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "file.txt")
	dst := filepath.Join(dir, "reserved")
	createTestFile(t, src, "content")
	createTestFile(t, dst, "")

	if err := copyAndDelete(src, dst); err != nil {
		t.Fatalf("copyAndDelete failed: %v", err)
	}
	assertNotExist(t, src)
	assertContent(t, dst, "content")
}

func TestStagingPath(t *testing.T) {
	dst := filepath.Join("trash", "alice!notes.txt")
	a, b := stagingPath(dst), stagingPath(dst)

	if a == b {
		t.Fatalf("staging paths should be unique, got %q twice", a)
	}
	if filepath.Dir(a) != filepath.Dir(dst) {
		t.Errorf("staging path %q should be a sibling of %q", a, dst)
	}
	if !strings.HasPrefix(filepath.Base(a), ".alice!notes.txt.") {
		t.Errorf("unexpected staging name %q", a)
	}
}

func TestIsStagingName(t *testing.T) {
	staged := filepath.Base(stagingPath(filepath.Join("trash", "alice!notes.txt")))
	tests := []struct {
		name string
		want bool
	}{
		{staged, true},
		{"alice!notes.txt", false},
		{".bashrc", false},
		{".notes.tmp", false},
		{".alice!notes.txt.not-a-uuid.tmp", false},
		{"alice!notes.txt.1", false},
	}

	for _, tt := range tests {
		if got := IsStagingName(tt.name); got != tt.want {
			t.Errorf("IsStagingName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestContainsPath(t *testing.T) {
	tests := []struct {
		mountpoint string
		path       string
		want       bool
	}{
		{"/", "/home/alice", true},
		{"/home", "/home/alice", true},
		{"/home", "/home", true},
		{"/home", "/homework", false},
		{"/mnt/usb/", "/mnt/usb/a", true},
	}

	for _, tt := range tests {
		t.Run(tt.mountpoint+" "+tt.path, func(t *testing.T) {
			if got := containsPath(tt.mountpoint, tt.path); got != tt.want {
				t.Errorf("containsPath(%q, %q) = %v, want %v", tt.mountpoint, tt.path, got, tt.want)
			}
		})
	}
}
