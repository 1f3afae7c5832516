package trash

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/babarot/trashcan/internal/trash/codec"
)

// testRoot returns a fresh home-style volume root with symlinks resolved,
// so that normalized paths and the layout agree (macOS /var -> /private/var).
func testRoot(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("home-style roots are slash rooted")
	}
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	return root
}

func testLayout(root string) codec.Layout {
	return codec.Layout{
		Style:    codec.StyleHome,
		HomeRoot: filepath.ToSlash(root),
		DirName:  ".TRASHCAN",
		Escape:   '!',
	}
}

// forEachCreateMode runs fn with atomic name claiming and with the plain
// first-free-name lookup
func forEachCreateMode(t *testing.T, fn func(t *testing.T, exclusive bool)) {
	t.Helper()
	for _, exclusive := range []bool{true, false} {
		name := "first free"
		if exclusive {
			name = "exclusive"
		}
		t.Run(name, func(t *testing.T) { fn(t, exclusive) })
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(b)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// fakeConfirmer answers every prompt with answer and records the prompts
type fakeConfirmer struct {
	answer  bool
	prompts []string
}

func (c *fakeConfirmer) Confirm(prompt string) (bool, error) {
	c.prompts = append(c.prompts, prompt)
	return c.answer, nil
}

// recorder is an Observer remembering every notification in order
type recorder struct {
	events []string
}

func (r *recorder) OnMoved(original, destination string) {
	r.events = append(r.events, "moved "+original+" -> "+destination)
}

func (r *recorder) OnRemoved(path string) {
	r.events = append(r.events, "removed "+path)
}
