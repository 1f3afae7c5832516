package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := os.WriteFile(path, []byte("first\nsecond\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Logs(&buf, path, true, false); err != nil {
		t.Fatalf("Logs failed: %v", err)
	}
	if buf.String() != "first\nsecond\n" {
		t.Errorf("Logs wrote %q", buf.String())
	}
}

func TestLogsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.log")

	tests := []struct {
		name    string
		enabled bool
		live    bool
		want    string
	}{
		{"disabled", false, false, "not enabled"},
		{"enabled", true, false, "no log file exists yet"},
		{"live disabled", false, true, "not enabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Logs(&bytes.Buffer{}, path, tt.enabled, tt.live)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Logs error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}
