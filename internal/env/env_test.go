package env

import (
	"path/filepath"
	"testing"
)

func TestConfigPath(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		t.Setenv("TRASHCAN_CONFIG_PATH", "/etc/trashcan.yaml")
		if got := configPath(); got != "/etc/trashcan.yaml" {
			t.Errorf("configPath() = %q", got)
		}
	})

	t.Run("xdg", func(t *testing.T) {
		t.Setenv("TRASHCAN_CONFIG_PATH", "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
		want := filepath.Join("/xdg/config", "trashcan", "config.yaml")
		if got := configPath(); got != want {
			t.Errorf("configPath() = %q, want %q", got, want)
		}
	})
}

func TestLogPath(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		t.Setenv("TRASHCAN_LOG_PATH", "/tmp/trashcan.log")
		if got := logPath(); got != "/tmp/trashcan.log" {
			t.Errorf("logPath() = %q", got)
		}
	})

	t.Run("xdg", func(t *testing.T) {
		t.Setenv("TRASHCAN_LOG_PATH", "")
		t.Setenv("XDG_DATA_HOME", "/xdg/data")
		want := filepath.Join("/xdg/data", "trashcan", "debug.log")
		if got := logPath(); got != want {
			t.Errorf("logPath() = %q, want %q", got, want)
		}
	})
}
