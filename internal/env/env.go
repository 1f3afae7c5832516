package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"

	appName = "trashcan"
)

var (
	TRASHCAN_CONFIG_PATH string

	TRASHCAN_LOG_PATH string
)

func init() {
	// https://github.com/charmbracelet/log/issues/35
	os.Setenv("CLICOLOR_FORCE", "1")

	TRASHCAN_CONFIG_PATH = configPath()
	TRASHCAN_LOG_PATH = logPath()
}

// Follow https://specifications.freedesktop.org/basedir-spec/latest/
func configPath() string {
	if e := os.Getenv("TRASHCAN_CONFIG_PATH"); e != "" {
		return e
	}
	return filepath.Join(baseDir("XDG_CONFIG_HOME", defaultXDGConfigDirname), appName, "config.yaml")
}

func logPath() string {
	if e := os.Getenv("TRASHCAN_LOG_PATH"); e != "" {
		return e
	}
	return filepath.Join(baseDir("XDG_DATA_HOME", defaultXDGDataDirname), appName, "debug.log")
}

func baseDir(key, fallback string) string {
	if dir := os.Getenv(key); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return filepath.Join(homeDir, fallback)
}
