package config

import (
	"runtime"

	"github.com/babarot/trashcan/internal/trash/codec"
)

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() *Config {
	dirName, rootStyle := codec.DefaultDirName, codec.StyleHome
	if runtime.GOOS == "windows" {
		// D:/TRASHCAN
		dirName, rootStyle = "TRASHCAN", codec.StyleDrive
	}

	return &Config{
		Core: Core{
			Trash: TrashConfig{
				DirName:         dirName,
				Escape:          string(codec.DefaultEscape),
				RootStyle:       rootStyle.String(),
				HomeRoot:        "", // user home directory
				ExclusiveCreate: true,
			},
			Restore: RestoreConfig{
				Overwrite: false,
				Verbose:   true,
			},
			Purge: PurgeConfig{
				Confirm: true,
			},
			Verbose: false,
		},
		List: List{
			Include: IncludeConfig{
				WithinDays: 0,
			},
			Exclude: ExcludeConfig{
				Files: []string{
					// In macOS, .DS_Store is a file that stores custom attributes of its
					// containing folder
					".DS_Store",
				},
				Patterns: []string{},
				Globs:    []string{},
				Size:     SizeConfig{},
			},
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "debug",
			Rotation: RotationConfig{
				MaxSize:  "10MB",
				MaxFiles: 3,
			},
		},
	}
}
