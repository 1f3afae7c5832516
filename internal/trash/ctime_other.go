//go:build !linux && !darwin

package trash

import (
	"io/fs"
	"time"
)

func changeTime(info fs.FileInfo) time.Time {
	return info.ModTime()
}
