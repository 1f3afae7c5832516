//go:build linux

package trash

import (
	"io/fs"
	"syscall"
	"time"
)

// changeTime returns the inode change time, which a rename into the trash
// directory updates
func changeTime(info fs.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec)) //nolint:unconvert
	}
	return info.ModTime()
}
