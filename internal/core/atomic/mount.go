package atomic

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/moby/sys/mountinfo"
)

// Mount describes the filesystem a path lives on
type Mount struct {
	Mountpoint string
	FSType     string
	Source     string
}

// MountPoint returns the mount with the longest mount point containing path
func MountPoint(path string) (Mount, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Mount{}, fmt.Errorf("failed to get absolute path: %w", err)
	}

	mounts, err := mountinfo.GetMounts(nil)
	if err != nil {
		return Mount{}, fmt.Errorf("failed to get mount info: %w", err)
	}

	var found *mountinfo.Info
	for _, m := range mounts {
		if !containsPath(m.Mountpoint, absPath) {
			continue
		}
		if found == nil || len(m.Mountpoint) > len(found.Mountpoint) {
			found = m
		}
	}

	if found == nil {
		// If no mount point found, the path must be on the root filesystem
		return Mount{Mountpoint: "/"}, nil
	}

	return Mount{
		Mountpoint: found.Mountpoint,
		FSType:     found.FSType,
		Source:     found.Source,
	}, nil
}

func containsPath(mountpoint, path string) bool {
	if mountpoint == "/" || mountpoint == path {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(mountpoint, "/")+"/")
}
