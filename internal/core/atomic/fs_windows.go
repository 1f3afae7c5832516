//go:build windows

package atomic

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

// isSamePartition compares the volume serial numbers of the drives src and
// dst live on.
func isSamePartition(src, dst string) (bool, error) {
	srcVolume := filepath.VolumeName(src)
	dstVolume := filepath.VolumeName(dst)

	if srcVolume == "" || dstVolume == "" {
		return false, fmt.Errorf("failed to determine volume name from file paths")
	}
	if strings.EqualFold(srcVolume, dstVolume) {
		return true, nil
	}

	srcSerial, err := volumeSerial(srcVolume)
	if err != nil {
		return false, fmt.Errorf("failed to get source volume information: %w", err)
	}
	dstSerial, err := volumeSerial(dstVolume)
	if err != nil {
		return false, fmt.Errorf("failed to get destination volume information: %w", err)
	}

	return srcSerial == dstSerial, nil
}

func volumeSerial(volume string) (uint32, error) {
	root, err := windows.UTF16PtrFromString(volume + `\`)
	if err != nil {
		return 0, err
	}
	var serial uint32
	if err := windows.GetVolumeInformation(root, nil, 0, &serial, nil, nil, nil, 0); err != nil {
		return 0, err
	}
	return serial, nil
}
