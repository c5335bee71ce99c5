package platform

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
	log "github.com/sirupsen/logrus"
)

// LowSpaceThreshold is the free space below which a warning is logged
const LowSpaceThreshold uint64 = 1 << 30

// FreeSpace returns the bytes available on the filesystem holding path
func FreeSpace(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, fmt.Errorf("failed to get disk usage for %s: %w", path, err)
	}
	return usage.Free, nil
}

// CheckFreeSpace logs a warning when the filesystem holding dir is low on
// space. It reports whether space is low; errors are logged and treated as
// not low, so a download is never blocked by the check.
func CheckFreeSpace(dir string) bool {
	free, err := FreeSpace(dir)
	if err != nil {
		log.WithError(err).WithField("dir", dir).Debug("Free space check skipped")
		return false
	}
	if free < LowSpaceThreshold {
		log.WithFields(log.Fields{
			"dir":  dir,
			"free": HumanBytes(free),
		}).Warn("Low disk space in download directory")
		return true
	}
	return false
}

// HumanBytes renders a byte count with a binary unit suffix
func HumanBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
