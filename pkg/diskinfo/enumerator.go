// Package diskinfo enumerates hard disks and their partitions.
//
// Each supported platform provides an Enumerator that returns a flat list of
// devices in encounter order: every hard disk is followed by its partitions.
// Disks and Partitions rebuild the disk/partition association from the
// Parent back-reference.
package diskinfo

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	log "github.com/sirupsen/logrus"
)

// Enumerator lists the storage devices of the host
type Enumerator interface {
	Enumerate() ([]*Device, error)
}

// Options configures the platform enumerators
type Options struct {
	PartitionsFile string // Partition table for the /proc enumerator
	DiskMajors     []int  // Major device-class codes treated as disks
}

// ForPlatform selects the enumerator for a host platform identifier.
// Identifiers are matched case-insensitively by prefix: "linux" selects the
// /proc enumerator and "win" the WMI enumerator.
func ForPlatform(platform string, opts Options) (Enumerator, error) {
	id := strings.ToLower(platform)

	switch {
	case strings.HasPrefix(id, "linux"):
		log.WithFields(log.Fields{"platform": platform, "file": opts.PartitionsFile}).Debug("Using /proc enumerator")
		return NewProcEnumerator(opts.PartitionsFile, opts.DiskMajors), nil
	case strings.HasPrefix(id, "win"):
		log.WithField("platform", platform).Debug("Using WMI enumerator")
		return NewWMIEnumerator(), nil
	default:
		return nil, &PlatformError{Platform: platform}
	}
}

// PlatformError reports a platform identifier no enumerator supports
type PlatformError struct {
	Platform string
}

func (e *PlatformError) Error() string {
	return ErrUnsupportedPlatform.Error() + ": " + e.Platform
}

// Unwrap allows errors.Is(err, ErrUnsupportedPlatform)
func (e *PlatformError) Unwrap() error {
	return ErrUnsupportedPlatform
}

// DetectPlatform returns the host operating system identifier
func DetectPlatform() string {
	info, err := host.Info()
	if err != nil || info.OS == "" {
		log.WithError(err).Debugf("Host info unavailable, falling back to %s", runtime.GOOS)
		return runtime.GOOS
	}
	return info.OS
}
