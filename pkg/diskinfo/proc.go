package diskinfo

import (
	"errors"
	"fmt"
	"os"

	"github.com/mscrnt/diskinfo/pkg/diskinfo/procfs"
	log "github.com/sirupsen/logrus"
)

// DefaultDiskMajors are the IDE (3) and SCSI/SATA (8) disk classes
var DefaultDiskMajors = []int{3, 8}

// ProcEnumerator reads devices from the kernel partition table
type ProcEnumerator struct {
	path   string
	majors map[int]bool
}

// NewProcEnumerator creates an enumerator for the table at path.
// Empty arguments select procfs.DefaultPath and DefaultDiskMajors.
func NewProcEnumerator(path string, majors []int) *ProcEnumerator {
	if path == "" {
		path = procfs.DefaultPath
	}
	if len(majors) == 0 {
		majors = DefaultDiskMajors
	}

	allowed := make(map[int]bool, len(majors))
	for _, m := range majors {
		allowed[m] = true
	}

	return &ProcEnumerator{path: path, majors: allowed}
}

// Enumerate implements Enumerator
func (e *ProcEnumerator) Enumerate() ([]*Device, error) {
	entries, err := procfs.ReadFile(e.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		return nil, fmt.Errorf("failed to read partition table: %w", err)
	}

	return e.fromEntries(entries), nil
}

// FromPartitionTable builds the device list from parsed table rows.
//
// Rows whose major is not in majors are dropped wherever they appear. A row
// whose name ends in a digit is a partition of the most recent disk row;
// any other row is a new disk and restarts partition numbering.
func FromPartitionTable(entries []procfs.Entry, majors []int) []*Device {
	return NewProcEnumerator("", majors).fromEntries(entries)
}

func (e *ProcEnumerator) fromEntries(entries []procfs.Entry) []*Device {
	devices := make([]*Device, 0, len(entries))

	var (
		diskNumber      int
		partitionNumber int
		currentDisk     *Device
	)
	for _, entry := range entries {
		if !e.majors[entry.Major] {
			log.WithFields(log.Fields{"name": entry.Name, "major": entry.Major}).Debug("Skipping device class")
			continue
		}

		if entry.IsPartition() {
			partitionNumber++
			devices = append(devices, &Device{
				Number: partitionNumber,
				Size:   entry.Size(),
				Name:   entry.Name,
				Parent: currentDisk,
			})
			continue
		}

		partitionNumber = 0
		diskNumber++
		currentDisk = &Device{
			Number: diskNumber,
			Size:   entry.Size(),
			Name:   entry.Name,
		}
		devices = append(devices, currentDisk)
	}

	log.WithFields(log.Fields{"rows": len(entries), "devices": len(devices)}).Debug("Parsed partition table")
	return devices
}
