package diskinfo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mscrnt/diskinfo/pkg/diskinfo/wmi"
	log "github.com/sirupsen/logrus"
)

// WMIEnumerator reads devices from Win32_DiskDrive and Win32_DiskPartition
type WMIEnumerator struct {
	newReader func() (wmi.Reader, error)
}

// NewWMIEnumerator creates an enumerator backed by the platform WMI reader
func NewWMIEnumerator() *WMIEnumerator {
	return &WMIEnumerator{
		newReader: func() (wmi.Reader, error) {
			r, err := wmi.New()
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	}
}

// NewWMIEnumeratorWithReader creates an enumerator around an existing reader
func NewWMIEnumeratorWithReader(r wmi.Reader) *WMIEnumerator {
	return &WMIEnumerator{
		newReader: func() (wmi.Reader, error) { return r, nil },
	}
}

// Enumerate implements Enumerator.
//
// Disks are ordered by device identifier and numbered in that order. Each
// disk is followed by its partitions, ordered by partition index.
func (e *WMIEnumerator) Enumerate() ([]*Device, error) {
	reader, err := e.newReader()
	if err != nil {
		if errors.Is(err, wmi.ErrUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		return nil, err
	}

	drives, err := reader.Drives()
	if err != nil {
		return nil, fmt.Errorf("failed to list disk drives: %w", err)
	}
	sort.SliceStable(drives, func(i, j int) bool {
		return drives[i].DeviceID < drives[j].DeviceID
	})

	var devices []*Device
	for i, drive := range drives {
		disk := &Device{
			Number: i + 1,
			Size:   drive.Size,
			Name:   drive.DeviceID,
		}
		devices = append(devices, disk)

		partitions, err := reader.Partitions(drive.Index)
		if err != nil {
			return nil, fmt.Errorf("failed to list partitions of %s: %w", drive.DeviceID, err)
		}
		sort.SliceStable(partitions, func(a, b int) bool {
			return partitions[a].Index < partitions[b].Index
		})

		for j, p := range partitions {
			devices = append(devices, &Device{
				Number: j + 1,
				Size:   p.Size,
				Name:   p.Name,
				Parent: disk,
			})
		}

		log.WithFields(log.Fields{
			"disk":       drive.DeviceID,
			"index":      drive.Index,
			"model":      drive.Model,
			"partitions": len(partitions),
		}).Debug("Enumerated disk")
	}

	return devices, nil
}
