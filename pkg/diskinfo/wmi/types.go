// Package wmi provides WMI (Windows Management Instrumentation) queries for physical disks and their partitions.
package wmi

import "errors"

// ErrUnavailable is returned when the WMI scripting interface cannot be reached
var ErrUnavailable = errors.New("WMI is not available")

// Drive represents a physical disk from Win32_DiskDrive
type Drive struct {
	DeviceID string // e.g. \\.\PHYSICALDRIVE0
	Index    uint32 // Physical drive number, matches Win32_DiskPartition.DiskIndex
	Size     uint64 // Size in bytes
	Model    string
}

// Partition represents a partition from Win32_DiskPartition
type Partition struct {
	DiskIndex uint32 // Index of the owning drive
	Index     uint32 // Partition number within the drive
	Size      uint64 // Size in bytes
	Name      string // e.g. "Disk #0, Partition #1"
}

// Reader lists disks and partitions through WMI
type Reader interface {
	Drives() ([]Drive, error)
	Partitions(diskIndex uint32) ([]Partition, error)
}
