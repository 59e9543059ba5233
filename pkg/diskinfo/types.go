package diskinfo

import "fmt"

// Device represents a hard disk or a partition.
//
// Number is 1-based within its scope: hard disks are numbered across the
// host, partitions within their parent disk. Parent is nil for hard disks.
// A Device is never modified after enumeration.
type Device struct {
	Number int
	Size   uint64 // Size in bytes
	Name   string // Platform device name, informational only
	Parent *Device
}

// IsDisk reports whether d is a hard disk (has no parent)
func (d *Device) IsDisk() bool {
	return d.Parent == nil
}

// ParentNumber returns the parent's ordinal, or 0 for a hard disk
func (d *Device) ParentNumber() int {
	if d.Parent == nil {
		return 0
	}
	return d.Parent.Number
}

// String renders the device as {number: size}
func (d *Device) String() string {
	return fmt.Sprintf("{%d: %d}", d.Number, d.Size)
}
