//go:build !windows
// +build !windows

package wmi

import "fmt"

// WMIReader implements Reader (stub for non-Windows)
type WMIReader struct{}

// New always fails outside Windows
func New() (*WMIReader, error) {
	return nil, fmt.Errorf("%w: WMI requires Windows", ErrUnavailable)
}

// Drives reads physical disks via WMI (stub)
func (r *WMIReader) Drives() ([]Drive, error) {
	return nil, ErrUnavailable
}

// Partitions reads partitions via WMI (stub)
func (r *WMIReader) Partitions(_ uint32) ([]Partition, error) {
	return nil, ErrUnavailable
}
