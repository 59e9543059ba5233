//go:build windows
// +build windows

package wmi

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/StackExchange/wmi"
	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// sFalse is returned by CoInitialize when COM is already initialized on the thread
const sFalse = 0x00000001

// WMIReader implements Reader via the root\cimv2 namespace
type WMIReader struct{}

// Win32_DiskDrive WMI class
type Win32_DiskDrive struct {
	DeviceID      string
	Index         uint32
	Size          uint64
	Model         string
	InterfaceType string
	MediaType     string
}

// Win32_DiskPartition WMI class
type Win32_DiskPartition struct {
	DeviceID  string
	DiskIndex uint32
	Index     uint32
	Name      string
	Size      uint64
	Type      string
}

// New creates a new WMI reader after checking that the scripting locator can be created
func New() (*WMIReader, error) {
	if err := probe(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &WMIReader{}, nil
}

// probe creates and releases a WbemScripting.SWbemLocator over COM
func probe() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			return fmt.Errorf("failed to initialize COM: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if err != nil {
		return fmt.Errorf("failed to create SWbemLocator: %w", err)
	}
	defer unknown.Release()

	locator, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("failed to query SWbemLocator dispatch: %w", err)
	}
	locator.Release()

	return nil
}

// Drives queries Win32_DiskDrive
func (r *WMIReader) Drives() ([]Drive, error) {
	var results []Win32_DiskDrive

	err := wmi.Query("SELECT DeviceID, Index, Size, Model, InterfaceType, MediaType FROM Win32_DiskDrive", &results)
	if err != nil {
		return nil, fmt.Errorf("WMI query failed: %w", err)
	}

	drives := make([]Drive, 0, len(results))
	for _, d := range results {
		drives = append(drives, Drive{
			DeviceID: cleanString(d.DeviceID),
			Index:    d.Index,
			Size:     d.Size,
			Model:    cleanString(d.Model),
		})
	}

	return drives, nil
}

// Partitions queries Win32_DiskPartition for a single drive
func (r *WMIReader) Partitions(diskIndex uint32) ([]Partition, error) {
	var results []Win32_DiskPartition

	query := fmt.Sprintf("SELECT DeviceID, DiskIndex, Index, Name, Size, Type FROM Win32_DiskPartition WHERE DiskIndex = %d", diskIndex)
	if err := wmi.Query(query, &results); err != nil {
		return nil, fmt.Errorf("WMI query failed: %w", err)
	}

	partitions := make([]Partition, 0, len(results))
	for _, p := range results {
		partitions = append(partitions, Partition{
			DiskIndex: p.DiskIndex,
			Index:     p.Index,
			Size:      p.Size,
			Name:      cleanString(p.Name),
		})
	}

	return partitions, nil
}

// cleanString removes null bytes and trims whitespace
func cleanString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\x00")
	return strings.TrimSpace(s)
}
