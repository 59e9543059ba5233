package diskinfo

import "fmt"

// CheckDiskNumber rejects disk ordinals below 1
func CheckDiskNumber(number int) error {
	if number < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDiskNumber, number)
	}
	return nil
}

// Disks returns the hard disks in encounter order
func Disks(devices []*Device) []*Device {
	disks := []*Device{}
	for _, d := range devices {
		if d.IsDisk() {
			disks = append(disks, d)
		}
	}
	return disks
}

// Partitions returns the partitions of hard disk number, in encounter order
func Partitions(devices []*Device, number int) ([]*Device, error) {
	if err := CheckDiskNumber(number); err != nil {
		return nil, err
	}

	found := false
	for _, d := range Disks(devices) {
		if d.Number == number {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchDisk, number)
	}

	partitions := []*Device{}
	for _, d := range devices {
		if !d.IsDisk() && d.Parent.Number == number {
			partitions = append(partitions, d)
		}
	}
	return partitions, nil
}
