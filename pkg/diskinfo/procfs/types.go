package procfs

// BlockSize is the unit of the #blocks column in /proc/partitions
const BlockSize = 1024

// DefaultPath is where the kernel exposes the partition table
const DefaultPath = "/proc/partitions"

// headerLines is the column title line plus the blank line that follows it
const headerLines = 2

// Entry represents one row of the partition table
type Entry struct {
	Major  int    // Major device-class code
	Minor  int    // Minor device number
	Blocks uint64 // Size in 1024-byte blocks
	Name   string // Kernel device name (sda, sda1, hdb2)
}

// Size returns the size of the device in bytes
func (e Entry) Size() uint64 {
	return e.Blocks * BlockSize
}

// IsPartition reports whether the device name ends in a digit
func (e Entry) IsPartition() bool {
	if e.Name == "" {
		return false
	}
	last := e.Name[len(e.Name)-1]
	return last >= '0' && last <= '9'
}
