package diskinfo

import "errors"

// Exit codes reported by the CLI
const (
	ExitOK                  = 0
	ExitFailure             = 1
	ExitUsage               = 2
	ExitUnsupportedPlatform = 65
	ExitBackendUnavailable  = 66
)

var (
	// ErrUnsupportedPlatform is returned by the selector for unknown host identifiers
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrBackendUnavailable means the platform interface (WMI, /proc) cannot be used
	ErrBackendUnavailable = errors.New("platform interface unavailable")

	// ErrInvalidDiskNumber is returned for disk ordinals below 1
	ErrInvalidDiskNumber = errors.New("invalid disk number")

	// ErrNoSuchDisk is returned when no hard disk carries the requested ordinal
	ErrNoSuchDisk = errors.New("no such disk")

	// ErrUnknownFormat is returned by Render for unsupported output formats
	ErrUnknownFormat = errors.New("unknown output format")
)

// IsUsageError reports whether err was caused by bad user input
func IsUsageError(err error) bool {
	return errors.Is(err, ErrInvalidDiskNumber) ||
		errors.Is(err, ErrNoSuchDisk) ||
		errors.Is(err, ErrUnknownFormat)
}

// ExitCode maps an error chain to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUsageError(err):
		return ExitUsage
	case errors.Is(err, ErrUnsupportedPlatform):
		return ExitUnsupportedPlatform
	case errors.Is(err, ErrBackendUnavailable):
		return ExitBackendUnavailable
	default:
		return ExitFailure
	}
}
