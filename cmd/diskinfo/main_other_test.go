//go:build !windows
// +build !windows

package main

import (
	"testing"

	"github.com/mscrnt/diskinfo/pkg/diskinfo"
	"github.com/stretchr/testify/assert"
)

func TestWMIUnavailableOutsideWindows(t *testing.T) {
	res := run(t, "--platform", "win32")

	assert.Equal(t, diskinfo.ExitBackendUnavailable, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "WMI is not available")
}
