//go:build !windows
// +build !windows

package wmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubReader(t *testing.T) {
	_, err := New()
	require.ErrorIs(t, err, ErrUnavailable)

	r := &WMIReader{}
	_, err = r.Drives()
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = r.Partitions(0)
	assert.ErrorIs(t, err, ErrUnavailable)
}
