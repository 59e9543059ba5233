package wmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestReaderInterface ensures WMIReader satisfies Reader on every platform
func TestReaderInterface(t *testing.T) {
	var _ Reader = (*WMIReader)(nil)
}

// TestNew tests the New function behavior on different platforms
func TestNew(t *testing.T) {
	reader, err := New()
	if err != nil {
		// Expected outside Windows, or on Windows without the WMI service
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Nil(t, reader)
		return
	}

	assert.NotNil(t, reader)
}
