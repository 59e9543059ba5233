package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mscrnt/diskinfo/pkg/diskinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the user's real config out of the test
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	s, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, &Settings{
		Platform:       "",
		PartitionsFile: "/proc/partitions",
		DiskMajors:     []int{3, 8},
		Format:         diskinfo.FormatText,
		Debug:          false,
	}, s)
}

func TestLoadEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("DISKINFO_PLATFORM", "win32")
	t.Setenv("DISKINFO_PARTITIONS_FILE", "/tmp/partitions")
	t.Setenv("DISKINFO_DISK_MAJORS", "8, 252")
	t.Setenv("DISKINFO_FORMAT", "JSON")
	t.Setenv("DISKINFO_DEBUG", "true")

	s, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "win32", s.Platform)
	assert.Equal(t, "/tmp/partitions", s.PartitionsFile)
	assert.Equal(t, []int{8, 252}, s.DiskMajors)
	assert.Equal(t, diskinfo.FormatJSON, s.Format)
	assert.True(t, s.Debug)
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "partitions_file: /srv/partitions\ndisk_majors: [3, 8, 259]\nformat: table\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/partitions", s.PartitionsFile)
	assert.Equal(t, []int{3, 8, 259}, s.DiskMajors)
	assert.Equal(t, diskinfo.FormatTable, s.Format)
}

func TestLoadSearchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "diskinfo")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "diskinfo.yaml"), []byte("disk_majors: \"252\"\n"), 0o600))

	s, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, []int{252}, s.DiskMajors)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "diskinfo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: csv\n"), 0o600))
	t.Setenv("DISKINFO_FORMAT", "yaml")

	s, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, diskinfo.FormatYAML, s.Format)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{name: "bad major", env: map[string]string{"DISKINFO_DISK_MAJORS": "3,sd"}, wantErr: ErrInvalidSetting},
		{name: "no majors", env: map[string]string{"DISKINFO_DISK_MAJORS": " , "}, wantErr: ErrInvalidSetting},
		{name: "bad format", env: map[string]string{"DISKINFO_FORMAT": "xml"}, wantErr: diskinfo.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			s, err := Load(New(), "")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	isolate(t)

	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestParseMajors(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "3,8", want: []int{3, 8}},
		{in: " 8 ", want: []int{8}},
		{in: "8,,3,", want: []int{8, 3}},
		{in: "", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "eight", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMajors(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSetting)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMajors(t *testing.T) {
	assert.Equal(t, "3,8", FormatMajors([]int{3, 8}))
	assert.Equal(t, "", FormatMajors(nil))
}
