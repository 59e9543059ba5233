// Package config loads diskinfo settings from flags, DISKINFO_* environment
// variables and an optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mscrnt/diskinfo/pkg/diskinfo"
	"github.com/mscrnt/diskinfo/pkg/diskinfo/procfs"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "DISKINFO"

// Setting keys
const (
	KeyPlatform       = "platform"
	KeyPartitionsFile = "partitions_file"
	KeyDiskMajors     = "disk_majors"
	KeyFormat         = "format"
	KeyDebug          = "debug"
)

// ErrInvalidSetting is returned when a setting cannot be parsed or validated
var ErrInvalidSetting = errors.New("invalid setting")

// Settings holds the resolved configuration
type Settings struct {
	Platform       string // Overrides host detection when set
	PartitionsFile string
	DiskMajors     []int
	Format         string
	Debug          bool
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPlatform, "")
	v.SetDefault(KeyPartitionsFile, procfs.DefaultPath)
	v.SetDefault(KeyDiskMajors, FormatMajors(diskinfo.DefaultDiskMajors))
	v.SetDefault(KeyFormat, diskinfo.FormatText)
	v.SetDefault(KeyDebug, false)
}

// New returns a viper instance with defaults and environment binding applied
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and returns validated settings.
// An explicit configFile must exist; otherwise diskinfo.yaml is looked up
// in the default search paths and silently skipped when absent.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("diskinfo")
		v.SetConfigType("yaml")
		for _, p := range SearchPaths() {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	majors, err := diskMajors(v)
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Platform:       strings.TrimSpace(v.GetString(KeyPlatform)),
		PartitionsFile: v.GetString(KeyPartitionsFile),
		DiskMajors:     majors,
		Format:         strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat))),
		Debug:          v.GetBool(KeyDebug),
	}

	if s.PartitionsFile == "" {
		return nil, fmt.Errorf("%w: %s must not be empty", ErrInvalidSetting, KeyPartitionsFile)
	}
	if err := diskinfo.CheckFormat(s.Format); err != nil {
		return nil, err
	}

	return s, nil
}

// SearchPaths returns the directories searched for diskinfo.yaml
func SearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "diskinfo"))
	}
	return append(paths, "/etc/diskinfo")
}

// diskMajors accepts either a YAML list or a comma separated string
func diskMajors(v *viper.Viper) ([]int, error) {
	if _, isList := v.Get(KeyDiskMajors).([]interface{}); isList {
		majors := v.GetIntSlice(KeyDiskMajors)
		if len(majors) == 0 {
			return nil, fmt.Errorf("%w: %s must list at least one major number", ErrInvalidSetting, KeyDiskMajors)
		}
		return majors, nil
	}
	return ParseMajors(v.GetString(KeyDiskMajors))
}

// ParseMajors parses a comma separated list of major device numbers
func ParseMajors(s string) ([]int, error) {
	var majors []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		m, err := strconv.Atoi(field)
		if err != nil || m < 0 {
			return nil, fmt.Errorf("%w: %s: bad major number %q", ErrInvalidSetting, KeyDiskMajors, field)
		}
		majors = append(majors, m)
	}
	if len(majors) == 0 {
		return nil, fmt.Errorf("%w: %s must list at least one major number", ErrInvalidSetting, KeyDiskMajors)
	}
	return majors, nil
}

// FormatMajors is the inverse of ParseMajors
func FormatMajors(majors []int) string {
	parts := make([]string, 0, len(majors))
	for _, m := range majors {
		parts = append(parts, strconv.Itoa(m))
	}
	return strings.Join(parts, ",")
}
