package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mscrnt/diskinfo/internal/config"
	"github.com/mscrnt/diskinfo/internal/version"
	"github.com/mscrnt/diskinfo/pkg/diskinfo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// Build variables set by ldflags
	buildVersion string
	buildCommit  string
	buildTime    string
)

func main() {
	os.Exit(newApp(os.Stdout, os.Stderr).run(os.Args[1:]))
}

// app carries the process streams and the platform hooks the commands use
type app struct {
	stdout io.Writer
	stderr io.Writer

	detectPlatform func() string
	newEnumerator  func(platform string, opts diskinfo.Options) (diskinfo.Enumerator, error)
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:         stdout,
		stderr:         stderr,
		detectPlatform: diskinfo.DetectPlatform,
		newEnumerator:  diskinfo.ForPlatform,
	}
}

// usageError marks errors caused by bad arguments or flags
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func isUsageError(err error) bool {
	var ue *usageError
	return errors.As(err, &ue) || diskinfo.IsUsageError(err) || errors.Is(err, config.ErrInvalidSetting)
}

// run executes the CLI and returns the process exit code
func (a *app) run(args []string) int {
	rootCmd := a.rootCmd()
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return diskinfo.ExitOK
	}

	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	if isUsageError(err) {
		fmt.Fprint(a.stderr, cmd.UsageString())
		return diskinfo.ExitUsage
	}
	return diskinfo.ExitCode(err)
}

func (a *app) rootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "diskinfo [DISK]",
		Short: "Print disk info",
		Long: `Print the hard disks of this host, or the partitions of one disk.

Without an argument every hard disk is printed as {number: size}, sizes in
bytes. With a disk number the partitions of that disk are printed instead.

Examples:
  # List hard disks
  diskinfo

  # List partitions of the first disk
  diskinfo 1

  # Same, as a table
  diskinfo 1 --format table`,
		Args:          validateDiskArg,
		Version:       version.GetVersion(buildVersion, buildCommit, buildTime),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			setupLogging(a.stderr, settings.Debug)

			return a.printDevices(settings, args)
		},
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "YAML config file (default: $HOME/.config/diskinfo/diskinfo.yaml or /etc/diskinfo/diskinfo.yaml)")
	flags.StringP("format", "o", diskinfo.FormatText, "Output format: text, json, yaml, csv or table")
	flags.String("platform", "", "Platform identifier to enumerate for (default: detected)")
	flags.String("partitions-file", "/proc/partitions", "Partition table read on Linux")
	flags.String("disk-majors", "3,8", "Comma separated major device numbers treated as disks on Linux")
	flags.BoolP("debug", "d", false, "Enable debug output")

	bindFlags(v, flags, map[string]string{
		config.KeyFormat:         "format",
		config.KeyPlatform:       "platform",
		config.KeyPartitionsFile: "partitions-file",
		config.KeyDiskMajors:     "disk-majors",
		config.KeyDebug:          "debug",
	})

	cmd.AddCommand(versionCmd(a))

	return cmd
}

// validateDiskArg accepts at most one positional disk number, which must be >= 1
func validateDiskArg(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return &usageError{err: err}
	}
	if len(args) == 0 {
		return nil
	}

	number, err := strconv.Atoi(args[0])
	if err != nil {
		return &usageError{err: fmt.Errorf("invalid int value: %q", args[0])}
	}
	return diskinfo.CheckDiskNumber(number)
}

// printDevices enumerates the host and prints the disks, or the partitions of one disk
func (a *app) printDevices(settings *config.Settings, args []string) error {
	platform := settings.Platform
	if platform == "" {
		platform = a.detectPlatform()
	}
	log.WithField("platform", platform).Debug("Selecting enumerator")

	enumerator, err := a.newEnumerator(platform, diskinfo.Options{
		PartitionsFile: settings.PartitionsFile,
		DiskMajors:     settings.DiskMajors,
	})
	if err != nil {
		return err
	}

	devices, err := enumerator.Enumerate()
	if err != nil {
		return err
	}

	var result []*diskinfo.Device
	if len(args) == 0 {
		result = diskinfo.Disks(devices)
	} else {
		// Already validated by validateDiskArg
		number, _ := strconv.Atoi(args[0])
		result, err = diskinfo.Partitions(devices, number)
		if err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{"devices": len(devices), "selected": len(result)}).Debug("Rendering")
	return diskinfo.Render(a.stdout, settings.Format, result)
}

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(a.stdout, version.GetDetailedVersion(buildVersion, buildCommit, buildTime))
		},
	}
}

// bindFlags binds each setting key to its command line flag
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", name, err))
		}
	}
}
