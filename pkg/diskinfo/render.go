package diskinfo

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Render
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatCSV   = "csv"
	FormatTable = "table"
)

// Formats lists the supported output formats
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatCSV, FormatTable}

// record is the serialized form of a Device
type record struct {
	Number int    `json:"number" yaml:"number"`
	Size   uint64 `json:"size" yaml:"size"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Parent int    `json:"parent,omitempty" yaml:"parent,omitempty"`
}

func toRecords(devices []*Device) []record {
	records := make([]record, 0, len(devices))
	for _, d := range devices {
		records = append(records, record{
			Number: d.Number,
			Size:   d.Size,
			Name:   d.Name,
			Parent: d.ParentNumber(),
		})
	}
	return records
}

// CheckFormat validates an output format name
func CheckFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
}

// Render writes devices to w in the given format
func Render(w io.Writer, format string, devices []*Device) error {
	switch format {
	case FormatText, "":
		return renderText(w, devices)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(toRecords(devices))
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(toRecords(devices)); err != nil {
			return err
		}
		return encoder.Close()
	case FormatCSV:
		return renderCSV(w, devices)
	case FormatTable:
		return renderTable(w, devices)
	default:
		return CheckFormat(format)
	}
}

func renderText(w io.Writer, devices []*Device) error {
	for _, d := range devices {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}

func renderCSV(w io.Writer, devices []*Device) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"number", "size", "name", "parent"}); err != nil {
		return err
	}
	for _, r := range toRecords(devices) {
		parent := ""
		if r.Parent > 0 {
			parent = strconv.Itoa(r.Parent)
		}
		row := []string{strconv.Itoa(r.Number), strconv.FormatUint(r.Size, 10), r.Name, parent}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func renderTable(w io.Writer, devices []*Device) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.Style().Format.Header = text.FormatDefault

	t.AppendHeader(table.Row{"#", "Name", "Size", "Bytes", "Disk"})
	for _, d := range devices {
		disk := ""
		if !d.IsDisk() {
			disk = strconv.Itoa(d.Parent.Number)
		}
		t.AppendRow(table.Row{d.Number, d.Name, FormatBytes(d.Size), d.Size, disk})
	}

	t.Render()
	return nil
}

// FormatBytes converts a byte count to a human readable IEC string
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
