// Package procfs reads the block device table the Linux kernel publishes in /proc/partitions.
package procfs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformed is returned for rows that do not match "major minor #blocks name"
var ErrMalformed = errors.New("malformed partition table row")

// ReadFile opens and parses the partition table at path
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Parse reads a partition table from r.
//
// The first two lines (column titles and the blank separator) are skipped.
// Blank lines after the header are ignored. Every other line must carry at
// least four whitespace separated columns; anything after the name is ignored.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= headerLines {
			continue
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read partition table: %w", err)
	}

	return entries, nil
}

func parseLine(line string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Entry{}, fmt.Errorf("%w: expected 4 columns, got %d", ErrMalformed, len(fields))
	}

	major, err := strconv.Atoi(fields[0])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: major %q", ErrMalformed, fields[0])
	}
	minor, err := strconv.Atoi(fields[1])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: minor %q", ErrMalformed, fields[1])
	}
	blocks, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: #blocks %q", ErrMalformed, fields[2])
	}

	return Entry{
		Major:  major,
		Minor:  minor,
		Blocks: blocks,
		Name:   fields[3],
	}, nil
}
