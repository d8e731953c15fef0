package checkfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"chksum/internal/md5"
)

// Entry pairs a path with its expected digest.
type Entry struct {
	Path   string
	Digest md5.Digest
}

// Format renders entries in md5sum's output format, one per line.
func Format(entries []Entry) []byte {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Digest.Hex())
		b.WriteString("  ")
		b.WriteString(e.Path)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Parse reads md5sum-format entries from r. Malformed lines abort parsing
// with the offending line number in the error.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read checksum file: %w", err)
	}
	return entries, nil
}

func parseLine(line string) (Entry, error) {
	hexPart, pathPart, ok := strings.Cut(line, " ")
	if !ok {
		return Entry{}, fmt.Errorf("expected \"<digest>  <path>\", got %q", line)
	}
	// md5sum separates with two spaces ("  " or " *" for binary mode).
	pathPart = strings.TrimPrefix(pathPart, "*")
	pathPart = strings.TrimSpace(pathPart)
	if pathPart == "" {
		return Entry{}, fmt.Errorf("missing path in %q", line)
	}

	digest, err := md5.Parse(hexPart)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Path: pathPart, Digest: digest}, nil
}
