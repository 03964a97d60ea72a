package mimedb

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// DefaultPath is the system mime database consumed by default.
const DefaultPath = "/etc/mime.types"

// Source provides the raw mime database line stream.
type Source interface {
	Open() (io.ReadCloser, error)
}

// FileSource opens the mime database at a fixed filesystem path.
type FileSource struct {
	Path string
}

// Open opens the database file for reading.
func (s FileSource) Open() (io.ReadCloser, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open mime database: %w", err)
	}

	return file, nil
}

// Load feeds every observation found in reader to the registry. Resolution
// is order dependent, so observations are added in line order.
func Load(reader io.Reader, registry *Registry) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		for _, obs := range ParseLine(scanner.Text()) {
			registry.Add(obs.Ext, obs.Type)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read mime database: %w", err)
	}

	return nil
}
