package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrFileNotFound = errors.New("file not found")

// CSVReader loads CSV exports from PrimaryDir, falling back to FallbackDir
// when the file is absent there.
type CSVReader struct {
	PrimaryDir  string
	FallbackDir string
}

func NewCSVReader(primaryDir, fallbackDir string) *CSVReader {
	return &CSVReader{PrimaryDir: primaryDir, FallbackDir: fallbackDir}
}

// Locate returns the path that ReadRecords would open for filename.
func (c *CSVReader) Locate(filename string) (string, error) {
	for _, dir := range []string{c.PrimaryDir, c.FallbackDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, filename)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s: %w", filename, ErrFileNotFound)
}

// ReadRecords parses filename into one map per row, keyed by the header row.
func (c *CSVReader) ReadRecords(filename string) ([]map[string]string, error) {
	path, err := c.Locate(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the file: %w", err)
	}
	defer file.Close()

	records, err := ParseCSVRecords(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// ParseCSVRecords reads a header row followed by data rows. Cell values are
// kept verbatim. A short row only gets the keys it has values for, and
// fields beyond the header are dropped.
func ParseCSVRecords(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records := make([]map[string]string, 0)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return records, nil
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		n := min(len(row), len(header))
		record := make(map[string]string, n)
		for i := 0; i < n; i++ {
			record[header[i]] = row[i]
		}
		records = append(records, record)
	}

	return records, nil
}
