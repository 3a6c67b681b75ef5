package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadCSV reads a comma-separated table whose first record is the header
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	// Short rows are padded with missing cells during cleaning
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrUnreadable)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrUnreadable, err)
	}

	table := &Table{Header: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
		}

		row := make([]Cell, len(record))
		for i, value := range record {
			row[i] = TextCell(value)
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// parseDelimitedText reads comma-separated text extracted from another format,
// skipping blank lines that the extraction leaves behind
func parseDelimitedText(text string) (*Table, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return ReadCSV(strings.NewReader(strings.Join(lines, "\n")))
}
