package data

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV reads a frame from CSV. The first record holds the column names.
func ReadCSV(r io.Reader) (*Frame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("data: reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("data: reading csv: no header")
	}

	header, rows := records[0], records[1:]
	f := NewFrame()
	for j, name := range header {
		col := make([]string, len(rows))
		for i, rec := range rows {
			col[i] = rec[j]
		}
		if err := f.AddColumn(name, col); err != nil {
			return nil, err
		}
	}
	return f, nil
}
