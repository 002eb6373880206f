package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadTable reads, parses, and validates an item table file.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item table: %w", err)
	}
	table, err := parseTable(data)
	if err != nil {
		return nil, err
	}
	if err := ValidateTable(table); err != nil {
		return nil, err
	}
	return table, nil
}

func parseTable(data []byte) (Table, error) {
	var table Table
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&table); err != nil {
		return nil, fmt.Errorf("parse item table: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse item table: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse item table: %w", err)
	}
	return table, nil
}
