package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ConvertCSV reads a raw scraped dataset in CSV form and writes it out as
// the JSON document the catalog loader expects. Every row becomes one
// object keyed by the header names; no field typing is attempted here,
// that is the loader's job.
func ConvertCSV(csvPath, jsonPath string) (int, error) {
	in, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer in.Close()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read csv row %d: %w", len(rows)+2, err)
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	data, err := json.MarshalIndent(rows, "", "    ")
	if err != nil {
		return 0, fmt.Errorf("marshal dataset: %w", err)
	}

	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return 0, fmt.Errorf("write dataset: %w", err)
	}

	return len(rows), nil
}
