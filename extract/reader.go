// Package extract reads the raw CSV extracts and turns each one into a
// cleaned, typed table ready for the dimension and fact builders.
package extract

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ruking/advancement-etl/models"
)

// ReadCSV reads one raw extract into a table. Column names are kept exactly
// as they appear in the header; empty cells become null, everything else is
// read as a string. Type coercion happens later in the cleanup passes.
func ReadCSV(path, tableName string) (*models.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return models.NewTable(tableName, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	table := models.NewTable(tableName, header)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		row := make(models.Row, len(header))
		for i, col := range header {
			if i >= len(record) || record[i] == "" {
				row[col] = models.NullValue()
				continue
			}
			row[col] = models.StringValue(record[i])
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
