package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV parses CSV content into header-keyed rows. A UTF-8 byte order mark
// is tolerated (spreadsheet exports commonly carry one). Rows with a
// different field count than the header are accepted: extra cells are
// dropped, missing cells read as empty.
func ReadCSV(content []byte) (*File, error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headerRecord, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	headers := make([]string, len(headerRecord))
	for i, h := range headerRecord {
		headers[i] = normalizeHeader(h)
	}

	file := &File{Headers: headers}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		file.Rows = append(file.Rows, row)
	}

	return file, nil
}
