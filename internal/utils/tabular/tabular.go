// Package tabular parses uploaded CSV and XLSX files into header-keyed rows
// for the bulk importer. Headers are trimmed and lowercased so files exported
// from different tools line up with the required column names.
package tabular

import "strings"

// File is a parsed tabular upload.
type File struct {
	// Headers are the normalized column headers from the first row.
	Headers []string

	// Rows holds the data rows as header -> raw cell value. Cells beyond
	// the header width are dropped; short rows yield empty strings.
	Rows []map[string]string
}

// MissingColumns returns the required column names absent from the file.
func (f *File) MissingColumns(required []string) []string {
	present := make(map[string]bool, len(f.Headers))
	for _, h := range f.Headers {
		present[h] = true
	}
	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
