package buyers

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/exportscout/exportscout/internal/model"
)

// CSVSource parses a user-supplied buyer list CSV.
//
// There is no schema enforcement: a header row is used when its column
// names are recognizable (company/country/contact, case-insensitive,
// any order), otherwise the first three columns are taken positionally.
// Extra columns are ignored and missing ones become empty fields. Only
// CSV syntax errors are surfaced.
type CSVSource struct {
	// path is the CSV file location.
	path string
}

// NewCSVSource creates a CSVSource reading from the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Buyers reads and parses the configured CSV file. The product term is
// accepted for interface compatibility; the file contents are returned
// as-is.
func (s *CSVSource) Buyers(_ context.Context, _ string) ([]model.BuyerRecord, error) {
	f, err := os.Open(s.path) //nolint:gosec // User-provided upload path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read buyer list: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	return Parse(f)
}

// Parse decodes buyer records from CSV content.
// Split out from Buyers so uploads from sources other than the local
// filesystem can reuse the same mapping.
func Parse(r io.Reader) ([]model.BuyerRecord, error) {
	reader := csv.NewReader(r)
	// Arbitrary schemas are allowed, including ragged rows.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse buyer CSV: %w", err)
	}
	if len(rows) == 0 {
		return []model.BuyerRecord{}, nil
	}

	companyCol, countryCol, contactCol, hasHeader := mapColumns(rows[0])

	data := rows
	if hasHeader {
		data = rows[1:]
	}

	records := make([]model.BuyerRecord, 0, len(data))
	for _, row := range data {
		records = append(records, model.BuyerRecord{
			Company: field(row, companyCol),
			Country: field(row, countryCol),
			Contact: field(row, contactCol),
		})
	}

	return records, nil
}

// mapColumns inspects the first row for recognizable header names.
// When any are found the row is treated as a header; otherwise columns
// are positional (0, 1, 2).
func mapColumns(first []string) (company, country, contact int, hasHeader bool) {
	company, country, contact = 0, 1, 2

	for i, name := range first {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "company", "company name", "buyer", "buyer name":
			company = i
			hasHeader = true
		case "country":
			country = i
			hasHeader = true
		case "contact", "email", "contact email":
			contact = i
			hasHeader = true
		}
	}

	return company, country, contact, hasHeader
}

// field returns the i-th column of a row, or empty when the row is too short.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
