package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"leadscoring_backend/internal/leads/repository"
	"leadscoring_backend/platform/apperr"
)

// requiredColumns is the expected CSV header, in order. The bio column is
// optional free text and may be omitted entirely.
var requiredColumns = []string{"name", "role", "company", "industry", "location"}

const bioColumn = "bio"

// parseLeadsCSV reads a lead CSV into create params. The whole file is
// rejected when the header is wrong or any row misses a required field, so
// an upload either lands completely or not at all.
func parseLeadsCSV(r io.Reader) ([]repository.CreateParams, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperr.Validation("csv file is empty")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "failed to read csv header", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var params []repository.CreateParams
	var rowErrors []string
	rowNum := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, fmt.Sprintf("malformed csv row %d", rowNum), err)
		}

		p := repository.CreateParams{
			Name:     field(record, columns, "name"),
			Role:     field(record, columns, "role"),
			Company:  field(record, columns, "company"),
			Industry: field(record, columns, "industry"),
			Location: field(record, columns, "location"),
			Bio:      field(record, columns, bioColumn),
		}

		if missing := missingFields(p); len(missing) > 0 {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: missing %s", rowNum, strings.Join(missing, ", ")))
			continue
		}

		params = append(params, p)
	}

	if len(rowErrors) > 0 {
		return nil, apperr.Validation("csv contains invalid rows").WithDetails(rowErrors)
	}
	if len(params) == 0 {
		return nil, apperr.Validation("csv contains no lead rows")
	}

	return params, nil
}

// mapColumns resolves header names to record indexes, case-insensitively.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, apperr.Validation("csv header is missing required columns").WithDetails(missing)
	}

	return columns, nil
}

func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func missingFields(p repository.CreateParams) []string {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Role == "" {
		missing = append(missing, "role")
	}
	if p.Company == "" {
		missing = append(missing, "company")
	}
	if p.Industry == "" {
		missing = append(missing, "industry")
	}
	if p.Location == "" {
		missing = append(missing, "location")
	}
	return missing
}
