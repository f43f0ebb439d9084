package ledger

import (
	"errors"
	"fmt"
	"io"
)

var (
	requiredFields = []field{fieldDate, fieldAmount, fieldDescription}
	optionalFields = []field{fieldCategory, fieldMerchant, fieldTags, fieldNotes}
)

type ValidationReport struct {
	Valid                  bool     `json:"valid"`
	MissingColumns         []string `json:"missing_columns"`
	PresentOptionalColumns []string `json:"present_optional_columns"`
	ValidationErrors       []string `json:"validation_errors"`
	RowCount               int      `json:"row_count"`
	Columns                []string `json:"columns"`
}

// Validate checks that a ledger has the columns and values Decode needs.
// It never fails; read problems are reported inside the report.
func Validate(r io.Reader) ValidationReport {
	report := ValidationReport{
		MissingColumns:         []string{},
		PresentOptionalColumns: []string{},
		ValidationErrors:       []string{},
		Columns:                []string{},
	}

	cr := newCSVReader(r)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrNoHeader
		}
		report.ValidationErrors = append(report.ValidationErrors, err.Error())
		return report
	}
	report.Columns = header
	cols := resolveColumns(header)

	for _, f := range requiredFields {
		if !cols.has(f) {
			report.MissingColumns = append(report.MissingColumns, fieldNames[f])
		}
	}
	for _, f := range optionalFields {
		if cols.has(f) {
			report.PresentOptionalColumns = append(report.PresentOptionalColumns, fieldNames[f])
		}
	}

	var badAmounts, badDates, badRows int
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			badRows++
			continue
		}
		report.RowCount++

		if cols.has(fieldAmount) {
			if _, ok := parseAmount(cols.value(row, fieldAmount)); !ok {
				badAmounts++
			}
		}
		if cols.has(fieldDate) {
			if _, ok := parseDate(cols.value(row, fieldDate)); !ok {
				badDates++
			}
		}
	}

	if badRows > 0 {
		report.ValidationErrors = append(report.ValidationErrors, fmt.Sprintf("%d rows are malformed CSV", badRows))
	}
	if badAmounts > 0 {
		report.ValidationErrors = append(report.ValidationErrors, fmt.Sprintf("Amount column contains %d non-numeric values", badAmounts))
	}
	if badDates > 0 {
		report.ValidationErrors = append(report.ValidationErrors, fmt.Sprintf("Date column contains %d invalid dates", badDates))
	}

	report.Valid = len(report.MissingColumns) == 0 && len(report.ValidationErrors) == 0
	return report
}
