package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/cfd-go/pkg/cfd/models"
)

// dateParser parses the date cell of a row.
type dateParser func(string) (models.Date, error)

// findHeaderRow returns the index of the first row with a cell reading
// "date", and that cell's column. Both are -1 when there is none.
func findHeaderRow(rows [][]string) (rowIdx, dateCol int) {
	for r, row := range rows {
		for c, cell := range row {
			if strings.EqualFold(strings.TrimSpace(cell), models.DateField) {
				return r, c
			}
		}
	}
	return -1, -1
}

// entriesFromRows converts the rows below the header into entries.
// Blank rows are skipped; so are cells that are not numbers.
func entriesFromRows(source string, rows [][]string, parseDate dateParser) ([]models.Entry, error) {
	headerIdx, dateCol := findHeaderRow(rows)
	if headerIdx < 0 {
		return nil, NewParseError(source, 1, ErrNoHeader)
	}
	header := rows[headerIdx]

	entries := make([]models.Entry, 0, len(rows)-headerIdx-1)
	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		rowNum := rowIdx + 1 // 1-based row index
		if isBlank(row) {
			continue
		}
		if dateCol >= len(row) || strings.TrimSpace(row[dateCol]) == "" {
			return nil, NewParseError(source, rowNum, models.ErrMissingDate)
		}
		date, err := parseDate(strings.TrimSpace(row[dateCol]))
		if err != nil {
			return nil, NewParseError(source, rowNum, err)
		}

		counts := make(map[string]float64, len(header)-1)
		for colIdx, cell := range row {
			if colIdx == dateCol || colIdx >= len(header) {
				continue
			}
			key := strings.TrimSpace(header[colIdx])
			if key == "" {
				continue
			}
			if v, ok := parseCount(cell); ok {
				counts[key] = v
			}
		}
		entries = append(entries, models.NewEntry(date, counts))
	}
	return entries, nil
}

// parseCount parses a numeric cell.
func parseCount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
