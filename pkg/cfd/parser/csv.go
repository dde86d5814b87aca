package parser

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/cfd-go/pkg/cfd/models"
)

// ReadCSV reads entries from comma separated values with a header row.
// source names the input in errors.
func ReadCSV(r io.Reader, source string) ([]models.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return entriesFromRows(source, rows, models.ParseDate)
}
