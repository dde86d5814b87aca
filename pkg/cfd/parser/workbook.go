package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/cfd-go/pkg/cfd/models"
	"github.com/xuri/excelize/v2"
)

// cellRange is an inclusive block of cells, 1-based.
type cellRange struct {
	R1, C1 int
	R2, C2 int
}

// ReadWorkbook reads entries from an xlsx file. ref names the sheet and
// optionally a range, e.g. "Flow" or "'Flow data'!$A$3:$E$40"; empty
// means the first sheet.
func ReadWorkbook(path, ref string) ([]models.Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ExtractEntries(f, ref)
}

// ExtractEntries reads entries from a sheet of an open workbook.
// The first row with a "date" cell is the header; the other header cells
// name the status keys. Date cells may be Excel dates or date strings.
func ExtractEntries(f *excelize.File, ref string) ([]models.Entry, error) {
	sheetName, area := parseSheetReference(ref)
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	// Raw values keep dates as serial numbers regardless of cell format.
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if area != nil {
		rows = cropRows(rows, *area)
	}

	return entriesFromRows(sheetName, rows, func(s string) (models.Date, error) {
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			t, err := excelize.ExcelDateToTime(serial, false)
			if err != nil {
				return models.Date{}, err
			}
			return models.DateOf(t), nil
		}
		return models.ParseDate(s)
	})
}

// parseSheetReference splits a reference like 'Sheet 1'!$A$1:$D$10 into
// the sheet name and the range. A bare name has no range.
func parseSheetReference(ref string) (string, *cellRange) {
	ref = strings.TrimSpace(ref)
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return strings.Trim(ref, "'"), nil
	}
	sheet := strings.Trim(ref[:idx], "'")
	return sheet, parseRange(ref[idx+1:])
}

// parseRange parses a range string like $A$1:$D$10.
func parseRange(rangeStr string) *cellRange {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &cellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}

// cropRows keeps the cells inside area.
func cropRows(rows [][]string, area cellRange) [][]string {
	var out [][]string
	for rowIdx := area.R1 - 1; rowIdx < area.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		var cropped []string
		for colIdx := area.C1 - 1; colIdx < area.C2 && colIdx < len(row); colIdx++ {
			cropped = append(cropped, row[colIdx])
		}
		out = append(out, cropped)
	}
	return out
}
