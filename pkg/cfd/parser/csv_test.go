package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/ukaji3/cfd-go/pkg/cfd/models"
)

func TestReadCSV(t *testing.T) {
	data := `date, Open, Doing, Closed
2020-01-01, 10, 0, 0

2020-01-02, 9, 1,
`
	entries, err := ReadCSV(strings.NewReader(data), "flow.csv")
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if !entries[1].Date.Equal(models.NewDate(2020, 1, 2)) {
		t.Errorf("Expected 2020-01-02, got %v", entries[1].Date)
	}
	if entries[1].Count("Doing") != 1 {
		t.Errorf("Expected 1 doing, got %v", entries[1].Count("Doing"))
	}
	if _, ok := entries[1].Counts["Closed"]; ok {
		t.Error("Expected an empty cell to be skipped")
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
		row  int
	}{
		{"no header", "Open,Closed\n1,2\n", ErrNoHeader, 1},
		{"bad date", "date,Open\n2020-01-01,1\nlater,2\n", nil, 3},
		{"missing date", "date,Open\n,1\n", models.ErrMissingDate, 2},
	}

	for _, tt := range tests {
		_, err := ReadCSV(strings.NewReader(tt.data), "flow.csv")
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%s: expected a ParseError, got %v", tt.name, err)
			continue
		}
		if perr.Row != tt.row {
			t.Errorf("%s: expected row %d, got %d", tt.name, tt.row, perr.Row)
		}
		if tt.err != nil && !errors.Is(err, tt.err) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.err, err)
		}
	}
}
