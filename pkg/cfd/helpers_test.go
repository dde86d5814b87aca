package cfd

import (
	"math"
	"testing"

	"github.com/ukaji3/cfd-go/pkg/cfd/models"
	"github.com/ukaji3/cfd-go/pkg/cfd/render"
)

// testConfig returns a three-entry chart with totals 10, 14 and 20.
func testConfig() *Config {
	return &Config{
		Surface: render.NewSVG(),
		Data: &models.Dataset{
			Entries: []models.Entry{
				models.NewEntry(models.NewDate(2020, 1, 1), map[string]float64{"Open": 10, "Doing": 0, "Closed": 0}),
				models.NewEntry(models.NewDate(2020, 1, 5), map[string]float64{"Open": 6, "Doing": 4, "Closed": 4}),
				models.NewEntry(models.NewDate(2020, 1, 10), map[string]float64{"Open": 5, "Doing": 5, "Closed": 10}),
			},
			Unit:     models.UnitIssues,
			ToDo:     []string{"Open"},
			Progress: []string{"Doing"},
			Done:     []string{"Closed"},
		},
	}
}

func mustResolve(t *testing.T, cfg *Config) *Resolved {
	t.Helper()
	r, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	return r
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
