package cfd

import (
	"reflect"
	"testing"

	"github.com/ukaji3/cfd-go/pkg/cfd/models"
)

func TestResolveGeometry(t *testing.T) {
	r := mustResolve(t, testConfig())

	if r.InnerWidth != 550 || r.InnerHeight != 295 {
		t.Errorf("Expected inner size 550x295, got %vx%v", r.InnerWidth, r.InnerHeight)
	}
	if r.Y.D0 != 0 || r.Y.D1 != 20 {
		t.Errorf("Expected value domain [0, 20], got [%v, %v]", r.Y.D0, r.Y.D1)
	}
	from, to := r.X.Domain()
	if !from.Equal(models.NewDate(2020, 1, 1)) || !to.Equal(models.NewDate(2020, 1, 10)) {
		t.Errorf("Expected time domain 2020-01-01..2020-01-10, got %v..%v", from, to)
	}
}

func TestResolveKeyOrder(t *testing.T) {
	cfg := testConfig()
	cfg.Data.ToDo = []string{"Backlog", "Open"}
	cfg.Data.Progress = []string{"Doing", "Review"}
	cfg.Data.Done = []string{"Closed", "Review"}

	r := mustResolve(t, cfg)

	expected := []StatusKey{
		{Name: "Closed", Class: ClassDone},
		{Name: "Review", Class: ClassProgress},
		{Name: "Doing", Class: ClassProgress},
		{Name: "Review", Class: ClassProgress},
		{Name: "Backlog", Class: ClassToDo},
		{Name: "Open", Class: ClassToDo},
	}
	if !reflect.DeepEqual(r.Keys, expected) {
		t.Errorf("Expected keys %v, got %v", expected, r.Keys)
	}
}

func TestResolveDomainOverrides(t *testing.T) {
	cfg := testConfig()
	cfg.FromDate = DatePtr(models.NewDate(2020, 1, 5))
	cfg.ToDate = DatePtr(models.NewDate(2020, 1, 8))

	r := mustResolve(t, cfg)

	from, to := r.X.Domain()
	if !from.Equal(*cfg.FromDate) || !to.Equal(*cfg.ToDate) {
		t.Errorf("Expected time domain %v..%v, got %v..%v", cfg.FromDate, cfg.ToDate, from, to)
	}
	// The value domain still covers hidden entries.
	if r.Y.D1 != 20 {
		t.Errorf("Expected value domain max 20, got %v", r.Y.D1)
	}
}

func TestInRangeIsInclusive(t *testing.T) {
	cfg := testConfig()
	cfg.FromDate = DatePtr(models.NewDate(2020, 1, 5))
	cfg.ToDate = DatePtr(models.NewDate(2020, 1, 10))
	r := mustResolve(t, cfg)

	tests := []struct {
		date     models.Date
		expected bool
	}{
		{models.NewDate(2020, 1, 4), false},
		{models.NewDate(2020, 1, 5), true},
		{models.NewDate(2020, 1, 7), true},
		{models.NewDate(2020, 1, 10), true},
		{models.NewDate(2020, 1, 11), false},
	}
	for _, tt := range tests {
		if got := r.InRange(tt.date); got != tt.expected {
			t.Errorf("InRange(%v): expected %v, got %v", tt.date, tt.expected, got)
		}
	}
	if got := len(r.Visible()); got != 2 {
		t.Errorf("Expected 2 visible entries, got %d", got)
	}
}

func TestInRangeDefaultsToEntries(t *testing.T) {
	r := mustResolve(t, testConfig())
	if !r.InRange(models.NewDate(2020, 1, 1)) || !r.InRange(models.NewDate(2020, 1, 10)) {
		t.Error("Expected the first and last entry dates to be in range")
	}
	if r.InRange(models.NewDate(2019, 12, 31)) {
		t.Error("Expected a day before the first entry to be out of range")
	}
}

func TestLayers(t *testing.T) {
	r := mustResolve(t, testConfig())
	layers := r.Layers()

	if len(layers) != 3 {
		t.Fatalf("Expected 3 layers, got %d", len(layers))
	}
	names := []string{layers[0].Key.Name, layers[1].Key.Name, layers[2].Key.Name}
	if !reflect.DeepEqual(names, []string{"Closed", "Doing", "Open"}) {
		t.Errorf("Expected layers Closed, Doing, Open, got %v", names)
	}

	// Each band starts where the one below ends.
	for i := 1; i < len(layers); i++ {
		for j, p := range layers[i].Points {
			if below := layers[i-1].Points[j]; p.Y0 != below.Y1 {
				t.Errorf("Layer %d point %d: expected Y0 %v, got %v", i, j, below.Y1, p.Y0)
			}
		}
	}

	top := layers[len(layers)-1]
	totals := []float64{10, 14, 20}
	for j, p := range top.Points {
		if p.Y1 != totals[j] {
			t.Errorf("Point %d: expected total %v, got %v", j, totals[j], p.Y1)
		}
	}
	if last, _ := top.Last(); last.Y1 != r.Y.D1 {
		t.Errorf("Expected the top of the stack to reach the value domain max %v, got %v", r.Y.D1, last.Y1)
	}

	closed, _ := layers[0].Last()
	if closed.Value() != 10 {
		t.Errorf("Expected the last Closed band to hold 10, got %v", closed.Value())
	}
}

func TestLayersMissingCountIsZero(t *testing.T) {
	cfg := testConfig()
	delete(cfg.Data.Entries[1].Counts, "Doing")
	r := mustResolve(t, cfg)

	doing := r.Layers()[1]
	if v := doing.Points[1].Value(); v != 0 {
		t.Errorf("Expected a missing count to stack as 0, got %v", v)
	}
}

func TestLayersEmptyRange(t *testing.T) {
	cfg := testConfig()
	cfg.FromDate = DatePtr(models.NewDate(2021, 1, 1))
	cfg.ToDate = DatePtr(models.NewDate(2021, 2, 1))
	r := mustResolve(t, cfg)

	for _, l := range r.Layers() {
		if len(l.Points) != 0 {
			t.Errorf("Expected no points in %s, got %d", l.Key.Name, len(l.Points))
		}
		if _, ok := l.Last(); ok {
			t.Errorf("Expected no last point in %s", l.Key.Name)
		}
	}
}
