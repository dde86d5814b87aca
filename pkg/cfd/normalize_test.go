package cfd

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ukaji3/cfd-go/pkg/cfd/models"
	"github.com/ukaji3/cfd-go/pkg/cfd/render"
)

// divSurface is a surface that is not an SVG element.
type divSurface struct {
	*render.SVG
}

func (divSurface) TagName() string { return "div" }

func TestNormalizeDefaults(t *testing.T) {
	n, err := Normalize(testConfig())
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if *n.Width != 800 || *n.Height != 400 {
		t.Errorf("Expected 800x400, got %vx%v", *n.Width, *n.Height)
	}
	m := n.Margin
	if *m.Top != 75 || *m.Right != 210 || *m.Bottom != 30 || *m.Left != 40 {
		t.Errorf("Expected margins 75/210/30/40, got %v/%v/%v/%v", *m.Top, *m.Right, *m.Bottom, *m.Left)
	}
	if !reflect.DeepEqual(n.DrawOptions, AllDrawOptions()) {
		t.Errorf("Expected all draw options, got %v", n.DrawOptions)
	}

	s := n.Style
	checks := []struct {
		name     string
		got      string
		expected string
	}{
		{"fontFamily", s.FontFamily, "sans-serif"},
		{"color", s.Color, "#222"},
		{"backgroundColor", s.BackgroundColor, "#fff"},
		{"axis.color", s.Axis.Color, "#222"},
		{"toDo.color", s.ToDo.Color, "#bec0c2"},
		{"toDo.stroke", s.ToDo.Stroke, "#fff"},
		{"progress.color", s.Progress.Color, "#808285"},
		{"progress.stroke", s.Progress.Stroke, "#fff"},
		{"done.color", s.Done.Color, "#222"},
		{"done.stroke", s.Done.Stroke, "#fff"},
		{"predict.color", s.Predict.Color, "#222"},
		{"predict.backgroundColor", s.Predict.BackgroundColor, "#fff"},
		{"marker.color", s.Marker.Color, "#222"},
		{"marker.backgroundColor", s.Marker.BackgroundColor, "#fff"},
	}
	for _, c := range checks {
		if c.got != c.expected {
			t.Errorf("%s: expected %q, got %q", c.name, c.expected, c.got)
		}
	}
	if s.FontSize != 12 {
		t.Errorf("Expected font size 12, got %v", s.FontSize)
	}
}

func TestNormalizeKeepsPresentFields(t *testing.T) {
	cfg := testConfig()
	cfg.Width = Float(640)
	cfg.Margin = &Margin{Top: Float(0)}
	cfg.DrawOptions = []DrawOption{}
	cfg.Style = &Style{
		BackgroundColor: "#000",
		Done:            &SeriesStyle{Color: "#00f"},
		Marker:          &OverlayStyle{BackgroundColor: "#eee"},
	}

	n, err := Normalize(cfg)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if *n.Width != 640 {
		t.Errorf("Expected width 640, got %v", *n.Width)
	}
	if *n.Margin.Top != 0 {
		t.Errorf("Expected explicit top margin 0 to be kept, got %v", *n.Margin.Top)
	}
	if *n.Margin.Left != 40 {
		t.Errorf("Expected default left margin, got %v", *n.Margin.Left)
	}
	if len(n.DrawOptions) != 0 {
		t.Errorf("Expected empty draw options to stay empty, got %v", n.DrawOptions)
	}
	if n.Style.Done.Color != "#00f" {
		t.Errorf("Expected done color #00f, got %q", n.Style.Done.Color)
	}
	if n.Style.Done.Stroke != "#000" {
		t.Errorf("Expected done stroke to default to the background, got %q", n.Style.Done.Stroke)
	}
	if n.Style.Predict.Color != "#00f" {
		t.Errorf("Expected predict color to follow done color, got %q", n.Style.Predict.Color)
	}
	if n.Style.Marker.BackgroundColor != "#eee" || n.Style.Marker.Color != "#222" {
		t.Errorf("Unexpected marker style %+v", *n.Style.Marker)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	cfgs := map[string]*Config{
		"bare": testConfig(),
		"partial": func() *Config {
			c := testConfig()
			c.Height = Float(300)
			c.Style = &Style{ToDo: &SeriesStyle{Stroke: "#ccc"}}
			c.Predict = DatePtr(models.NewDate(2020, 1, 2))
			return c
		}(),
	}
	for name, cfg := range cfgs {
		once, err := Normalize(cfg)
		if err != nil {
			t.Fatalf("%s: Normalize failed: %v", name, err)
		}
		twice, err := Normalize(&once)
		if err != nil {
			t.Fatalf("%s: second Normalize failed: %v", name, err)
		}
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("%s: normalizing twice changed the result:\n%+v\n%+v", name, once, twice)
		}
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	cfg := testConfig()
	cfg.Style = &Style{Done: &SeriesStyle{Color: "#00f"}}

	n, err := Normalize(cfg)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if cfg.Width != nil || cfg.Margin != nil || cfg.DrawOptions != nil {
		t.Errorf("Expected caller geometry to stay unset, got width=%v margin=%v options=%v", cfg.Width, cfg.Margin, cfg.DrawOptions)
	}
	if cfg.Style.Done.Stroke != "" || cfg.Style.ToDo != nil {
		t.Errorf("Expected caller style to stay untouched, got %+v", *cfg.Style)
	}

	n.Data.Entries[0].Counts["Open"] = 99
	if cfg.Data.Entries[0].Count("Open") != 10 {
		t.Errorf("Expected normalized entries to be a copy")
	}
}

func TestNormalizeValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config) *Config
		err    error
		field  string
	}{
		{"nil config", func(*Config) *Config { return nil }, ErrNoConfig, "config"},
		{"no surface", func(c *Config) *Config { c.Surface = nil; return c }, ErrNoSurface, "svg"},
		{"not svg", func(c *Config) *Config { c.Surface = divSurface{render.NewSVG()}; return c }, ErrNoSurface, "svg"},
		{"no data", func(c *Config) *Config { c.Data = nil; return c }, ErrNoData, "data"},
		{"no entries", func(c *Config) *Config { c.Data.Entries = nil; return c }, ErrNoEntries, "data.entries"},
		{"empty entries", func(c *Config) *Config { c.Data.Entries = []models.Entry{}; return c }, ErrEmptyEntries, "data.entries"},
		{"no toDo", func(c *Config) *Config { c.Data.ToDo = nil; return c }, ErrNoToDo, "data.toDo"},
		{"no progress", func(c *Config) *Config { c.Data.Progress = nil; return c }, ErrNoProgress, "data.progress"},
		{"no done", func(c *Config) *Config { c.Data.Done = nil; return c }, ErrNoDone, "data.done"},
	}

	for _, tt := range tests {
		_, err := Normalize(tt.mutate(testConfig()))
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.err, err)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != tt.field {
			t.Errorf("%s: expected ValidationError on %q, got %v", tt.name, tt.field, err)
		}
	}
}

func TestNormalizeAcceptsEmptyStatusSets(t *testing.T) {
	cfg := testConfig()
	cfg.Data.Progress = []string{}
	if _, err := Normalize(cfg); err != nil {
		t.Errorf("Expected an empty progress set to be valid, got %v", err)
	}
}
