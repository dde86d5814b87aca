// Package cfd draws cumulative flow diagrams: stacked areas of work item
// counts per workflow state over time, with an optional linear projection
// of the completion date.
package cfd

import (
	"github.com/ukaji3/cfd-go/pkg/cfd/models"
	"github.com/ukaji3/cfd-go/pkg/cfd/render"
)

// Defaults applied by Normalize to absent fields.
const (
	DefaultWidth           = 800.0
	DefaultHeight          = 400.0
	DefaultMarginTop       = 75.0
	DefaultMarginRight     = 210.0
	DefaultMarginBottom    = 30.0
	DefaultMarginLeft      = 40.0
	DefaultFontSize        = 12.0
	DefaultFontFamily      = "sans-serif"
	DefaultColor           = "#222"
	DefaultBackgroundColor = "#fff"
	DefaultToDoColor       = "#bec0c2"
	DefaultProgressColor   = "#808285"
	DefaultDoneColor       = "#222"
)

// DrawOption names an optional part of the chart.
type DrawOption string

const (
	// DrawTitle draws the title above the chart.
	DrawTitle DrawOption = "title"
	// DrawAxis draws the time and value axes.
	DrawAxis DrawOption = "axis"
	// DrawLegend draws the color key, the unit and the per-layer labels.
	DrawLegend DrawOption = "legend"
	// DrawMarkers draws the configured date markers.
	DrawMarkers DrawOption = "markers"
	// DrawPredict draws the completion projection.
	DrawPredict DrawOption = "predict"
)

// AllDrawOptions returns every draw option, the default set.
func AllDrawOptions() []DrawOption {
	return []DrawOption{DrawTitle, DrawAxis, DrawLegend, DrawMarkers, DrawPredict}
}

// Margin is the space around the plot area. Nil sides take the default.
type Margin struct {
	Top    *float64 `json:"top,omitempty" yaml:"top,omitempty"`
	Right  *float64 `json:"right,omitempty" yaml:"right,omitempty"`
	Bottom *float64 `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Left   *float64 `json:"left,omitempty" yaml:"left,omitempty"`
}

// AxisStyle styles the axes.
type AxisStyle struct {
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// SeriesStyle styles the areas of one status class.
type SeriesStyle struct {
	Color  string `json:"color,omitempty" yaml:"color,omitempty"`
	Stroke string `json:"stroke,omitempty" yaml:"stroke,omitempty"`
}

// OverlayStyle styles a line drawn over the areas. The line is outlined
// with BackgroundColor.
type OverlayStyle struct {
	Color           string `json:"color,omitempty" yaml:"color,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
}

// Style holds fonts and colors. Zero values are absent.
type Style struct {
	FontSize        float64       `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	FontFamily      string        `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	Color           string        `json:"color,omitempty" yaml:"color,omitempty"`
	BackgroundColor string        `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	Axis            *AxisStyle    `json:"axis,omitempty" yaml:"axis,omitempty"`
	ToDo            *SeriesStyle  `json:"toDo,omitempty" yaml:"toDo,omitempty"`
	Progress        *SeriesStyle  `json:"progress,omitempty" yaml:"progress,omitempty"`
	Done            *SeriesStyle  `json:"done,omitempty" yaml:"done,omitempty"`
	Predict         *OverlayStyle `json:"predict,omitempty" yaml:"predict,omitempty"`
	Marker          *OverlayStyle `json:"marker,omitempty" yaml:"marker,omitempty"`
}

// Config describes a chart. It is owned by the caller and never modified
// by this package.
type Config struct {
	// Surface is the SVG surface the chart is drawn on.
	Surface render.Surface `json:"-" yaml:"-"`
	// Data is the dataset to draw.
	Data *models.Dataset `json:"data,omitempty" yaml:"data,omitempty"`
	// Width is the image width in pixels (nil = DefaultWidth).
	Width *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	// Height is the image height in pixels (nil = DefaultHeight).
	Height *float64 `json:"height,omitempty" yaml:"height,omitempty"`
	// Margin is the space around the plot area.
	Margin *Margin `json:"margin,omitempty" yaml:"margin,omitempty"`
	// Style holds fonts and colors.
	Style *Style `json:"style,omitempty" yaml:"style,omitempty"`
	// DrawOptions selects optional parts. Nil means all, empty means none.
	DrawOptions []DrawOption `json:"drawOptions,omitempty" yaml:"drawOptions,omitempty"`
	// FromDate clips the visible range on the left.
	FromDate *models.Date `json:"fromDate,omitempty" yaml:"fromDate,omitempty"`
	// ToDate clips the visible range on the right.
	ToDate *models.Date `json:"toDate,omitempty" yaml:"toDate,omitempty"`
	// Predict is the day the completion projection starts from.
	Predict *models.Date `json:"predict,omitempty" yaml:"predict,omitempty"`
	// Markers are dated annotations.
	Markers []models.Marker `json:"markers,omitempty" yaml:"markers,omitempty"`
	// Title is drawn above the chart.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// Float returns a pointer to v, for the optional geometry fields.
func Float(v float64) *float64 {
	return &v
}

// DatePtr returns a pointer to d, for the optional date fields.
func DatePtr(d models.Date) *models.Date {
	return &d
}

// Clone returns a deep copy of c. The surface is shared.
func (c *Config) Clone() Config {
	out := *c
	out.Data = c.Data.Clone()
	out.Width = cloneFloat(c.Width)
	out.Height = cloneFloat(c.Height)
	if c.Margin != nil {
		out.Margin = &Margin{
			Top:    cloneFloat(c.Margin.Top),
			Right:  cloneFloat(c.Margin.Right),
			Bottom: cloneFloat(c.Margin.Bottom),
			Left:   cloneFloat(c.Margin.Left),
		}
	}
	out.Style = c.Style.clone()
	if c.DrawOptions != nil {
		out.DrawOptions = append(make([]DrawOption, 0, len(c.DrawOptions)), c.DrawOptions...)
	}
	out.FromDate = cloneDate(c.FromDate)
	out.ToDate = cloneDate(c.ToDate)
	out.Predict = cloneDate(c.Predict)
	if c.Markers != nil {
		out.Markers = append(make([]models.Marker, 0, len(c.Markers)), c.Markers...)
	}
	return out
}

func (s *Style) clone() *Style {
	if s == nil {
		return nil
	}
	out := *s
	if s.Axis != nil {
		a := *s.Axis
		out.Axis = &a
	}
	out.ToDo = s.ToDo.clone()
	out.Progress = s.Progress.clone()
	out.Done = s.Done.clone()
	out.Predict = s.Predict.clone()
	out.Marker = s.Marker.clone()
	return &out
}

func (s *SeriesStyle) clone() *SeriesStyle {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}

func (s *OverlayStyle) clone() *OverlayStyle {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(*v)
}

func cloneDate(d *models.Date) *models.Date {
	if d == nil {
		return nil
	}
	return DatePtr(*d)
}
