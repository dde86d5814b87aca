package cfd

import (
	"errors"
	"strconv"

	"github.com/ukaji3/cfd-go/pkg/cfd/render"
)

// Parts of the drawn chart, used as element classes.
const (
	PartChart   = "chart"
	PartLayer   = "layer"
	PartArea    = "area"
	PartAxis    = "axis"
	PartLegend  = "legend"
	PartTitle   = "title"
	PartMarker  = "marker"
	PartPredict = "predict"
)

const (
	areaStroke     = 0.5
	outlineWidth   = 3.0
	lineWidth      = 1.0
	tickSize       = 6.0
	tickPadding    = 9.0
	legendX        = 5.0
	layerLabelGap  = 50.0
	titleRow       = -55.0
	markerLabelRow = -15.0
	timeTicks      = 10
	valueTicks     = 5
)

// Paint draws the chart onto c: areas, projection, markers, axes and
// legend, in that order.
func (r *Resolved) Paint(c render.Canvas) error {
	c.Begin(r.Width, r.Height)
	c.Group(PartChart, r.Margin.Left, r.Margin.Top)
	r.drawLayers(c)
	r.drawPrediction(c)
	r.drawMarkers(c)
	r.drawAxis(c)
	r.drawLegend(c)
	c.GroupEnd()
	return c.End()
}

// font returns the chart font.
func (r *Resolved) font() render.Font {
	return render.Font{Size: r.Style.FontSize, Family: r.Style.FontFamily}
}

// textStyle centers text vertically on its y position.
func (r *Resolved) textStyle(fill string, anchor render.Anchor) render.TextStyle {
	return render.TextStyle{
		Font:   r.font(),
		Fill:   fill,
		Anchor: anchor,
		DY:     r.Style.FontSize / 3,
	}
}

func (r *Resolved) drawLayers(c render.Canvas) {
	layers := r.Layers()
	Logger().Debug("cfd: drawing layers", "layers", len(layers), "visible", len(r.Visible()))

	for _, l := range layers {
		st := r.SeriesStyle(l.Key.Class)
		c.Group(PartLayer, 0, 0)
		if len(l.Points) > 0 {
			c.Path(PartArea, r.areaOutline(l), true, render.Paint{
				Fill:        st.Color,
				Stroke:      st.Stroke,
				StrokeWidth: areaStroke,
			})
		}
		// Label bands tall enough to hold a line of text.
		if last, ok := l.Last(); ok && r.Has(DrawLegend) && r.Y.Map(last.Y0)-r.Y.Map(last.Y1) >= r.Style.FontSize {
			c.Text(PartLegend, r.InnerWidth+layerLabelGap, r.Y.Map(last.Y1),
				formatCount(last.Value())+" "+l.Key.Name,
				r.textStyle(st.Color, render.AnchorStart))
		}
		c.GroupEnd()
	}
}

// areaOutline runs along the top of the band and back along its bottom.
func (r *Resolved) areaOutline(l Layer) []render.Point {
	pts := make([]render.Point, 0, 2*len(l.Points))
	for _, p := range l.Points {
		pts = append(pts, render.Point{X: r.X.Map(p.Date), Y: r.Y.Map(p.Y1)})
	}
	for i := len(l.Points) - 1; i >= 0; i-- {
		p := l.Points[i]
		pts = append(pts, render.Point{X: r.X.Map(p.Date), Y: r.Y.Map(p.Y0)})
	}
	return pts
}

func (r *Resolved) drawPrediction(c render.Canvas) {
	p, err := r.Prediction()
	if errors.Is(err, ErrDegenerateTrend) {
		Logger().Warn("cfd: prediction skipped", "from", r.Config.Predict.String(), "error", err)
		return
	}
	if p == nil {
		return
	}
	st := r.Style.Predict
	drawOutlined(c, PartPredict, p.Path, st.Color, st.BackgroundColor)
	c.Text(PartPredict, p.LabelX, labelRow, p.Label(), r.textStyle(st.Color, render.AnchorEnd))
}

func (r *Resolved) drawMarkers(c render.Canvas) {
	if !r.Has(DrawMarkers) {
		return
	}
	st := r.Style.Marker
	for _, m := range r.Config.Markers {
		if !r.InRange(m.Date) {
			Logger().Debug("cfd: marker out of range", "date", m.Date.String())
			continue
		}
		x := r.X.Map(m.Date)
		drawOutlined(c, PartMarker, []render.Point{{X: x, Y: r.InnerHeight}, {X: x, Y: 0}}, st.Color, st.BackgroundColor)
		c.Text(PartMarker, x, markerLabelRow, m.Caption(), r.textStyle(st.Color, render.AnchorMiddle))
	}
}

// drawOutlined strokes pts twice: wide in the background color, then thin
// in the foreground color.
func drawOutlined(c render.Canvas, class string, pts []render.Point, color, background string) {
	c.Path(class, pts, false, render.Paint{Stroke: background, StrokeWidth: outlineWidth})
	c.Path(class, pts, false, render.Paint{Stroke: color, StrokeWidth: lineWidth})
}

func (r *Resolved) drawAxis(c render.Canvas) {
	if !r.Has(DrawAxis) {
		return
	}
	line := render.Paint{Stroke: r.Style.Axis.Color, StrokeWidth: lineWidth}
	size := r.Style.FontSize

	// Time axis along the bottom.
	c.Group(PartAxis, 0, r.InnerHeight)
	c.Path(PartAxis, []render.Point{{X: 0, Y: tickSize}, {X: 0, Y: 0}, {X: r.InnerWidth, Y: 0}, {X: r.InnerWidth, Y: tickSize}}, false, line)
	for _, t := range r.X.Ticks(timeTicks) {
		x := r.X.Map(t.Date)
		c.Path(PartAxis, []render.Point{{X: x, Y: 0}, {X: x, Y: tickSize}}, false, line)
		ts := r.textStyle(r.Style.Axis.Color, render.AnchorMiddle)
		ts.DY = 0.71 * size
		c.Text(PartAxis, x, tickPadding, t.Label, ts)
	}
	c.GroupEnd()

	// Value axis along the right edge.
	c.Group(PartAxis, r.InnerWidth, 0)
	c.Path(PartAxis, []render.Point{{X: tickSize, Y: r.InnerHeight}, {X: 0, Y: r.InnerHeight}, {X: 0, Y: 0}, {X: tickSize, Y: 0}}, false, line)
	for _, v := range r.Y.Ticks(valueTicks) {
		y := r.Y.Map(v)
		c.Path(PartAxis, []render.Point{{X: 0, Y: y}, {X: tickSize, Y: y}}, false, line)
		ts := r.textStyle(r.Style.Axis.Color, render.AnchorStart)
		ts.DY = 0.32 * size
		c.Text(PartAxis, tickPadding, y, formatCount(v), ts)
	}
	c.GroupEnd()
}

func (r *Resolved) drawLegend(c render.Canvas) {
	if r.Has(DrawTitle) && r.Config.Title != "" {
		c.Text(PartTitle, legendX, titleRow, r.Config.Title, r.textStyle(r.Style.Color, render.AnchorStart))
	}
	if !r.Has(DrawLegend) {
		return
	}
	lh := r.Style.FontSize
	items := []struct {
		text string
		fill string
	}{
		{"To Do", r.Style.ToDo.Color},
		{"In Progress", r.Style.Progress.Color},
		{"Done", r.Style.Done.Color},
	}
	for i, it := range items {
		c.Text(PartLegend, legendX, lh*float64(i+1), it.text, r.textStyle(it.fill, render.AnchorStart))
	}
	c.Text(PartLegend, r.InnerWidth+layerLabelGap, labelRow, r.Config.Data.Unit.Label(), r.textStyle(r.Style.Color, render.AnchorStart))
}

// formatCount prints a count with as few digits as needed.
func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
