package cfd

import (
	"math"
	"time"

	"github.com/ukaji3/cfd-go/pkg/cfd/models"
	"github.com/ukaji3/cfd-go/pkg/cfd/render"
)

const (
	// predictTrim keeps the projection off the value axis.
	predictTrim = 2.0
	// labelRow is the y position of the projection label, above the plot.
	labelRow = -35.0
	// futureHint marks a completion date past the visible range.
	futureHint = " →"
)

// Prediction is the projected completion of the done work.
type Prediction struct {
	// From is the day the trend is measured from.
	From models.Date
	// Path runs from the clipped start of the trend line to its clipped
	// end, then straight up to the label row.
	Path []render.Point
	// Completion is the instant the trend reaches the top of the stack.
	Completion time.Time
	// Beyond is set when Completion lies right of the drawn line.
	Beyond bool
	// LabelX is the x position the label ends at.
	LabelX float64
}

// Label returns the completion date, followed by an arrow when it lies
// beyond the drawn line.
func (p *Prediction) Label() string {
	s := p.Completion.Format(models.DateLayout)
	if p.Beyond {
		s += futureHint
	}
	return s
}

// End returns the end of the drawn trend line.
func (p *Prediction) End() render.Point {
	return p.Path[1]
}

// Prediction projects the done total from the predict date through the
// last entry. It returns nil without error when prediction is disabled,
// unset, or the predict date is not before the last entry, and
// ErrDegenerateTrend when the trend never reaches completion.
func (r *Resolved) Prediction() (*Prediction, error) {
	if !r.Has(DrawPredict) || r.Config.Predict == nil {
		return nil, nil
	}
	entries := r.Entries()
	start := *r.Config.Predict
	current := entries[len(entries)-1].Date
	if !start.Before(current) {
		return nil, nil
	}

	x1, x2 := r.X.Map(start), r.X.Map(current)
	y1, y2 := r.Y.Map(r.doneTotal(start)), r.Y.Map(r.doneTotal(current))
	if x1 == x2 {
		return nil, ErrDegenerateTrend
	}
	m := (y2 - y1) / (x2 - x1)
	// Completion is at y = 0, so the line must rise to the right.
	if !(m < 0) || math.IsInf(m, 0) {
		return nil, ErrDegenerateTrend
	}

	yAt := func(x float64) float64 { return y1 + m*(x-x1) }
	zeroX := x1 - y1/m

	from, to := r.rangeEdges()

	x0, y0 := x1, y1
	if !r.InRange(start) {
		x0 = r.X.Map(from)
		y0 = yAt(x0)
	}

	x3 := r.X.Map(to) - predictTrim
	y3 := yAt(x3)
	if y3 < 0 {
		x3 = zeroX - predictTrim
		y3 = yAt(x3)
	}

	// Interpolate in date space between the two measured points.
	t1, t2 := float64(start.UnixMilli()), float64(current.UnixMilli())
	ms := t1 + (zeroX-x1)*(t2-t1)/(x2-x1)

	return &Prediction{
		From:       start,
		Path:       []render.Point{{X: x0, Y: y0}, {X: x3, Y: y3}, {X: x3, Y: labelRow}},
		Completion: time.UnixMilli(int64(math.Round(ms))).UTC(),
		Beyond:     zeroX-predictTrim > x3,
		LabelX:     x3 - 5,
	}, nil
}

// doneTotal sums the done keys of the entry dated d, 0 when there is none.
// Membership in the done list counts, whatever class the key was tagged
// with for drawing.
func (r *Resolved) doneTotal(d models.Date) float64 {
	for _, e := range r.Entries() {
		if !e.Date.Equal(d) {
			continue
		}
		return e.Sum(r.Config.Data.Done)
	}
	return 0
}
