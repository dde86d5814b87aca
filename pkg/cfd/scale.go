package cfd

import (
	"math"
	"time"

	"github.com/ukaji3/cfd-go/pkg/cfd/models"
)

// LinearScale maps the domain [D0, D1] linearly onto the range [R0, R1].
type LinearScale struct {
	D0, D1 float64
	R0, R1 float64
}

// Map returns the range position of v. A zero-width domain maps every
// value to the middle of the range.
func (s LinearScale) Map(v float64) float64 {
	span := s.D1 - s.D0
	if span == 0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + (v-s.D0)/span*(s.R1-s.R0)
}

// Invert returns the domain value at range position px.
func (s LinearScale) Invert(px float64) float64 {
	span := s.R1 - s.R0
	if span == 0 {
		return (s.D0 + s.D1) / 2
	}
	return s.D0 + (px-s.R0)/span*(s.D1-s.D0)
}

// Ticks returns about n round values spanning the domain, using steps of
// 1, 2 or 5 times a power of ten.
func (s LinearScale) Ticks(n int) []float64 {
	lo, hi := s.D0, s.D1
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi || n <= 0 {
		return []float64{lo}
	}
	step := tickStep(lo, hi, n)
	first := math.Ceil(lo / step)
	last := math.Floor(hi / step)
	ticks := make([]float64, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		// Fractional steps divide by the inverse so ticks stay exact.
		if step < 1 {
			ticks = append(ticks, i/math.Round(1/step))
		} else {
			ticks = append(ticks, i*step)
		}
	}
	return ticks
}

func tickStep(lo, hi float64, n int) float64 {
	raw := (hi - lo) / float64(n)
	power := math.Pow(10, math.Floor(math.Log10(raw)))
	e := raw / power
	switch {
	case e >= math.Sqrt(50):
		return 10 * power
	case e >= math.Sqrt(10):
		return 5 * power
	case e >= math.Sqrt(2):
		return 2 * power
	default:
		return power
	}
}

// TimeScale maps days linearly onto a pixel range.
type TimeScale struct {
	from, to models.Date
	linear   LinearScale
}

// NewTimeScale creates a scale mapping [from, to] onto [r0, r1].
func NewTimeScale(from, to models.Date, r0, r1 float64) TimeScale {
	return TimeScale{
		from: from,
		to:   to,
		linear: LinearScale{
			D0: float64(from.UnixMilli()),
			D1: float64(to.UnixMilli()),
			R0: r0,
			R1: r1,
		},
	}
}

// Domain returns the first and last day of the scale.
func (s TimeScale) Domain() (models.Date, models.Date) {
	return s.from, s.to
}

// Map returns the pixel position of d.
func (s TimeScale) Map(d models.Date) float64 {
	return s.linear.Map(float64(d.UnixMilli()))
}

// Invert returns the instant at pixel position px, to the millisecond.
func (s TimeScale) Invert(px float64) time.Time {
	return time.UnixMilli(int64(math.Round(s.linear.Invert(px)))).UTC()
}

// Tick is a labelled position on the time axis.
type Tick struct {
	Date  models.Date
	Label string
}

// tickInterval is a calendar interval for time axis ticks.
type tickInterval struct {
	approx time.Duration
	accept func(time.Time) bool
	layout string
}

const day = 24 * time.Hour

var tickIntervals = []tickInterval{
	{day, func(time.Time) bool { return true }, "Jan 02"},
	{2 * day, func(t time.Time) bool { return (t.Day()-1)%2 == 0 }, "Jan 02"},
	{7 * day, func(t time.Time) bool { return t.Weekday() == time.Sunday }, "Jan 02"},
	{30 * day, func(t time.Time) bool { return t.Day() == 1 }, "January"},
	{91 * day, func(t time.Time) bool { return t.Day() == 1 && (t.Month()-1)%3 == 0 }, "January"},
	{365 * day, func(t time.Time) bool { return t.YearDay() == 1 }, "2006"},
}

// Ticks returns calendar-aligned ticks, about n of them, across the
// domain. Day ticks that fall on the first of a month are labelled with
// the month name.
func (s TimeScale) Ticks(n int) []Tick {
	lo, hi := s.from.Time(), s.to.Time()
	if lo.After(hi) {
		lo, hi = hi, lo
	}
	if n <= 0 {
		n = 1
	}
	target := hi.Sub(lo) / time.Duration(n)

	iv := tickIntervals[len(tickIntervals)-1]
	yearStep := 1
	for _, candidate := range tickIntervals {
		if candidate.approx >= target {
			iv = candidate
			break
		}
	}
	if target > iv.approx {
		yearStep = int(math.Ceil(float64(target) / float64(iv.approx)))
	}

	var ticks []Tick
	for t := lo; !t.After(hi); t = t.AddDate(0, 0, 1) {
		if !iv.accept(t) || (yearStep > 1 && t.Year()%yearStep != 0) {
			continue
		}
		layout := iv.layout
		if iv.approx < 30*day && t.Day() == 1 {
			layout = "January"
		}
		ticks = append(ticks, Tick{Date: models.DateOf(t), Label: t.Format(layout)})
	}
	return ticks
}
