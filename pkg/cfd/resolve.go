package cfd

import (
	"github.com/ukaji3/cfd-go/pkg/cfd/models"
)

// Class is the workflow state a status key belongs to.
type Class int

const (
	// ClassToDo is work not started.
	ClassToDo Class = iota
	// ClassProgress is work in progress.
	ClassProgress
	// ClassDone is finished work.
	ClassDone
)

func (c Class) String() string {
	switch c {
	case ClassProgress:
		return "progress"
	case ClassDone:
		return "done"
	default:
		return "toDo"
	}
}

// StatusKey is a status field of the entries together with its class.
type StatusKey struct {
	Name  string
	Class Class
}

// Insets are resolved margins.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Resolved is a normalized configuration plus everything derived from it:
// plot size, classified stack keys and scales. It is read-only.
type Resolved struct {
	// Config is the normalized copy of the caller's configuration.
	Config Config
	// Style is the fully populated style.
	Style Style

	Width, Height           float64
	Margin                  Insets
	InnerWidth, InnerHeight float64

	// Keys is the stack order: done keys, then progress, then to-do.
	Keys []StatusKey

	// X maps days onto [0, InnerWidth].
	X TimeScale
	// Y maps stacked totals onto [InnerHeight, 0].
	Y LinearScale

	options map[DrawOption]bool
}

// Resolve normalizes cfg and derives the chart geometry from it.
func Resolve(cfg *Config) (*Resolved, error) {
	n, err := Normalize(cfg)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		Config: n,
		Style:  *n.Style,
		Width:  *n.Width,
		Height: *n.Height,
		Margin: Insets{
			Top:    *n.Margin.Top,
			Right:  *n.Margin.Right,
			Bottom: *n.Margin.Bottom,
			Left:   *n.Margin.Left,
		},
		options: make(map[DrawOption]bool, len(n.DrawOptions)),
	}
	r.InnerWidth = r.Width - r.Margin.Left - r.Margin.Right
	r.InnerHeight = r.Height - r.Margin.Top - r.Margin.Bottom
	for _, o := range n.DrawOptions {
		r.options[o] = true
	}
	r.Keys = classifyKeys(n.Data)

	from, to := dateExtent(n.Data.Entries)
	if n.FromDate != nil {
		from = *n.FromDate
	}
	if n.ToDate != nil {
		to = *n.ToDate
	}
	r.X = NewTimeScale(from, to, 0, r.InnerWidth)
	r.Y = LinearScale{D0: 0, D1: r.maxTotal(), R0: r.InnerHeight, R1: 0}

	Logger().Debug("cfd: resolved chart",
		"entries", len(n.Data.Entries),
		"keys", len(r.Keys),
		"from", from.String(),
		"to", to.String(),
		"max", r.Y.D1,
	)
	return r, nil
}

// Has reports whether a draw option is enabled.
func (r *Resolved) Has(o DrawOption) bool {
	return r.options[o]
}

// Entries returns the dataset entries.
func (r *Resolved) Entries() []models.Entry {
	return r.Config.Data.Entries
}

// SeriesStyle returns the area style of a class.
func (r *Resolved) SeriesStyle(c Class) SeriesStyle {
	switch c {
	case ClassProgress:
		return *r.Style.Progress
	case ClassDone:
		return *r.Style.Done
	default:
		return *r.Style.ToDo
	}
}

// KeyNames returns the stack keys without their classes.
func (r *Resolved) KeyNames() []string {
	names := make([]string, len(r.Keys))
	for i, k := range r.Keys {
		names[i] = k.Name
	}
	return names
}

// classifyKeys orders the keys done, progress, to-do and tags each with
// its class. A key listed under several classes counts as progress first,
// then done.
func classifyKeys(data *models.Dataset) []StatusKey {
	progress := make(map[string]bool, len(data.Progress))
	for _, k := range data.Progress {
		progress[k] = true
	}
	done := make(map[string]bool, len(data.Done))
	for _, k := range data.Done {
		done[k] = true
	}

	classOf := func(name string) Class {
		switch {
		case progress[name]:
			return ClassProgress
		case done[name]:
			return ClassDone
		default:
			return ClassToDo
		}
	}

	keys := make([]StatusKey, 0, len(data.Done)+len(data.Progress)+len(data.ToDo))
	for _, group := range [][]string{data.Done, data.Progress, data.ToDo} {
		for _, name := range group {
			keys = append(keys, StatusKey{Name: name, Class: classOf(name)})
		}
	}
	return keys
}

// dateExtent returns the earliest and latest entry dates.
func dateExtent(entries []models.Entry) (models.Date, models.Date) {
	lo, hi := entries[0].Date, entries[0].Date
	for _, e := range entries[1:] {
		if e.Date.Before(lo) {
			lo = e.Date
		}
		if e.Date.After(hi) {
			hi = e.Date
		}
	}
	return lo, hi
}

// maxTotal returns the largest stacked total over all entries, ignoring
// the visible range.
func (r *Resolved) maxTotal() float64 {
	names := r.KeyNames()
	var max float64
	for i, e := range r.Entries() {
		if sum := e.Sum(names); i == 0 || sum > max {
			max = sum
		}
	}
	return max
}
