package cfd

import (
	"github.com/ukaji3/cfd-go/pkg/cfd/models"
)

// StackPoint is one entry's band in a layer: from Y0 up to Y1.
type StackPoint struct {
	Date   models.Date
	Y0, Y1 float64
}

// Value returns the height of the band.
func (p StackPoint) Value() float64 {
	return p.Y1 - p.Y0
}

// Layer is the stacked band of one status key.
type Layer struct {
	Key    StatusKey
	Points []StackPoint
}

// Last returns the band of the last entry in the layer.
func (l Layer) Last() (StackPoint, bool) {
	if len(l.Points) == 0 {
		return StackPoint{}, false
	}
	return l.Points[len(l.Points)-1], true
}

// InRange reports whether d lies in the visible range: from FromDate (or
// the first entry) to ToDate (or the last entry), both inclusive.
func (r *Resolved) InRange(d models.Date) bool {
	from, to := r.rangeEdges()
	return !d.Before(from) && !d.After(to)
}

// rangeEdges returns the visible range bounds used for filtering.
func (r *Resolved) rangeEdges() (models.Date, models.Date) {
	entries := r.Entries()
	from, to := entries[0].Date, entries[len(entries)-1].Date
	if r.Config.FromDate != nil {
		from = *r.Config.FromDate
	}
	if r.Config.ToDate != nil {
		to = *r.Config.ToDate
	}
	return from, to
}

// Visible returns the entries inside the visible range, in order.
func (r *Resolved) Visible() []models.Entry {
	var out []models.Entry
	for _, e := range r.Entries() {
		if r.InRange(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// Layers stacks the visible entries, one layer per key in stack order.
func (r *Resolved) Layers() []Layer {
	return stackEntries(r.Visible(), r.Keys)
}

// stackEntries turns per-key counts into cumulative bands: for every
// entry, each key's band starts where the previous key's band ended.
func stackEntries(entries []models.Entry, keys []StatusKey) []Layer {
	layers := make([]Layer, len(keys))
	for i, k := range keys {
		layers[i] = Layer{Key: k, Points: make([]StackPoint, len(entries))}
	}
	for j, e := range entries {
		var base float64
		for i, k := range keys {
			top := base + e.Count(k.Name)
			layers[i].Points[j] = StackPoint{Date: e.Date, Y0: base, Y1: top}
			base = top
		}
	}
	return layers
}
