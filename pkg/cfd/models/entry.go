package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DateField is the document key holding an entry's date.
const DateField = "date"

// ErrMissingDate indicates an entry document without a date field.
var ErrMissingDate = errors.New("entry has no date")

// Entry is one data point: a day plus a count for every status key.
//
// In documents an entry is a flat object, e.g.
//
//	{"date": "2020-01-01", "Open": 4, "In Review": 1, "Closed": 12}
type Entry struct {
	// Date is the day the counts were taken.
	Date Date
	// Counts maps status key to the number of items (or points) in it.
	Counts map[string]float64
}

// NewEntry creates an Entry from a date and status counts.
func NewEntry(date Date, counts map[string]float64) Entry {
	return Entry{Date: date, Counts: counts}
}

// Count returns the count for a status key, 0 when the key is absent.
func (e Entry) Count(key string) float64 {
	return e.Counts[key]
}

// Sum returns the total of the counts for the given keys.
func (e Entry) Sum(keys []string) float64 {
	var sum float64
	for _, k := range keys {
		sum += e.Counts[k]
	}
	return sum
}

// Clone returns a copy of e that shares no map with it.
func (e Entry) Clone() Entry {
	counts := make(map[string]float64, len(e.Counts))
	for k, v := range e.Counts {
		counts[k] = v
	}
	return Entry{Date: e.Date, Counts: counts}
}

// MarshalJSON encodes e as a flat object.
func (e Entry) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(e.Counts)+1)
	for k, v := range e.Counts {
		flat[k] = v
	}
	flat[DateField] = e.Date.String()
	return json.Marshal(flat)
}

// UnmarshalJSON decodes a flat object. Non-numeric fields other than the
// date are ignored.
func (e *Entry) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	rawDate, ok := raw[DateField]
	if !ok {
		return ErrMissingDate
	}
	var out Entry
	if err := json.Unmarshal(rawDate, &out.Date); err != nil {
		return err
	}
	out.Counts = make(map[string]float64, len(raw)-1)
	for k, v := range raw {
		if k == DateField {
			continue
		}
		var n float64
		if err := json.Unmarshal(v, &n); err != nil {
			continue
		}
		out.Counts[k] = n
	}
	*e = out
	return nil
}

// UnmarshalYAML decodes a flat mapping. Non-numeric fields other than the
// date are ignored.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: entry must be a mapping", value.Line)
	}
	out := Entry{Counts: make(map[string]float64, len(value.Content)/2)}
	hasDate := false
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if key.Value == DateField {
			if err := out.Date.UnmarshalYAML(val); err != nil {
				return err
			}
			hasDate = true
			continue
		}
		if val.Kind != yaml.ScalarNode {
			continue
		}
		n, err := strconv.ParseFloat(val.Value, 64)
		if err != nil {
			continue
		}
		out.Counts[key.Value] = n
	}
	if !hasDate {
		return fmt.Errorf("line %d: %w", value.Line, ErrMissingDate)
	}
	*e = out
	return nil
}
