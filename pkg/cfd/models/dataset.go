package models

// Unit is the unit the counts are measured in.
type Unit string

const (
	// UnitPoints counts story points.
	UnitPoints Unit = "points"
	// UnitIssues counts work items.
	UnitIssues Unit = "issues"
)

// Label returns the axis caption for the unit. Anything but points is
// shown as issues.
func (u Unit) Label() string {
	if u == UnitPoints {
		return "Story Points"
	}
	return "Issues"
}

// Dataset holds the entries and the status keys that classify them.
type Dataset struct {
	// Entries is the series, sorted by date ascending.
	Entries []Entry `json:"entries" yaml:"entries"`
	// Unit is the measuring unit (points or issues).
	Unit Unit `json:"unit,omitempty" yaml:"unit,omitempty"`
	// ToDo lists the status keys of work not started.
	ToDo []string `json:"toDo" yaml:"toDo"`
	// Progress lists the status keys of work in progress.
	Progress []string `json:"progress" yaml:"progress"`
	// Done lists the status keys of finished work.
	Done []string `json:"done" yaml:"done"`
	// Source is an optional xlsx or csv file the entries are read from.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Sheet is the worksheet to read when Source is an xlsx file.
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`
}

// Clone returns a deep copy of d. Nil slices stay nil.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	out := *d
	if d.Entries != nil {
		out.Entries = make([]Entry, len(d.Entries))
		for i, e := range d.Entries {
			out.Entries[i] = e.Clone()
		}
	}
	out.ToDo = cloneKeys(d.ToDo)
	out.Progress = cloneKeys(d.Progress)
	out.Done = cloneKeys(d.Done)
	return &out
}

func cloneKeys(keys []string) []string {
	if keys == nil {
		return nil
	}
	return append(make([]string, 0, len(keys)), keys...)
}

// Marker is a dated annotation drawn as a vertical line.
type Marker struct {
	// Date is the day the marker is drawn at.
	Date Date `json:"date" yaml:"date"`
	// Label is the marker caption. Empty means the formatted date.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Caption returns the label, or the date when there is no label.
func (m Marker) Caption() string {
	if m.Label != "" {
		return m.Label
	}
	return m.Date.String()
}
