// Package render provides the drawing surfaces a chart is painted on.
package render

// Point is a position in canvas pixels.
type Point struct {
	X float64
	Y float64
}

// Anchor is the horizontal text alignment relative to the text position.
type Anchor int

const (
	// AnchorStart aligns the start of the text with its position.
	AnchorStart Anchor = iota
	// AnchorMiddle centers the text on its position.
	AnchorMiddle
	// AnchorEnd aligns the end of the text with its position.
	AnchorEnd
)

// String returns the SVG text-anchor keyword.
func (a Anchor) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// Paint describes how a path is filled and stroked.
// An empty Fill leaves the path unfilled, an empty Stroke unstroked.
type Paint struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Font is a font size in pixels and a CSS font family.
type Font struct {
	Size   float64
	Family string
}

// TextStyle describes a text run.
type TextStyle struct {
	Font   Font
	Fill   string
	Anchor Anchor
	// DY shifts the baseline down by this many pixels.
	DY float64
}

// Canvas receives the primitives of a chart.
// Every primitive carries a class naming the chart part it belongs to
// (e.g. "area", "axis", "legend") so surfaces can tag or count them.
type Canvas interface {
	// Begin starts a drawing of the given size.
	Begin(width, height float64)
	// Group opens a group translated by (x, y). Groups nest.
	Group(class string, x, y float64)
	// GroupEnd closes the innermost open group.
	GroupEnd()
	// Path draws the polyline through pts, closing it when closed is set.
	Path(class string, pts []Point, closed bool, p Paint)
	// Text draws s with its anchor point at (x, y).
	Text(class string, x, y float64, s string, ts TextStyle)
	// End finishes the drawing.
	End() error
}

// Surface is a Canvas that keeps its drawing as markup.
type Surface interface {
	Canvas
	// TagName is the element name of the surface root, "svg" for SVG.
	TagName() string
	// Clear removes everything drawn so far.
	Clear()
	// Markup returns the serialized drawing.
	Markup() string
	// Count returns how many primitives of a class were drawn.
	Count(class string) int
}
