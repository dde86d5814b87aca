package render

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// SVG is an in-memory SVG drawing surface.
// It is not safe for concurrent use.
type SVG struct {
	buf    bytes.Buffer
	canvas *svg.SVG
	open   int
	counts map[string]int
}

var _ Surface = (*SVG)(nil)

// NewSVG creates an empty SVG surface.
func NewSVG() *SVG {
	s := &SVG{counts: make(map[string]int)}
	s.canvas = svg.New(&s.buf)
	return s
}

// TagName returns "svg".
func (s *SVG) TagName() string { return "svg" }

// Begin writes the document header.
func (s *SVG) Begin(width, height float64) {
	s.canvas.Start(int(math.Round(width)), int(math.Round(height)))
}

// Group opens a <g> element.
func (s *SVG) Group(class string, x, y float64) {
	attrs := []string{attr("class", class)}
	if x != 0 || y != 0 {
		attrs = append(attrs, attr("transform", fmt.Sprintf("translate(%s,%s)", num(x), num(y))))
	}
	s.canvas.Group(attrs...)
	s.open++
	s.counts[class]++
}

// GroupEnd closes the innermost <g> element.
func (s *SVG) GroupEnd() {
	if s.open == 0 {
		return
	}
	s.canvas.Gend()
	s.open--
}

// Path writes a <path> element.
func (s *SVG) Path(class string, pts []Point, closed bool, p Paint) {
	if len(pts) == 0 {
		return
	}
	fill := p.Fill
	if fill == "" {
		fill = "none"
	}
	style := "fill:" + styleValue(fill)
	if p.Stroke != "" {
		style += ";stroke:" + styleValue(p.Stroke) + ";stroke-width:" + num(p.StrokeWidth)
	}
	s.canvas.Path(pathData(pts, closed), attr("class", class), style)
	s.counts[class]++
}

// Text writes a <text> element. Positions are rounded to whole pixels
// since svgo takes int coordinates.
func (s *SVG) Text(class string, x, y float64, str string, ts TextStyle) {
	s.canvas.Text(int(math.Round(x)), int(math.Round(y)), str,
		attr("class", class),
		attr("dy", num(ts.DY)+"px"),
		attr("font-size", num(ts.Font.Size)+"px"),
		attr("font-family", ts.Font.Family),
		"text-anchor:"+ts.Anchor.String()+";fill:"+styleValue(ts.Fill),
	)
	s.counts[class]++
}

// End closes any open groups and the document.
func (s *SVG) End() error {
	for s.open > 0 {
		s.GroupEnd()
	}
	s.canvas.End()
	return nil
}

// Clear discards the drawing.
func (s *SVG) Clear() {
	s.buf.Reset()
	s.open = 0
	s.counts = make(map[string]int)
}

// Markup returns the SVG document written so far.
func (s *SVG) Markup() string {
	return s.buf.String()
}

// Count returns the number of primitives drawn with the class.
func (s *SVG) Count(class string) int {
	return s.counts[class]
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `"`, "&quot;")

// attr formats a name="value" pair; svgo passes strings containing '='
// through as attributes and wraps anything else in style="".
func attr(name, value string) string {
	return name + `="` + attrEscaper.Replace(value) + `"`
}

// styleEscaper also hides '=', which makes svgo treat a style as an attribute.
var styleEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `"`, "&quot;", `=`, "&#61;")

// styleValue escapes a value for the style attribute svgo writes. A ';'
// would start another declaration, so it is dropped with what follows.
func styleValue(v string) string {
	if i := strings.IndexByte(v, ';'); i >= 0 {
		v = v[:i]
	}
	return styleEscaper.Replace(v)
}

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

// pathData builds the d attribute of a path through pts.
func pathData(pts []Point, closed bool) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString("L")
		}
		b.WriteString(num(p.X))
		b.WriteString(",")
		b.WriteString(num(p.Y))
	}
	if closed {
		b.WriteString("Z")
	}
	return b.String()
}
