package render

import (
	"errors"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrNotDrawn indicates a raster that has not been drawn on yet.
var ErrNotDrawn = errors.New("raster has not been drawn")

// Raster paints a chart into a pixel buffer.
// Colors must be hex strings; text always uses the Go Regular font.
type Raster struct {
	background string
	ctx        *gg.Context
	source     *text.FontSource
	faces      map[float64]text.Face
	counts     map[string]int
	err        error
}

var _ Canvas = (*Raster)(nil)

// NewRaster creates a raster canvas. A non-empty background color is
// painted over the whole image when drawing begins.
func NewRaster(background string) *Raster {
	return &Raster{
		background: background,
		faces:      make(map[float64]text.Face),
		counts:     make(map[string]int),
	}
}

// Begin allocates the pixel buffer.
func (r *Raster) Begin(width, height float64) {
	r.ctx = gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height)))
	if r.background != "" {
		r.ctx.ClearWithColor(gg.Hex(r.background))
	}
}

// Group saves the transform and translates by (x, y).
func (r *Raster) Group(class string, x, y float64) {
	r.ctx.Push()
	r.ctx.Translate(x, y)
	r.counts[class]++
}

// GroupEnd restores the transform saved by Group.
func (r *Raster) GroupEnd() {
	r.ctx.Pop()
}

// Path fills and strokes the polyline through pts.
func (r *Raster) Path(class string, pts []Point, closed bool, p Paint) {
	if len(pts) == 0 {
		return
	}
	r.ctx.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		r.ctx.LineTo(pt.X, pt.Y)
	}
	if closed {
		r.ctx.ClosePath()
	}
	if p.Fill != "" && closed {
		r.ctx.SetHexColor(p.Fill)
		if p.Stroke != "" {
			r.record(r.ctx.FillPreserve())
		} else {
			r.record(r.ctx.Fill())
		}
	}
	if p.Stroke != "" {
		r.ctx.SetHexColor(p.Stroke)
		r.ctx.SetLineWidth(p.StrokeWidth)
		r.record(r.ctx.Stroke())
	} else {
		r.ctx.ClearPath()
	}
	r.counts[class]++
}

// Text draws s on the baseline y+ts.DY.
func (r *Raster) Text(class string, x, y float64, s string, ts TextStyle) {
	face, err := r.face(ts.Font.Size)
	if err != nil {
		r.record(err)
		return
	}
	var ax float64
	switch ts.Anchor {
	case AnchorMiddle:
		ax = 0.5
	case AnchorEnd:
		ax = 1
	}
	r.ctx.SetFont(face)
	r.ctx.SetHexColor(ts.Fill)
	r.ctx.DrawStringAnchored(s, x, y+ts.DY, ax, 0)
	r.counts[class]++
}

// End reports the first error met while drawing.
func (r *Raster) End() error {
	return r.err
}

// Count returns the number of primitives drawn with the class.
func (r *Raster) Count(class string) int {
	return r.counts[class]
}

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if r.ctx == nil {
		return ErrNotDrawn
	}
	return r.ctx.EncodePNG(w)
}

// Close releases the pixel buffer and the font.
func (r *Raster) Close() error {
	var errs []error
	if r.ctx != nil {
		errs = append(errs, r.ctx.Close())
	}
	if r.source != nil {
		errs = append(errs, r.source.Close())
	}
	return errors.Join(errs...)
}

func (r *Raster) face(size float64) (text.Face, error) {
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	if r.source == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, err
		}
		r.source = src
	}
	f := r.source.Face(size)
	r.faces[size] = f
	return f, nil
}

func (r *Raster) record(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}
