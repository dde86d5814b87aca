package cfd

import (
	"encoding/base64"
	"io"

	"github.com/ukaji3/cfd-go/pkg/cfd/render"
)

// dataURIPrefix starts an embeddable SVG image.
const dataURIPrefix = "data:image/svg+xml;base64,"

// Chart is a cumulative flow diagram drawn from a Config.
// A Chart and its surface must not be used from several goroutines at once.
type Chart struct {
	cfg      *Config
	resolved *Resolved
}

// New creates a Chart. The configuration is validated when drawing.
func New(cfg *Config) *Chart {
	return &Chart{cfg: cfg}
}

// Draw validates the configuration, clears the surface and draws the
// chart on it. Nothing is drawn when validation fails.
func (c *Chart) Draw() error {
	r, err := Resolve(c.cfg)
	if err != nil {
		return err
	}
	// The surface may hold a drawing from another Chart on the same config.
	r.Config.Surface.Clear()
	c.resolved = r

	Logger().Debug("cfd: drawing",
		"width", r.Width,
		"height", r.Height,
		"inner_width", r.InnerWidth,
		"inner_height", r.InnerHeight,
	)
	return r.Paint(r.Config.Surface)
}

// Remove clears everything drawn on the surface. It does nothing before
// the first Draw.
func (c *Chart) Remove() {
	if c.resolved == nil {
		return
	}
	c.resolved.Config.Surface.Clear()
}

// Image draws the chart and returns the surface markup as a base64
// data URI, suitable for an img src attribute.
func (c *Chart) Image() (string, error) {
	if err := c.Draw(); err != nil {
		return "", err
	}
	markup := c.resolved.Config.Surface.Markup()
	return dataURIPrefix + base64.StdEncoding.EncodeToString([]byte(markup)), nil
}

// PNG draws the chart as a PNG image onto w. The configured surface is
// left untouched.
func (c *Chart) PNG(w io.Writer) (err error) {
	r, err := Resolve(c.cfg)
	if err != nil {
		return err
	}
	raster := render.NewRaster(r.Style.BackgroundColor)
	defer func() {
		if cerr := raster.Close(); err == nil {
			err = cerr
		}
	}()

	if err := r.Paint(raster); err != nil {
		return err
	}
	return raster.EncodePNG(w)
}

// Resolved returns the configuration used by the last Draw, or nil.
func (c *Chart) Resolved() *Resolved {
	return c.resolved
}
