package export

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/pulse-drift/internal/wave"
)

// Canvas is a headless wave surface drawing into a software gg context.
type Canvas struct {
	w, h float64
	dc   *gg.Context
	err  error
}

var (
	_ wave.Surface = (*Canvas)(nil)
	_ wave.Context = (*Canvas)(nil)
)

// NewCanvas creates a canvas of the given logical size with a 1:1 backing
// store until the first SetBackingSize.
func NewCanvas(w, h float64) *Canvas {
	dc := gg.NewContext(max(int(w), 1), max(int(h), 1))
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)
	return &Canvas{w: w, h: h, dc: dc}
}

func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

func (c *Canvas) SetBackingSize(w, h int) {
	if err := c.dc.Resize(max(w, 1), max(h, 1)); err != nil {
		c.setErr(fmt.Errorf("resize backing store: %w", err))
	}
}

// BackingSize is the pixel size of the image that will be written.
func (c *Canvas) BackingSize() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

func (c *Canvas) Context() wave.Context {
	if c.w <= 0 || c.h <= 0 {
		return nil
	}
	return c
}

func (c *Canvas) ResetTransform() {
	c.dc.Identity()
}

func (c *Canvas) Scale(sx, sy float64) {
	c.dc.Scale(sx, sy)
}

// ClearRect makes the rectangle transparent. The usual whole-surface clear
// goes through gg's pixmap clear; partial clears are done per pixel.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	x0, y0 := c.dc.TransformPoint(x, y)
	x1, y1 := c.dc.TransformPoint(x+w, y+h)
	bw, bh := c.BackingSize()
	if x0 <= 0 && y0 <= 0 && x1 >= float64(bw) && y1 >= float64(bh) {
		c.dc.Clear()
		return
	}
	r := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1))).
		Intersect(image.Rect(0, 0, bw, bh))
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			c.dc.SetPixel(px, py, gg.Transparent)
		}
	}
}

func (c *Canvas) StrokePolyline(points []wave.Point, style wave.StrokeStyle) {
	if len(points) < 2 {
		return
	}
	for _, pass := range wave.GlowPasses(style) {
		c.stroke(points, pass.Width, pass.Color)
	}
	c.stroke(points, style.Width, style.Color)
}

func (c *Canvas) stroke(points []wave.Point, width float64, clr wave.HSLA) {
	c.dc.ClearPath()
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	rgba := clr.Color()
	c.dc.SetRGBA(rgba.R, rgba.G, rgba.B, rgba.A)
	c.dc.SetLineWidth(width)
	if err := c.dc.Stroke(); err != nil {
		c.setErr(fmt.Errorf("stroke %s: %w", clr, err))
	}
}

func (c *Canvas) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Err returns the first drawing error since the canvas was created.
func (c *Canvas) Err() error {
	return c.err
}

// Image returns the current backing store.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the backing store to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Close releases the gg context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
