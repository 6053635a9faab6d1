package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/pulse-drift/internal/wave"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// pulseCanvas is the showcase drawing surface: an offscreen image whose
// backing store is sized in device pixels by the waveform renderer.
type pulseCanvas struct {
	id   string
	w, h float64 // logical size
	img  *ebiten.Image

	sx, sy float64
	vs     []ebiten.Vertex
	is     []uint16
}

var (
	_ wave.Surface = (*pulseCanvas)(nil)
	_ wave.Context = (*pulseCanvas)(nil)
)

func newPulseCanvas(id string) *pulseCanvas {
	return &pulseCanvas{id: id, sx: 1, sy: 1}
}

// SetLogicalSize follows the page layout; the renderer picks the change up on
// the next Resize event.
func (c *pulseCanvas) SetLogicalSize(w, h float64) {
	c.w, c.h = w, h
}

func (c *pulseCanvas) Size() (float64, float64) {
	return c.w, c.h
}

func (c *pulseCanvas) SetBackingSize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(w, h)
}

// Context returns nil while the canvas has no area, which keeps the renderer
// inactive.
func (c *pulseCanvas) Context() wave.Context {
	if c.w <= 0 || c.h <= 0 {
		return nil
	}
	return c
}

// Image is the backing store, nil before the first resize.
func (c *pulseCanvas) Image() *ebiten.Image {
	return c.img
}

func (c *pulseCanvas) ResetTransform() {
	c.sx, c.sy = 1, 1
}

func (c *pulseCanvas) Scale(sx, sy float64) {
	c.sx *= sx
	c.sy *= sy
}

func (c *pulseCanvas) ClearRect(x, y, w, h float64) {
	if c.img == nil {
		return
	}
	r := image.Rect(int(x*c.sx), int(y*c.sy), int((x+w)*c.sx+0.5), int((y+h)*c.sy+0.5))
	if r.Intersect(c.img.Bounds()) == c.img.Bounds() {
		c.img.Clear()
		return
	}
	c.img.SubImage(r).(*ebiten.Image).Clear()
}

func (c *pulseCanvas) StrokePolyline(points []wave.Point, style wave.StrokeStyle) {
	if c.img == nil || len(points) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X*c.sx), float32(points[0].Y*c.sy))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X*c.sx), float32(p.Y*c.sy))
	}

	for _, pass := range wave.GlowPasses(style) {
		c.stroke(&path, pass.Width, pass.Color, ebiten.BlendLighter)
	}
	c.stroke(&path, style.Width, style.Color, ebiten.BlendSourceOver)
}

func (c *pulseCanvas) stroke(path *vector.Path, width float64, clr wave.HSLA, blend ebiten.Blend) {
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:    float32(width * c.sx),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	rgba := clr.Color()
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = float32(rgba.R)
		c.vs[i].ColorG = float32(rgba.G)
		c.vs[i].ColorB = float32(rgba.B)
		c.vs[i].ColorA = float32(rgba.A)
	}
	c.img.DrawTriangles(c.vs, c.is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		Blend:          blend,
		AntiAlias:      true,
	})
}

// Dispose releases the backing store.
func (c *pulseCanvas) Dispose() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}
