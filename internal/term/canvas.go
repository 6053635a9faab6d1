package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/pulse-drift/internal/config"
	"github.com/iburimskiy/pulse-drift/internal/wave"
)

// Rows reserved above and below the canvas for the title and help line.
const (
	headerRows = 1
	footerRows = 1
)

// halfBlock draws the top pixel of a cell in the foreground colour and the
// bottom pixel in the background colour.
const halfBlock = '▀'

type pixel struct {
	r, g, b float64
}

// Canvas rasterises strokes into a pixel grid with two pixels per terminal
// cell. Logical coordinates map onto cells through the host density.
type Canvas struct {
	screen tcell.Screen

	pw, ph int // backing size in pixels
	pix    []pixel
	sx, sy float64

	// stamp marks pixels already covered by the current stroke.
	stamp []uint32
	gen   uint32
}

var (
	_ wave.Surface = (*Canvas)(nil)
	_ wave.Context = (*Canvas)(nil)
)

func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{screen: screen, sx: 1, sy: 1}
}

// cells is the grid of terminal cells the canvas occupies.
func (c *Canvas) cells() (int, int) {
	cols, rows := c.screen.Size()
	return cols, max(rows-headerRows-footerRows, 0)
}

// Size is the canvas size in logical pixels.
func (c *Canvas) Size() (float64, float64) {
	cols, rows := c.cells()
	return float64(cols * config.CellWidth), float64(rows * config.CellHeight)
}

func (c *Canvas) SetBackingSize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w == c.pw && h == c.ph {
		return
	}
	c.pw, c.ph = w, h
	c.pix = make([]pixel, w*h)
	c.stamp = make([]uint32, w*h)
	c.gen = 0
}

// BackingSize is the pixel grid size.
func (c *Canvas) BackingSize() (int, int) {
	return c.pw, c.ph
}

func (c *Canvas) Context() wave.Context {
	if w, h := c.Size(); w <= 0 || h <= 0 {
		return nil
	}
	return c
}

func (c *Canvas) ResetTransform() {
	c.sx, c.sy = 1, 1
}

func (c *Canvas) Scale(sx, sy float64) {
	c.sx *= sx
	c.sy *= sy
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	x0, y0 := max(int(x*c.sx), 0), max(int(y*c.sy), 0)
	x1, y1 := min(int(math.Ceil((x+w)*c.sx)), c.pw), min(int(math.Ceil((y+h)*c.sy)), c.ph)
	if x1 <= x0 {
		return
	}
	for py := y0; py < y1; py++ {
		clear(c.pix[py*c.pw+x0 : py*c.pw+x1])
	}
}

func (c *Canvas) StrokePolyline(points []wave.Point, style wave.StrokeStyle) {
	if len(points) < 2 || len(c.pix) == 0 {
		return
	}
	for _, pass := range wave.GlowPasses(style) {
		c.stroke(points, pass.Width, pass.Color, true)
	}
	c.stroke(points, style.Width, style.Color, false)
}

// stroke plots every pixel whose centre lies within half the line width of
// the polyline, once per stroke. Glow passes add light; the line itself is
// blended over.
func (c *Canvas) stroke(points []wave.Point, width float64, clr wave.HSLA, additive bool) {
	rgba := clr.Color()
	radius := math.Max(width*c.sx/2, 0.5)
	c.gen++

	for i := 1; i < len(points); i++ {
		ax, ay := points[i-1].X*c.sx, points[i-1].Y*c.sy
		bx, by := points[i].X*c.sx, points[i].Y*c.sy

		minX := max(int(math.Floor(math.Min(ax, bx)-radius)), 0)
		maxX := min(int(math.Ceil(math.Max(ax, bx)+radius)), c.pw-1)
		minY := max(int(math.Floor(math.Min(ay, by)-radius)), 0)
		maxY := min(int(math.Ceil(math.Max(ay, by)+radius)), c.ph-1)

		for py := minY; py <= maxY; py++ {
			for px := minX; px <= maxX; px++ {
				idx := py*c.pw + px
				if c.stamp[idx] == c.gen {
					continue
				}
				if segmentDistance(float64(px)+0.5, float64(py)+0.5, ax, ay, bx, by) > radius {
					continue
				}
				c.stamp[idx] = c.gen
				p := &c.pix[idx]
				if additive {
					p.r = math.Min(1, p.r+rgba.R*rgba.A)
					p.g = math.Min(1, p.g+rgba.G*rgba.A)
					p.b = math.Min(1, p.b+rgba.B*rgba.A)
					continue
				}
				p.r = rgba.R*rgba.A + p.r*(1-rgba.A)
				p.g = rgba.G*rgba.A + p.g*(1-rgba.A)
				p.b = rgba.B*rgba.A + p.b*(1-rgba.A)
			}
		}
	}
}

// segmentDistance is the distance from (px, py) to the segment a-b.
func segmentDistance(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	l2 := dx*dx + dy*dy
	t := 0.0
	if l2 > 0 {
		t = math.Max(0, math.Min(1, ((px-ax)*dx+(py-ay)*dy)/l2))
	}
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

// Present copies the pixel grid onto the screen below the header row. It
// does not call Show.
func (c *Canvas) Present() {
	cols, rows := c.cells()
	bg := config.BackgroundColor
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, bottom := c.at(cx, 2*cy), c.at(cx, 2*cy+1)
			style := tcell.StyleDefault.Background(cellColor(bottom, bg))
			if top == (pixel{}) && bottom == (pixel{}) {
				c.screen.SetContent(cx, cy+headerRows, ' ', nil, style)
				continue
			}
			c.screen.SetContent(cx, cy+headerRows, halfBlock, nil, style.Foreground(cellColor(top, bg)))
		}
	}
}

func (c *Canvas) at(x, y int) pixel {
	if x < 0 || y < 0 || x >= c.pw || y >= c.ph {
		return pixel{}
	}
	return c.pix[y*c.pw+x]
}

// cellColor composites a light value over the page background.
func cellColor(p pixel, bg color.RGBA) tcell.Color {
	ch := func(light float64, base uint8) int32 {
		return int32(math.Min(255, float64(base)+light*255))
	}
	return tcell.NewRGBColor(ch(p.r, bg.R), ch(p.g, bg.G), ch(p.b, bg.B))
}
