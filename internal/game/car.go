package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/pulse-drift/internal/config"
)

const (
	carWidth  = 520
	carHeight = 200
)

var (
	carBody = [][2]float32{
		{20, 140}, {60, 96}, {190, 62}, {340, 56}, {470, 96}, {505, 138}, {505, 152}, {20, 152},
	}
	carCockpit = [][2]float32{
		{175, 68}, {232, 38}, {330, 36}, {385, 62},
	}
	carBodyColor    = color.RGBA{R: 24, G: 14, B: 52, A: 255}
	carCockpitColor = color.RGBA{R: 40, G: 120, B: 200, A: 200}
	carWheelColor   = color.RGBA{R: 6, G: 6, B: 12, A: 255}
)

// heroCar is the hypercar illustration, rasterised once per device scale.
type heroCar struct {
	img   *ebiten.Image
	scale float64
}

// Image returns the car rendered for scale, rebuilding it when the scale changed.
func (c *heroCar) Image(scale float64) *ebiten.Image {
	if c.img != nil && c.scale == scale {
		return c.img
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(int(carWidth*scale)+1, int(carHeight*scale)+1)
	c.scale = scale
	drawCar(c.img, float32(scale))
	return c.img
}

func drawCar(dst *ebiten.Image, s float32) {
	fillConvex(dst, carBody, carBodyColor, s)
	fillConvex(dst, carCockpit, carCockpitColor, s)

	// neon trim
	vector.StrokeLine(dst, 60*s, 112*s, 485*s, 108*s, 3*s, config.AccentColor, true)
	vector.StrokeLine(dst, 40*s, 140*s, 500*s, 136*s, 2*s, config.AccentAltColor, true)

	for _, x := range []float32{125, 400} {
		vector.DrawFilledCircle(dst, x*s, 152*s, 34*s, carWheelColor, true)
		vector.StrokeCircle(dst, x*s, 152*s, 26*s, 3*s, config.AccentAltColor, true)
	}
}

// fillConvex fills a convex polygon as a triangle fan.
func fillConvex(dst *ebiten.Image, pts [][2]float32, clr color.RGBA, s float32) {
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX:   p[0] * s,
			DstY:   p[1] * s,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(clr.R) / 255,
			ColorG: float32(clr.G) / 255,
			ColorB: float32(clr.B) / 255,
			ColorA: float32(clr.A) / 255,
		}
	}
	is := make([]uint16, 0, 3*(len(pts)-2))
	for i := 1; i+1 < len(pts); i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      true,
	})
}
