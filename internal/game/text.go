package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// textStyle is one typographic role on the page.
type textStyle int

const (
	styleKicker textStyle = iota
	styleHeroTitle
	styleBody
	styleSectionTitle
	styleCardTitle
	styleSmall
	styleIcon
	styleCount
)

type styleSpec struct {
	size float64 // logical pixels
	bold bool
}

var styleSpecs = [styleCount]styleSpec{
	styleKicker:       {size: 14, bold: true},
	styleHeroTitle:    {size: 84, bold: true},
	styleBody:         {size: 18},
	styleSectionTitle: {size: 40, bold: true},
	styleCardTitle:    {size: 22, bold: true},
	styleSmall:        {size: 14},
	styleIcon:         {size: 30},
}

// typography holds one x/image face per style, rasterised for the current
// device scale so text stays sharp on high-density displays.
type typography struct {
	regular *opentype.Font
	bold    *opentype.Font
	scale   float64
	faces   [styleCount]*text.GoXFace
}

func newTypography() (*typography, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &typography{regular: regular, bold: bold}, nil
}

// SetScale rebuilds every face for a device scale. Unchanged scales are a no-op.
func (t *typography) SetScale(scale float64) error {
	if scale == t.scale && t.faces[0] != nil {
		return nil
	}
	var faces [styleCount]*text.GoXFace
	for i, s := range styleSpecs {
		src := t.regular
		if s.bold {
			src = t.bold
		}
		face, err := opentype.NewFace(src, &opentype.FaceOptions{
			Size:    s.size * scale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return fmt.Errorf("font face %d at scale %v: %w", i, scale, err)
		}
		faces[i] = text.NewGoXFace(face)
	}
	t.faces = faces
	t.scale = scale
	return nil
}

func (t *typography) face(s textStyle) text.Face {
	return t.faces[s]
}

// lineHeight is the logical line advance for a style.
func (t *typography) lineHeight(s textStyle) float64 {
	return styleSpecs[s].size * 1.45
}

// width measures a single line in logical pixels.
func (t *typography) width(s textStyle, line string) float64 {
	w, _ := text.Measure(line, t.face(s), 0)
	return w / t.scale
}

// wrap breaks str into lines no wider than maxWidth logical pixels.
func (t *typography) wrap(s textStyle, str string, maxWidth float64) []string {
	words := strings.Fields(str)
	var lines []string
	var line string
	for _, w := range words {
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if line != "" && t.width(s, candidate) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// draw renders lines at logical (x, y) on the device-pixel screen and returns
// the logical height used.
func (t *typography) draw(dst *ebiten.Image, s textStyle, lines []string, x, y float64, clr color.Color, alpha float64) float64 {
	lh := t.lineHeight(s)
	op := &text.DrawOptions{}
	op.LineSpacing = lh * t.scale
	op.GeoM.Translate(x*t.scale, y*t.scale)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	text.Draw(dst, strings.Join(lines, "\n"), t.face(s), op)
	return float64(len(lines)) * lh
}

// drawWrapped wraps then draws a paragraph.
func (t *typography) drawWrapped(dst *ebiten.Image, s textStyle, str string, x, y, maxWidth float64, clr color.Color, alpha float64) float64 {
	return t.draw(dst, s, t.wrap(s, str, maxWidth), x, y, clr, alpha)
}

// drawTracked draws one line with tracking ems of extra space after every
// rune.
func (t *typography) drawTracked(dst *ebiten.Image, s textStyle, line string, x, y, tracking float64, clr color.Color, alpha float64) float64 {
	extra := styleSpecs[s].size * tracking
	for _, r := range line {
		glyph := string(r)
		t.draw(dst, s, []string{glyph}, x, y, clr, alpha)
		x += t.width(s, glyph) + extra
	}
	return t.lineHeight(s)
}
