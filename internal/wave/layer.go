package wave

import (
	"math"
	"strconv"

	"github.com/gogpu/gg"
)

const (
	// LayerCount is the number of waveform traces composited per tick.
	LayerCount = 5
	// StepX is the horizontal sampling step of every polyline, in CSS pixels.
	StepX      = 6

	baseFrequency  = 0.0025
	frequencyStep  = 0.0008
	baseAmplitude  = 40
	amplitudeStep  = 14
	baseHue        = 320
	hueStep        = 35
	timeScale      = 0.0008
	layerPhaseStep = 0.4
	glowScale      = 35
)

// Point is a position in CSS pixels.
type Point struct {
	X, Y float64
}

// HSLA is a CSS-style colour: hue in degrees, saturation and lightness in
// percent, alpha in [0, 1].
type HSLA struct {
	H, S, L, A float64
}

// String renders the colour the way a canvas strokeStyle would receive it,
// e.g. "hsla(250, 100%, 56%, 0.52)".
func (c HSLA) String() string {
	return "hsla(" + formatNumber(c.H) + ", " + formatNumber(c.S) + "%, " +
		formatNumber(c.L) + "%, " + formatNumber(c.A) + ")"
}

// Color converts to a non-premultiplied gg colour.
func (c HSLA) Color() gg.RGBA {
	rgb := gg.HSL(c.H, c.S/100, c.L/100)
	rgb.A = c.A
	return rgb
}

// WithAlpha returns a copy with alpha replaced.
func (c HSLA) WithAlpha(a float64) HSLA {
	c.A = a
	return c
}

// formatNumber drops float noise (0.4+0.12 prints as 0.52, not 0.5200000000000001).
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e4)/1e4, 'f', -1, 64)
}

// StrokeStyle describes how a polyline is stroked, including its soft glow.
type StrokeStyle struct {
	Color     HSLA
	Width     float64
	GlowBlur  float64
	GlowColor HSLA
}

// Layer holds the per-frame parameters of one waveform trace. All fields are
// pure functions of the layer index and the elapsed time.
type Layer struct {
	Index     int
	Intensity float64
	Hue       float64
	Frequency float64
	Amplitude float64
	Phase     float64
}

// LayerAt derives the parameters of layer index at time t (milliseconds).
func LayerAt(index int, t float64) Layer {
	i := float64(index)
	return Layer{
		Index:     index,
		Intensity: 1 - i/LayerCount,
		Hue:       baseHue - i*hueStep,
		Frequency: baseFrequency + i*frequencyStep,
		Amplitude: baseAmplitude + i*amplitudeStep,
		Phase:     (t*timeScale + i*layerPhaseStep) * 2 * math.Pi,
	}
}

// Y returns the trace height at horizontal position x on a surface of the
// given height.
func (l Layer) Y(x, height float64) float64 {
	return height/2 +
		math.Sin(x*l.Frequency+l.Phase)*l.Amplitude*0.7 +
		math.Cos(x*l.Frequency*0.6+l.Phase)*l.Amplitude*0.3
}

// LineWidth is the stroke width in CSS pixels.
func (l Layer) LineWidth() float64 {
	return 2 + float64(l.Index)*1.2
}

// Stroke is the main colour of the trace.
func (l Layer) Stroke() HSLA {
	return HSLA{H: l.Hue, S: 100, L: 50 + l.Intensity*10, A: 0.4 + l.Intensity*0.2}
}

// Glow is the shadow colour of the trace.
func (l Layer) Glow() HSLA {
	return HSLA{H: l.Hue, S: 100, L: 65, A: 0.6}
}

// GlowBlur is the shadow blur radius in CSS pixels.
func (l Layer) GlowBlur() float64 {
	return glowScale * l.Intensity
}

// Style bundles the stroke parameters of the layer.
func (l Layer) Style() StrokeStyle {
	return StrokeStyle{
		Color:     l.Stroke(),
		Width:     l.LineWidth(),
		GlowBlur:  l.GlowBlur(),
		GlowColor: l.Glow(),
	}
}

// Polyline traces the layer across a width×height surface. The path is
// anchored at the vertical centre of the left edge, then sampled every StepX
// pixels from x=0 up to and including width.
func (l Layer) Polyline(width, height float64) []Point {
	return l.AppendPolyline(nil, width, height)
}

// AppendPolyline is Polyline appending into dst.
func (l Layer) AppendPolyline(dst []Point, width, height float64) []Point {
	dst = append(dst, Point{X: 0, Y: height / 2})
	for x := 0.0; x <= width; x += StepX {
		dst = append(dst, Point{X: x, Y: l.Y(x, height)})
	}
	return dst
}
