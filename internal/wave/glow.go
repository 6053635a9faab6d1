package wave

import "math"

const (
	// glowPassSpan is the blur radius covered by one glow pass.
	glowPassSpan  = 8
	maxGlowPasses = 5
)

// GlowPass is one translucent wide stroke drawn under the main stroke.
type GlowPass struct {
	Width float64
	Color HSLA
}

// GlowPasses approximates a canvas shadow blur for hosts without one. The
// passes are ordered widest first; each adds a faint halo so the summed alpha
// falls off towards the outer edge. A zero blur yields no passes.
func GlowPasses(style StrokeStyle) []GlowPass {
	if style.GlowBlur <= 0 || style.GlowColor.A <= 0 {
		return nil
	}
	n := int(math.Ceil(style.GlowBlur / glowPassSpan))
	if n > maxGlowPasses {
		n = maxGlowPasses
	}

	passes := make([]GlowPass, 0, n)
	for i := n; i >= 1; i-- {
		spread := style.GlowBlur * float64(i) / float64(n)
		falloff := 1 - float64(i-1)/float64(n)
		passes = append(passes, GlowPass{
			Width: style.Width + spread,
			Color: style.GlowColor.WithAlpha(style.GlowColor.A * falloff / float64(n+1)),
		})
	}
	return passes
}
