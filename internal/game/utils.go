package game

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// easeOutCubic shapes reveal transitions.
func easeOutCubic(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// withAlpha scales a colour's alpha by a in [0, 1], keeping it non-premultiplied.
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * clamp01(a))}
}

// scaleFrom converts the outside (device independent) size into the
// device-pixel screen size for a scale factor.
func scaleFrom(outsideW, outsideH, scale float64) (float64, float64) {
	if scale <= 0 {
		scale = 1
	}
	return outsideW * scale, outsideH * scale
}

// clampScroll keeps a scroll offset inside [0, limit].
func clampScroll(y, limit float64) float64 {
	return math.Max(0, math.Min(y, limit))
}

// formatDuration formats a duration as MM:SS.
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
