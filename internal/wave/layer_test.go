package wave

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestLayerAt_Intensity(t *testing.T) {
	want := []float64{1, 0.8, 0.6, 0.4, 0.2}
	prev := math.Inf(1)
	for i := 0; i < LayerCount; i++ {
		l := LayerAt(i, 0)
		if !approx(l.Intensity, want[i]) {
			t.Errorf("layer %d: intensity = %v, want %v", i, l.Intensity, want[i])
		}
		if l.Intensity != 1-float64(i)/LayerCount {
			t.Errorf("layer %d: intensity = %v, want 1-%d/5 exactly", i, l.Intensity, i)
		}
		if l.Intensity > prev {
			t.Errorf("layer %d: intensity %v increased from %v", i, l.Intensity, prev)
		}
		prev = l.Intensity
	}
}

func TestLayerAt_Hue(t *testing.T) {
	want := []float64{320, 285, 250, 215, 180}
	for i, h := range want {
		got := LayerAt(i, 12345).Hue
		if got != h {
			t.Errorf("layer %d: hue = %v, want %v", i, got, h)
		}
		if got < 0 {
			t.Errorf("layer %d: hue %v is negative", i, got)
		}
	}
}

func TestLayerAt_Parameters(t *testing.T) {
	tests := []struct {
		index                 int
		t                     float64
		freq, amp, width, blr float64
		phase                 float64
	}{
		{index: 0, t: 0, freq: 0.0025, amp: 40, width: 2, blr: 35, phase: 0},
		{index: 1, t: 0, freq: 0.0033, amp: 54, width: 3.2, blr: 28, phase: 0.4 * 2 * math.Pi},
		{index: 4, t: 0, freq: 0.0057, amp: 96, width: 6.8, blr: 7, phase: 1.6 * 2 * math.Pi},
		{index: 0, t: 1000, freq: 0.0025, amp: 40, width: 2, blr: 35, phase: 0.8 * 2 * math.Pi},
		{index: 2, t: 1000, freq: 0.0041, amp: 68, width: 4.4, blr: 21, phase: 1.6 * 2 * math.Pi},
	}
	for _, tt := range tests {
		l := LayerAt(tt.index, tt.t)
		if !approx(l.Frequency, tt.freq) {
			t.Errorf("layer %d: frequency = %v, want %v", tt.index, l.Frequency, tt.freq)
		}
		if !approx(l.Amplitude, tt.amp) {
			t.Errorf("layer %d: amplitude = %v, want %v", tt.index, l.Amplitude, tt.amp)
		}
		if !approx(l.LineWidth(), tt.width) {
			t.Errorf("layer %d: line width = %v, want %v", tt.index, l.LineWidth(), tt.width)
		}
		if !approx(l.GlowBlur(), tt.blr) {
			t.Errorf("layer %d: glow blur = %v, want %v", tt.index, l.GlowBlur(), tt.blr)
		}
		if !approx(l.Phase, tt.phase) {
			t.Errorf("layer %d at t=%v: phase = %v, want %v", tt.index, tt.t, l.Phase, tt.phase)
		}
	}
}

func TestLayer_YAtOrigin(t *testing.T) {
	l := LayerAt(0, 0)
	for _, height := range []float64{400, 720, 1} {
		got := l.Y(0, height)
		want := height/2 + 12
		if !approx(got, want) {
			t.Errorf("height %v: y(0) = %v, want %v", height, got, want)
		}
	}
}

func TestLayer_Colors(t *testing.T) {
	tests := []struct {
		index       int
		stroke      string
		glow        string
		strokeAlpha float64
	}{
		{0, "hsla(320, 100%, 60%, 0.6)", "hsla(320, 100%, 65%, 0.6)", 0.6},
		{1, "hsla(285, 100%, 58%, 0.56)", "hsla(285, 100%, 65%, 0.6)", 0.56},
		{2, "hsla(250, 100%, 56%, 0.52)", "hsla(250, 100%, 65%, 0.6)", 0.52},
		{3, "hsla(215, 100%, 54%, 0.48)", "hsla(215, 100%, 65%, 0.6)", 0.48},
		{4, "hsla(180, 100%, 52%, 0.44)", "hsla(180, 100%, 65%, 0.6)", 0.44},
	}
	for _, tt := range tests {
		l := LayerAt(tt.index, 1000)
		if got := l.Stroke().String(); got != tt.stroke {
			t.Errorf("layer %d: stroke = %q, want %q", tt.index, got, tt.stroke)
		}
		if got := l.Glow().String(); got != tt.glow {
			t.Errorf("layer %d: glow = %q, want %q", tt.index, got, tt.glow)
		}
		if got := l.Stroke().Color().A; !approx(got, tt.strokeAlpha) {
			t.Errorf("layer %d: stroke alpha = %v, want %v", tt.index, got, tt.strokeAlpha)
		}
	}
}

func TestHSLA_Color(t *testing.T) {
	tests := []struct {
		name    string
		c       HSLA
		r, g, b float64
	}{
		{"red", HSLA{H: 0, S: 100, L: 50, A: 1}, 1, 0, 0},
		{"cyan", HSLA{H: 180, S: 100, L: 50, A: 1}, 0, 1, 1},
		{"white", HSLA{H: 250, S: 100, L: 100, A: 1}, 1, 1, 1},
		{"grey", HSLA{H: 10, S: 0, L: 50, A: 0.5}, 0.5, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Color()
			if !approx(got.R, tt.r) || !approx(got.G, tt.g) || !approx(got.B, tt.b) {
				t.Errorf("Color() = (%v, %v, %v), want (%v, %v, %v)", got.R, got.G, got.B, tt.r, tt.g, tt.b)
			}
			if got.A != tt.c.A {
				t.Errorf("alpha = %v, want %v", got.A, tt.c.A)
			}
		})
	}
}

func TestLayer_Polyline(t *testing.T) {
	l := LayerAt(3, 250)
	pts := l.Polyline(800, 400)

	// Anchor, then x = 0, 6, ..., 798.
	if want := 1 + 800/StepX + 1; len(pts) != want {
		t.Fatalf("len = %d, want %d", len(pts), want)
	}
	if pts[0] != (Point{X: 0, Y: 200}) {
		t.Errorf("anchor = %+v, want {0 200}", pts[0])
	}
	for i, p := range pts[1:] {
		if want := float64(i * StepX); p.X != want {
			t.Fatalf("point %d: x = %v, want %v", i, p.X, want)
		}
		if !approx(p.Y, l.Y(p.X, 400)) {
			t.Errorf("point %d: y = %v, want %v", i, p.Y, l.Y(p.X, 400))
		}
	}

	exact := l.Polyline(12, 10)
	if last := exact[len(exact)-1]; last.X != 12 {
		t.Errorf("width divisible by step: last x = %v, want 12", last.X)
	}
}
