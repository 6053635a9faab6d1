package wave

import (
	"math"
	"testing"
)

type stroke struct {
	points []Point
	style  StrokeStyle
}

// recordingContext stores every command with its device-space coordinates.
type recordingContext struct {
	sx, sy  float64
	clears  int
	strokes []stroke
	device  [][]Point
}

func newRecordingContext() *recordingContext {
	return &recordingContext{sx: 1, sy: 1}
}

func (c *recordingContext) ResetTransform()              { c.sx, c.sy = 1, 1 }
func (c *recordingContext) Scale(sx, sy float64)         { c.sx *= sx; c.sy *= sy }
func (c *recordingContext) ClearRect(_, _, _, _ float64) { c.clears++ }

func (c *recordingContext) StrokePolyline(points []Point, style StrokeStyle) {
	pts := append([]Point(nil), points...)
	dev := make([]Point, len(points))
	for i, p := range points {
		dev[i] = Point{X: p.X * c.sx, Y: p.Y * c.sy}
	}
	c.strokes = append(c.strokes, stroke{points: pts, style: style})
	c.device = append(c.device, dev)
}

func (c *recordingContext) mutations() int {
	return c.clears + len(c.strokes)
}

type fakeSurface struct {
	w, h         float64
	backW, backH int
	ctx          Context
}

func (s *fakeSurface) Size() (float64, float64) { return s.w, s.h }
func (s *fakeSurface) SetBackingSize(w, h int)  { s.backW, s.backH = w, h }
func (s *fakeSurface) Context() Context         { return s.ctx }

type fakeHost struct {
	FrameQueue
	density   float64
	listeners map[int]func()
	nextID    int
}

func newFakeHost(density float64) *fakeHost {
	return &fakeHost{density: density, listeners: map[int]func(){}}
}

func (h *fakeHost) DevicePixelRatio() float64 { return h.density }

func (h *fakeHost) OnResize(fn func()) func() {
	h.nextID++
	id := h.nextID
	h.listeners[id] = fn
	return func() { delete(h.listeners, id) }
}

func (h *fakeHost) resize() {
	for _, fn := range h.listeners {
		fn()
	}
}

func newRunning(t *testing.T, w, h, density float64) (*Renderer, *fakeSurface, *recordingContext, *fakeHost) {
	t.Helper()
	ctx := newRecordingContext()
	surface := &fakeSurface{w: w, h: h, ctx: ctx}
	host := newFakeHost(density)
	r := New(surface, host)
	if !r.Start() {
		t.Fatal("Start() = false, want true")
	}
	return r, surface, ctx, host
}

func TestRenderer_InactiveWithoutSurface(t *testing.T) {
	host := newFakeHost(1)

	tests := []struct {
		name    string
		surface Surface
	}{
		{"nil surface", nil},
		{"nil context", &fakeSurface{w: 10, h: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.surface, host)
			if r.Start() {
				t.Error("Start() = true, want false")
			}
			if r.State() != Inactive {
				t.Errorf("State() = %v, want inactive", r.State())
			}
			if host.Pending() != 0 || len(host.listeners) != 0 {
				t.Errorf("inactive renderer registered %d frames, %d listeners", host.Pending(), len(host.listeners))
			}
			r.Stop()
		})
	}
}

func TestRenderer_EndToEndFrame(t *testing.T) {
	r, _, ctx, host := newRunning(t, 800, 400, 1)

	if n := host.Flush(1000); n != 1 {
		t.Fatalf("Flush ran %d ticks, want 1", n)
	}
	if ctx.clears != 1 {
		t.Errorf("clears = %d, want 1", ctx.clears)
	}
	if len(ctx.strokes) != LayerCount {
		t.Fatalf("strokes = %d, want %d", len(ctx.strokes), LayerCount)
	}
	for i, s := range ctx.strokes {
		pts := s.points[1:]
		if pts[0].X != 0 {
			t.Errorf("layer %d: starts at x=%v, want 0", i, pts[0].X)
		}
		for j := 1; j < len(pts); j++ {
			if d := pts[j].X - pts[j-1].X; d != StepX {
				t.Fatalf("layer %d: step %d is %v, want %d", i, j, d, StepX)
			}
		}
		if last := pts[len(pts)-1].X; last > 800 || last <= 800-StepX {
			t.Errorf("layer %d: ends at x=%v, want within (794, 800]", i, last)
		}
	}
	if got := ctx.strokes[2].style.Color.String(); got != "hsla(250, 100%, 56%, 0.52)" {
		t.Errorf("layer 2 colour = %q", got)
	}
	if got := ctx.strokes[2].style.Width; !approx(got, 4.4) {
		t.Errorf("layer 2 width = %v, want 4.4", got)
	}
	if r.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", r.Frames())
	}
	if host.Pending() != 1 {
		t.Errorf("Pending() = %d, want the next tick scheduled", host.Pending())
	}
}

func TestRenderer_FirstPointAtTimeZero(t *testing.T) {
	_, _, ctx, host := newRunning(t, 800, 400, 1)
	host.Flush(0)
	if got := ctx.strokes[0].points[1].Y; !approx(got, 212) {
		t.Errorf("layer 0 y(0) at t=0 = %v, want 212", got)
	}
}

func TestRenderer_ResizeScalesBackingStore(t *testing.T) {
	r, surface, ctx, host := newRunning(t, 800, 400, 1)
	if surface.backW != 800 || surface.backH != 400 {
		t.Fatalf("backing = %dx%d, want 800x400", surface.backW, surface.backH)
	}

	host.Flush(500)
	before := ctx.device[0][10]

	host.density = 2
	host.resize()
	if surface.backW != 1600 || surface.backH != 800 {
		t.Fatalf("backing after resize = %dx%d, want 1600x800", surface.backW, surface.backH)
	}
	if r.Density() != 2 || ctx.sx != 2 || ctx.sy != 2 {
		t.Errorf("scale = (%v, %v), want (2, 2)", ctx.sx, ctx.sy)
	}

	// Same CSS point, same visual position: device coordinates scale with
	// density and the backing store scales with it.
	host.Flush(500)
	after := ctx.device[LayerCount][10]
	relBefore := Point{X: before.X / 800, Y: before.Y / 400}
	relAfter := Point{X: after.X / 1600, Y: after.Y / 800}
	if math.Abs(relBefore.X-relAfter.X) > eps || math.Abs(relBefore.Y-relAfter.Y) > eps {
		t.Errorf("point moved: %+v -> %+v", relBefore, relAfter)
	}

	surface.w, surface.h = 300, 150
	host.resize()
	if surface.backW != 600 || surface.backH != 300 {
		t.Errorf("backing after size change = %dx%d, want 600x300", surface.backW, surface.backH)
	}
	if r.State() != Running {
		t.Errorf("State() = %v, want running after resize", r.State())
	}
}

func TestRenderer_ZeroDensityFallsBackToOne(t *testing.T) {
	_, surface, _, _ := newRunning(t, 64, 32, 0)
	if surface.backW != 64 || surface.backH != 32 {
		t.Errorf("backing = %dx%d, want 64x32", surface.backW, surface.backH)
	}
}

func TestRenderer_StopCancelsChain(t *testing.T) {
	r, _, ctx, host := newRunning(t, 800, 400, 1)
	host.Flush(16)
	host.Flush(32)

	r.Stop()
	if r.State() != Inactive {
		t.Errorf("State() = %v, want inactive", r.State())
	}
	if host.Pending() != 0 {
		t.Errorf("Pending() = %d after Stop, want 0", host.Pending())
	}
	if len(host.listeners) != 0 {
		t.Errorf("%d resize listeners after Stop, want 0", len(host.listeners))
	}

	// Stop clears the surface once; nothing after that.
	settled := ctx.mutations()
	for now := 48.0; now < 1000; now += 16 {
		host.Flush(now)
	}
	host.resize()
	if ctx.mutations() != settled {
		t.Errorf("surface mutated after Stop: %d -> %d", settled, ctx.mutations())
	}

	r.Stop()
	if r.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", r.Frames())
	}
}

func TestRenderer_Restart(t *testing.T) {
	r, _, ctx, host := newRunning(t, 100, 100, 1)
	r.Stop()
	if !r.Start() {
		t.Fatal("restart failed")
	}
	if !r.Start() {
		t.Fatal("Start() on running renderer = false")
	}
	if host.Pending() != 1 || len(host.listeners) != 1 {
		t.Errorf("pending=%d listeners=%d, want 1/1", host.Pending(), len(host.listeners))
	}
	host.Flush(16)
	if len(ctx.strokes) != LayerCount {
		t.Errorf("strokes = %d, want %d", len(ctx.strokes), LayerCount)
	}
}

func TestDrawFrame(t *testing.T) {
	ctx := newRecordingContext()
	DrawFrame(ctx, 120, 60, 250)
	if ctx.clears != 1 || len(ctx.strokes) != LayerCount {
		t.Fatalf("clears=%d strokes=%d", ctx.clears, len(ctx.strokes))
	}
	for i, s := range ctx.strokes {
		want := LayerAt(i, 250).Style()
		if s.style != want {
			t.Errorf("layer %d style = %+v, want %+v", i, s.style, want)
		}
	}
}
