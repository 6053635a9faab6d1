package wave

import "log/slog"

// State is the lifecycle state of a Renderer.
type State int

const (
	// Inactive means no surface is attached or the renderer was stopped.
	Inactive State = iota
	// Running means a tick is scheduled with the host.
	Running
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Renderer continuously repaints the layered waveform onto a Surface, one
// tick per host refresh.
type Renderer struct {
	surface Surface
	host    Host
	log     *slog.Logger

	ctx         Context
	state       State
	frame       FrameHandle
	unsubscribe func()
	density     float64
	frames      uint64
	points      []Point
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for lifecycle diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates an inactive renderer for surface. Either argument may be nil,
// in which case Start leaves the renderer inactive.
func New(surface Surface, host Host, opts ...Option) *Renderer {
	r := &Renderer{
		surface: surface,
		host:    host,
		log:     slog.Default(),
		density: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current lifecycle state.
func (r *Renderer) State() State {
	return r.state
}

// Frames returns how many ticks have been drawn since the renderer was created.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// Density returns the pixel density applied at the last resize.
func (r *Renderer) Density() float64 {
	return r.density
}

// Start attaches to the surface, sizes its backing store, subscribes to
// resizes and schedules the first tick. It reports whether the renderer is
// running; a missing surface or context is not an error.
func (r *Renderer) Start() bool {
	if r.state == Running {
		return true
	}
	if r.surface == nil || r.host == nil {
		r.log.Debug("waveform renderer has no surface, staying inactive")
		return false
	}
	ctx := r.surface.Context()
	if ctx == nil {
		r.log.Debug("waveform surface has no 2D context, staying inactive")
		return false
	}

	r.ctx = ctx
	r.resize()
	r.unsubscribe = r.host.OnResize(r.Resize)
	r.frame = r.host.RequestFrame(r.tick)
	r.state = Running
	r.log.Debug("waveform renderer started", "density", r.density)
	return true
}

// Stop cancels the pending tick, detaches the resize listener and clears the
// surface. Stopping an inactive renderer does nothing.
func (r *Renderer) Stop() {
	if r.state != Running {
		return
	}
	r.host.CancelFrame(r.frame)
	r.frame = 0
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
	w, h := r.surface.Size()
	r.ctx.ClearRect(0, 0, w, h)
	r.ctx = nil
	r.state = Inactive
	r.log.Debug("waveform renderer stopped", "frames", r.frames)
}

// Resize re-reads the surface size and host density and rescales the backing
// store. It is a no-op unless the renderer is running.
func (r *Renderer) Resize() {
	if r.state != Running {
		return
	}
	r.resize()
}

func (r *Renderer) resize() {
	density := r.host.DevicePixelRatio()
	if density <= 0 {
		density = 1
	}
	r.density = density

	w, h := r.surface.Size()
	r.surface.SetBackingSize(int(w*density), int(h*density))
	r.ctx.ResetTransform()
	r.ctx.Scale(density, density)
}

func (r *Renderer) tick(t float64) {
	if r.state != Running {
		return
	}
	r.frame = 0

	w, h := r.surface.Size()
	r.points = drawFrame(r.ctx, w, h, t, r.points)
	r.frames++

	r.frame = r.host.RequestFrame(r.tick)
}

// DrawFrame performs one tick's drawing onto ctx: clear the visible region,
// then stroke every layer at time t (milliseconds).
func DrawFrame(ctx Context, width, height, t float64) {
	drawFrame(ctx, width, height, t, nil)
}

func drawFrame(ctx Context, width, height, t float64, buf []Point) []Point {
	ctx.ClearRect(0, 0, width, height)
	for i := 0; i < LayerCount; i++ {
		layer := LayerAt(i, t)
		buf = layer.AppendPolyline(buf[:0], width, height)
		ctx.StrokePolyline(buf, layer.Style())
	}
	return buf
}
