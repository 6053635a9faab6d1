package game

import (
	"github.com/iburimskiy/pulse-drift/internal/event"
	"github.com/iburimskiy/pulse-drift/internal/wave"
)

// windowHost adapts the ebiten game loop to wave.Host: frames are flushed once
// per Draw, which ebiten calls in step with the display refresh.
type windowHost struct {
	frames wave.FrameQueue
	events *event.Dispatcher
	scale  float64
}

var _ wave.Host = (*windowHost)(nil)

func newWindowHost(events *event.Dispatcher) *windowHost {
	return &windowHost{events: events, scale: 1}
}

func (h *windowHost) DevicePixelRatio() float64 {
	return h.scale
}

func (h *windowHost) RequestFrame(fn wave.FrameFunc) wave.FrameHandle {
	return h.frames.RequestFrame(fn)
}

func (h *windowHost) CancelFrame(fh wave.FrameHandle) {
	h.frames.CancelFrame(fh)
}

func (h *windowHost) OnResize(fn func()) func() {
	return h.events.Subscribe(event.Resize, func(event.Event) { fn() })
}

// flush runs the frame callbacks due this refresh.
func (h *windowHost) flush(t float64) int {
	return h.frames.Flush(t)
}
