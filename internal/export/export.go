// Package export renders the showcase waveform without a window, writing one
// PNG per frame.
package export

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/iburimskiy/pulse-drift/internal/wave"
)

// ErrInvalidSize is returned for non-positive export dimensions or density.
var ErrInvalidSize = errors.New("invalid export size")

// Options describe an export run. Width and Height are logical pixels; the
// written images are Width×Density by Height×Density.
type Options struct {
	Output    string
	Width     int
	Height    int
	Density   float64
	TimeMS    float64
	Frames    int
	FrameStep float64
}

// stillHost drives the renderer by hand: frames run only when flushed, and
// the size never changes.
type stillHost struct {
	frames  wave.FrameQueue
	density float64
}

func (h *stillHost) DevicePixelRatio() float64                       { return h.density }
func (h *stillHost) RequestFrame(fn wave.FrameFunc) wave.FrameHandle { return h.frames.RequestFrame(fn) }
func (h *stillHost) CancelFrame(fh wave.FrameHandle)                 { h.frames.CancelFrame(fh) }
func (h *stillHost) OnResize(func()) func()                          { return func() {} }

// Render runs the waveform renderer for opts.Frames ticks starting at
// opts.TimeMS and saves each tick. It returns the written paths.
func Render(opts Options, log *slog.Logger) ([]string, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Density <= 0 {
		return nil, fmt.Errorf("%w: %dx%d at density %v", ErrInvalidSize, opts.Width, opts.Height, opts.Density)
	}
	frames := max(opts.Frames, 1)

	canvas := NewCanvas(float64(opts.Width), float64(opts.Height))
	defer func() { _ = canvas.Close() }()

	host := &stillHost{density: opts.Density}
	r := wave.New(canvas, host, wave.WithLogger(log))
	if !r.Start() {
		return nil, fmt.Errorf("%w: canvas has no drawing context", ErrInvalidSize)
	}
	defer r.Stop()

	paths := make([]string, 0, frames)
	for i := 0; i < frames; i++ {
		t := opts.TimeMS + float64(i)*opts.FrameStep
		host.frames.Flush(t)
		if err := canvas.Err(); err != nil {
			return paths, err
		}

		path := FramePath(opts.Output, i, frames)
		if err := canvas.SavePNG(path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		log.Debug("frame exported", "path", path, "t", t)
	}

	w, h := canvas.BackingSize()
	log.Info("export finished", "frames", len(paths), "width", w, "height", h, "output", opts.Output)
	return paths, nil
}

// FramePath names frame i of n. A single frame keeps output unchanged;
// sequences get a zero-padded index before the extension.
func FramePath(output string, i, n int) string {
	if n <= 1 {
		return output
	}
	ext := filepath.Ext(output)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(output, ext), i, ext)
}
