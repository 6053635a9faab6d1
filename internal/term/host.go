// Package term runs the showcase waveform inside a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/pulse-drift/internal/config"
	"github.com/iburimskiy/pulse-drift/internal/event"
	"github.com/iburimskiy/pulse-drift/internal/page"
	"github.com/iburimskiy/pulse-drift/internal/wave"
)

const helpLine = "esc/q: quit"

// Host is a wave.Host backed by a tcell screen. Ticks, resizes and key
// presses are all handled on the goroutine running Run.
type Host struct {
	screen   tcell.Screen
	canvas   *Canvas
	renderer *wave.Renderer
	events   *event.Dispatcher
	frames   wave.FrameQueue
	log      *slog.Logger

	fps   int
	start time.Time
}

var _ wave.Host = (*Host)(nil)

// NewHost wraps an initialised screen.
func NewHost(screen tcell.Screen, fps int, log *slog.Logger) *Host {
	h := &Host{
		screen: screen,
		canvas: NewCanvas(screen),
		events: event.NewDispatcher(),
		log:    log,
		fps:    max(fps, 1),
		start:  time.Now(),
	}
	h.renderer = wave.New(h.canvas, h, wave.WithLogger(log))
	return h
}

// DevicePixelRatio maps one logical pixel onto the half-block grid: a cell
// is CellWidth logical pixels wide and holds one pixel across.
func (h *Host) DevicePixelRatio() float64 {
	return 1.0 / config.CellWidth
}

func (h *Host) RequestFrame(fn wave.FrameFunc) wave.FrameHandle {
	return h.frames.RequestFrame(fn)
}

func (h *Host) CancelFrame(fh wave.FrameHandle) {
	h.frames.CancelFrame(fh)
}

func (h *Host) OnResize(fn func()) func() {
	return h.events.Subscribe(event.Resize, func(event.Event) { fn() })
}

// Run drives the renderer until ctx is cancelled or the user quits.
func (h *Host) Run(ctx context.Context) error {
	h.start = time.Now()
	if !h.renderer.Start() {
		h.log.Warn("terminal too small for the waveform, waiting for a resize")
	}
	defer h.renderer.Stop()

	evs := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(evs, quit)

	ticker := time.NewTicker(time.Second / time.Duration(h.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-evs:
			if !ok || !h.handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			h.frame(float64(now.Sub(h.start)) / float64(time.Millisecond))
		}
	}
}

// handle reacts to one terminal event and reports whether to keep running.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		}
	case *tcell.EventResize:
		h.screen.Sync()
		cols, rows := ev.Size()
		h.log.Debug("terminal resized", "cols", cols, "rows", rows)
		h.events.Dispatch(event.Event{Type: event.Resize})
		if h.renderer.State() == wave.Inactive {
			h.renderer.Start()
		}
	}
	return true
}

// frame runs the due frame callbacks at t milliseconds and repaints.
func (h *Host) frame(t float64) {
	h.frames.Flush(t)
	h.screen.Clear()
	h.canvas.Present()
	h.drawChrome()
	h.screen.Show()
}

func (h *Host) drawChrome() {
	_, rows := h.screen.Size()
	title := tcell.StyleDefault.Foreground(rgb(config.AccentColor)).Bold(true)
	muted := tcell.StyleDefault.Foreground(rgb(config.MutedTextColor))

	x := h.print(0, 0, page.HeroTitle, title)
	h.print(x+2, 0, page.Kicker(), muted)
	if rows > 1 {
		status := fmt.Sprintf("%s  frames: %d", helpLine, h.renderer.Frames())
		h.print(0, rows-1, status, muted)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// print writes s from (x, y), clipped to the screen, and returns the column
// after the last rune.
func (h *Host) print(x, y int, s string, style tcell.Style) int {
	cols, _ := h.screen.Size()
	for _, r := range s {
		if x >= cols {
			break
		}
		h.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// Run opens the terminal, runs the waveform until quit and restores the
// terminal.
func Run(ctx context.Context, opts config.Options, log *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	screen.SetTitle(page.Meta.Title)
	log.Info("terminal host starting", "fps", opts.FPS)
	return NewHost(screen, opts.FPS, log).Run(ctx)
}
