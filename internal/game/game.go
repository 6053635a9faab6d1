package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/pulse-drift/internal/config"
	"github.com/iburimskiy/pulse-drift/internal/event"
	"github.com/iburimskiy/pulse-drift/internal/page"
	"github.com/iburimskiy/pulse-drift/internal/wave"
)

const volumeStep = 0.5

// Game is the windowed showcase page.
type Game struct {
	opts config.Options
	log  *slog.Logger

	events   *event.Dispatcher
	host     *windowHost
	canvas   *pulseCanvas
	renderer *wave.Renderer
	layout   *page.Layout
	reveal   *page.RevealObserver
	parallax *page.Parallax
	typo     *typography
	car      heroCar
	music    *soundtrack

	start    time.Time
	year     int
	started  bool
	outsideW float64
	outsideH float64
	scale    float64
	scrollY  float64
	status   string
}

var _ page.View = (*Game)(nil)

// New builds the page and, when opts name one, starts the soundtrack.
func New(opts config.Options, log *slog.Logger) (*Game, error) {
	typo, err := newTypography()
	if err != nil {
		return nil, err
	}

	events := event.NewDispatcher()
	host := newWindowHost(events)
	canvas := newPulseCanvas(string(page.ShowcaseSection))
	layout := page.NewLayout(config.WindowWidth, config.WindowHeight)

	g := &Game{
		opts:     opts,
		log:      log,
		events:   events,
		host:     host,
		canvas:   canvas,
		renderer: wave.New(canvas, host, wave.WithLogger(log)),
		layout:   layout,
		reveal:   page.NewRevealObserver(config.RevealThreshold),
		parallax: page.NewParallax(config.ParallaxFactor, config.ParallaxRotateDeg),
		typo:     typo,
		music:    newSoundtrack(log),
		start:    time.Now(),
		year:     time.Now().Year(),
	}
	g.reveal.Observe(layout.Sections...)

	switch {
	case opts.Soundtrack != "":
		if err := g.music.Load(opts.Soundtrack, opts.Volume); err != nil {
			g.fail("load soundtrack", err)
		}
	case opts.PickSoundtrack:
		if err := g.music.Pick(opts.Volume); err != nil {
			g.fail("pick soundtrack", err)
		}
	}
	return g, nil
}

// Run opens the window and blocks until the page is closed.
func Run(opts config.Options, log *slog.Logger) error {
	g, err := New(opts, log)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(page.Meta.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen)

	log.Info("window host starting", "title", page.Meta.Title)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (g *Game) fail(what string, err error) {
	g.log.Error(what, "err", err)
	g.status = fmt.Sprintf("%s: %v", what, err)
}

func (g *Game) ScrollY() float64 { return g.scrollY }

func (g *Game) ViewportHeight() float64 { return g.outsideH }

// Now is the time since the page opened.
func (g *Game) Now() time.Duration { return time.Since(g.start) }

func (g *Game) Update() error {
	if !g.started {
		g.reveal.Attach(g.events, g)
		g.parallax.Attach(g.events)
		g.started = true
	}
	if g.renderer.State() == wave.Inactive {
		g.renderer.Start()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.music.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		if err := g.music.Pick(g.opts.Volume); err != nil {
			g.fail("pick soundtrack", err)
		} else {
			g.status = ""
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.opts.Volume = g.music.AdjustVolume(volumeStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.opts.Volume = g.music.AdjustVolume(-volumeStep)
	}

	g.scrollTo(g.scrollY + g.scrollInput())
	g.music.Update()
	return nil
}

// scrollInput converts this tick's wheel and key input into a scroll delta.
func (g *Game) scrollInput() float64 {
	_, wy := ebiten.Wheel()
	dy := -wy * config.ScrollStep

	for _, k := range []struct {
		key   ebiten.Key
		delta float64
	}{
		{ebiten.KeyArrowDown, config.ScrollStep},
		{ebiten.KeyArrowUp, -config.ScrollStep},
		{ebiten.KeyPageDown, config.PageStep},
		{ebiten.KeyPageUp, -config.PageStep},
		{ebiten.KeyHome, -g.layout.Height},
		{ebiten.KeyEnd, g.layout.Height},
	} {
		if inpututil.IsKeyJustPressed(k.key) {
			dy += k.delta
		}
	}
	return dy
}

// scrollTo clamps y to the page and dispatches a Scroll event when it moved.
func (g *Game) scrollTo(y float64) {
	y = clampScroll(y, g.layout.MaxScroll(g.outsideH))
	if y == g.scrollY {
		return
	}
	g.scrollY = y
	g.events.Dispatch(event.Event{Type: event.Scroll, Data: y})
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.Now()
	g.host.flush(float64(now) / float64(time.Millisecond))
	g.drawPage(screen, now)
	g.drawStatus(screen)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	msg := "wheel/arrows: scroll  O: soundtrack  space: pause  +/-: volume  esc: quit"
	if g.status != "" {
		msg = g.status
	} else if g.music.Loaded() {
		pos, length := g.music.Position()
		msg = fmt.Sprintf("%s  %s / %s  volume: %.1f", msg, formatDuration(pos), formatDuration(length), g.opts.Volume)
	}
	ebitenutil.DebugPrintAt(screen, msg, 8, screen.Bounds().Dy()-20)
}

// Layout is required by ebiten.Game; LayoutF takes precedence.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}

// LayoutF reports the screen in device pixels so the page is drawn at native
// resolution. Changes of window size or monitor density fire a Resize event.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH || scale != g.scale {
		g.resize(outsideWidth, outsideHeight, scale)
	}
	return scaleFrom(outsideWidth, outsideHeight, scale)
}

func (g *Game) resize(w, h, scale float64) {
	g.outsideW, g.outsideH, g.scale = w, h, scale
	g.host.scale = scale
	if err := g.typo.SetScale(scale); err != nil {
		g.fail("scale fonts", err)
	}

	g.layout.Update(w, h)
	g.canvas.SetLogicalSize(g.layout.Canvas.W, g.layout.Canvas.H)
	g.scrollY = clampScroll(g.scrollY, g.layout.MaxScroll(h))
	g.parallax.Update(g.scrollY)

	g.log.Debug("viewport resized", "width", w, "height", h, "scale", scale)
	g.events.Dispatch(event.Event{Type: event.Resize})
}

// Close detaches every listener, stops the renderer and the soundtrack.
func (g *Game) Close() {
	g.renderer.Stop()
	g.reveal.Disconnect()
	g.parallax.Detach()
	g.music.Close()
	g.canvas.Dispose()
	g.log.Debug("window host closed", "frames", g.renderer.Frames(), "listeners", g.events.Count(event.Resize)+g.events.Count(event.Scroll))
}
