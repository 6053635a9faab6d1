package page

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/iburimskiy/pulse-drift/internal/config"
	"github.com/iburimskiy/pulse-drift/internal/event"
)

type fakeView struct {
	scroll, height float64
	now            time.Duration
}

func (v *fakeView) ScrollY() float64        { return v.scroll }
func (v *fakeView) ViewportHeight() float64 { return v.height }
func (v *fakeView) Now() time.Duration      { return v.now }

func TestContent(t *testing.T) {
	if len(Features) != 4 {
		t.Errorf("features = %d, want 4", len(Features))
	}
	if len(Timeline) != 3 {
		t.Errorf("milestones = %d, want 3", len(Timeline))
	}
	if got := Footer(2026); !strings.HasPrefix(got, "© 2026 Pulse Drift Studios.") {
		t.Errorf("Footer = %q", got)
	}
	if got := Kicker(); got != "NEON RACING UNIVERSE" {
		t.Errorf("Kicker = %q", got)
	}
}

func TestVisibleRatio(t *testing.T) {
	tests := []struct {
		name                       string
		top, height, scroll, viewH float64
		want                       float64
	}{
		{"fully inside", 100, 200, 0, 720, 1},
		{"below viewport", 800, 200, 0, 720, 0},
		{"touching edge", 720, 200, 0, 720, 0},
		{"top half", 620, 200, 0, 720, 0.5},
		{"scrolled past", 0, 200, 400, 720, 0},
		{"zero height", 0, 0, 0, 720, 0},
		{"taller than viewport", 0, 2000, 500, 1000, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleRatio(tt.top, tt.height, tt.scroll, tt.viewH)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("VisibleRatio = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRevealObserver_Threshold(t *testing.T) {
	s := &Section{ID: FeaturesSection, Top: 1000, Height: 400}
	o := NewRevealObserver(config.RevealThreshold)
	o.Observe(s)

	// 120px of 400 visible = 0.30
	if got := o.Check(400, 720, time.Second); len(got) != 0 || s.Revealed {
		t.Fatalf("revealed at ratio 0.30")
	}
	// 140px of 400 visible = 0.35
	got := o.Check(420, 720, 2*time.Second)
	if len(got) != 1 || !s.Revealed {
		t.Fatalf("not revealed at ratio 0.35")
	}
	if s.RevealedAt != 2*time.Second {
		t.Errorf("RevealedAt = %v, want 2s", s.RevealedAt)
	}

	// one-way
	if got := o.Check(0, 720, 3*time.Second); len(got) != 0 || !s.Revealed {
		t.Errorf("section hid again after scrolling away")
	}
	if s.RevealedAt != 2*time.Second {
		t.Errorf("RevealedAt moved to %v", s.RevealedAt)
	}
}

func TestRevealObserver_TallSection(t *testing.T) {
	s := &Section{Top: 0, Height: 4000}
	o := NewRevealObserver(0.35)
	o.Observe(s)
	o.Check(1000, 720, 0)
	if !s.Revealed {
		t.Error("section taller than viewport/threshold never reveals")
	}
}

func TestRevealObserver_AttachDisconnect(t *testing.T) {
	d := event.NewDispatcher()
	l := NewLayout(1280, 720)
	v := &fakeView{height: 720}

	o := NewRevealObserver(config.RevealThreshold)
	o.Observe(l.Sections...)
	o.Attach(d, v)

	if !l.Section(HeroSection).Revealed {
		t.Error("hero not revealed by the initial check")
	}
	if l.Section(TimelineSection).Revealed {
		t.Error("timeline revealed while off screen")
	}
	if d.Count(event.Scroll) != 1 || d.Count(event.Resize) != 1 {
		t.Fatalf("subscriptions = %d/%d, want 1/1", d.Count(event.Scroll), d.Count(event.Resize))
	}

	v.scroll = l.Section(TimelineSection).Top
	v.now = time.Second
	d.Dispatch(event.Event{Type: event.Scroll, Data: v.scroll})
	if !l.Section(TimelineSection).Revealed {
		t.Error("timeline not revealed after scrolling to it")
	}

	o.Disconnect()
	o.Disconnect()
	if d.Count(event.Scroll) != 0 || d.Count(event.Resize) != 0 {
		t.Errorf("subscriptions left after Disconnect: %d/%d", d.Count(event.Scroll), d.Count(event.Resize))
	}
}

func TestSection_RevealProgress(t *testing.T) {
	s := &Section{}
	if p := s.RevealProgress(time.Hour); p != 0 {
		t.Errorf("unrevealed progress = %v", p)
	}
	s.Revealed, s.RevealedAt = true, time.Second
	tests := []struct {
		now  time.Duration
		want float64
	}{
		{time.Second, 0},
		{time.Second + config.RevealDuration/2, 0.5},
		{time.Second + config.RevealDuration, 1},
		{time.Minute, 1},
	}
	for _, tt := range tests {
		if got := s.RevealProgress(tt.now); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RevealProgress(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestLayout(t *testing.T) {
	l := NewLayout(1280, 720)
	prevBottom := 0.0
	for _, s := range l.Sections {
		if s.Top != prevBottom {
			t.Errorf("%s: top %v, want %v", s.ID, s.Top, prevBottom)
		}
		if s.Height <= 0 {
			t.Errorf("%s: height %v", s.ID, s.Height)
		}
		prevBottom = s.Top + s.Height
	}
	if l.Height != prevBottom+config.FooterHeight {
		t.Errorf("page height = %v, want %v", l.Height, prevBottom+config.FooterHeight)
	}
	if l.Column.W != config.ContentMaxWidth {
		t.Errorf("column width = %v, want %v", l.Column.W, config.ContentMaxWidth)
	}

	show := l.Section(ShowcaseSection)
	if l.Canvas.Y < show.Top || l.Canvas.Y+l.Canvas.H > show.Top+show.Height {
		t.Errorf("canvas %+v outside showcase section [%v, %v]", l.Canvas, show.Top, show.Top+show.Height)
	}

	hero := l.Section(HeroSection)
	hero.Revealed = true
	l.Update(600, 900)
	if !hero.Revealed {
		t.Error("Update dropped reveal state")
	}
	if hero.Height != 900 {
		t.Errorf("hero height = %v, want viewport height 900", hero.Height)
	}
	if l.Column.W != 600-2*sideMargin {
		t.Errorf("narrow column = %v", l.Column.W)
	}
	if l.MaxScroll(900) != l.Height-900 {
		t.Errorf("MaxScroll = %v", l.MaxScroll(900))
	}
	if NewLayout(200, 100).MaxScroll(1e6) != 0 {
		t.Error("MaxScroll negative")
	}
}

func TestParallax(t *testing.T) {
	d := event.NewDispatcher()
	p := NewParallax(config.ParallaxFactor, config.ParallaxRotateDeg)
	if got := p.String(); got != "translate3d(0, 0px, 0) rotate(-6deg)" {
		t.Errorf("initial transform = %q", got)
	}

	p.Attach(d)
	d.Dispatch(event.Event{Type: event.Scroll, Data: 1000.0})
	if math.Abs(p.OffsetY()+60) > 1e-9 {
		t.Errorf("OffsetY = %v, want -60", p.OffsetY())
	}
	if got := p.String(); got != "translate3d(0, -60px, 0) rotate(-6deg)" {
		t.Errorf("transform = %q", got)
	}
	if math.Abs(p.Rotation()+math.Pi/30) > 1e-12 {
		t.Errorf("Rotation = %v, want -π/30", p.Rotation())
	}

	p.Update(0)
	if got := p.String(); got != "translate3d(0, 0px, 0) rotate(-6deg)" {
		t.Errorf("transform at top = %q", got)
	}

	p.Detach()
	p.Detach()
	if d.Count(event.Scroll) != 0 {
		t.Errorf("scroll listeners after Detach = %d", d.Count(event.Scroll))
	}
	d.Dispatch(event.Event{Type: event.Scroll, Data: 500.0})
	if p.OffsetY() != 0 {
		t.Errorf("detached parallax moved to %v", p.OffsetY())
	}
}
