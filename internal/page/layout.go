package page

import (
	"math"
	"time"

	"github.com/iburimskiy/pulse-drift/internal/config"
)

// SectionID names a page section.
type SectionID string

const (
	HeroSection     SectionID = "hero"
	FeaturesSection SectionID = "features"
	ShowcaseSection SectionID = "showcase"
	TimelineSection SectionID = "timeline"
)

// Rect is an axis-aligned rectangle in logical page coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Section is one full-width block of the page. Geometry is recomputed on
// every resize; reveal state survives it.
type Section struct {
	ID     SectionID
	Top    float64
	Height float64

	Revealed   bool
	RevealedAt time.Duration
}

// RevealProgress returns how far the reveal transition has run at now, in [0, 1].
func (s *Section) RevealProgress(now time.Duration) float64 {
	if !s.Revealed {
		return 0
	}
	p := float64(now-s.RevealedAt) / float64(config.RevealDuration)
	return math.Max(0, math.Min(1, p))
}

// Layout is the fixed vertical stack of sections.
type Layout struct {
	Sections []*Section

	Width  float64
	Height float64 // total page height
	Column Rect    // content column, relative to the section top

	// Canvas is the showcase drawing surface in page coordinates.
	Canvas Rect
}

// NewLayout creates the section stack for a viewport.
func NewLayout(width, viewportHeight float64) *Layout {
	l := &Layout{
		Sections: []*Section{
			{ID: HeroSection},
			{ID: FeaturesSection},
			{ID: ShowcaseSection},
			{ID: TimelineSection},
		},
	}
	l.Update(width, viewportHeight)
	return l
}

const (
	sideMargin    = 48
	minColumn     = 240
	headingHeight = 150
)

// Section returns the section with the given id, or nil.
func (l *Layout) Section(id SectionID) *Section {
	for _, s := range l.Sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Update recomputes geometry for a new viewport size.
func (l *Layout) Update(width, viewportHeight float64) {
	l.Width = width
	colW := math.Min(width-2*sideMargin, config.ContentMaxWidth)
	if colW < minColumn {
		colW = width
	}
	l.Column = Rect{X: (width - colW) / 2, Y: config.SectionPadding, W: colW}

	rows := math.Ceil(float64(len(Features)) / config.FeatureColumns)
	heights := map[SectionID]float64{
		HeroSection:     math.Max(viewportHeight, 480),
		FeaturesSection: config.SectionPadding*2 + headingHeight + rows*(config.FeatureCardH+24),
		ShowcaseSection: config.SectionPadding*2 + headingHeight + config.ShowcaseHeight,
		TimelineSection: config.SectionPadding*2 + headingHeight + float64(len(Timeline))*config.TimelineItemH,
	}

	top := 0.0
	for _, s := range l.Sections {
		s.Top = top
		s.Height = heights[s.ID]
		top += s.Height
	}
	l.Height = top + config.FooterHeight

	show := l.Section(ShowcaseSection)
	l.Canvas = Rect{
		X: l.Column.X,
		Y: show.Top + config.SectionPadding + headingHeight,
		W: colW,
		H: config.ShowcaseHeight,
	}
}

// MaxScroll is the largest scroll offset that keeps the viewport on the page.
func (l *Layout) MaxScroll(viewportHeight float64) float64 {
	return math.Max(0, l.Height-viewportHeight)
}
