package page

import (
	"math"
	"time"

	"github.com/iburimskiy/pulse-drift/internal/event"
)

// View is what the reveal observer needs to know about the hosting viewport.
type View interface {
	ScrollY() float64
	ViewportHeight() float64
	Now() time.Duration
}

// RevealObserver marks sections as revealed once enough of them has scrolled
// into the viewport. Revealing is one-way: a section never hides again.
type RevealObserver struct {
	threshold float64
	sections  []*Section
	view      View
	unsub     []func()
}

// NewRevealObserver creates an observer that fires when the visible share of
// a section reaches threshold (0..1).
func NewRevealObserver(threshold float64) *RevealObserver {
	return &RevealObserver{threshold: threshold}
}

// Observe adds sections to the watch list.
func (o *RevealObserver) Observe(sections ...*Section) {
	o.sections = append(o.sections, sections...)
}

// Attach subscribes to scroll and resize events and runs an initial check, so
// sections already on screen reveal immediately.
func (o *RevealObserver) Attach(d *event.Dispatcher, v View) {
	o.Disconnect()
	o.view = v
	check := func(event.Event) {
		o.Check(v.ScrollY(), v.ViewportHeight(), v.Now())
	}
	o.unsub = append(o.unsub,
		d.Subscribe(event.Scroll, check),
		d.Subscribe(event.Resize, check),
	)
	check(event.Event{})
}

// Disconnect unsubscribes from every event. Observed sections keep their
// reveal state. Safe to call repeatedly.
func (o *RevealObserver) Disconnect() {
	for _, fn := range o.unsub {
		fn()
	}
	o.unsub = nil
	o.view = nil
}

// Check evaluates every observed section against the viewport
// [scrollY, scrollY+viewportHeight) and returns the ones revealed by this call.
func (o *RevealObserver) Check(scrollY, viewportHeight float64, now time.Duration) []*Section {
	var revealed []*Section
	for _, s := range o.sections {
		if s.Revealed || s.Height <= 0 {
			continue
		}
		if VisibleRatio(s.Top, s.Height, scrollY, viewportHeight) >= o.required(s.Height, viewportHeight) {
			s.Revealed = true
			s.RevealedAt = now
			revealed = append(revealed, s)
		}
	}
	return revealed
}

// required caps the threshold for sections taller than the viewport can
// ever show at the threshold ratio.
func (o *RevealObserver) required(height, viewportHeight float64) float64 {
	return math.Min(o.threshold, viewportHeight/height)
}

// VisibleRatio is the fraction of a section's height inside the viewport.
func VisibleRatio(top, height, scrollY, viewportHeight float64) float64 {
	if height <= 0 {
		return 0
	}
	visTop := math.Max(top, scrollY)
	visBottom := math.Min(top+height, scrollY+viewportHeight)
	if visBottom <= visTop {
		return 0
	}
	return (visBottom - visTop) / height
}
