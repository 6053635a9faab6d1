package page

import (
	"fmt"
	"math"

	"github.com/iburimskiy/pulse-drift/internal/event"
)

// Parallax moves the hero image against the scroll direction.
type Parallax struct {
	Factor    float64
	RotateDeg float64

	offset float64
	unsub  func()
}

// NewParallax creates a parallax transform with the given scroll factor and
// fixed rotation in degrees.
func NewParallax(factor, rotateDeg float64) *Parallax {
	return &Parallax{Factor: factor, RotateDeg: rotateDeg}
}

// Attach follows Scroll events from d until Detach.
func (p *Parallax) Attach(d *event.Dispatcher) {
	p.Detach()
	p.unsub = d.Subscribe(event.Scroll, func(e event.Event) {
		if y, ok := e.Data.(float64); ok {
			p.Update(y)
		}
	})
}

// Detach stops following scroll events. Safe to call repeatedly.
func (p *Parallax) Detach() {
	if p.unsub != nil {
		p.unsub()
		p.unsub = nil
	}
}

// Update sets the offset for a scroll position.
func (p *Parallax) Update(scrollY float64) {
	p.offset = -scrollY*p.Factor + 0 // +0 folds -0 into 0
}

// OffsetY is the current vertical translation in logical pixels.
func (p *Parallax) OffsetY() float64 {
	return p.offset
}

// Rotation is the fixed tilt in radians.
func (p *Parallax) Rotation() float64 {
	return p.RotateDeg * math.Pi / 180
}

// String renders the transform as a CSS transform value.
func (p *Parallax) String() string {
	return fmt.Sprintf("translate3d(0, %spx, 0) rotate(%sdeg)",
		formatFloat(p.offset), formatFloat(p.RotateDeg))
}

func formatFloat(v float64) string {
	return fmt.Sprint(math.Round(v*1e4)/1e4 + 0)
}
