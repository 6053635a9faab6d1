package wave

// Context is a 2D immediate-mode drawing context. Coordinates passed to
// ClearRect and StrokePolyline are transformed by the current scale.
// Implementations must not retain the points slice after StrokePolyline returns.
type Context interface {
	// ResetTransform restores the identity transform.
	ResetTransform()
	// Scale multiplies the current transform by a scale.
	Scale(sx, sy float64)
	ClearRect(x, y, width, height float64)
	StrokePolyline(points []Point, style StrokeStyle)
}

// Surface is the rectangular drawing region the renderer paints into.
type Surface interface {
	// Size is the logical (CSS pixel) size of the surface.
	Size() (width, height float64)
	// SetBackingSize resizes the device-pixel backing store.
	SetBackingSize(width, height int)
	// Context returns the 2D context, or nil when the surface cannot be drawn to.
	Context() Context
}

// Host is the environment a renderer runs in.
type Host interface {
	// DevicePixelRatio is the ratio of physical to logical pixels.
	DevicePixelRatio() float64
	RequestFrame(fn FrameFunc) FrameHandle
	CancelFrame(h FrameHandle)
	// OnResize subscribes fn to viewport resizes and returns the matching
	// unsubscribe function.
	OnResize(fn func()) (unsubscribe func())
}
