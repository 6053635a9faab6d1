package wave

// FrameFunc is called once per display refresh with the host clock in
// milliseconds.
type FrameFunc func(t float64)

// FrameHandle identifies a scheduled frame callback. The zero handle is never
// issued and cancelling it is a no-op.
type FrameHandle uint64

// FrameQueue is a refresh-synchronised scheduling primitive: callbacks
// requested through RequestFrame run on the next Flush, which the host calls
// exactly once per refresh. A callback that requests another frame while
// being flushed lands on the following Flush, so a self-rescheduling chain
// keeps exactly one callback in flight.
//
// The zero value is ready to use. FrameQueue is not safe for concurrent use;
// hosts drive it from their render goroutine.
type FrameQueue struct {
	next    FrameHandle
	pending map[FrameHandle]FrameFunc
	order   []FrameHandle
}

// RequestFrame schedules fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameHandle {
	if q.pending == nil {
		q.pending = make(map[FrameHandle]FrameFunc)
	}
	q.next++
	q.pending[q.next] = fn
	q.order = append(q.order, q.next)
	return q.next
}

// CancelFrame drops a scheduled callback. Unknown or already run handles are ignored.
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	delete(q.pending, h)
}

// Pending reports how many callbacks are scheduled.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Flush runs every callback that was scheduled before the call, in request
// order, and returns how many ran.
func (q *FrameQueue) Flush(t float64) int {
	batch := q.order
	q.order = nil

	ran := 0
	for _, h := range batch {
		fn, ok := q.pending[h]
		if !ok {
			continue
		}
		delete(q.pending, h)
		fn(t)
		ran++
	}
	return ran
}
