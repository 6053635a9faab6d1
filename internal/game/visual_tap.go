package game

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// visualTap wraps the soundtrack streamer and records the last N samples into
// a ring buffer so the showcase can draw a level meter from recently played
// audio. Stream runs on the speaker goroutine, snapshot on the draw goroutine.
type visualTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func newVisualTap(src beep.Streamer, ringSize int) *visualTap {
	return &visualTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *visualTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex = (t.nextIndex + 1) % len(t.buffer)
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *visualTap) Err() error { return t.Source.Err() }

// snapshot returns up to the last n samples in chronological order.
func (t *visualTap) snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([][2]float64, n)
	start := t.nextIndex - n
	if start < 0 {
		start += len(t.buffer)
	}
	for i := 0; i < n; i++ {
		out[i] = t.buffer[(start+i)%len(t.buffer)]
	}
	return out
}

// bands folds samples into n RMS bands compressed for display, smoothing each
// towards prev with the given factor. prev is reused when it has length n.
func bands(samples [][2]float64, n int, prev []float64, smoothing float64) []float64 {
	if len(prev) != n {
		prev = make([]float64, n)
	}
	if len(samples) == 0 || n == 0 {
		return prev
	}

	size := len(samples) / n
	if size < 1 {
		size = 1
	}
	for i := 0; i < n; i++ {
		start := i * size
		if start >= len(samples) {
			break
		}
		end := min(start+size, len(samples))

		var sumSquares float64
		for _, s := range samples[start:end] {
			mono := (s[0] + s[1]) * 0.5
			sumSquares += mono * mono
		}
		rms := math.Sqrt(sumSquares / float64(end-start))
		prev[i] = smoothing*prev[i] + (1-smoothing)*math.Pow(rms, 0.3)
	}
	return prev
}
