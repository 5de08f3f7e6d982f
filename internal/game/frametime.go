package game

import (
	"strconv"
	"time"
)

// FrameTimes collects frame-time samples between reports.
type FrameTimes struct {
	samples []time.Duration
}

// Add records one sample.
func (f *FrameTimes) Add(d time.Duration) { f.samples = append(f.samples, d) }

// Len returns the number of samples waiting to be drained.
func (f *FrameTimes) Len() int { return len(f.samples) }

// Drain returns the mean of the recorded samples and how many there were,
// then forgets them. With no samples it returns (0, 0).
func (f *FrameTimes) Drain() (avg time.Duration, n int) {
	n = len(f.samples)
	if n == 0 {
		return 0, 0
	}
	var sum time.Duration
	for _, d := range f.samples {
		sum += d
	}
	f.samples = f.samples[:0]
	return sum / time.Duration(n), n
}

// overlayText formats d in milliseconds, truncated to four characters.
func overlayText(d time.Duration) string {
	s := strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', -1, 64)
	if len(s) > 4 {
		s = s[:4]
	}
	return s
}
