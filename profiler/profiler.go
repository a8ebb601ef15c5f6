// Package profiler - lightweight frame-rate and frame-time tracking
// for the capture loop.
package profiler

import (
	"fmt"
	"time"
)

// Tracker accumulates per-frame timings and periodically produces a
// one-line report. It distinguishes captured frames from processed
// frames so the effect of the throttle gate is visible.
type Tracker struct {
	interval time.Duration

	windowStart     time.Time
	captured        int
	processed       int
	processingTotal time.Duration

	now func() time.Time
}

// New returns a tracker that reports at most once per interval.
func New(interval time.Duration) *Tracker {
	t := &Tracker{interval: interval, now: time.Now}
	t.windowStart = t.now()
	return t
}

// Observe records one loop iteration. processed tells whether the
// frame made it past the throttle gate; took is the full iteration
// time. When a report interval has elapsed, Observe returns the report
// line and resets the window.
func (t *Tracker) Observe(processed bool, took time.Duration) (string, bool) {
	t.captured++
	if processed {
		t.processed++
		t.processingTotal += took
	}

	elapsed := t.now().Sub(t.windowStart)
	if elapsed < t.interval {
		return "", false
	}

	captureFPS := float64(t.captured) / elapsed.Seconds()
	processedFPS := float64(t.processed) / elapsed.Seconds()
	var avg time.Duration
	if t.processed > 0 {
		avg = t.processingTotal / time.Duration(t.processed)
	}

	report := fmt.Sprintf("capture %.1f fps | processed %.1f fps | avg frame %.2fms",
		captureFPS, processedFPS, float64(avg.Microseconds())/1000.0)

	t.windowStart = t.now()
	t.captured = 0
	t.processed = 0
	t.processingTotal = 0

	return report, true
}
