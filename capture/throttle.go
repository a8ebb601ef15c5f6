package capture

import "github.com/pkg/errors"

// Throttle passes one frame in every speedUpFactor consecutive
// captures and drops the rest. Dropped frames must cause no side
// effects downstream; the caller is responsible for skipping all
// processing when Admit reports false.
type Throttle struct {
	counter int
	skip    int
}

// NewThrottle builds a throttle from a speed-up factor: 1 processes
// every frame, 2 every other frame, and so on. A factor below 1 would
// make the gate's modulus degenerate, so it is rejected as a
// configuration error.
func NewThrottle(speedUpFactor int) (*Throttle, error) {
	if speedUpFactor < 1 {
		return nil, errors.Errorf("speed-up factor must be at least 1, got %d", speedUpFactor)
	}
	return &Throttle{skip: speedUpFactor - 1}, nil
}

// Admit records one captured frame and reports whether it should be
// processed. The counter resets only when a frame is admitted.
func (t *Throttle) Admit() bool {
	t.counter++
	if t.counter%(t.skip+1) != 0 {
		return false
	}
	t.counter = 0
	return true
}
