package earlystop

import "math"

// Stopper tracks a running minimum and how many consecutive updates
// have failed to improve on it by more than Tolerance. A zero Stopper
// is not usable; construct one with New.
type Stopper struct {
	maxStale  int
	tolerance float64

	hasMin bool
	min    float64
	stale  int
}

// New constructs a Stopper. maxStale is the number of consecutive
// non-improving updates that trigger termination; tolerance is the
// minimum improvement magnitude that counts as progress.
func New(maxStale int, tolerance float64) *Stopper {
	return &Stopper{maxStale: maxStale, tolerance: tolerance}
}

// close reports whether a and b are within tolerance t of each other.
func close(a, b, t float64) bool {
	return math.Abs(a-b) <= t
}

// Update records v as the latest observation and reports whether the
// run should stop. The first call always seeds the running minimum
// and never signals a stop.
func (s *Stopper) Update(v float64) bool {
	if !s.hasMin {
		s.hasMin = true
		s.min = v
		s.stale = 0
		return false
	}

	improved := v < s.min && !close(v, s.min, s.tolerance)
	if improved {
		s.min = v
		s.stale = 0
	} else {
		s.stale++
	}

	return s.stale >= s.maxStale
}

// Min returns the running minimum observed so far. Only meaningful
// after at least one Update call.
func (s *Stopper) Min() float64 { return s.min }

// Stale returns the current run of consecutive non-improving updates.
func (s *Stopper) Stale() int { return s.stale }

// Reset clears all tracked state, as if no Update had ever been called.
func (s *Stopper) Reset() {
	s.hasMin = false
	s.min = 0
	s.stale = 0
}
