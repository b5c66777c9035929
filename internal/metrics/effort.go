package metrics

import (
	"github.com/san-kum/spinwheel/internal/wheel"
)

// SpinEffort sums the angular velocity injected into the wheel from outside.
// Decay only ever lowers omega, so any positive jump between observed steps
// is an external impulse (user trigger or governor).
type SpinEffort struct {
	name    string
	total   float64
	prev    float64
	primed  bool
}

func NewSpinEffort() *SpinEffort {
	return &SpinEffort{name: "spin_effort"}
}

func (s *SpinEffort) Name() string { return s.name }

func (s *SpinEffort) Observe(w *wheel.Wheel, t float64) {
	if s.primed {
		if delta := w.Omega - s.prev; delta > 0 {
			s.total += delta
		}
	}
	s.prev = w.Omega
	s.primed = true
}

func (s *SpinEffort) Value() float64 { return s.total }

func (s *SpinEffort) Reset() {
	s.total = 0
	s.prev = 0
	s.primed = false
}
