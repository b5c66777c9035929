package metrics

import (
	"github.com/san-kum/spinwheel/internal/wheel"
)

// Contact measures the fraction of steps where the ball touched the rim.
type Contact struct {
	name     string
	touching int
	samples  int
}

func NewContact() *Contact {
	return &Contact{name: "contact_fraction"}
}

func (c *Contact) Name() string { return c.name }

func (c *Contact) Observe(w *wheel.Wheel, t float64) {
	if w.LastContact.Touching {
		c.touching++
	}
	c.samples++
}

func (c *Contact) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.touching) / float64(c.samples)
}

func (c *Contact) Reset() {
	c.touching = 0
	c.samples = 0
}

// Sticking measures the fraction of contact steps resolved in the sticking
// regime, i.e. where static friction fully cancelled slip.
type Sticking struct {
	name     string
	sticking int
	touching int
}

func NewSticking() *Sticking {
	return &Sticking{name: "sticking_fraction"}
}

func (s *Sticking) Name() string { return s.name }

func (s *Sticking) Observe(w *wheel.Wheel, t float64) {
	if !w.LastContact.Touching {
		return
	}
	s.touching++
	if w.LastContact.Sticking {
		s.sticking++
	}
}

func (s *Sticking) Value() float64 {
	if s.touching == 0 {
		return 0
	}
	return float64(s.sticking) / float64(s.touching)
}

func (s *Sticking) Reset() {
	s.sticking = 0
	s.touching = 0
}
