package metrics

import (
	"github.com/san-kum/spinwheel/internal/wheel"
)

// Energy accumulates the ball's mean mechanical energy (unit mass, pixel
// units). Potential energy is measured from the lowest reachable point of
// the ball's center.
type Energy struct {
	name    string
	total   float64
	samples int
}

func NewEnergy() *Energy {
	return &Energy{name: "mean_energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(w *wheel.Wheel, t float64) {
	cfg := w.Config()
	g := cfg.Gravity * cfg.PixelsPerMeter

	speed := w.BallSpeed()
	ke := 0.5 * speed * speed

	floor := w.CenterY + (w.RadiusInner - cfg.BallRadius)
	pe := g * (floor - w.Ball.Y)

	e.total += ke + pe
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}
