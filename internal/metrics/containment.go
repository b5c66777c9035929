package metrics

import (
	"math"

	"github.com/san-kum/spinwheel/internal/wheel"
)

// Containment tracks the smallest remaining gap between the ball and the
// rim boundary over a run. A negative value means the invariant was broken.
type Containment struct {
	name      string
	minMargin float64
	samples   int
}

func NewContainment() *Containment {
	return &Containment{name: "containment_margin", minMargin: math.Inf(1)}
}

func (c *Containment) Name() string { return c.name }

func (c *Containment) Observe(w *wheel.Wheel, t float64) {
	dist := math.Hypot(w.Ball.X-w.CenterX, w.Ball.Y-w.CenterY)
	margin := (w.RadiusInner - w.BallRadius()) - dist
	if margin < c.minMargin {
		c.minMargin = margin
	}
	c.samples++
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.minMargin
}

func (c *Containment) Reset() {
	c.minMargin = math.Inf(1)
	c.samples = 0
}
