package metrics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/spinwheel/internal/wheel"
)

func newTestWheel(t *testing.T) *wheel.Wheel {
	t.Helper()
	return wheel.New(wheel.DefaultConfig(), rand.New(rand.NewSource(5)))
}

func TestContainmentMargin(t *testing.T) {
	w := newTestWheel(t)
	m := NewContainment()

	// The reset placement sits exactly 1px inside the allowed radius.
	m.Observe(w, 0)
	if math.Abs(m.Value()-1.0) > 1e-9 {
		t.Errorf("expected margin 1.0 at reset placement, got %f", m.Value())
	}

	// Move the ball to the center: margin grows, minimum stays.
	w.Ball.X, w.Ball.Y = w.CenterX, w.CenterY
	m.Observe(w, 1)
	if math.Abs(m.Value()-1.0) > 1e-9 {
		t.Errorf("expected minimum margin to stick at 1.0, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset with no samples, got %f", m.Value())
	}
}

func TestEnergyAtRestOnFloor(t *testing.T) {
	w := newTestWheel(t)
	m := NewEnergy()

	// Ball motionless at the lowest reachable point: zero energy.
	w.Ball = wheel.Ball{X: w.CenterX, Y: w.CenterY + (w.RadiusInner - w.BallRadius())}
	m.Observe(w, 0)

	if math.Abs(m.Value()) > 1e-9 {
		t.Errorf("expected zero energy at rest on the floor, got %f", m.Value())
	}
}

func TestEnergyKinetic(t *testing.T) {
	w := newTestWheel(t)
	m := NewEnergy()

	w.Ball = wheel.Ball{X: w.CenterX, Y: w.CenterY + (w.RadiusInner - w.BallRadius()), VX: 100}
	m.Observe(w, 0)

	want := 0.5 * 100.0 * 100.0
	if math.Abs(m.Value()-want) > 1e-9 {
		t.Errorf("expected kinetic energy %f, got %f", want, m.Value())
	}
}

func TestContactFraction(t *testing.T) {
	w := newTestWheel(t)
	m := NewContact()

	w.LastContact = wheel.Contact{Touching: true}
	m.Observe(w, 0)
	w.LastContact = wheel.Contact{}
	m.Observe(w, 1)

	if math.Abs(m.Value()-0.5) > 1e-9 {
		t.Errorf("expected contact fraction 0.5, got %f", m.Value())
	}
}

func TestStickingFraction(t *testing.T) {
	w := newTestWheel(t)
	m := NewSticking()

	w.LastContact = wheel.Contact{Touching: true, Sticking: true}
	m.Observe(w, 0)
	w.LastContact = wheel.Contact{Touching: true}
	m.Observe(w, 1)
	w.LastContact = wheel.Contact{} // airborne steps don't count
	m.Observe(w, 2)

	if math.Abs(m.Value()-0.5) > 1e-9 {
		t.Errorf("expected sticking fraction 0.5, got %f", m.Value())
	}
}

func TestSpinEffortCountsImpulses(t *testing.T) {
	w := newTestWheel(t)
	m := NewSpinEffort()

	w.Omega = 1.0
	m.Observe(w, 0)

	// Decay: no effort recorded.
	w.Omega = 0.9
	m.Observe(w, 1)
	if m.Value() != 0 {
		t.Errorf("expected no effort from decay, got %f", m.Value())
	}

	// Impulse: the positive jump is accumulated.
	w.Omega = 1.5
	m.Observe(w, 2)
	if math.Abs(m.Value()-0.6) > 1e-9 {
		t.Errorf("expected effort 0.6, got %f", m.Value())
	}
}
