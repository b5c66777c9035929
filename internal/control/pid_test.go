package control

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/spinwheel/internal/wheel"
)

func newTestWheel() *wheel.Wheel {
	return wheel.New(wheel.DefaultConfig(), rand.New(rand.NewSource(2)))
}

func TestPIDFirstCallPrimesOnly(t *testing.T) {
	w := newTestWheel()
	w.Omega = 0
	p := NewPID(2.0, 0.1, 0.0, 1.5)

	p.Adjust(w, 0)
	if w.Omega != 0 {
		t.Errorf("expected first call to only prime state, got omega %f", w.Omega)
	}
}

func TestPIDSpinsTowardTarget(t *testing.T) {
	w := newTestWheel()
	w.Omega = 0
	p := NewPID(2.0, 0.1, 0.0, 1.5)

	p.Adjust(w, 0)
	for i := 1; i <= 10; i++ {
		p.Adjust(w, float64(i)*0.016)
	}

	if w.Omega <= 0 {
		t.Errorf("expected governor to spin the wheel up, got omega %f", w.Omega)
	}
	if math.Abs(p.Effort()-w.Omega) > 1e-9 {
		t.Errorf("expected effort %f to match injected omega, got %f", w.Omega, p.Effort())
	}
}

func TestPIDNeverBrakes(t *testing.T) {
	w := newTestWheel()
	w.Omega = 10.0 // far above target
	p := NewPID(2.0, 0.1, 0.0, 1.5)

	p.Adjust(w, 0)
	p.Adjust(w, 0.016)

	if w.Omega != 10.0 {
		t.Errorf("expected no braking above target, got omega %f", w.Omega)
	}
}

func TestPIDReset(t *testing.T) {
	w := newTestWheel()
	w.Omega = 0
	p := NewPID(2.0, 0.5, 0.0, 1.5)

	p.Adjust(w, 0)
	p.Adjust(w, 0.016)
	p.Reset()

	if p.Effort() != 0 {
		t.Errorf("expected zero effort after reset, got %f", p.Effort())
	}
}

func TestNoneLeavesWheelAlone(t *testing.T) {
	w := newTestWheel()
	w.Omega = 0.8
	n := NewNone()

	n.Adjust(w, 0)
	n.Adjust(w, 1)

	if w.Omega != 0.8 {
		t.Errorf("expected omega unchanged, got %f", w.Omega)
	}
}
