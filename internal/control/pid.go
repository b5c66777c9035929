package control

import (
	"github.com/san-kum/spinwheel/internal/wheel"
)

// PID holds the wheel's angular velocity at a target by applying additive
// spin impulses. Output is clamped to [0, MaxAccel]: the governor can only
// spin the wheel up, matching the physical trigger it automates.
type PID struct {
	Kp       float64
	Ki       float64
	Kd       float64
	Target   float64 // rad/s
	MaxAccel float64 // rad/s^2 cap on injected acceleration

	integral float64
	prevErr  float64
	prevT    float64
	effort   float64
	first    bool
}

func NewPID(kp, ki, kd, target float64) *PID {
	return &PID{
		Kp:       kp,
		Ki:       ki,
		Kd:       kd,
		Target:   target,
		MaxAccel: 4.0,
		first:    true,
	}
}

func (p *PID) Adjust(w *wheel.Wheel, t float64) {
	err := p.Target - w.Omega

	if p.first {
		p.prevErr = err
		p.prevT = t
		p.first = false
		return
	}

	dt := t - p.prevT
	if dt <= 0 {
		return
	}

	p.integral += err * dt
	derivative := (err - p.prevErr) / dt

	u := p.Kp*err + p.Ki*p.integral + p.Kd*derivative
	if u < 0 {
		u = 0
	}
	if u > p.MaxAccel {
		u = p.MaxAccel
	}

	impulse := u * dt
	w.Omega += impulse
	p.effort += impulse

	p.prevErr = err
	p.prevT = t
}

// Effort is the total angular velocity injected so far.
func (p *PID) Effort() float64 { return p.effort }

// Reset clears integral and derivative state.
func (p *PID) Reset() {
	p.integral = 0
	p.prevErr = 0
	p.prevT = 0
	p.effort = 0
	p.first = true
}
