package sim

import (
	"math"

	"github.com/san-kum/spinwheel/internal/wheel"
)

// MaxStep bounds every time step fed to the integrator. Larger wall-clock
// gaps are truncated, never extrapolated.
const MaxStep = 0.032

// ClampStep bounds dt to [0, MaxStep] seconds.
func ClampStep(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > MaxStep {
		return MaxStep
	}
	return dt
}

// Columns names the entries of a recorded state row, in order.
var Columns = []string{
	"wheel_angle", "wheel_omega",
	"ball_x", "ball_y", "ball_vx", "ball_vy",
	"spin_angle", "spin_omega",
}

// Row snapshots the dynamic state of a wheel as a flat float row.
func Row(w *wheel.Wheel) []float64 {
	return []float64{
		w.Angle, w.Omega,
		w.Ball.X, w.Ball.Y, w.Ball.VX, w.Ball.VY,
		w.Ball.SpinAngle, w.Ball.SpinOmega,
	}
}

func finite(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(w *wheel.Wheel, t float64)
	Value() float64
	Reset()
}

// Observer is called after every completed step.
type Observer interface {
	OnStep(w *wheel.Wheel, t float64)
}

// Governor adjusts the wheel between frames, before the next Update. Spin
// governors and scripted scenarios both implement it.
type Governor interface {
	Adjust(w *wheel.Wheel, t float64)
}

type Config struct {
	Dt            float64
	Duration      float64
	Seed          int64
	ValidateState bool
}

type Result struct {
	States     [][]float64
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}
