package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/spinwheel/internal/wheel"
)

// Runner steps a wheel at a fixed dt, recording state rows and feeding
// metrics and observers. One Runner owns one wheel; not safe for
// concurrent use.
type Runner struct {
	wheel     *wheel.Wheel
	governor  Governor
	metrics   []Metric
	observers []Observer
}

func New(w *wheel.Wheel) *Runner {
	return &Runner{wheel: w}
}

func (r *Runner) Wheel() *wheel.Wheel    { return r.wheel }
func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }
func (r *Runner) SetGovernor(g Governor) { r.governor = g }

func (r *Runner) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Dt > MaxStep {
		return fmt.Errorf("%w: dt %f exceeds max step %f", ErrInvalidConfig, cfg.Dt, MaxStep)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, cfg.Duration)
	}
	return nil
}

// Run advances the wheel for cfg.Duration seconds. Governors fire between
// frames, never concurrently with an Update.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		States:  make([][]float64, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	result.States = append(result.States, Row(r.wheel))
	result.Times = append(result.Times, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if r.governor != nil {
			r.governor.Adjust(r.wheel, t)
		}

		r.wheel.Update(cfg.Dt)
		t += cfg.Dt
		result.StepsTaken++

		for _, m := range r.metrics {
			m.Observe(r.wheel, t)
		}
		for _, obs := range r.observers {
			obs.OnStep(r.wheel, t)
		}

		row := Row(r.wheel)
		if cfg.ValidateState && !finite(row) {
			result.Errors = append(result.Errors, StepError{Step: i, Time: t, Wrapped: ErrInvalidState})
			break
		}

		result.States = append(result.States, row)
		result.Times = append(result.Times, t)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback advances the wheel without recording, handing each stepped
// state to callback. Returning false stops the run.
func (r *Runner) RunWithCallback(ctx context.Context, cfg Config, callback func(w *wheel.Wheel, t float64) bool) error {
	if err := r.validateConfig(cfg); err != nil {
		return err
	}

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if r.governor != nil {
			r.governor.Adjust(r.wheel, t)
		}

		r.wheel.Update(cfg.Dt)
		t += cfg.Dt

		if !callback(r.wheel, t) {
			return nil
		}
	}

	return nil
}
