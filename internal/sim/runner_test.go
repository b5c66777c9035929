package sim

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/spinwheel/internal/wheel"
)

func newTestWheel(seed int64) *wheel.Wheel {
	return wheel.New(wheel.DefaultConfig(), rand.New(rand.NewSource(seed)))
}

type countingGovernor struct {
	calls int
}

func (g *countingGovernor) Adjust(w *wheel.Wheel, t float64) { g.calls++ }

func TestClampStep(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"negative truncates to zero", -0.5, 0},
		{"in range passes through", 0.016, 0.016},
		{"hiccup truncates to max", 0.25, MaxStep},
		{"zero stays zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampStep(tt.dt); got != tt.want {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestRunRecordsStates(t *testing.T) {
	r := New(newTestWheel(1))
	cfg := Config{Dt: 0.016, Duration: 1.0, ValidateState: true}

	result, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	steps := int(cfg.Duration / cfg.Dt)
	if result.StepsTaken != steps {
		t.Errorf("expected %d steps, got %d", steps, result.StepsTaken)
	}
	if len(result.States) != steps+1 {
		t.Errorf("expected %d states, got %d", steps+1, len(result.States))
	}
	if len(result.Times) != len(result.States) {
		t.Errorf("times and states out of sync: %d vs %d", len(result.Times), len(result.States))
	}
	for i, row := range result.States {
		if len(row) != len(Columns) {
			t.Fatalf("row %d: expected %d columns, got %d", i, len(Columns), len(row))
		}
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected clean run, got errors: %v", result.Errors)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero dt", Config{Dt: 0, Duration: 1}},
		{"negative duration", Config{Dt: 0.01, Duration: -1}},
		{"dt beyond max step", Config{Dt: 0.1, Duration: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(newTestWheel(1))
			_, err := r.Run(context.Background(), tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRunGovernorFiresEveryStep(t *testing.T) {
	r := New(newTestWheel(1))
	g := &countingGovernor{}
	r.SetGovernor(g)

	result, err := r.Run(context.Background(), Config{Dt: 0.01, Duration: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.calls != result.StepsTaken {
		t.Errorf("expected %d governor calls, got %d", result.StepsTaken, g.calls)
	}
}

func TestRunContextCancel(t *testing.T) {
	r := New(newTestWheel(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := r.Run(ctx, Config{Dt: 0.01, Duration: 10})
	if err == nil {
		t.Fatal("expected context error")
	}
	if result == nil {
		t.Fatal("expected partial result on cancellation")
	}
}

func TestRunWithCallbackStops(t *testing.T) {
	r := New(newTestWheel(1))

	steps := 0
	err := r.RunWithCallback(context.Background(), Config{Dt: 0.01, Duration: 10}, func(w *wheel.Wheel, t float64) bool {
		steps++
		return steps < 5
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if steps != 5 {
		t.Errorf("expected callback to stop after 5 steps, got %d", steps)
	}
}

func TestRowColumns(t *testing.T) {
	w := newTestWheel(3)
	w.Angle = 1.5
	w.Omega = -0.7
	w.Ball.SpinOmega = 2.0

	row := Row(w)
	if len(row) != len(Columns) {
		t.Fatalf("expected %d entries, got %d", len(Columns), len(row))
	}
	if row[0] != 1.5 || row[1] != -0.7 {
		t.Errorf("expected wheel angle/omega first, got %v", row[:2])
	}
	if row[7] != 2.0 {
		t.Errorf("expected spin omega last, got %f", row[7])
	}
}

func TestEnsembleIndependentRuns(t *testing.T) {
	e := NewEnsemble(newTestWheel, 4, 100)

	results, err := e.Run(context.Background(), Config{Dt: 0.016, Duration: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	// Distinct seeds place the ball at distinct angles.
	first := results[0].States[0]
	allSame := true
	for _, res := range results[1:] {
		if math.Abs(res.States[0][2]-first[2]) > 1e-9 || math.Abs(res.States[0][3]-first[3]) > 1e-9 {
			allSame = false
		}
	}
	if allSame {
		t.Error("expected seeded runs to start from different placements")
	}
}
