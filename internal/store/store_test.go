package store

import (
	"math"
	"testing"

	"github.com/san-kum/spinwheel/internal/sim"
)

func sampleResult() *sim.Result {
	return &sim.Result{
		States: [][]float64{
			{0, 0.4, 100, 200, 0, 0, 0, 0},
			{0.0066, 0.399, 101, 201, 10, -5, 0.01, 0.2},
		},
		Times:      []float64{0, 1.0 / 60.0},
		Metrics:    map[string]float64{"containment_margin": 0.8},
		StepsTaken: 1,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := sim.Config{Dt: 1.0 / 60.0, Duration: 5, Seed: 42}
	runID, err := s.Save("idle", cfg, "none", sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := s.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Label != "idle" {
		t.Errorf("expected label idle, got %s", meta.Label)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.Governor != "none" {
		t.Errorf("expected governor none, got %s", meta.Governor)
	}
	if math.Abs(meta.Metrics["containment_margin"]-0.8) > 1e-9 {
		t.Errorf("expected metric 0.8, got %f", meta.Metrics["containment_margin"])
	}
}

func TestLoadStates(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := s.Save("drop", sim.Config{Dt: 0.016, Duration: 1}, "none", sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	states, times, err := s.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}
	if len(states) != 2 || len(times) != 2 {
		t.Fatalf("expected 2 rows, got %d states %d times", len(states), len(times))
	}
	if len(states[0]) != len(sim.Columns) {
		t.Errorf("expected %d columns, got %d", len(sim.Columns), len(states[0]))
	}
	if math.Abs(states[1][2]-101) > 1e-6 {
		t.Errorf("expected ball_x 101, got %f", states[1][2])
	}
}

func TestListEmptyDir(t *testing.T) {
	s := New(t.TempDir() + "/missing")
	runs, err := s.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Save("idle", sim.Config{Dt: 0.016, Duration: 1}, "none", sampleResult()); err != nil {
		t.Fatal(err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}
