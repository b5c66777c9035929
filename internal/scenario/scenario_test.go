package scenario

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/spinwheel/internal/wheel"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
name: spin-then-reset
description: two taps then a fresh ball
dt: 0.016
duration: 6
seed: 7
events:
  - at: 3.0
    do: reset
  - at: 1.0
    do: spin
  - at: 2.0
    do: spin
`)

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Name != "spin-then-reset" {
		t.Errorf("expected name spin-then-reset, got %s", sc.Name)
	}
	if len(sc.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(sc.Events))
	}
	// Events come back sorted by time.
	if sc.Events[0].Do != "spin" || sc.Events[2].Do != "reset" {
		t.Errorf("expected events sorted by time, got %v", sc.Events)
	}

	cfg := sc.RunConfig()
	if cfg.Dt != 0.016 || cfg.Duration != 6 || cfg.Seed != 7 {
		t.Errorf("unexpected run config: %+v", cfg)
	}
}

func TestLoadScenarioDefaults(t *testing.T) {
	path := writeScenario(t, `
name: late-event
events:
  - at: 12.0
    do: spin
`)

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Dt != 1.0/60.0 {
		t.Errorf("expected default dt, got %f", sc.Dt)
	}
	// Duration stretches past the last event.
	if sc.Duration != 14.0 {
		t.Errorf("expected duration 14, got %f", sc.Duration)
	}
}

func TestLoadScenarioRejectsUnknownTrigger(t *testing.T) {
	path := writeScenario(t, `
events:
  - at: 1.0
    do: explode
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown trigger")
	}
}

func TestLoadScenarioRejectsBadResize(t *testing.T) {
	path := writeScenario(t, `
events:
  - at: 1.0
    do: resize
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for resize without dimensions")
	}
}

func TestScriptFiresEventsInOrder(t *testing.T) {
	sc := &Scenario{
		Events: []Event{
			{At: 0.5, Do: "spin"},
			{At: 1.0, Do: "resize", Width: 400, Height: 400},
		},
	}
	script := sc.Script()
	w := wheel.New(wheel.DefaultConfig(), rand.New(rand.NewSource(3)))
	w.Omega = 0

	script.Adjust(w, 0.1)
	if script.Fired() != 0 {
		t.Errorf("expected no events before their time, fired %d", script.Fired())
	}

	script.Adjust(w, 0.5)
	if script.Fired() != 1 {
		t.Errorf("expected spin fired at t=0.5, fired %d", script.Fired())
	}
	if w.Omega <= 0 {
		t.Error("expected spin impulse to raise omega")
	}

	script.Adjust(w, 2.0)
	if script.Fired() != 2 {
		t.Errorf("expected all events fired, fired %d", script.Fired())
	}
	if w.Width != 400 {
		t.Errorf("expected resize applied, width %f", w.Width)
	}
}
