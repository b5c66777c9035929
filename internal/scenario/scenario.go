package scenario

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/spinwheel/internal/sim"
	"github.com/san-kum/spinwheel/internal/wheel"
)

// Scenario is a scripted run: a fixed-dt simulation with trigger events
// fired at set times. Events are the same discrete triggers a live viewer
// produces, so a scenario replays an interactive session deterministically.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Dt          float64 `yaml:"dt"`
	Duration    float64 `yaml:"duration"`
	Seed        int64   `yaml:"seed"`
	Events      []Event `yaml:"events"`
}

// Event is one timed trigger. Width and Height are only read for resize.
type Event struct {
	At     float64 `yaml:"at"`
	Do     string  `yaml:"do"` // spin, reset or resize
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

// Load reads and validates a scenario file. Events are sorted by time.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	for i, ev := range sc.Events {
		switch ev.Do {
		case "spin", "reset":
		case "resize":
			if ev.Width <= 0 || ev.Height <= 0 {
				return nil, fmt.Errorf("event %d: resize needs positive width and height", i)
			}
		default:
			return nil, fmt.Errorf("event %d: unknown trigger %q", i, ev.Do)
		}
		if ev.At < 0 {
			return nil, fmt.Errorf("event %d: negative time %f", i, ev.At)
		}
	}

	sort.SliceStable(sc.Events, func(i, j int) bool { return sc.Events[i].At < sc.Events[j].At })

	if sc.Dt == 0 {
		sc.Dt = 1.0 / 60.0
	}
	if sc.Duration == 0 {
		sc.Duration = 10.0
		if n := len(sc.Events); n > 0 && sc.Events[n-1].At+2 > sc.Duration {
			sc.Duration = sc.Events[n-1].At + 2
		}
	}

	return &sc, nil
}

// RunConfig is the sim configuration the scenario prescribes.
func (sc *Scenario) RunConfig() sim.Config {
	return sim.Config{Dt: sc.Dt, Duration: sc.Duration, Seed: sc.Seed, ValidateState: true}
}

// Script returns a fresh governor that fires the scenario's events as the
// run clock passes them.
func (sc *Scenario) Script() *Script {
	return &Script{events: sc.Events}
}

// Script walks the event list against simulation time. It implements
// sim.Governor, so events land between frames like any other trigger.
type Script struct {
	events []Event
	next   int
}

func (s *Script) Adjust(w *wheel.Wheel, t float64) {
	for s.next < len(s.events) && s.events[s.next].At <= t {
		ev := s.events[s.next]
		switch ev.Do {
		case "spin":
			w.ApplySpinImpulse()
		case "reset":
			w.ResetBall()
		case "resize":
			w.Resize(ev.Width, ev.Height)
		}
		s.next++
	}
}

// Fired reports how many events have been applied so far.
func (s *Script) Fired() int { return s.next }
