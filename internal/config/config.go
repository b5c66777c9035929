package config

import (
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/spinwheel/internal/wheel"
)

const (
	DefaultDt        = 1.0 / 60.0
	DefaultDuration  = 10.0
	DefaultInitOmega = 0.4
	DefaultTheme     = "cyberpunk"
)

type Config struct {
	Dt        float64        `yaml:"dt"`
	Duration  float64        `yaml:"duration"`
	Seed      int64          `yaml:"seed"`
	InitOmega float64        `yaml:"init_omega"`
	Width     int            `yaml:"width"`
	Height    int            `yaml:"height"`
	Theme     string         `yaml:"theme"`
	Governor  GovernorConfig `yaml:"governor"`
	Physics   wheel.Config   `yaml:"physics"`
}

type GovernorConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Kp          float64 `yaml:"kp"`
	Ki          float64 `yaml:"ki"`
	Kd          float64 `yaml:"kd"`
	TargetOmega float64 `yaml:"target_omega"`
}

func DefaultConfig() *Config {
	phys := wheel.DefaultConfig()
	return &Config{
		Dt:        DefaultDt,
		Duration:  DefaultDuration,
		InitOmega: DefaultInitOmega,
		Width:     phys.WindowSize,
		Height:    phys.WindowSize,
		Theme:     DefaultTheme,
		Governor: GovernorConfig{
			Kp:          2.0,
			Ki:          0.1,
			Kd:          0.0,
			TargetOmega: 1.5,
		},
		Physics: phys,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// NewWheel builds a wheel from the configured physics and viewport, with the
// initial angular velocity applied.
func (c *Config) NewWheel(rng *rand.Rand) *wheel.Wheel {
	w := wheel.New(c.Physics, rng)
	if c.Width != c.Physics.WindowSize || c.Height != c.Physics.WindowSize {
		w.Resize(c.Width, c.Height)
	}
	w.Omega = c.InitOmega
	return w
}
