package config

import "sort"

// presets are named starting conditions layered over DefaultConfig.
var presets = map[string]func(*Config){
	// Barely turning wheel, the ball settles into the trough quickly.
	"idle": func(c *Config) {
		c.InitOmega = 0.4
	},
	// Fast wheel: the rim carries the ball most of the way around.
	"spun": func(c *Config) {
		c.InitOmega = 3.0
	},
	// Stationary wheel, pure drop-and-roll dynamics.
	"drop": func(c *Config) {
		c.InitOmega = 0
	},
	// Governor holds the wheel at a steady crawl.
	"governed": func(c *Config) {
		c.InitOmega = 0
		c.Governor.Enabled = true
		c.Governor.TargetOmega = 1.5
	},
	// Long settle run for decay and drift inspection.
	"marathon": func(c *Config) {
		c.InitOmega = 2.0
		c.Duration = 60.0
	},
}

func GetPreset(name string) *Config {
	apply, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
