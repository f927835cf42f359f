package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt         = 1.0 / 60.0
	DefaultDuration   = 10.0
	DefaultDamping    = 0.995
	DefaultMass       = 1.0
	DefaultConstant   = 5.0
	DefaultRestLength = 1.0
)

// Config selects and parameterizes a demo scenario.
type Config struct {
	Scenario string       `yaml:"scenario"`
	Dt       float64      `yaml:"dt"`
	Duration float64      `yaml:"duration"`
	DataDir  string       `yaml:"data_dir"`
	Gravity  VectorConfig `yaml:"gravity"`
	Shot     string       `yaml:"shot"`
	Spring   SpringConfig `yaml:"spring"`
	Drag     DragConfig   `yaml:"drag"`
}

// VectorConfig is a Vec3 in file form.
type VectorConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// SpringConfig parameterizes the spring scenarios. Kind selects the
// generator: "spring", "bungee" or "anchored".
type SpringConfig struct {
	Kind       string  `yaml:"kind"`
	Constant   float64 `yaml:"constant"`
	RestLength float64 `yaml:"rest_length"`
	Mass       float64 `yaml:"mass"`
	Damping    float64 `yaml:"damping"`
	Separation float64 `yaml:"separation"`
}

// DragConfig holds the linear and quadratic drag coefficients.
type DragConfig struct {
	K1 float64 `yaml:"k1"`
	K2 float64 `yaml:"k2"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: "ballistic",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		DataDir:  "data",
		Gravity:  VectorConfig{Y: -9.81},
		Shot:     "pistol",
		Spring: SpringConfig{
			Kind:       "spring",
			Constant:   DefaultConstant,
			RestLength: DefaultRestLength,
			Mass:       DefaultMass,
			Damping:    DefaultDamping,
			Separation: 2.0,
		},
		Drag: DragConfig{K1: 0.1, K2: 0.01},
	}
}

// Load reads a YAML config, layering it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the simulation contract cannot accept.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("config: dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration must be positive, got %g", c.Duration)
	}
	if c.Spring.Damping <= 0 || c.Spring.Damping > 1 {
		return fmt.Errorf("config: damping must be in (0, 1], got %g", c.Spring.Damping)
	}
	if c.Spring.Mass <= 0 {
		return fmt.Errorf("config: mass must be positive, got %g", c.Spring.Mass)
	}
	switch c.Spring.Kind {
	case "spring", "bungee", "anchored":
	default:
		return fmt.Errorf("config: unknown spring kind %q", c.Spring.Kind)
	}
	return nil
}
