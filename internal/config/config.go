package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mselway/skyrocket/internal/rocket"
)

const (
	DefaultDt       = 1.0 / 60.0
	DefaultDuration = 30.0
	DefaultRockets  = 1
	DefaultFPS      = 60
	DefaultTrail    = 120
	DefaultTheme    = "night"
)

type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Run     RunConfig     `yaml:"run"`
	Display DisplayConfig `yaml:"display"`
}

type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
	Lift    float64 `yaml:"lift"`
	Steer   float64 `yaml:"steer"`
	Fuel    float64 `yaml:"fuel"`
	Thrust  float64 `yaml:"thrust"`
}

type RunConfig struct {
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	Seed     int64   `yaml:"seed"`
	Rockets  int     `yaml:"rockets"`
}

type DisplayConfig struct {
	Theme string `yaml:"theme"`
	FPS   int    `yaml:"fps"`
	Trail int    `yaml:"trail"`
}

func DefaultConfig() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Gravity: rocket.DefaultGravity,
			Lift:    rocket.DefaultLift,
			Steer:   rocket.DefaultSteer,
			Fuel:    rocket.DefaultFuel,
			Thrust:  rocket.DefaultThrust,
		},
		Run: RunConfig{
			Dt:       DefaultDt,
			Duration: DefaultDuration,
			Rockets:  DefaultRockets,
		},
		Display: DisplayConfig{
			Theme: DefaultTheme,
			FPS:   DefaultFPS,
			Trail: DefaultTrail,
		},
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

// RocketPhysics maps the physics section onto the flight model constants.
func (c *Config) RocketPhysics() rocket.Physics {
	return rocket.Physics{
		Gravity:       c.Physics.Gravity,
		Lift:          c.Physics.Lift,
		Steer:         c.Physics.Steer,
		InitialFuel:   c.Physics.Fuel,
		InitialThrust: c.Physics.Thrust,
	}
}
