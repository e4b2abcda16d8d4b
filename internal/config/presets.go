package config

var Presets = map[string]*Config{
	"classic": {
		Physics: PhysicsConfig{Gravity: 308, Lift: 0.7, Steer: 0.3, Fuel: 1200, Thrust: 250},
		Run:     RunConfig{Dt: DefaultDt, Duration: 30.0, Rockets: 1},
	},
	"lunar": {
		Physics: PhysicsConfig{Gravity: 50, Lift: 0.7, Steer: 0.3, Fuel: 600, Thrust: 100},
		Run:     RunConfig{Dt: DefaultDt, Duration: 60.0, Rockets: 1},
		Display: DisplayConfig{Theme: "mono"},
	},
	"heavy": {
		Physics: PhysicsConfig{Gravity: 500, Lift: 0.7, Steer: 0.3, Fuel: 2000, Thrust: 400},
		Run:     RunConfig{Dt: DefaultDt, Duration: 30.0, Rockets: 1},
	},
	"drifter": {
		Physics: PhysicsConfig{Gravity: 308, Lift: 0.7, Steer: 0.9, Fuel: 1200, Thrust: 250},
		Run:     RunConfig{Dt: DefaultDt, Duration: 30.0, Rockets: 1},
		Display: DisplayConfig{Theme: "aurora"},
	},
	"sprint": {
		Physics: PhysicsConfig{Gravity: 308, Lift: 0.7, Steer: 0.3, Fuel: 500, Thrust: 420},
		Run:     RunConfig{Dt: DefaultDt, Duration: 20.0, Rockets: 1},
	},
	"swarm": {
		Physics: PhysicsConfig{Gravity: 308, Lift: 0.7, Steer: 0.5, Fuel: 1200, Thrust: 250},
		Run:     RunConfig{Dt: DefaultDt, Duration: 45.0, Rockets: 5},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg // callers may edit the result without touching the table
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
