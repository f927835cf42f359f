package config

var defaultSpring = SpringConfig{
	Kind:       "spring",
	Constant:   DefaultConstant,
	RestLength: DefaultRestLength,
	Mass:       DefaultMass,
	Damping:    DefaultDamping,
	Separation: 2.0,
}

// Presets are ready-made scenario configurations, keyed by scenario
// then preset name.
var Presets = map[string]map[string]*Config{
	"ballistic": {
		"pistol": {
			Scenario: "ballistic", Shot: "pistol",
			Dt: DefaultDt, Duration: 5.0, Spring: defaultSpring,
		},
		"artillery": {
			Scenario: "ballistic", Shot: "artillery",
			Dt: DefaultDt, Duration: 10.0, Spring: defaultSpring,
		},
		"fireball": {
			Scenario: "ballistic", Shot: "fireball",
			Dt: DefaultDt, Duration: 8.0, Spring: defaultSpring,
		},
		"laser": {
			Scenario: "ballistic", Shot: "laser",
			Dt: DefaultDt, Duration: 2.0, Spring: defaultSpring,
		},
	},
	// Spring presets must keep damping^dt below roughly e^(-omega^2*dt)
	// or the explicit position update feeds energy in faster than
	// velocity damping takes it out and the pair diverges.
	"spring": {
		"soft": {
			Scenario: "spring", Dt: DefaultDt, Duration: 20.0,
			Spring: SpringConfig{Kind: "spring", Constant: 2.0, RestLength: 1.0, Mass: 1.0, Damping: 0.9, Separation: 3.0},
		},
		"stiff": {
			Scenario: "spring", Dt: DefaultDt, Duration: 10.0,
			Spring: SpringConfig{Kind: "spring", Constant: 15.0, RestLength: 1.0, Mass: 1.0, Damping: 0.5, Separation: 2.0},
		},
		"bungee": {
			Scenario: "spring", Dt: DefaultDt, Duration: 20.0,
			Spring: SpringConfig{Kind: "bungee", Constant: 5.0, RestLength: 2.0, Mass: 1.0, Damping: 0.7, Separation: 4.0},
		},
		"anchored": {
			Scenario: "spring", Dt: DefaultDt, Duration: 20.0,
			Gravity: VectorConfig{Y: -9.81},
			Spring:  SpringConfig{Kind: "anchored", Constant: 20.0, RestLength: 1.0, Mass: 1.0, Damping: 0.65, Separation: 2.0},
		},
	},
}

// GetPreset returns the named preset or nil.
func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names for a scenario.
func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	return names
}
