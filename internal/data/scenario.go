package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnEntry defines which actors to seed into the schedule and when.
type SpawnEntry struct {
	SpeciesID string `yaml:"species_id"`
	Count     int    `yaml:"count"`
	X         int32  `yaml:"x"`
	Y         int32  `yaml:"y"`
	ScatterX  int32  `yaml:"scatterx"` // random offset range around X
	ScatterY  int32  `yaml:"scattery"`
	StartTick uint64 `yaml:"start_tick"`
}

// MessageEntry defines a one-shot timed announcement.
type MessageEntry struct {
	From string `yaml:"from"`
	Body string `yaml:"body"`
	Tick uint64 `yaml:"tick"`
}

// Scenario is the full description of one simulation run.
type Scenario struct {
	Name     string         `yaml:"name"`
	Width    int32          `yaml:"width"`
	Height   int32          `yaml:"height"`
	Spawns   []SpawnEntry   `yaml:"spawns"`
	Messages []MessageEntry `yaml:"messages"`
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, fmt.Errorf("scenario %s: width/height must be positive", path)
	}
	for i, sp := range sc.Spawns {
		if sp.Count <= 0 {
			return nil, fmt.Errorf("scenario %s: spawn %d has count %d", path, i, sp.Count)
		}
	}
	return &sc, nil
}
