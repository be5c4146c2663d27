package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpeciesTemplate holds static data for a species loaded from YAML.
// Delay values are in ticks and feed straight into reschedule intervals.
type SpeciesTemplate struct {
	SpeciesID   string `yaml:"species_id"`
	Name        string `yaml:"name"`
	Size        string `yaml:"size"` // tiny..huge
	HP          int32  `yaml:"hp"`
	SP          int32  `yaml:"sp"`
	MP          int32  `yaml:"mp"`
	STR         int32  `yaml:"str"`
	DEX         int32  `yaml:"dex"`
	INT         int32  `yaml:"intel"`
	WalkDelay   uint32 `yaml:"walk_delay"`
	AttackDelay uint32 `yaml:"attack_delay"`
	RestDelay   uint32 `yaml:"rest_delay"`
	Hostile     bool   `yaml:"hostile"`
	Controller  string `yaml:"controller"` // "wander" or "script"
}

type speciesListFile struct {
	Species []SpeciesTemplate `yaml:"species"`
}

// SpeciesTable holds all species templates indexed by SpeciesID.
type SpeciesTable struct {
	templates map[string]*SpeciesTemplate
}

// LoadSpeciesTable loads species templates from a YAML file.
func LoadSpeciesTable(path string) (*SpeciesTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read species_list: %w", err)
	}
	var f speciesListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse species_list: %w", err)
	}
	t := &SpeciesTable{templates: make(map[string]*SpeciesTemplate, len(f.Species))}
	for i := range f.Species {
		sp := &f.Species[i]
		if sp.SpeciesID == "" {
			return nil, fmt.Errorf("species_list %s: entry %d has no species_id", path, i)
		}
		t.templates[sp.SpeciesID] = sp
	}
	return t, nil
}

// Get returns the template for a species ID, or nil if unknown.
func (t *SpeciesTable) Get(id string) *SpeciesTemplate {
	return t.templates[id]
}

// Count returns the number of loaded templates.
func (t *SpeciesTable) Count() int { return len(t.templates) }
