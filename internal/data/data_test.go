package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSpeciesTable(t *testing.T) {
	path := writeFile(t, "species_list.yaml", `
species:
  - species_id: cave_rat
    name: Cave Rat
    size: tiny
    hp: 8
    sp: 16
    str: 4
    dex: 14
    intel: 2
    walk_delay: 6
    attack_delay: 8
    rest_delay: 12
    hostile: true
    controller: wander
  - species_id: human_scout
    name: Scout
    hp: 24
    walk_delay: 10
    attack_delay: 12
    rest_delay: 20
    controller: script
`)

	table, err := LoadSpeciesTable(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Count())

	rat := table.Get("cave_rat")
	require.NotNil(t, rat)
	assert.Equal(t, "Cave Rat", rat.Name)
	assert.Equal(t, int32(8), rat.HP)
	assert.Equal(t, uint32(6), rat.WalkDelay)
	assert.True(t, rat.Hostile)

	assert.Nil(t, table.Get("dragon"))
}

func TestLoadSpeciesTableMissingID(t *testing.T) {
	path := writeFile(t, "species_list.yaml", `
species:
  - name: Nameless
    hp: 1
`)
	_, err := LoadSpeciesTable(path)
	assert.ErrorContains(t, err, "species_id")
}

func TestLoadSpeciesTableMissingFile(t *testing.T) {
	_, err := LoadSpeciesTable(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScenario(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
name: warrens
width: 40
height: 24
spawns:
  - species_id: cave_rat
    count: 6
    x: 20
    y: 18
    scatterx: 6
    scattery: 4
    start_tick: 2
messages:
  - from: Warden
    body: The warrens stir.
    tick: 0
`)

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "warrens", sc.Name)
	assert.Equal(t, int32(40), sc.Width)
	require.Len(t, sc.Spawns, 1)
	assert.Equal(t, uint64(2), sc.Spawns[0].StartTick)
	require.Len(t, sc.Messages, 1)
	assert.Equal(t, "Warden", sc.Messages[0].From)
}

func TestLoadScenarioRejectsBadDimensions(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
name: broken
width: 0
height: 24
`)
	_, err := LoadScenario(path)
	assert.ErrorContains(t, err, "width/height")
}

func TestLoadScenarioRejectsZeroCountSpawn(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
name: broken
width: 10
height: 10
spawns:
  - species_id: cave_rat
    count: 0
`)
	_, err := LoadScenario(path)
	assert.ErrorContains(t, err, "count")
}
