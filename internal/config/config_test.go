package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/ship-breakers/internal/game"
)

func TestDefaults(t *testing.T) {
	bundle := Defaults()
	require.NoError(t, bundle.Constants.Validate())
	require.NoError(t, bundle.Traits.Validate())
	assert.Equal(t, game.DefaultConstants(), bundle.Constants)
}

func TestLoadMissingDirectoryFallsBack(t *testing.T) {
	bundle, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), bundle)
}

func TestLoadEmptyDirUsesDefaults(t *testing.T) {
	bundle, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Defaults(), bundle)
}

func TestLoadOverridesConstants(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "constants.yaml", "fuel_cost_per_au: 4\nstarting_run_time: 30\n")

	bundle, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 4, bundle.Constants.FuelCostPerAU)
	assert.Equal(t, 30, bundle.Constants.StartingRunTime)
	// Untouched keys keep their defaults.
	assert.Equal(t, game.DefaultConstants().DeathChanceOnZeroHP, bundle.Constants.DeathChanceOnZeroHP)
}

func TestLoadOverridesThresholds(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "settings.yaml", "min_crew_stamina: 35\n")

	bundle, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 35, bundle.Thresholds.MinCrewStamina)
	assert.Equal(t, game.DefaultThresholds().MinCrewSanity, bundle.Thresholds.MinCrewSanity)
}

func TestLoadMergesTraits(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "traits.yaml", `
grizzled:
  id: grizzled
  name: Grizzled
  category: positive
  effects:
    - type: stamina_mod
      value: -10
`)

	bundle, err := Load(dir)
	require.NoError(t, err)

	trait, ok := bundle.Traits["grizzled"]
	require.True(t, ok)
	assert.Equal(t, "Grizzled", trait.Name)
	// Built-in traits survive the merge.
	_, ok = bundle.Traits[game.TraitVeteran]
	assert.True(t, ok)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "constants.yaml", "fuel_cost_per_tau: 4\n")

	_, err := Load(dir)
	assert.Error(t, err, "typoed keys fail instead of silently keeping defaults")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "constants.yaml", "death_chance_on_zero_hp: 1.5\n")

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "constants.yaml", "fuel_cost_per_au: [unclosed\n")

	_, err := Load(dir)
	assert.Error(t, err)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
