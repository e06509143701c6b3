package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salvageRoomFixture() Room {
	return Room{
		ID:          "cargo",
		Name:        "Cargo Bay",
		HazardType:  HazardMechanical,
		HazardLevel: 1,
		Loot: []Item{
			{ID: "scrap", Name: "Hull Plating", Rarity: RarityCommon, Value: 100},
		},
	}
}

func TestAttemptSalvageSuccess(t *testing.T) {
	// Level 2 across the board, mechanical level 1, tier 1: chance 36.
	// Scripted 0.1 roll succeeds; 0.99 skips the narrative event.
	rng := &scriptRand{floats: []float64{0.1, 0.99}}
	crew := testCrew("c1", 2)
	g := newTestState(t, rng, testWreck(1, salvageRoomFixture()), crew)

	result, err := g.AttemptSalvage("cargo", "scrap", "c1")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.Fled)
	assert.Equal(t, 110, result.Value, "salvage 2 adds ten percent")
	assert.Equal(t, 1, result.TimeCost)
	assert.Equal(t, SkillTechnical, result.SkillUsed)
	assert.False(t, result.Stolen)

	member := g.CrewByID("c1")
	require.Len(t, member.Inventory, 1)
	assert.Equal(t, 110, member.Inventory[0].Value, "carried item keeps appraised value")
	assert.Equal(t, 90, member.Stamina)
	assert.Equal(t, 100, member.Sanity, "low hazard costs no sanity")

	room := g.Wrecks[0].Room("cargo")
	assert.True(t, room.Looted)
	assert.Equal(t, g.Constants.StartingRunTime-1, g.Run.TimeRemaining)
	assert.Equal(t, 1, g.Run.Stats.RoomsSucceeded)

	xp := g.Constants.XPBaseSuccess + 1*g.Constants.XPPerHazardLevel + 1*g.Constants.XPPerTier
	assert.Equal(t, xp, result.XPGained)
	assert.Equal(t, xp, member.SkillXP.Technical)
}

func TestAttemptSalvageFailure(t *testing.T) {
	// 0.9 roll fails against chance 36.
	rng := &scriptRand{floats: []float64{0.9}}
	crew := testCrew("c1", 2)
	g := newTestState(t, rng, testWreck(1, salvageRoomFixture()), crew)

	result, err := g.AttemptSalvage("cargo", "scrap", "c1")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 10, result.Damage)
	assert.Empty(t, result.CrewOutcome, "damage far from lethal")

	member := g.CrewByID("c1")
	assert.Equal(t, 90, member.HP)
	require.Len(t, member.Inventory, 0)

	room := g.Wrecks[0].Room("cargo")
	assert.False(t, room.Looted, "failed attempts leave the item in place")
	assert.Len(t, room.Loot, 1)
	assert.Equal(t, 1, g.Run.Stats.RoomsFailed)
	assert.Equal(t, 10, g.Run.Stats.DamageTaken)
}

func TestAttemptSalvageNoOpPreconditions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameState)
		itemID string
	}{
		{
			name:   "looted room",
			mutate: func(g *GameState) { g.Wrecks[0].Rooms[0].Looted = true },
			itemID: "scrap",
		},
		{
			name:   "sealed room",
			mutate: func(g *GameState) { g.Wrecks[0].Rooms[0].Sealed = true },
			itemID: "scrap",
		},
		{
			name:   "missing item",
			mutate: func(*GameState) {},
			itemID: "gone",
		},
		{
			name:   "exhausted crew",
			mutate: func(g *GameState) { g.Roster[0].Stamina = 5 },
			itemID: "scrap",
		},
		{
			name: "work-disabled crew",
			mutate: func(g *GameState) {
				injury := NewInjury(InjuryBrokenLeg, SeverityCritical)
				g.Roster[0].Injury = &injury
			},
			itemID: "scrap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestState(t, &scriptRand{}, testWreck(1, salvageRoomFixture()), testCrew("c1", 2))
			tt.mutate(g)
			before := g.Run.TimeRemaining

			result, err := g.AttemptSalvage("cargo", tt.itemID, "c1")
			require.NoError(t, err)
			assert.True(t, result.NoOp())
			assert.Equal(t, before, g.Run.TimeRemaining, "no-ops never spend time")
		})
	}
}

func TestAttemptSalvageErrors(t *testing.T) {
	g := newTestState(t, &scriptRand{}, testWreck(1, salvageRoomFixture()), testCrew("c1", 2))

	_, err := g.AttemptSalvage("no-such-room", "scrap", "c1")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = g.AttemptSalvage("cargo", "scrap", "no-such-crew")
	assert.ErrorIs(t, err, ErrCrewNotFound)

	g.Run = nil
	_, err = g.AttemptSalvage("cargo", "scrap", "c1")
	assert.ErrorIs(t, err, ErrNoActiveRun)
}

func TestAttemptSalvageCowardFlees(t *testing.T) {
	room := salvageRoomFixture()
	room.HazardLevel = 3

	// First float is the flee roll; under the flee chance means the coward runs.
	rng := &scriptRand{floats: []float64{0.01}}
	crew := testCrew("c1", 2)
	crew.Traits = []TraitID{TraitCoward}
	g := newTestState(t, rng, testWreck(1, room), crew)

	result, err := g.AttemptSalvage("cargo", "scrap", "c1")
	require.NoError(t, err)

	assert.True(t, result.Fled)
	assert.False(t, result.Success)
	assert.False(t, result.NoOp(), "fleeing spends time")
	assert.Equal(t, g.Constants.StartingRunTime-1, g.Run.TimeRemaining)
	assert.Len(t, g.Wrecks[0].Rooms[0].Loot, 1)
}

func TestAttemptSalvageGreedyTheft(t *testing.T) {
	// Success roll, then a steal roll under the greedy chance, then the
	// narrative event roll.
	rng := &scriptRand{floats: []float64{0.1, 0.01, 0.99}}
	crew := testCrew("c1", 2)
	crew.Traits = []TraitID{TraitGreedy}
	g := newTestState(t, rng, testWreck(1, salvageRoomFixture()), crew)

	result, err := g.AttemptSalvage("cargo", "scrap", "c1")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.Stolen)
	assert.Empty(t, g.CrewByID("c1").Inventory, "stolen items never reach the hold")
	assert.True(t, g.Wrecks[0].Rooms[0].Looted, "the item is still gone from the wreck")
}

func TestAttemptSalvageLethalFailure(t *testing.T) {
	room := salvageRoomFixture()
	room.HazardLevel = 5 // 50 damage per failure

	// Fail roll, then a death roll under the death chance.
	rng := &scriptRand{floats: []float64{0.99, 0.01}}
	crew := testCrew("c1", 2)
	crew.HP = 30
	g := newTestState(t, rng, testWreck(1, room), crew)

	result, err := g.AttemptSalvage("cargo", "scrap", "c1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeDeath, result.CrewOutcome)
	assert.Nil(t, g.CrewByID("c1"), "dead crew leave the roster")
	require.Len(t, g.DeadCrew, 1)
	assert.Contains(t, g.DeadCrew[0].CauseOfDeath, "Cargo Bay")
}

func TestAttemptSalvageInjuryOnZeroHP(t *testing.T) {
	room := salvageRoomFixture()
	room.HazardLevel = 5

	// Fail roll, survive the death roll, miss critical, roll major severity
	// and an injury type.
	rng := &scriptRand{floats: []float64{0.99, 0.9, 0.9, 0.1, 0.5}}
	crew := testCrew("c1", 2)
	crew.HP = 30
	g := newTestState(t, rng, testWreck(1, room), crew)

	result, err := g.AttemptSalvage("cargo", "scrap", "c1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeInjury, result.CrewOutcome)
	member := g.CrewByID("c1")
	require.NotNil(t, member)
	assert.Equal(t, StatusInjured, member.Status)
	assert.Equal(t, 1, member.HP, "survivors hang on at 1 HP")
	require.NotNil(t, member.Injury)
	assert.Equal(t, SeverityMajor, member.Injury.Severity)
}
