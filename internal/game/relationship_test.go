package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeRelationship(t *testing.T) {
	constants := DefaultConstants()

	t.Run("creates lazily with canonical pair key", func(t *testing.T) {
		rels := ChangeRelationship(nil, constants, "zed", "amy", 1, "shared a drink")
		require.Len(t, rels, 1)
		assert.Equal(t, "amy", rels[0].CrewID1)
		assert.Equal(t, "zed", rels[0].CrewID2)
		assert.Equal(t, constants.StartingRelationship+1, rels[0].Level)
		assert.Equal(t, []string{"shared a drink"}, rels[0].History)
	})

	t.Run("id order never matters", func(t *testing.T) {
		a := ChangeRelationship(nil, constants, "a", "b", 2, "x")
		b := ChangeRelationship(nil, constants, "b", "a", 2, "x")
		assert.Equal(t, a, b)
	})

	t.Run("history is most recent first and bounded", func(t *testing.T) {
		var rels []Relationship
		reasons := []string{"one", "two", "three", "four", "five", "six", "seven"}
		for _, reason := range reasons {
			rels = ChangeRelationship(rels, constants, "a", "b", 0.1, reason)
		}
		require.Len(t, rels, 1)
		assert.Len(t, rels[0].History, constants.RelationshipHistoryCap)
		assert.Equal(t, "seven", rels[0].History[0])
		assert.Equal(t, "three", rels[0].History[len(rels[0].History)-1])
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		original := ChangeRelationship(nil, constants, "a", "b", 1, "start")
		level := original[0].Level
		_ = ChangeRelationship(original, constants, "a", "b", 2, "more")
		assert.Equal(t, level, original[0].Level)
	})
}

func TestRelationshipLevelAlwaysInRange(t *testing.T) {
	constants := DefaultConstants()
	rng := rand.New(rand.NewPCG(7, 11))

	var rels []Relationship
	ids := []string{"a", "b", "c", "d"}
	for i := 0; i < 10000; i++ {
		x := ids[rng.IntN(len(ids))]
		y := ids[rng.IntN(len(ids))]
		if x == y {
			continue
		}
		delta := rng.Float64()*8 - 4
		rels = ChangeRelationship(rels, constants, x, y, delta, "fuzz")
		for _, r := range rels {
			if r.Level < 0 || r.Level > 10 {
				t.Fatalf("relationship %s-%s level %v out of [0,10]", r.CrewID1, r.CrewID2, r.Level)
			}
		}
	}
}

func TestRelationshipValueDefaults(t *testing.T) {
	constants := DefaultConstants()
	assert.Equal(t, constants.StartingRelationship, RelationshipValue(nil, constants, "a", "b"))
}

func TestLevelForValue(t *testing.T) {
	tests := []struct {
		value float64
		want  RelationshipLevel
	}{
		{0, RelHostile},
		{1, RelHostile},
		{2, RelTense},
		{4, RelNeutral},
		{6, RelFriendly},
		{8, RelClose},
		{9, RelClose},
		{10, RelIntimate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForValue(tt.value), "value %v", tt.value)
	}
}

func TestRelationshipMorale(t *testing.T) {
	rels := []Relationship{
		{CrewID1: "a", CrewID2: "b", Level: 10}, // intimate +5
		{CrewID1: "a", CrewID2: "c", Level: 0},  // hostile -3
		{CrewID1: "b", CrewID2: "c", Level: 5},  // neutral, no modifier
	}
	assert.Equal(t, 2, RelationshipMorale(rels, "a"))
	assert.Equal(t, 5, RelationshipMorale(rels, "b"))
	assert.Equal(t, -3, RelationshipMorale(rels, "c"))
	assert.Equal(t, 0, RelationshipMorale(rels, "stranger"))
}

func TestProcessWorkTogether(t *testing.T) {
	constants := DefaultConstants()
	rels := ProcessWorkTogether(nil, constants, []string{"a", "b", "c"})
	require.Len(t, rels, 3)
	for _, r := range rels {
		assert.Equal(t, constants.StartingRelationship+constants.RelationshipWorkBonus, r.Level)
	}

	assert.Empty(t, ProcessWorkTogether(nil, constants, []string{"solo"}))
}

func TestRemoveCrewRelationships(t *testing.T) {
	rels := []Relationship{
		{CrewID1: "a", CrewID2: "b"},
		{CrewID1: "a", CrewID2: "c"},
		{CrewID1: "b", CrewID2: "c"},
	}
	out := RemoveCrewRelationships(rels, "a")
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].CrewID1)
	assert.Equal(t, "c", out[0].CrewID2)
}

func TestInitializeRelationships(t *testing.T) {
	constants := DefaultConstants()
	rels := InitializeRelationships(nil, constants, "new", []string{"a", "b", "new"})
	require.Len(t, rels, 2, "self pairing is skipped")
	for _, r := range rels {
		assert.Equal(t, constants.StartingRelationship, r.Level)
	}

	again := InitializeRelationships(rels, constants, "new", []string{"a"})
	assert.Len(t, again, 2, "existing pairs are not duplicated")
}
