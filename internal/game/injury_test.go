package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInjury(t *testing.T) {
	injury := NewInjury(InjuryBrokenArm, SeverityMajor)
	assert.Equal(t, InjuryBrokenArm, injury.Type)
	assert.Equal(t, 7, injury.DaysRemaining)
	assert.Equal(t, -2, injury.Effects.SkillPenalty[SkillTechnical])
	assert.False(t, injury.Effects.WorkDisabled)

	critical := NewInjury(InjuryBrokenLeg, SeverityCritical)
	assert.Equal(t, 18, critical.DaysRemaining)
	assert.True(t, critical.Effects.WorkDisabled)
	assert.Equal(t, -60, critical.Effects.StaminaModifier)
}

func TestRollInjuryTypeRespectsWeights(t *testing.T) {
	// With a scripted zero roll the first type in stable order always wins.
	rng := &scriptRand{floats: []float64{0}}
	assert.Equal(t, InjuryBrokenArm, RollInjuryType(rng, CauseSalvage))

	// A roll near the total lands on the last type.
	rng = &scriptRand{floats: []float64{0.9999}}
	assert.Equal(t, InjuryInternalBleeding, RollInjuryType(rng, CauseSalvage))
}

func TestRollInjuryTypeCoversAllTypes(t *testing.T) {
	rng := NewSeededRand(99)
	seen := map[InjuryType]bool{}
	for i := 0; i < 5000; i++ {
		seen[RollInjuryType(rng, CauseAccident)] = true
	}
	for _, typ := range injuryTypeOrder {
		assert.True(t, seen[typ], "type %s never rolled", typ)
	}
}

func TestRollInjurySeverity(t *testing.T) {
	constants := DefaultConstants()

	assert.Equal(t, SeverityCritical, RollInjurySeverity(&scriptRand{floats: []float64{0.99}}, constants, true))
	assert.Equal(t, SeverityMajor, RollInjurySeverity(&scriptRand{floats: []float64{0.1}}, constants, false))
	assert.Equal(t, SeverityMinor, RollInjurySeverity(&scriptRand{floats: []float64{0.9}}, constants, false))
}

func TestHandleCrewDownDeath(t *testing.T) {
	constants := DefaultConstants()
	crew := testCrew("victim", 2)
	crew.HiredDay = 3

	// First roll under the death chance forces death.
	rng := &scriptRand{floats: []float64{0.01}}
	rels := []Relationship{{CrewID1: "friend", CrewID2: "victim", Level: 9}}

	result := HandleCrewDown(rng, constants, crew, CauseSalvage, "Crushed by debris", 10, rels, []string{"friend", "stranger"})

	require.Equal(t, OutcomeDeath, result.Outcome)
	require.NotNil(t, result.DeadRecord)
	assert.Equal(t, "Crushed by debris", result.DeadRecord.CauseOfDeath)
	assert.Equal(t, 10, result.DeadRecord.DiedOnDay)
	assert.Equal(t, 7, result.DeadRecord.DaysEmployed)
	assert.Nil(t, result.Injury)

	require.Len(t, result.MoraleImpacts, 2)
	byID := map[string]int{}
	for _, impact := range result.MoraleImpacts {
		byID[impact.CrewID] = impact.Amount
	}
	assert.Equal(t, -(constants.MoraleLossOnDeath + constants.MoraleLossCloseFriend), byID["friend"])
	assert.Equal(t, -constants.MoraleLossOnDeath, byID["stranger"])
}

func TestHandleCrewDownInjury(t *testing.T) {
	constants := DefaultConstants()
	crew := testCrew("victim", 2)

	// Survive the death roll, fail the critical roll, pass the major roll.
	rng := &scriptRand{floats: []float64{0.9, 0.9, 0.1, 0.5}}
	result := HandleCrewDown(rng, constants, crew, CauseSalvage, "x", 1, nil, nil)

	assert.Equal(t, OutcomeInjury, result.Outcome)
	require.NotNil(t, result.Injury)
	assert.Equal(t, SeverityMajor, result.Injury.Severity)
	assert.Nil(t, result.DeadRecord)
	assert.Empty(t, result.MoraleImpacts)
}

func TestHandleCrewDownDeathRate(t *testing.T) {
	constants := DefaultConstants()
	crew := testCrew("victim", 2)
	rng := rand.New(rand.NewPCG(1, 2))

	const trials = 20000
	deaths := 0
	for i := 0; i < trials; i++ {
		result := HandleCrewDown(rng, constants, crew, CauseSalvage, "x", 1, nil, nil)
		if result.Outcome == OutcomeDeath {
			deaths++
		}
	}
	rate := float64(deaths) / trials
	assert.InDelta(t, constants.DeathChanceOnZeroHP, rate, 0.05)
}

func TestProcessInjuryRecovery(t *testing.T) {
	healthy := testCrew("healthy", 2)

	hurt := testCrew("hurt", 2)
	injury := NewInjury(InjuryConcussion, SeverityMinor) // 2 days
	hurt.Injury = &injury
	hurt.Status = StatusInjured
	hurt.HP = 1

	roster := []CrewMember{healthy, hurt}

	day1, recovered := ProcessInjuryRecovery(roster)
	assert.Empty(t, recovered)
	require.NotNil(t, day1[1].Injury)
	assert.Equal(t, 1, day1[1].Injury.DaysRemaining)
	assert.Equal(t, StatusInjured, day1[1].Status)

	// Input roster must be untouched.
	assert.Equal(t, 2, roster[1].Injury.DaysRemaining)

	day2, recovered := ProcessInjuryRecovery(day1)
	require.Len(t, recovered, 1)
	assert.Equal(t, hurt.Name, recovered[0])
	assert.Nil(t, day2[1].Injury)
	assert.Equal(t, StatusActive, day2[1].Status)
	assert.Equal(t, BaseHP/2, day2[1].HP, "HP floored at half max on recovery")

	// No injuries left: a further day changes nothing.
	day3, recovered := ProcessInjuryRecovery(day2)
	assert.Empty(t, recovered)
	assert.Equal(t, day2, day3)
}
