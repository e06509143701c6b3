package game

import "testing"

// scriptRand replays queued values, then repeats the final one. Tests use it
// to force specific success, death, and injury rolls.
type scriptRand struct {
	floats []float64
	ints   []int
}

func (s *scriptRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.999
	}
	v := s.floats[0]
	if len(s.floats) > 1 {
		s.floats = s.floats[1:]
	}
	return v
}

func (s *scriptRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	if len(s.ints) > 1 {
		s.ints = s.ints[1:]
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func testCrew(id string, level int) CrewMember {
	return CrewMember{
		ID:   id,
		Name: "Crew " + id,
		Skills: Skills{
			Technical: level,
			Combat:    level,
			Salvage:   level,
			Piloting:  level,
		},
		HP: BaseHP, MaxHP: BaseHP,
		Stamina: BaseStamina, MaxStamina: BaseStamina,
		Sanity: BaseSanity, MaxSanity: BaseSanity,
		Morale:   75,
		Status:   StatusActive,
		Position: Position{Location: LocationShip},
	}
}

func testWreck(tier int, rooms ...Room) Wreck {
	return Wreck{
		ID:       "wreck-test",
		Name:     "Test Wreck",
		Tier:     tier,
		Distance: 5,
		Rooms:    rooms,
	}
}

// newTestState builds a state with one wreck, the given roster, and an
// active salvaging run. rng may be nil for a fixed seed.
func newTestState(t *testing.T, rng Rand, wreck Wreck, roster ...CrewMember) *GameState {
	t.Helper()
	g, err := NewGameState(StateConfig{
		Constants:     DefaultConstants(),
		Settings:      DefaultThresholds(),
		Rand:          rng,
		Seed:          42,
		Fuel:          1000,
		CargoCapacity: 10,
	})
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	g.Wrecks = []Wreck{wreck}
	g.Roster = roster
	// Open the run directly so scripted random values are not consumed by
	// travel event rolls.
	g.Run = &RunState{
		WreckID:       wreck.ID,
		Status:        RunSalvaging,
		TimeRemaining: g.Constants.StartingRunTime,
	}
	return g
}
