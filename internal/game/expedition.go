package game

import (
	"fmt"
	"math"
)

// TravelCost is the one-way fuel cost to a wreck at the given distance.
// Piloting skill and fuel_efficiency equipment both reduce it; cost never
// drops below 1.
func TravelCost(constants Constants, distance, pilotingSkill int, shipEffects []ItemEffect) int {
	skillReduction := 1 - float64(pilotingSkill)*constants.PilotingFuelReductionPerLevel
	if skillReduction < 0 {
		skillReduction = 0
	}
	fuelEfficiency := float64(sumFuelEfficiency(shipEffects)) / 100
	reduction := skillReduction * (1 - fuelEfficiency)
	if reduction < 0 {
		reduction = 0
	}
	cost := math.Ceil(float64(distance) * float64(constants.FuelCostPerAU) * reduction)
	if cost < 1 {
		return 1
	}
	return int(cost)
}

// DaysSpent is the number of days one travel leg takes, minimum 1.
func DaysSpent(constants Constants, distance int) int {
	days := math.Ceil(float64(distance) / constants.DaysPer10AU)
	if days < 1 {
		return 1
	}
	return int(days)
}

// bestPiloting picks the strongest piloting skill on the active roster; the
// best pilot flies both legs.
func (g *GameState) bestPiloting() int {
	best := 0
	for _, c := range g.Roster {
		if c.Status == StatusActive && c.Skills.Piloting > best {
			best = c.Skills.Piloting
		}
	}
	return best
}

// StartRun opens an expedition toward the given wreck. Requires fuel for the
// round trip; the run starts in the traveling state with the full time budget.
func (g *GameState) StartRun(wreckID string) error {
	if g.Run != nil {
		return ErrRunInProgress
	}
	wreck := g.WreckByID(wreckID)
	if wreck == nil {
		return fmt.Errorf("%w: %s", ErrWreckNotFound, wreckID)
	}

	oneWay := TravelCost(g.Constants, wreck.Distance, g.bestPiloting(), g.ShipEffects)
	if g.Fuel < oneWay*2 {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientFuel, oneWay*2, g.Fuel)
	}

	g.Run = &RunState{
		WreckID:       wreckID,
		Status:        RunTraveling,
		TimeRemaining: g.Constants.StartingRunTime,
	}
	return nil
}

// TravelToWreck flies the outbound leg: consumes fuel, moves the crew aboard,
// and opens salvaging. May surface a travel narrative event.
func (g *GameState) TravelToWreck() error {
	wreck, err := g.currentWreck()
	if err != nil {
		return err
	}
	if g.Run.Status != RunTraveling {
		return fmt.Errorf("run is %s, expected %s", g.Run.Status, RunTraveling)
	}

	cost := TravelCost(g.Constants, wreck.Distance, g.bestPiloting(), g.ShipEffects)
	g.Fuel = max(0, g.Fuel-cost)
	g.Run.Stats.FuelSpent += cost
	g.Run.Status = RunSalvaging

	for i := range g.Roster {
		g.Roster[i].Position = Position{Location: LocationWreck}
	}

	if len(g.Roster) > 0 && g.rng.Float64() < g.Constants.TravelEventChance {
		g.sink.NarrativeEvent(TriggerTravel, g.Roster[0])
	}
	return nil
}

// ReturnToStation flies the return leg, advances elapsed days, and completes
// the run. Daily recovery and injury countdowns apply for each day spent.
func (g *GameState) ReturnToStation() error {
	wreck, err := g.currentWreck()
	if err != nil {
		return err
	}
	if g.Run.Status != RunSalvaging {
		return fmt.Errorf("run is %s, expected %s", g.Run.Status, RunSalvaging)
	}

	cost := TravelCost(g.Constants, wreck.Distance, g.bestPiloting(), g.ShipEffects)
	g.Fuel = max(0, g.Fuel-cost)
	g.Run.Stats.FuelSpent += cost
	g.Run.Status = RunCompleted

	for i := range g.Roster {
		g.Roster[i].Position = Position{Location: LocationStation}
	}

	ids := make([]string, 0, len(g.Roster))
	for _, c := range g.Roster {
		ids = append(ids, c.ID)
	}
	g.Relationships = ProcessWorkTogether(g.Relationships, g.Constants, ids)

	g.AdvanceDays(DaysSpent(g.Constants, wreck.Distance))
	return nil
}

// CompleteRun banks the collected loot as credits and clears the run.
// Returns the credits earned.
func (g *GameState) CompleteRun() (int, error) {
	if g.Run == nil {
		return 0, ErrNoActiveRun
	}
	earned := 0
	for _, item := range g.Run.CollectedLoot {
		earned += item.Value
	}
	g.Credits += earned
	g.Run = nil
	return earned, nil
}

// EmergencyEvacuate aborts an in-progress run from any state: all run loot,
// carried and collected, is discarded and the crew returns to the station.
// Fuel for the return leg is still spent.
func (g *GameState) EmergencyEvacuate() error {
	wreck, err := g.currentWreck()
	if err != nil {
		return err
	}
	if g.Run.Status == RunCompleted {
		return fmt.Errorf("run already completed")
	}

	cost := TravelCost(g.Constants, wreck.Distance, g.bestPiloting(), g.ShipEffects)
	g.Fuel = max(0, g.Fuel-cost)

	for i := range g.Roster {
		g.Roster[i].Inventory = nil
		g.Roster[i].Position = Position{Location: LocationStation}
	}
	g.Run = nil

	g.AdvanceDays(DaysSpent(g.Constants, wreck.Distance))
	return nil
}

// TransferCarriedItems moves a crew member's carried items into ship cargo.
// Fails without mutating anything when cargo cannot hold them all.
func (g *GameState) TransferCarriedItems(crewID string) (bool, error) {
	if g.Run == nil {
		return false, ErrNoActiveRun
	}
	crew := g.CrewByID(crewID)
	if crew == nil {
		return false, fmt.Errorf("%w: %s", ErrCrewNotFound, crewID)
	}
	if len(crew.Inventory) == 0 {
		return true, nil
	}
	if len(g.Run.CollectedLoot)+len(crew.Inventory) > g.CargoCapacity {
		return false, nil
	}
	g.Run.CollectedLoot = append(g.Run.CollectedLoot, crew.Inventory...)
	crew.Inventory = nil
	return true, nil
}

// AdvanceDays moves the clock forward, applying the daily tick each day:
// injury recovery, stamina/sanity recovery, and morale recovery with the
// relationship-derived modifier.
func (g *GameState) AdvanceDays(days int) {
	for d := 0; d < days; d++ {
		g.Day++

		g.Roster, _ = ProcessInjuryRecovery(g.Roster)

		for i := range g.Roster {
			crew := &g.Roster[i]

			if crew.Status == StatusResting {
				crew.HP = clamp(crew.HP+g.Constants.HPRecoveryResting, 0, crew.MaxHP)
				crew.Stamina = clamp(crew.Stamina+g.Constants.StaminaRecoveryResting, 0, crew.EffectiveMaxStamina())
				crew.Sanity = clamp(crew.Sanity+g.Constants.SanityRecoveryResting, 0, crew.MaxSanity)
				if crew.HP >= 80 && crew.Stamina >= 70 && crew.Sanity >= 70 {
					crew.Status = StatusActive
				}
			} else {
				crew.Stamina = clamp(crew.Stamina+g.Constants.StaminaRecoveryStation, 0, crew.EffectiveMaxStamina())
				crew.Sanity = clamp(crew.Sanity+g.Constants.SanityRecoveryStation, 0, crew.MaxSanity)
			}

			crew.AdjustMorale(g.Constants.MoraleRecoveryPerDay + RelationshipMorale(g.Relationships, crew.ID))
		}
	}
}
