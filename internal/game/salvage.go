package game

import (
	"fmt"
	"math"
)

// SalvageResult is the structured outcome of one extraction attempt.
// Probabilistic failure is a normal outcome, not an error.
type SalvageResult struct {
	Success   bool
	Fled      bool
	Damage    int
	TimeCost  int
	XPGained  int
	SkillUsed SkillType

	// Success-path details.
	Value  int
	Stolen bool

	// Set when the attempt dropped the crew member to 0 HP.
	CrewOutcome CrewDownOutcome
}

// NoOp reports a precondition-not-met attempt: nothing was mutated.
func (r SalvageResult) NoOp() bool {
	return !r.Success && !r.Fled && r.TimeCost == 0
}

// AttemptSalvage runs one item extraction attempt for the given crew member.
// Preconditions that fail (room looted, item gone, crew unavailable) return a
// zero-valued no-op result with no state mutation. A missing wreck or room for
// an active run is a broken invariant and returns an error.
func (g *GameState) AttemptSalvage(roomID, itemID, crewID string) (SalvageResult, error) {
	wreck, err := g.currentWreck()
	if err != nil {
		return SalvageResult{}, err
	}
	room := wreck.Room(roomID)
	if room == nil {
		return SalvageResult{}, fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
	}
	crew := g.CrewByID(crewID)
	if crew == nil {
		return SalvageResult{}, fmt.Errorf("%w: %s", ErrCrewNotFound, crewID)
	}

	if room.Looted || room.Sealed {
		return SalvageResult{}, nil
	}
	var item *Item
	for i := range room.Loot {
		if room.Loot[i].ID == itemID {
			item = &room.Loot[i]
			break
		}
	}
	if item == nil {
		return SalvageResult{}, nil
	}
	if avail := crew.CheckAvailability(g.Settings); !avail.Available {
		return SalvageResult{}, nil
	}
	if !crew.WorkCapable() {
		return SalvageResult{}, nil
	}

	mods := g.Traits.AggregateTraits(crew.Traits)
	flags := SpecialFlags(crew.Traits)
	skillUsed := room.HazardType.MatchingSkill()

	timeCost := scaleMin1(item.Rarity.TimeCost(), mods.WorkSpeedMod)

	g.Run.Stats.RoomsAttempted++

	// Cowards may refuse high-hazard rooms outright; time is spent, no roll.
	if flags.Coward && !flags.Brave && room.HazardLevel >= 3 {
		if g.rng.Float64() < g.Constants.CowardFleeChance {
			g.spendRunTime(timeCost)
			return SalvageResult{Fled: true, TimeCost: timeCost, SkillUsed: skillUsed}, nil
		}
	}

	chance := ResolveHazard(crew.EffectiveSkills(), room.HazardType, room.HazardLevel, wreck.Tier, g.ShipEffects)
	chance = clamp(chance+mods.SkillMod, 0, 100)

	roll := g.rng.Float64() * 100

	staminaDrain := scaleMin1(g.Constants.StaminaPerSalvage, mods.StaminaMod)
	sanityBase := 0
	if room.HazardLevel >= 3 {
		sanityBase = g.Constants.SanityLossBase
	}
	sanityLoss := scaleMin0(sanityBase, mods.SanityMod)

	if roll < float64(chance) {
		return g.applySalvageSuccess(wreck, room, *item, crew, mods, flags, skillUsed, timeCost, staminaDrain, sanityLoss), nil
	}
	return g.applySalvageFailure(room, crew, skillUsed, wreck.Tier, timeCost, staminaDrain, sanityLoss), nil
}

func (g *GameState) applySalvageSuccess(
	wreck *Wreck, room *Room, item Item, crew *CrewMember,
	mods TraitModifiers, flags SpecialTraits, skillUsed SkillType,
	timeCost, staminaDrain, sanityLoss int,
) SalvageResult {
	value := Valuate(item.Value, crew.Skills.Salvage, g.ShipEffects)
	value = int(math.Round(float64(value) * (1 + float64(mods.LootMod)/100)))

	stolen := flags.Greedy && g.rng.Float64() < g.Constants.GreedyStealChance

	xp := g.Constants.XPBaseSuccess +
		room.HazardLevel*g.Constants.XPPerHazardLevel +
		wreck.Tier*g.Constants.XPPerTier

	// Apply everything in one block; nothing below can fail.
	g.spendRunTime(timeCost)
	g.Run.Stats.RoomsSucceeded++
	g.Run.Stats.XPGained.add(skillUsed, xp)

	room.removeItem(item.ID)

	adjusted := item
	adjusted.Value = value
	if !stolen {
		crew.Inventory = append(crew.Inventory, adjusted)
	}
	crew.Stamina = clamp(crew.Stamina-staminaDrain, 0, crew.MaxStamina)
	crew.Sanity = clamp(crew.Sanity-sanityLoss, 0, crew.MaxSanity)
	crew.GainSkillXP(skillUsed, xp, g.Constants)

	g.sink.ItemSalvaged(*crew, adjusted, value)
	if g.rng.Float64() < g.Constants.SalvageEventChance {
		g.sink.NarrativeEvent(TriggerSalvage, *crew)
	}

	return SalvageResult{
		Success:   true,
		TimeCost:  timeCost,
		XPGained:  xp,
		SkillUsed: skillUsed,
		Value:     value,
		Stolen:    stolen,
	}
}

func (g *GameState) applySalvageFailure(
	room *Room, crew *CrewMember, skillUsed SkillType,
	tier, timeCost, staminaDrain, sanityLoss int,
) SalvageResult {
	damage := DamageOnFail(room.HazardLevel)
	xp := g.Constants.XPBaseFail +
		(room.HazardLevel*g.Constants.XPPerHazardLevel+tier*g.Constants.XPPerTier)/2

	g.spendRunTime(timeCost)
	g.Run.Stats.RoomsFailed++
	g.Run.Stats.DamageTaken += damage
	g.Run.Stats.XPGained.add(skillUsed, xp)

	wentDown := crew.HP > 0 && crew.HP-damage <= 0
	crew.HP = clamp(crew.HP-damage, 0, crew.MaxHP)
	crew.Stamina = clamp(crew.Stamina-staminaDrain, 0, crew.MaxStamina)
	crew.Sanity = clamp(crew.Sanity-sanityLoss, 0, crew.MaxSanity)
	crew.GainSkillXP(skillUsed, xp, g.Constants)

	result := SalvageResult{
		Damage:    damage,
		TimeCost:  timeCost,
		XPGained:  xp,
		SkillUsed: skillUsed,
	}

	g.sink.AttemptFailed(*crew, *room, damage)

	if wentDown {
		detail := fmt.Sprintf("Salvage accident in %s", room.Name)
		down := HandleCrewDown(g.rng, g.Constants, *crew, CauseSalvage, detail,
			g.Day, g.Relationships, g.otherCrewIDs(crew.ID))
		result.CrewOutcome = down.Outcome
		g.applyCrewDown(crew.ID, down)
	}

	return result
}

// applyCrewDown folds a CrewDownResult into state: archival and removal on
// death plus morale propagation, or injury assignment with HP pinned to 1.
func (g *GameState) applyCrewDown(crewID string, down CrewDownResult) {
	crew := g.CrewByID(crewID)
	if crew == nil {
		return
	}
	g.sink.CrewDown(*crew, down.Outcome)

	if down.Outcome == OutcomeDeath {
		if down.DeadRecord != nil {
			g.DeadCrew = append(g.DeadCrew, *down.DeadRecord)
		}
		g.removeCrew(crewID)
		for _, impact := range down.MoraleImpacts {
			if other := g.CrewByID(impact.CrewID); other != nil {
				other.AdjustMorale(impact.Amount)
			}
		}
		return
	}

	crew.Injury = down.Injury
	crew.Status = StatusInjured
	crew.HP = 1
}

// spendRunTime deducts from the run's time budget, flooring at zero.
func (g *GameState) spendRunTime(cost int) {
	g.Run.TimeRemaining -= cost
	if g.Run.TimeRemaining < 0 {
		g.Run.TimeRemaining = 0
	}
}

// scaleMin1 scales base by (1 + mod/100), rounding, flooring at 1.
func scaleMin1(base, mod int) int {
	scaled := int(math.Round(float64(base) * (1 + float64(mod)/100)))
	if scaled < 1 {
		return 1
	}
	return scaled
}

// scaleMin0 scales base by (1 + mod/100), rounding, flooring at 0.
func scaleMin0(base, mod int) int {
	scaled := int(math.Round(float64(base) * (1 + float64(mod)/100)))
	if scaled < 0 {
		return 0
	}
	return scaled
}
