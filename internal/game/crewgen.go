package game

import (
	"fmt"

	"github.com/google/uuid"
)

var crewFirstNames = []string{
	"Ada", "Bram", "Cass", "Dmitri", "Elena", "Finn", "Greta", "Hollis",
	"Imani", "Jax", "Kira", "Lom", "Mara", "Nix", "Orin", "Petra",
	"Quill", "Rosa", "Silas", "Tam", "Ursula", "Vance", "Wren", "Yuki", "Zane",
}

var crewLastNames = []string{
	"Abara", "Brandt", "Calloway", "Drester", "Esparza", "Flint", "Grieves",
	"Halloran", "Ivers", "Joon", "Kessler", "Lightfoot", "Moreau", "Novak",
	"Okafor", "Pryce", "Quint", "Reyes", "Stroud", "Tanaka", "Ueda", "Voss",
	"Waller", "Yarrow", "Zhao",
}

// Background shapes a generated crew member's starting skills.
type Background struct {
	Name       string
	SkillBoost map[SkillType]int
}

var crewBackgrounds = []Background{
	{Name: "Dock Worker", SkillBoost: map[SkillType]int{SkillSalvage: 1}},
	{Name: "Ex-Military", SkillBoost: map[SkillType]int{SkillCombat: 2, SkillTechnical: -1}},
	{Name: "Engineer", SkillBoost: map[SkillType]int{SkillTechnical: 2, SkillCombat: -1}},
	{Name: "Freighter Pilot", SkillBoost: map[SkillType]int{SkillPiloting: 2, SkillSalvage: -1}},
	{Name: "Scrapper", SkillBoost: map[SkillType]int{SkillSalvage: 2, SkillPiloting: -1}},
	{Name: "Drifter", SkillBoost: nil},
}

const (
	traitRollPositive    = 0.70
	traitRollSecondTrait = 0.30
)

// GenerateCrewMember rolls a fresh recruit: name, background with its skill
// boosts, one guaranteed trait (weighted toward positive) and a possible
// second from another category.
func GenerateCrewMember(rng Rand, traits TraitTable, constants Constants, day int) CrewMember {
	first := crewFirstNames[rng.IntN(len(crewFirstNames))]
	last := crewLastNames[rng.IntN(len(crewLastNames))]
	background := crewBackgrounds[rng.IntN(len(crewBackgrounds))]

	skills := Skills{}
	for _, skill := range AllSkills {
		base := 1 + rng.IntN(2)
		skills.SetLevel(skill, clamp(base+background.SkillBoost[skill], SkillMin, SkillMax))
	}

	member := CrewMember{
		ID:         uuid.NewString(),
		FirstName:  first,
		LastName:   last,
		Name:       first + " " + last,
		Background: background.Name,
		Skills:     skills,
		HP:         BaseHP,
		MaxHP:      BaseHP,
		Stamina:    BaseStamina,
		MaxStamina: BaseStamina,
		Sanity:     BaseSanity,
		MaxSanity:  BaseSanity,
		Morale:     constants.BaseMorale,
		Status:     StatusActive,
		Position:   Position{Location: LocationStation},
		HiredDay:   day,
		HireCost:   hireCost(skills),
	}

	member.Traits = rollTraits(rng, traits)
	mods := traits.AggregateTraits(member.Traits)
	if mods.StaminaMod != 0 {
		member.MaxStamina = member.MaxStamina * (100 + mods.StaminaMod) / 100
		member.Stamina = member.MaxStamina
	}
	if mods.SanityMod != 0 {
		member.MaxSanity = member.MaxSanity * (100 + mods.SanityMod) / 100
		member.Sanity = member.MaxSanity
	}
	return member
}

// rollTraits draws one trait weighted toward positive, then a second with a
// smaller chance, never duplicating the first.
func rollTraits(rng Rand, traits TraitTable) []TraitID {
	firstPool := traits.IDsByCategory(TraitNegative)
	if rng.Float64() < traitRollPositive {
		firstPool = traits.IDsByCategory(TraitPositive)
	}
	if len(firstPool) == 0 {
		return nil
	}
	rolled := []TraitID{firstPool[rng.IntN(len(firstPool))]}

	if rng.Float64() < traitRollSecondTrait {
		var secondPool []TraitID
		for _, category := range []TraitCategory{TraitPositive, TraitNegative, TraitNeutral} {
			for _, id := range traits.IDsByCategory(category) {
				if id != rolled[0] {
					secondPool = append(secondPool, id)
				}
			}
		}
		if len(secondPool) > 0 {
			rolled = append(rolled, secondPool[rng.IntN(len(secondPool))])
		}
	}
	return rolled
}

// hireCost prices a recruit by total skill points above the floor.
func hireCost(skills Skills) int {
	total := 0
	for _, skill := range AllSkills {
		total += skills.Level(skill) - SkillMin
	}
	return 100 + total*50
}

// GenerateRecruits rolls a hiring pool of n candidates.
func (g *GameState) GenerateRecruits(n int) []CrewMember {
	recruits := make([]CrewMember, 0, n)
	for i := 0; i < n; i++ {
		recruits = append(recruits, GenerateCrewMember(g.rng, g.Traits, g.Constants, g.Day))
	}
	return recruits
}

// HireCrew adds a recruit to the roster, charging their hire cost and seeding
// relationships with every existing member.
func (g *GameState) HireCrew(recruit CrewMember) error {
	if len(g.Roster) >= g.Constants.MaxCrewRoster {
		return fmt.Errorf("roster is full (%d members)", g.Constants.MaxCrewRoster)
	}
	if g.Credits < recruit.HireCost {
		return fmt.Errorf("cannot afford hire: need %d credits, have %d", recruit.HireCost, g.Credits)
	}
	g.Credits -= recruit.HireCost
	recruit.HiredDay = g.Day
	g.Relationships = InitializeRelationships(g.Relationships, g.Constants, recruit.ID, g.otherCrewIDs(recruit.ID))
	g.Roster = append(g.Roster, recruit)
	return nil
}

// HealCrew buys one round of medical treatment for a crew member at the
// station clinic. Healing restores HP but never shortens an injury.
func (g *GameState) HealCrew(crewID string) error {
	crew := g.CrewByID(crewID)
	if crew == nil {
		return ErrCrewNotFound
	}
	if crew.HP >= crew.MaxHP {
		return fmt.Errorf("%s is already at full health", crew.Name)
	}
	if g.Credits < g.Constants.HealingCost {
		return fmt.Errorf("cannot afford healing: need %d credits, have %d", g.Constants.HealingCost, g.Credits)
	}
	g.Credits -= g.Constants.HealingCost
	crew.HP = clamp(crew.HP+g.Constants.HealingAmount, 0, crew.MaxHP)
	return nil
}

// ShoreLeaveKind selects a shore leave package.
type ShoreLeaveKind string

const (
	// ShoreLeaveRest puts the member in the resting state for accelerated
	// recovery during AdvanceDays.
	ShoreLeaveRest ShoreLeaveKind = "rest"
	// ShoreLeaveRecreation trades credits for an immediate sanity and morale
	// boost.
	ShoreLeaveRecreation ShoreLeaveKind = "recreation"
	// ShoreLeaveParty boosts the whole roster's morale and relationships.
	ShoreLeaveParty ShoreLeaveKind = "party"
)

const (
	recreationCost     = 75
	recreationSanity   = 15
	recreationMorale   = 10
	partyCostPerMember = 40
	partyMorale        = 8
	partyRelationship  = 0.5
)

// ShoreLeave applies a shore leave package. Rest targets one member; party
// ignores crewID and covers everyone at the station.
func (g *GameState) ShoreLeave(kind ShoreLeaveKind, crewID string) error {
	switch kind {
	case ShoreLeaveRest:
		crew := g.CrewByID(crewID)
		if crew == nil {
			return ErrCrewNotFound
		}
		if crew.Status == StatusInjured {
			return fmt.Errorf("%s is injured and already recovering", crew.Name)
		}
		crew.Status = StatusResting
		return nil

	case ShoreLeaveRecreation:
		crew := g.CrewByID(crewID)
		if crew == nil {
			return ErrCrewNotFound
		}
		if g.Credits < recreationCost {
			return fmt.Errorf("cannot afford recreation: need %d credits, have %d", recreationCost, g.Credits)
		}
		g.Credits -= recreationCost
		crew.Sanity = clamp(crew.Sanity+recreationSanity, 0, crew.MaxSanity)
		crew.AdjustMorale(recreationMorale)
		return nil

	case ShoreLeaveParty:
		cost := partyCostPerMember * len(g.Roster)
		if g.Credits < cost {
			return fmt.Errorf("cannot afford party: need %d credits, have %d", cost, g.Credits)
		}
		g.Credits -= cost
		ids := make([]string, 0, len(g.Roster))
		for i := range g.Roster {
			g.Roster[i].AdjustMorale(partyMorale)
			ids = append(ids, g.Roster[i].ID)
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				g.Relationships = ChangeRelationship(g.Relationships, g.Constants, ids[i], ids[j], partyRelationship, "Shared a night off at the station")
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown shore leave kind %q", kind)
	}
}
