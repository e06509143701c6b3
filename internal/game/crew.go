package game

import "fmt"

// CrewStatus is one of the crew state machine's states.
type CrewStatus string

const (
	StatusActive    CrewStatus = "active"
	StatusResting   CrewStatus = "resting"
	StatusInjured   CrewStatus = "injured"
	StatusBreakdown CrewStatus = "breakdown"
)

// Location tracks where a crew member currently is.
type Location string

const (
	LocationStation Location = "station"
	LocationShip    Location = "ship"
	LocationWreck   Location = "wreck"
)

// Position is a crew member's location, with the room they occupy when aboard
// a wreck.
type Position struct {
	Location Location
	RoomID   string
}

const (
	BaseHP      = 100
	BaseStamina = 100
	BaseSanity  = 100

	MinMorale = 0
	MaxMorale = 100
)

// CrewMember is one member of the roster. Mutated by every resolution step;
// removed from the roster on death.
type CrewMember struct {
	ID         string
	FirstName  string
	LastName   string
	Name       string
	Background string
	IsPlayer   bool

	Traits  []TraitID
	Skills  Skills
	SkillXP SkillXP

	HP         int
	MaxHP      int
	Stamina    int
	MaxStamina int
	Sanity     int
	MaxSanity  int
	Morale     int

	Status   CrewStatus
	Injury   *Injury
	Position Position

	// Inventory holds at most one carried item; the scheduler transfers to
	// ship cargo before each new attempt.
	Inventory []Item

	HiredDay int
	HireCost int
}

// CrewThresholds are the availability floors both manual and automated
// salvage check before letting a crew member work.
type CrewThresholds struct {
	MinCrewHPPercent int `yaml:"min_crew_hp_percent"`
	MinCrewStamina   int `yaml:"min_crew_stamina"`
	MinCrewSanity    int `yaml:"min_crew_sanity"`
}

// DefaultThresholds mirrors the game's default settings.
func DefaultThresholds() CrewThresholds {
	return CrewThresholds{
		MinCrewHPPercent: 20,
		MinCrewStamina:   20,
		MinCrewSanity:    20,
	}
}

// Availability reports whether a crew member may work and why not.
type Availability struct {
	Available bool
	Reason    string
}

// CheckAvailability applies the eligibility rules: HP percentage, stamina,
// sanity, and status. Work-disabling injuries are covered by status: an
// injured member is never active.
func (c CrewMember) CheckAvailability(thresholds CrewThresholds) Availability {
	if c.MaxHP > 0 {
		hpPercent := c.HP * 100 / c.MaxHP
		if hpPercent < thresholds.MinCrewHPPercent {
			return Availability{Reason: "HP too low"}
		}
	}
	if c.Stamina < thresholds.MinCrewStamina {
		return Availability{Reason: "stamina too low"}
	}
	if c.Sanity < thresholds.MinCrewSanity {
		return Availability{Reason: "sanity too low"}
	}
	if c.Status != StatusActive {
		return Availability{Reason: fmt.Sprintf("crew is %s", c.Status)}
	}
	return Availability{Available: true}
}

// EffectiveSkills applies injury skill penalties, flooring each skill at 1.
func (c CrewMember) EffectiveSkills() Skills {
	skills := c.Skills
	if c.Injury == nil || len(c.Injury.Effects.SkillPenalty) == 0 {
		return skills
	}
	for skill, penalty := range c.Injury.Effects.SkillPenalty {
		level := skills.Level(skill) + penalty
		if level < SkillMin {
			level = SkillMin
		}
		skills.SetLevel(skill, level)
	}
	return skills
}

// EffectiveMaxStamina applies the injury stamina modifier.
func (c CrewMember) EffectiveMaxStamina() int {
	if c.Injury == nil || c.Injury.Effects.StaminaModifier == 0 {
		return c.MaxStamina
	}
	return c.MaxStamina * (100 + c.Injury.Effects.StaminaModifier) / 100
}

// WorkCapable reports whether an injury forbids work outright.
func (c CrewMember) WorkCapable() bool {
	return c.Injury == nil || !c.Injury.Effects.WorkDisabled
}

// AdjustMorale moves morale by delta, clamped to [0,100].
func (c *CrewMember) AdjustMorale(delta int) {
	c.Morale = clamp(c.Morale+delta, MinMorale, MaxMorale)
}

// GainSkillXP adds xp to one skill and levels it up against the configured
// thresholds. Returns the number of levels gained (level cap 5).
func (c *CrewMember) GainSkillXP(skill SkillType, xp int, constants Constants) int {
	if xp <= 0 {
		return 0
	}
	c.SkillXP.add(skill, xp)

	levels := 0
	for c.Skills.Level(skill) < SkillMax {
		level := c.Skills.Level(skill)
		needed := cumulativeXP(constants.SkillXPThresholds, level)
		if c.SkillXP.Amount(skill) < needed {
			break
		}
		c.Skills.SetLevel(skill, level+1)
		levels++
	}
	return levels
}

// cumulativeXP is the total XP required to advance from level to level+1:
// the sum of the first `level` thresholds.
func cumulativeXP(thresholds []int, level int) int {
	if level < 1 {
		level = 1
	}
	if level > len(thresholds) {
		return int(^uint(0) >> 1)
	}
	total := 0
	for i := 0; i < level; i++ {
		total += thresholds[i]
	}
	return total
}
