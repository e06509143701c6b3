package game

import "fmt"

// Constants holds every numeric tunable the simulation consumes. Callers build
// one with DefaultConstants and may override individual values (or load a YAML
// override through internal/config) before handing it to NewGameState.
type Constants struct {
	// Skill XP
	SkillXPThresholds []int `yaml:"skill_xp_thresholds"`
	XPBaseSuccess     int   `yaml:"xp_base_success"`
	XPBaseFail        int   `yaml:"xp_base_fail"`
	XPPerHazardLevel  int   `yaml:"xp_per_hazard_level"`
	XPPerTier         int   `yaml:"xp_per_tier"`

	// Salvage costs
	StaminaPerSalvage int `yaml:"stamina_per_salvage"`
	SanityLossBase    int `yaml:"sanity_loss_base"`

	// Death & injury
	DeathChanceOnZeroHP  float64 `yaml:"death_chance_on_zero_hp"`
	CriticalInjuryChance float64 `yaml:"critical_injury_chance"`
	MajorInjuryChance    float64 `yaml:"major_injury_chance"`

	// Morale
	BaseMorale            int `yaml:"base_morale"`
	MoraleLossOnDeath     int `yaml:"morale_loss_on_death"`
	MoraleLossCloseFriend int `yaml:"morale_loss_close_friend"`
	MoraleRecoveryPerDay  int `yaml:"morale_recovery_per_day"`

	// Relationships
	StartingRelationship   float64 `yaml:"starting_relationship"`
	RelationshipWorkBonus  float64 `yaml:"relationship_work_bonus"`
	RelationshipHistoryCap int     `yaml:"relationship_history_cap"`

	// Travel
	FuelCostPerAU                 int     `yaml:"fuel_cost_per_au"`
	PilotingFuelReductionPerLevel float64 `yaml:"piloting_fuel_reduction_per_level"`
	DaysPer10AU                   float64 `yaml:"days_per_10_au"`

	// Run framing
	StartingRunTime int `yaml:"starting_run_time"`

	// Station recovery
	StaminaRecoveryStation int `yaml:"stamina_recovery_station"`
	SanityRecoveryStation  int `yaml:"sanity_recovery_station"`
	StaminaRecoveryResting int `yaml:"stamina_recovery_resting"`
	SanityRecoveryResting  int `yaml:"sanity_recovery_resting"`
	HPRecoveryResting      int `yaml:"hp_recovery_resting"`

	// Event chances
	SalvageEventChance float64 `yaml:"salvage_event_chance"`
	TravelEventChance  float64 `yaml:"travel_event_chance"`

	// Special trait behavior
	GreedyStealChance float64 `yaml:"greedy_steal_chance"`
	CowardFleeChance  float64 `yaml:"coward_flee_chance"`

	// Station services
	HealingCost   int `yaml:"healing_cost"`
	HealingAmount int `yaml:"healing_amount"`
	MaxCrewRoster int `yaml:"max_crew_roster"`
}

// DefaultConstants returns the tuning the game ships with.
func DefaultConstants() Constants {
	return Constants{
		SkillXPThresholds: []int{100, 250, 500, 1000},
		XPBaseSuccess:     5,
		XPBaseFail:        2,
		XPPerHazardLevel:  3,
		XPPerTier:         2,

		StaminaPerSalvage: 10,
		SanityLossBase:    5,

		DeathChanceOnZeroHP:  0.30,
		CriticalInjuryChance: 0.50,
		MajorInjuryChance:    0.70,

		BaseMorale:            75,
		MoraleLossOnDeath:     25,
		MoraleLossCloseFriend: 15,
		MoraleRecoveryPerDay:  5,

		StartingRelationship:   5,
		RelationshipWorkBonus:  0.3,
		RelationshipHistoryCap: 5,

		FuelCostPerAU:                 2,
		PilotingFuelReductionPerLevel: 0.05,
		DaysPer10AU:                   10,

		StartingRunTime: 20,

		StaminaRecoveryStation: 20,
		SanityRecoveryStation:  5,
		StaminaRecoveryResting: 30,
		SanityRecoveryResting:  20,
		HPRecoveryResting:      10,

		SalvageEventChance: 0.2,
		TravelEventChance:  0.4,

		GreedyStealChance: 0.05,
		CowardFleeChance:  0.20,

		HealingCost:   50,
		HealingAmount: 10,
		MaxCrewRoster: 5,
	}
}

func (c Constants) Validate() error {
	if len(c.SkillXPThresholds) == 0 {
		return fmt.Errorf("skill xp thresholds must not be empty")
	}
	for i, t := range c.SkillXPThresholds {
		if t <= 0 {
			return fmt.Errorf("skill xp threshold %d must be positive, got %d", i, t)
		}
	}
	for name, p := range map[string]float64{
		"death_chance_on_zero_hp": c.DeathChanceOnZeroHP,
		"critical_injury_chance":  c.CriticalInjuryChance,
		"major_injury_chance":     c.MajorInjuryChance,
		"salvage_event_chance":    c.SalvageEventChance,
		"travel_event_chance":     c.TravelEventChance,
		"greedy_steal_chance":     c.GreedyStealChance,
		"coward_flee_chance":      c.CowardFleeChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be within [0,1], got %v", name, p)
		}
	}
	if c.StartingRelationship < 0 || c.StartingRelationship > 10 {
		return fmt.Errorf("starting relationship must be within [0,10], got %v", c.StartingRelationship)
	}
	if c.FuelCostPerAU < 1 {
		return fmt.Errorf("fuel cost per AU must be at least 1, got %d", c.FuelCostPerAU)
	}
	if c.DaysPer10AU <= 0 {
		return fmt.Errorf("days per 10 AU must be positive, got %v", c.DaysPer10AU)
	}
	if c.StartingRunTime <= 0 {
		return fmt.Errorf("starting run time must be positive, got %d", c.StartingRunTime)
	}
	if c.RelationshipHistoryCap < 1 {
		return fmt.Errorf("relationship history cap must be at least 1, got %d", c.RelationshipHistoryCap)
	}
	if c.MaxCrewRoster < 1 {
		return fmt.Errorf("max crew roster must be at least 1, got %d", c.MaxCrewRoster)
	}
	return nil
}
