package game

import "fmt"

// EffectType discriminates equipment effect entries.
type EffectType string

const (
	EffectSkillBonus     EffectType = "skill_bonus"
	EffectHazardResist   EffectType = "hazard_resist"
	EffectLootBonus      EffectType = "loot_bonus"
	EffectFuelEfficiency EffectType = "fuel_efficiency"
)

// ItemEffect is one typed equipment effect. Target carries a skill name for
// skill_bonus entries and a hazard name for hazard_resist entries; the other
// kinds ignore it.
type ItemEffect struct {
	Type   EffectType `yaml:"type"`
	Target string     `yaml:"target,omitempty"`
	Value  int        `yaml:"value"`
}

func (e ItemEffect) Validate() error {
	switch e.Type {
	case EffectSkillBonus:
		switch SkillType(e.Target) {
		case SkillTechnical, SkillCombat, SkillSalvage, SkillPiloting:
		default:
			return fmt.Errorf("skill_bonus effect targets unknown skill %q", e.Target)
		}
	case EffectHazardResist:
		if _, ok := hazardSkillMap[HazardType(e.Target)]; !ok {
			return fmt.Errorf("hazard_resist effect targets unknown hazard %q", e.Target)
		}
	case EffectLootBonus, EffectFuelEfficiency:
		if e.Target != "" {
			return fmt.Errorf("%s effect must not carry a target, got %q", e.Type, e.Target)
		}
	default:
		return fmt.Errorf("unknown effect type %q", e.Type)
	}
	return nil
}

// ValidateEffects checks a full equipment effect list at configuration load.
func ValidateEffects(effects []ItemEffect) error {
	for i, e := range effects {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("effect %d: %w", i, err)
		}
	}
	return nil
}

func sumSkillBonus(effects []ItemEffect, skill SkillType) int {
	total := 0
	for _, e := range effects {
		if e.Type == EffectSkillBonus && SkillType(e.Target) == skill {
			total += e.Value
		}
	}
	return total
}

func sumHazardResist(effects []ItemEffect, hazard HazardType) int {
	total := 0
	for _, e := range effects {
		if e.Type == EffectHazardResist && HazardType(e.Target) == hazard {
			total += e.Value
		}
	}
	return total
}

func sumLootBonus(effects []ItemEffect) int {
	total := 0
	for _, e := range effects {
		if e.Type == EffectLootBonus {
			total += e.Value
		}
	}
	return total
}

func sumFuelEfficiency(effects []ItemEffect) int {
	total := 0
	for _, e := range effects {
		if e.Type == EffectFuelEfficiency {
			total += e.Value
		}
	}
	return total
}
