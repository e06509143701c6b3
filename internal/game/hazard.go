package game

// HazardType is the typed risk attached to a room.
type HazardType string

const (
	HazardMechanical    HazardType = "mechanical"
	HazardCombat        HazardType = "combat"
	HazardEnvironmental HazardType = "environmental"
	HazardSecurity      HazardType = "security"
)

const (
	HazardLevelMin = 0
	HazardLevelMax = 5
)

var hazardSkillMap = map[HazardType]SkillType{
	HazardMechanical:    SkillTechnical,
	HazardCombat:        SkillCombat,
	HazardEnvironmental: SkillPiloting,
	HazardSecurity:      SkillTechnical,
}

// MatchingSkill returns the skill a hazard resolves against. Unknown hazards
// fall back to salvage.
func (h HazardType) MatchingSkill() SkillType {
	if skill, ok := hazardSkillMap[h]; ok {
		return skill
	}
	return SkillSalvage
}

func (h HazardType) String() string {
	switch h {
	case HazardMechanical:
		return "Mechanical"
	case HazardCombat:
		return "Combat"
	case HazardEnvironmental:
		return "Environmental"
	case HazardSecurity:
		return "Security"
	default:
		return "Unknown"
	}
}

// Success curve tuning. The curve is part of the model, not configuration:
// the scenario tests pin these values.
const (
	hazardSkillWeight        = 22
	hazardLevelWeight        = 8
	specializationBonus      = 5
	specializationMinSkill   = 3
	mismatchPenalty          = 15
	mismatchTierThreshold    = 3
	mismatchMaxMatchingSkill = 3
)

// ResolveHazard computes the success percentage for one hazard encounter.
// Deterministic; the caller rolls against the returned chance.
func ResolveHazard(skills Skills, hazard HazardType, hazardLevel, tier int, equipment []ItemEffect) int {
	matching := hazard.MatchingSkill()
	matchingLevel := skills.Level(matching)
	bestLevel := skills.Best()

	skillValue := matchingLevel
	if bestLevel > skillValue {
		skillValue = bestLevel
	}
	skillValue += sumSkillBonus(equipment, matching)

	chance := skillValue*hazardSkillWeight - hazardLevel*hazardLevelWeight
	chance += sumHazardResist(equipment, hazard)

	if matchingLevel == bestLevel && matchingLevel >= specializationMinSkill {
		chance += specializationBonus
	}
	if tier >= mismatchTierThreshold && matchingLevel < mismatchMaxMatchingSkill {
		chance -= mismatchPenalty
	}

	return clamp(chance, 0, 100)
}

// DamageOnFail is the HP damage a failed attempt inflicts.
func DamageOnFail(hazardLevel int) int {
	return hazardLevel * 10
}
