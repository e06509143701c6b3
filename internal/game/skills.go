package game

// SkillType identifies one of the four crew skills.
type SkillType string

const (
	SkillTechnical SkillType = "technical"
	SkillCombat    SkillType = "combat"
	SkillSalvage   SkillType = "salvage"
	SkillPiloting  SkillType = "piloting"
)

// AllSkills lists every skill in a stable order.
var AllSkills = []SkillType{SkillTechnical, SkillCombat, SkillSalvage, SkillPiloting}

const (
	SkillMin = 1
	SkillMax = 5
)

// Skills holds a crew member's four skill levels (1-5).
type Skills struct {
	Technical int `yaml:"technical"`
	Combat    int `yaml:"combat"`
	Salvage   int `yaml:"salvage"`
	Piloting  int `yaml:"piloting"`
}

// Level returns the level for one skill. Unknown skills read as 0.
func (s Skills) Level(skill SkillType) int {
	switch skill {
	case SkillTechnical:
		return s.Technical
	case SkillCombat:
		return s.Combat
	case SkillSalvage:
		return s.Salvage
	case SkillPiloting:
		return s.Piloting
	default:
		return 0
	}
}

// SetLevel writes the level for one skill, ignoring unknown skills.
func (s *Skills) SetLevel(skill SkillType, level int) {
	switch skill {
	case SkillTechnical:
		s.Technical = level
	case SkillCombat:
		s.Combat = level
	case SkillSalvage:
		s.Salvage = level
	case SkillPiloting:
		s.Piloting = level
	}
}

// Best returns the highest skill level across all four skills.
func (s Skills) Best() int {
	best := s.Technical
	for _, skill := range []int{s.Combat, s.Salvage, s.Piloting} {
		if skill > best {
			best = skill
		}
	}
	return best
}

// SkillXP tracks accumulated experience per skill.
type SkillXP struct {
	Technical int
	Combat    int
	Salvage   int
	Piloting  int
}

func (x SkillXP) Amount(skill SkillType) int {
	switch skill {
	case SkillTechnical:
		return x.Technical
	case SkillCombat:
		return x.Combat
	case SkillSalvage:
		return x.Salvage
	case SkillPiloting:
		return x.Piloting
	default:
		return 0
	}
}

func (x *SkillXP) add(skill SkillType, amount int) {
	switch skill {
	case SkillTechnical:
		x.Technical += amount
	case SkillCombat:
		x.Combat += amount
	case SkillSalvage:
		x.Salvage += amount
	case SkillPiloting:
		x.Piloting += amount
	}
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}
	if number > max {
		return max
	}
	return number
}

func clampFloat(number, min, max float64) float64 {
	if number < min {
		return min
	}
	if number > max {
		return max
	}
	return number
}
