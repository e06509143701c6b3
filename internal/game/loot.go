package game

import "math"

// Rarity buckets loot items for value multipliers and extraction time.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// TimeCost is the base time units extracting an item of this rarity takes.
func (r Rarity) TimeCost() int {
	switch r {
	case RarityUncommon:
		return 2
	case RarityRare:
		return 3
	case RarityLegendary:
		return 5
	default:
		return 1
	}
}

// Item is one piece of salvageable loot.
type Item struct {
	ID       string
	Name     string
	Category string
	Rarity   Rarity
	Value    int
}

// Salvage skill adds 10% value per level above 1.
const salvageValueBonusPerLevel = 0.10

// Valuate scales an item's base value by the salvager's skill and any
// loot_bonus equipment effects. Non-decreasing in both.
func Valuate(baseValue, salvageSkill int, equipment []ItemEffect) int {
	skillLevels := salvageSkill - 1
	if skillLevels < 0 {
		skillLevels = 0
	}
	skillMult := 1 + float64(skillLevels)*salvageValueBonusPerLevel
	equipMult := 1 + float64(sumLootBonus(equipment))/100

	return int(math.Round(float64(baseValue) * skillMult * equipMult))
}
