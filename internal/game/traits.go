package game

import (
	"fmt"
	"sort"
)

// TraitID names a crew trait.
type TraitID string

const (
	TraitBrave     TraitID = "brave"
	TraitLucky     TraitID = "lucky"
	TraitEfficient TraitID = "efficient"
	TraitEagleEye  TraitID = "eagle_eye"
	TraitLoyal     TraitID = "loyal"
	TraitSteady    TraitID = "steady"
	TraitTireless  TraitID = "tireless"
	TraitGreedy    TraitID = "greedy"
	TraitCoward    TraitID = "coward"
	TraitReckless  TraitID = "reckless"
	TraitLazy      TraitID = "lazy"
	TraitParanoid  TraitID = "paranoid"
	TraitAddicted  TraitID = "addicted"
	TraitClumsy    TraitID = "clumsy"
	TraitQuiet     TraitID = "quiet"
	TraitVeteran   TraitID = "veteran"
	TraitIdealist  TraitID = "idealist"
	TraitPragmatic TraitID = "pragmatic"
)

// TraitCategory groups traits for generation pools.
type TraitCategory string

const (
	TraitPositive TraitCategory = "positive"
	TraitNegative TraitCategory = "negative"
	TraitNeutral  TraitCategory = "neutral"
)

// TraitEffectType discriminates trait effect entries.
type TraitEffectType string

const (
	TraitEffectSkillMod    TraitEffectType = "skill_mod"
	TraitEffectStaminaMod  TraitEffectType = "stamina_mod"
	TraitEffectSanityMod   TraitEffectType = "sanity_mod"
	TraitEffectEventChance TraitEffectType = "event_chance"
	TraitEffectLootBonus   TraitEffectType = "loot_bonus"
	TraitEffectWorkSpeed   TraitEffectType = "work_speed"
	TraitEffectSpecial     TraitEffectType = "special"
)

// TraitEffect is one typed, purely additive trait effect.
type TraitEffect struct {
	Type   TraitEffectType `yaml:"type"`
	Target string          `yaml:"target,omitempty"`
	Value  int             `yaml:"value"`
}

// Trait is a static trait definition. Definitions are external configuration;
// the core only aggregates them.
type Trait struct {
	ID          TraitID       `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Category    TraitCategory `yaml:"category"`
	Effects     []TraitEffect `yaml:"effects"`
}

// TraitTable maps trait ids to definitions.
type TraitTable map[TraitID]Trait

func (t TraitTable) Validate() error {
	for id, trait := range t {
		if trait.ID != id {
			return fmt.Errorf("trait %q declares mismatched id %q", id, trait.ID)
		}
		switch trait.Category {
		case TraitPositive, TraitNegative, TraitNeutral:
		default:
			return fmt.Errorf("trait %q has unknown category %q", id, trait.Category)
		}
		for i, effect := range trait.Effects {
			switch effect.Type {
			case TraitEffectSkillMod, TraitEffectStaminaMod, TraitEffectSanityMod,
				TraitEffectEventChance, TraitEffectLootBonus, TraitEffectWorkSpeed,
				TraitEffectSpecial:
			default:
				return fmt.Errorf("trait %q effect %d has unknown type %q", id, i, effect.Type)
			}
		}
	}
	return nil
}

// IDsByCategory returns the trait ids in a category, sorted so seeded
// generation draws from a stable pool.
func (t TraitTable) IDsByCategory(category TraitCategory) []TraitID {
	var out []TraitID
	for id, trait := range t {
		if trait.Category == category {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TraitModifiers is the additive aggregation of a crew member's traits.
type TraitModifiers struct {
	SkillMod     int
	StaminaMod   int
	SanityMod    int
	EventMod     int
	LootMod      int
	WorkSpeedMod int
}

// SpecialTraits are behavioral flags the salvage resolver branches on.
type SpecialTraits struct {
	Greedy    bool
	Coward    bool
	Pragmatic bool
	Brave     bool
}

// AggregateTraits sums a crew member's trait effects. Crew with no traits
// yields the zero value. Unknown trait ids are skipped.
func (t TraitTable) AggregateTraits(ids []TraitID) TraitModifiers {
	var mods TraitModifiers
	for _, id := range ids {
		trait, ok := t[id]
		if !ok {
			continue
		}
		for _, effect := range trait.Effects {
			switch effect.Type {
			case TraitEffectSkillMod:
				mods.SkillMod += effect.Value
			case TraitEffectStaminaMod:
				mods.StaminaMod += effect.Value
			case TraitEffectSanityMod:
				mods.SanityMod += effect.Value
			case TraitEffectEventChance:
				mods.EventMod += effect.Value
			case TraitEffectLootBonus:
				mods.LootMod += effect.Value
			case TraitEffectWorkSpeed:
				mods.WorkSpeedMod += effect.Value
			}
			// special effects surface through SpecialFlags instead.
		}
	}
	return mods
}

// SpecialFlags reports the behavioral flags present in a trait list.
func SpecialFlags(ids []TraitID) SpecialTraits {
	var flags SpecialTraits
	for _, id := range ids {
		switch id {
		case TraitGreedy:
			flags.Greedy = true
		case TraitCoward:
			flags.Coward = true
		case TraitPragmatic:
			flags.Pragmatic = true
		case TraitBrave:
			flags.Brave = true
		}
	}
	return flags
}

// DefaultTraits returns the built-in trait table.
func DefaultTraits() TraitTable {
	traits := []Trait{
		{ID: TraitBrave, Name: "Brave", Description: "Faces danger head-on. Won't flee.", Category: TraitPositive, Effects: []TraitEffect{
			{Type: TraitEffectEventChance, Target: "horror", Value: -20},
		}},
		{ID: TraitLucky, Name: "Lucky", Description: "Fortune favors them.", Category: TraitPositive, Effects: []TraitEffect{
			{Type: TraitEffectEventChance, Target: "all", Value: 5},
		}},
		{ID: TraitEfficient, Name: "Efficient", Description: "Gets work done faster.", Category: TraitPositive, Effects: []TraitEffect{
			{Type: TraitEffectWorkSpeed, Value: -15},
		}},
		{ID: TraitEagleEye, Name: "Eagle Eye", Description: "Spots hidden loot.", Category: TraitPositive, Effects: []TraitEffect{
			{Type: TraitEffectLootBonus, Value: 10},
		}},
		{ID: TraitLoyal, Name: "Loyal", Description: "Bonds deeply with crewmates.", Category: TraitPositive, Effects: []TraitEffect{
			{Type: TraitEffectSanityMod, Target: "crew_bond", Value: 10},
		}},
		{ID: TraitSteady, Name: "Steady", Description: "Unflappable under pressure.", Category: TraitPositive, Effects: []TraitEffect{
			{Type: TraitEffectSanityMod, Target: "loss_rate", Value: -30},
		}},
		{ID: TraitTireless, Name: "Tireless", Description: "Keeps going when others rest.", Category: TraitPositive, Effects: []TraitEffect{
			{Type: TraitEffectStaminaMod, Target: "consumption", Value: -20},
		}},
		{ID: TraitGreedy, Name: "Greedy", Description: "May pocket small items.", Category: TraitNegative, Effects: []TraitEffect{
			{Type: TraitEffectSpecial, Value: 1},
		}},
		{ID: TraitCoward, Name: "Coward", Description: "May flee from danger.", Category: TraitNegative, Effects: []TraitEffect{
			{Type: TraitEffectSpecial, Value: 1},
		}},
		{ID: TraitReckless, Name: "Reckless", Description: "Higher chance of injury.", Category: TraitNegative, Effects: []TraitEffect{
			{Type: TraitEffectEventChance, Target: "injury", Value: 15},
		}},
		{ID: TraitLazy, Name: "Lazy", Description: "Work takes longer.", Category: TraitNegative, Effects: []TraitEffect{
			{Type: TraitEffectWorkSpeed, Value: 25},
		}},
		{ID: TraitParanoid, Name: "Paranoid", Description: "Worse social outcomes.", Category: TraitNegative, Effects: []TraitEffect{
			{Type: TraitEffectEventChance, Target: "social", Value: -20},
		}},
		{ID: TraitAddicted, Name: "Addicted", Description: "Needs luxury drinks.", Category: TraitNegative, Effects: []TraitEffect{
			{Type: TraitEffectSanityMod, Target: "no_luxury", Value: -10},
		}},
		{ID: TraitClumsy, Name: "Clumsy", Description: "More equipment damage.", Category: TraitNegative, Effects: []TraitEffect{
			{Type: TraitEffectEventChance, Target: "equipment_damage", Value: 10},
		}},
		{ID: TraitQuiet, Name: "Quiet", Description: "Fewer social events.", Category: TraitNeutral, Effects: []TraitEffect{
			{Type: TraitEffectEventChance, Target: "social", Value: -50},
		}},
		{ID: TraitVeteran, Name: "Veteran", Description: "Better combat, worse horror resist.", Category: TraitNeutral, Effects: []TraitEffect{
			{Type: TraitEffectSkillMod, Target: "combat", Value: 10},
			{Type: TraitEffectEventChance, Target: "horror", Value: 10},
		}},
		{ID: TraitIdealist, Name: "Idealist", Description: "Strong reactions to moral choices.", Category: TraitNeutral, Effects: []TraitEffect{
			{Type: TraitEffectSanityMod, Target: "good_event", Value: 15},
			{Type: TraitEffectSanityMod, Target: "bad_event", Value: -15},
		}},
		{ID: TraitPragmatic, Name: "Pragmatic", Description: "Unaffected by moral choices.", Category: TraitNeutral, Effects: []TraitEffect{
			{Type: TraitEffectSpecial, Value: 1},
		}},
	}

	table := make(TraitTable, len(traits))
	for _, trait := range traits {
		table[trait.ID] = trait
	}
	return table
}
