package game

// RelationshipLevel is the label band for a numeric relationship value.
type RelationshipLevel string

const (
	RelHostile  RelationshipLevel = "hostile"
	RelTense    RelationshipLevel = "tense"
	RelNeutral  RelationshipLevel = "neutral"
	RelFriendly RelationshipLevel = "friendly"
	RelClose    RelationshipLevel = "close"
	RelIntimate RelationshipLevel = "intimate"
)

// LevelForValue maps a 0-10 relationship value to its band.
func LevelForValue(value float64) RelationshipLevel {
	switch {
	case value <= 1:
		return RelHostile
	case value <= 3:
		return RelTense
	case value <= 5:
		return RelNeutral
	case value <= 7:
		return RelFriendly
	case value <= 9:
		return RelClose
	default:
		return RelIntimate
	}
}

// Daily morale modifier per relationship in each band.
var relationshipMoraleBonus = map[RelationshipLevel]int{
	RelIntimate: 5,
	RelClose:    2,
	RelFriendly: 1,
	RelTense:    -1,
	RelHostile:  -3,
}

// Relationship is a pairwise bond between two crew members. The pair key is
// canonical: CrewID1 < CrewID2 always. Level stays within [0,10]; History is
// most-recent-first and bounded.
type Relationship struct {
	CrewID1 string
	CrewID2 string
	Level   float64
	History []string
}

// pairKey returns the canonical ordering for two crew ids.
func pairKey(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// FindRelationship locates the relationship between two crew members, if any.
func FindRelationship(relationships []Relationship, a, b string) (Relationship, bool) {
	id1, id2 := pairKey(a, b)
	for _, r := range relationships {
		if r.CrewID1 == id1 && r.CrewID2 == id2 {
			return r, true
		}
	}
	return Relationship{}, false
}

// RelationshipValue returns the level between two crew members, defaulting to
// the configured starting relationship when none exists yet.
func RelationshipValue(relationships []Relationship, constants Constants, a, b string) float64 {
	if r, ok := FindRelationship(relationships, a, b); ok {
		return r.Level
	}
	return constants.StartingRelationship
}

// ChangeRelationship applies delta to the pair's level, clamped to [0,10],
// creating the relationship lazily on first interaction. Returns the updated
// slice.
func ChangeRelationship(relationships []Relationship, constants Constants, a, b string, delta float64, reason string) []Relationship {
	id1, id2 := pairKey(a, b)

	for i, r := range relationships {
		if r.CrewID1 != id1 || r.CrewID2 != id2 {
			continue
		}
		r.Level = clampFloat(r.Level+delta, 0, 10)
		history := make([]string, 0, constants.RelationshipHistoryCap)
		history = append(history, reason)
		history = append(history, r.History...)
		if len(history) > constants.RelationshipHistoryCap {
			history = history[:constants.RelationshipHistoryCap]
		}
		r.History = history

		out := make([]Relationship, len(relationships))
		copy(out, relationships)
		out[i] = r
		return out
	}

	created := Relationship{
		CrewID1: id1,
		CrewID2: id2,
		Level:   clampFloat(constants.StartingRelationship+delta, 0, 10),
		History: []string{reason},
	}
	return append(append([]Relationship{}, relationships...), created)
}

// InitializeRelationships creates neutral relationships between a new crew
// member and everyone already aboard.
func InitializeRelationships(relationships []Relationship, constants Constants, newID string, existingIDs []string) []Relationship {
	out := append([]Relationship{}, relationships...)
	for _, existing := range existingIDs {
		if existing == newID {
			continue
		}
		if _, ok := FindRelationship(out, newID, existing); ok {
			continue
		}
		id1, id2 := pairKey(newID, existing)
		out = append(out, Relationship{
			CrewID1: id1,
			CrewID2: id2,
			Level:   constants.StartingRelationship,
			History: []string{"First met"},
		})
	}
	return out
}

// ProcessWorkTogether grants every pair of crew that worked this run the
// shared-work relationship bonus.
func ProcessWorkTogether(relationships []Relationship, constants Constants, crewIDs []string) []Relationship {
	if len(crewIDs) < 2 {
		return relationships
	}
	out := relationships
	for i := 0; i < len(crewIDs); i++ {
		for j := i + 1; j < len(crewIDs); j++ {
			out = ChangeRelationship(out, constants, crewIDs[i], crewIDs[j],
				constants.RelationshipWorkBonus, "Worked together on salvage")
		}
	}
	return out
}

// RemoveCrewRelationships drops every relationship involving a crew member
// who left permanently.
func RemoveCrewRelationships(relationships []Relationship, crewID string) []Relationship {
	out := relationships[:0:0]
	for _, r := range relationships {
		if r.CrewID1 != crewID && r.CrewID2 != crewID {
			out = append(out, r)
		}
	}
	return out
}

// RelationshipMorale sums the daily morale modifier a crew member receives
// from all their relationships.
func RelationshipMorale(relationships []Relationship, crewID string) int {
	total := 0
	for _, r := range relationships {
		if r.CrewID1 != crewID && r.CrewID2 != crewID {
			continue
		}
		total += relationshipMoraleBonus[LevelForValue(r.Level)]
	}
	return total
}

// ClosePairs returns pairs at or above the given level (event hooks).
func ClosePairs(relationships []Relationship, minLevel float64) []Relationship {
	var out []Relationship
	for _, r := range relationships {
		if r.Level >= minLevel {
			out = append(out, r)
		}
	}
	return out
}

// RivalPairs returns pairs at or below the given level (conflict hooks).
func RivalPairs(relationships []Relationship, maxLevel float64) []Relationship {
	var out []Relationship
	for _, r := range relationships {
		if r.Level <= maxLevel {
			out = append(out, r)
		}
	}
	return out
}
