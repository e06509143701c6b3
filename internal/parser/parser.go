// Package parser normalizes free-form user input from the CLI into the
// canonical identifiers the engine understands: room priority categories,
// skill names, and shore leave packages. Matching is forgiving: exact aliases
// first, then prefixes, then a bounded edit distance.
package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

// Normalize lowercases input and collapses punctuation and runs of whitespace
// into single spaces.
func Normalize(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '-' || r == '_' || r == '/' || r == ',' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

// entry maps one alias to its canonical form.
type entry struct {
	alias     string
	canonical string
}

// Matcher resolves aliases to canonical identifiers.
type Matcher struct {
	entries []entry
}

// NewMatcher builds a matcher from canonical -> aliases. The canonical form
// is always accepted as its own alias.
func NewMatcher(defs map[string][]string) *Matcher {
	m := &Matcher{}
	for canonical, aliases := range defs {
		m.entries = append(m.entries, entry{alias: Normalize(canonical), canonical: canonical})
		for _, alias := range aliases {
			m.entries = append(m.entries, entry{alias: Normalize(alias), canonical: canonical})
		}
	}
	sort.Slice(m.entries, func(i, j int) bool { return m.entries[i].alias < m.entries[j].alias })
	return m
}

// Match resolves raw input to a canonical identifier. An error names the
// closest candidates when nothing matched.
func (m *Matcher) Match(raw string) (string, error) {
	in := Normalize(raw)
	if in == "" {
		return "", fmt.Errorf("empty input")
	}

	for _, e := range m.entries {
		if e.alias == in {
			return e.canonical, nil
		}
	}

	// Prefix match: require at least two characters so "c" never silently
	// picks between cargo and cockpit.
	if len(in) >= 2 {
		var hits []string
		for _, e := range m.entries {
			if strings.HasPrefix(e.alias, in) && !contains(hits, e.canonical) {
				hits = append(hits, e.canonical)
			}
		}
		if len(hits) == 1 {
			return hits[0], nil
		}
		if len(hits) > 1 {
			return "", fmt.Errorf("%q is ambiguous: %s", raw, strings.Join(hits, ", "))
		}
	}

	if len(in) >= 3 {
		best, bestDist := "", int(^uint(0)>>1)
		for _, e := range m.entries {
			dist := levenshtein.ComputeDistance(in, e.alias)
			if dist <= distanceLimit(len(e.alias)) && dist < bestDist {
				best, bestDist = e.canonical, dist
			}
		}
		if best != "" {
			return best, nil
		}
	}

	return "", fmt.Errorf("unknown input %q (expected one of: %s)", raw, strings.Join(m.canonicals(), ", "))
}

// MatchAll resolves a comma or space separated list, preserving order and
// dropping duplicates.
func (m *Matcher) MatchAll(raw string) ([]string, error) {
	var out []string
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		canonical, err := m.Match(field)
		if err != nil {
			return nil, err
		}
		if !contains(out, canonical) {
			out = append(out, canonical)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", raw)
	}
	return out, nil
}

func (m *Matcher) canonicals() []string {
	var out []string
	for _, e := range m.entries {
		if !contains(out, e.canonical) {
			out = append(out, e.canonical)
		}
	}
	sort.Strings(out)
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// RoomCategories matches the priority categories the scheduler understands.
func RoomCategories() *Matcher {
	return NewMatcher(map[string][]string{
		"cargo":      {"cargo bay", "cargo hold", "hold"},
		"engine":     {"engine room", "engineering", "drive"},
		"bridge":     {"cockpit", "command", "helm"},
		"medbay":     {"medical", "med bay", "infirmary", "sickbay"},
		"quarters":   {"crew quarters", "bunks", "barracks"},
		"armory":     {"weapons", "arms locker"},
		"reactor":    {"reactor core", "power plant"},
		"laboratory": {"lab", "science bay", "research"},
		"any":        {"anything", "all", "whatever"},
	})
}

// Skills matches skill names for recruit and crew inspection commands.
func Skills() *Matcher {
	return NewMatcher(map[string][]string{
		"technical": {"tech", "engineering"},
		"combat":    {"fighting", "weapons"},
		"salvage":   {"scrapping", "looting"},
		"piloting":  {"flying", "pilot", "navigation"},
	})
}

// ShoreLeave matches station shore leave packages.
func ShoreLeave() *Matcher {
	return NewMatcher(map[string][]string{
		"rest":       {"sleep", "bunk"},
		"recreation": {"rec", "fun", "bar"},
		"party":      {"celebration", "blowout"},
	})
}
