// Package sim provides ready-made content and a headless expedition driver.
// The engine itself never generates wrecks or rosters; this package builds
// deterministic samples for the CLI and for scenario testing.
package sim

import (
	"fmt"

	"github.com/appengine-ltd/ship-breakers/internal/game"
)

// SampleWrecks builds a small salvage field: one wreck per tier 1-3, hazard
// levels and loot values scaling with the tier. Item and room ids are stable
// so runs with the same seed replay identically.
func SampleWrecks() []game.Wreck {
	return []game.Wreck{
		tier1Wreck(),
		tier2Wreck(),
		tier3Wreck(),
	}
}

func tier1Wreck() game.Wreck {
	return game.Wreck{
		ID:       "wreck-kestrel",
		Name:     "MV Kestrel",
		Tier:     1,
		Distance: 5,
		Rooms: []game.Room{
			{
				ID: "kestrel-cargo", Name: "Cargo Bay", HazardType: game.HazardMechanical, HazardLevel: 1,
				Loot: []game.Item{
					item("kestrel-scrap-1", "Hull Plating", "scrap", game.RarityCommon, 40),
					item("kestrel-scrap-2", "Copper Conduit", "scrap", game.RarityCommon, 55),
				},
			},
			{
				ID: "kestrel-engine", Name: "Engine Room", HazardType: game.HazardMechanical, HazardLevel: 2,
				Loot: []game.Item{
					item("kestrel-drive", "Drive Coil", "components", game.RarityUncommon, 120),
				},
			},
			{
				ID: "kestrel-bridge", Name: "Bridge", HazardType: game.HazardSecurity, HazardLevel: 1,
				Loot: []game.Item{
					item("kestrel-nav", "Nav Computer", "electronics", game.RarityUncommon, 150),
				},
			},
		},
	}
}

func tier2Wreck() game.Wreck {
	return game.Wreck{
		ID:       "wreck-aldrin",
		Name:     "Freighter Aldrin",
		Tier:     2,
		Distance: 12,
		Rooms: []game.Room{
			{
				ID: "aldrin-cargo", Name: "Cargo Hold", HazardType: game.HazardMechanical, HazardLevel: 2,
				Loot: []game.Item{
					item("aldrin-alloy-1", "Titanium Alloy", "scrap", game.RarityUncommon, 140),
					item("aldrin-alloy-2", "Sealed Crate", "cargo", game.RarityUncommon, 160),
				},
			},
			{
				ID: "aldrin-medbay", Name: "Medbay", HazardType: game.HazardEnvironmental, HazardLevel: 3,
				Loot: []game.Item{
					item("aldrin-meds", "Medical Stores", "supplies", game.RarityRare, 260),
				},
			},
			{
				ID: "aldrin-reactor", Name: "Reactor Core", HazardType: game.HazardMechanical, HazardLevel: 4, Sealed: true,
				Loot: []game.Item{
					item("aldrin-core", "Fuel Rod Assembly", "components", game.RarityRare, 340),
				},
			},
		},
	}
}

func tier3Wreck() game.Wreck {
	return game.Wreck{
		ID:       "wreck-vigil",
		Name:     "PCS Vigil",
		Tier:     3,
		Distance: 24,
		Rooms: []game.Room{
			{
				ID: "vigil-armory", Name: "Armory", HazardType: game.HazardCombat, HazardLevel: 4,
				Loot: []game.Item{
					item("vigil-arms", "Weapons Cache", "military", game.RarityRare, 420),
				},
			},
			{
				ID: "vigil-bridge", Name: "Command Bridge", HazardType: game.HazardSecurity, HazardLevel: 4, Sealed: true,
				Loot: []game.Item{
					item("vigil-cipher", "Cipher Bank", "electronics", game.RarityLegendary, 800),
				},
			},
			{
				ID: "vigil-lab", Name: "Research Laboratory", HazardType: game.HazardEnvironmental, HazardLevel: 5,
				Loot: []game.Item{
					item("vigil-samples", "Sample Vault", "research", game.RarityLegendary, 950),
					item("vigil-instruments", "Calibrated Instruments", "electronics", game.RarityRare, 380),
				},
			},
		},
	}
}

func item(id, name, category string, rarity game.Rarity, value int) game.Item {
	return game.Item{ID: id, Name: name, Category: category, Rarity: rarity, Value: value}
}

// SampleRoster rolls n recruits from the seeded source and marks the first
// as the player captain.
func SampleRoster(g *game.GameState, n int) []game.CrewMember {
	roster := g.GenerateRecruits(n)
	if len(roster) > 0 {
		roster[0].IsPlayer = true
		roster[0].Name = fmt.Sprintf("Captain %s", roster[0].LastName)
	}
	return roster
}
