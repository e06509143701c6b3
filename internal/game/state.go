package game

import (
	"errors"
	"fmt"
)

// RunStatus is the expedition lifecycle state.
type RunStatus string

const (
	RunTraveling RunStatus = "traveling"
	RunSalvaging RunStatus = "salvaging"
	RunCompleted RunStatus = "completed"
	RunReturning RunStatus = "returning"
)

// RunStats accumulates per-run bookkeeping.
type RunStats struct {
	RoomsAttempted int
	RoomsSucceeded int
	RoomsFailed    int
	DamageTaken    int
	FuelSpent      int
	XPGained       SkillXP
}

// RunState frames one expedition; nil means no run is in progress.
type RunState struct {
	WreckID       string
	Status        RunStatus
	TimeRemaining int
	CollectedLoot []Item
	Stats         RunStats
}

// Broken-invariant errors. Expected outcomes (precondition not met, resource
// exhausted, probabilistic failure) are structured results, never errors.
var (
	ErrNoActiveRun      = errors.New("no active run")
	ErrRunInProgress    = errors.New("a run is already in progress")
	ErrWreckNotFound    = errors.New("wreck referenced by active run not found")
	ErrRoomNotFound     = errors.New("room not found in wreck")
	ErrCrewNotFound     = errors.New("crew member not found")
	ErrInsufficientFuel = errors.New("insufficient fuel for round trip")
)

// GameState is the single mutable aggregate every component reads and writes.
// It replaces the original's ambient global store: callers construct one and
// pass it explicitly. One logical actor mutates it between yield points; no
// concurrent access discipline is required.
type GameState struct {
	Constants Constants
	Traits    TraitTable
	Settings  CrewThresholds

	Day     int
	Credits int
	Fuel    int

	CargoCapacity int
	ShipEffects   []ItemEffect

	Roster        []CrewMember
	DeadCrew      []DeadCrewMember
	Relationships []Relationship

	Wrecks []Wreck
	Run    *RunState

	rng  Rand
	sink EventSink
}

// StateConfig configures a new GameState.
type StateConfig struct {
	Constants     Constants
	Traits        TraitTable
	Settings      CrewThresholds
	Seed          int64
	Rand          Rand      // optional; overrides Seed
	Sink          EventSink // optional
	Credits       int
	Fuel          int
	CargoCapacity int
	ShipEffects   []ItemEffect
}

// NewGameState validates the configuration and builds the aggregate.
func NewGameState(cfg StateConfig) (*GameState, error) {
	if err := cfg.Constants.Validate(); err != nil {
		return nil, fmt.Errorf("constants: %w", err)
	}
	if cfg.Traits == nil {
		cfg.Traits = DefaultTraits()
	}
	if err := cfg.Traits.Validate(); err != nil {
		return nil, fmt.Errorf("traits: %w", err)
	}
	if err := ValidateEffects(cfg.ShipEffects); err != nil {
		return nil, fmt.Errorf("ship effects: %w", err)
	}
	if cfg.CargoCapacity < 1 {
		return nil, fmt.Errorf("cargo capacity must be at least 1, got %d", cfg.CargoCapacity)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = NewSeededRand(cfg.Seed)
	}
	sink := cfg.Sink
	if sink == nil {
		sink = NopSink{}
	}

	return &GameState{
		Constants:     cfg.Constants,
		Traits:        cfg.Traits,
		Settings:      cfg.Settings,
		Day:           1,
		Credits:       cfg.Credits,
		Fuel:          cfg.Fuel,
		CargoCapacity: cfg.CargoCapacity,
		ShipEffects:   cfg.ShipEffects,
		rng:           rng,
		sink:          sink,
	}, nil
}

// Rand exposes the injected random source.
func (g *GameState) Rand() Rand { return g.rng }

// Sink exposes the event sink.
func (g *GameState) Sink() EventSink { return g.sink }

// CrewByID returns a pointer into the roster, or nil.
func (g *GameState) CrewByID(id string) *CrewMember {
	for i := range g.Roster {
		if g.Roster[i].ID == id {
			return &g.Roster[i]
		}
	}
	return nil
}

// WreckByID returns a pointer into the wreck list, or nil.
func (g *GameState) WreckByID(id string) *Wreck {
	for i := range g.Wrecks {
		if g.Wrecks[i].ID == id {
			return &g.Wrecks[i]
		}
	}
	return nil
}

// currentWreck resolves the active run's wreck, treating absence as a broken
// invariant between lifecycle and wreck data.
func (g *GameState) currentWreck() (*Wreck, error) {
	if g.Run == nil {
		return nil, ErrNoActiveRun
	}
	wreck := g.WreckByID(g.Run.WreckID)
	if wreck == nil {
		return nil, fmt.Errorf("%w: %s", ErrWreckNotFound, g.Run.WreckID)
	}
	return wreck, nil
}

// removeCrew drops a member from the roster and clears their relationships.
func (g *GameState) removeCrew(id string) {
	for i := range g.Roster {
		if g.Roster[i].ID == id {
			g.Roster = append(g.Roster[:i:i], g.Roster[i+1:]...)
			break
		}
	}
	g.Relationships = RemoveCrewRelationships(g.Relationships, id)
}

// otherCrewIDs lists every roster id except the given one.
func (g *GameState) otherCrewIDs(excludeID string) []string {
	ids := make([]string, 0, len(g.Roster))
	for _, c := range g.Roster {
		if c.ID != excludeID {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
