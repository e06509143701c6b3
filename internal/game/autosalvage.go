package game

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// StopReason is the terminal classification of an auto-salvage run.
type StopReason string

const (
	StopComplete      StopReason = "complete"
	StopCargoFull     StopReason = "cargo_full"
	StopTimeOut       StopReason = "time_out"
	StopCrewExhausted StopReason = "crew_exhausted"
	StopInjury        StopReason = "injury"
	StopCancelled     StopReason = "cancelled"
)

// PriorityAny matches every room; categories after it are never consulted.
const PriorityAny = "any"

// AutoSalvageRules parameterize one scheduler invocation. Immutable input.
type AutoSalvageRules struct {
	MaxHazardLevel   int
	PriorityRooms    []string
	StopOnInjury     bool
	StopOnLowStamina int
	StopOnLowSanity  int
}

func (r AutoSalvageRules) Validate() error {
	if r.MaxHazardLevel < 1 || r.MaxHazardLevel > HazardLevelMax {
		return fmt.Errorf("max hazard level must be 1-%d, got %d", HazardLevelMax, r.MaxHazardLevel)
	}
	if r.StopOnLowStamina < 0 || r.StopOnLowStamina > 100 {
		return fmt.Errorf("stamina threshold must be 0-100, got %d", r.StopOnLowStamina)
	}
	if r.StopOnLowSanity < 0 || r.StopOnLowSanity > 100 {
		return fmt.Errorf("sanity threshold must be 0-100, got %d", r.StopOnLowSanity)
	}
	if len(r.PriorityRooms) == 0 {
		return fmt.Errorf("at least one room priority required")
	}
	return nil
}

// AutoSalvageResult is produced exactly once per scheduler invocation.
type AutoSalvageResult struct {
	RoomsSalvaged int
	LootCollected int
	CreditsEarned int
	Injuries      int
	StopReason    StopReason
}

// Speed selects the pacing delay between attempts.
type Speed int

const (
	// SpeedInstant disables pacing; used by tests and batch simulation.
	SpeedInstant Speed = 0
	SpeedNormal  Speed = 1
	SpeedFast    Speed = 2
)

func (s Speed) delay() time.Duration {
	switch s {
	case SpeedNormal:
		return 500 * time.Millisecond
	case SpeedFast:
		return 250 * time.Millisecond
	default:
		return 0
	}
}

// AutoSalvage drives repeated salvage attempts across a wreck without
// per-action input. The loop is cooperative: pacing sleeps are the only
// suspension points, and cancellation is polled at the top of each iteration
// and at every pacing delay, never mid-mutation.
type AutoSalvage struct {
	state  *GameState
	rules  AutoSalvageRules
	delay  time.Duration
	cancel chan struct{}

	result  AutoSalvageResult
	stopped bool
}

// NewAutoSalvage validates the rules and prepares a scheduler run.
func (g *GameState) NewAutoSalvage(rules AutoSalvageRules, speed Speed) (*AutoSalvage, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("auto-salvage rules: %w", err)
	}
	return &AutoSalvage{
		state:  g,
		rules:  rules,
		delay:  speed.delay(),
		cancel: make(chan struct{}),
	}, nil
}

// Cancel requests a cooperative stop. The in-flight attempt completes before
// the loop observes the request. Safe to call more than once.
func (a *AutoSalvage) Cancel() {
	select {
	case <-a.cancel:
	default:
		close(a.cancel)
	}
}

// RunAutoSalvage is the one-shot convenience wrapper: build, run, return.
func (g *GameState) RunAutoSalvage(ctx context.Context, rules AutoSalvageRules, speed Speed) (AutoSalvageResult, error) {
	task, err := g.NewAutoSalvage(rules, speed)
	if err != nil {
		return AutoSalvageResult{}, err
	}
	return task.Run(ctx)
}

// Run executes scheduler steps until a stop condition fires and returns the
// accumulated result. Context cancellation behaves like Cancel.
func (a *AutoSalvage) Run(ctx context.Context) (AutoSalvageResult, error) {
	for !a.stopped {
		if a.cancelled(ctx) {
			a.stop(StopCancelled)
			break
		}
		if err := a.step(ctx); err != nil {
			return a.result, err
		}
	}
	return a.result, nil
}

func (a *AutoSalvage) cancelled(ctx context.Context) bool {
	select {
	case <-a.cancel:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func (a *AutoSalvage) stop(reason StopReason) {
	if !a.stopped {
		a.result.StopReason = reason
		a.stopped = true
	}
}

// pace sleeps for the configured delay, waking early on cancellation.
// Reports whether the run should keep going.
func (a *AutoSalvage) pace(ctx context.Context) bool {
	if a.delay <= 0 {
		return !a.cancelled(ctx)
	}
	timer := time.NewTimer(a.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-a.cancel:
		return false
	case <-ctx.Done():
		return false
	}
}

// step performs one scheduler iteration: stop checks, room selection (with
// sealed-room breaching), crew selection, and the per-item attempt loop for
// the chosen room.
func (a *AutoSalvage) step(ctx context.Context) error {
	g := a.state

	if g.Run == nil {
		a.stop(StopComplete)
		return nil
	}
	if g.Run.TimeRemaining <= 0 {
		a.stop(StopTimeOut)
		return nil
	}
	if len(g.Run.CollectedLoot) >= g.CargoCapacity {
		a.stop(StopCargoFull)
		return nil
	}

	wreck, err := g.currentWreck()
	if err != nil {
		return err
	}

	// Sealed rooms within reach are breached before open rooms are
	// considered. Breaching costs one time unit and is not a salvage action.
	if g.Run.TimeRemaining >= 1 {
		if sealed := firstSealedRoom(wreck, a.rules.MaxHazardLevel); sealed != nil {
			sealed.Sealed = false
			g.spendRunTime(1)
			return nil
		}
	}

	room := a.pickRoom(wreck)
	if room == nil {
		a.stop(StopComplete)
		return nil
	}

	crew := a.pickCrew(*room)
	if crew == nil {
		a.stop(StopCrewExhausted)
		return nil
	}

	return a.salvageRoom(ctx, room, crew.ID)
}

// salvageRoom runs attempts for every item present in the room at selection
// time, transferring carried loot to ship cargo before each new attempt.
func (a *AutoSalvage) salvageRoom(ctx context.Context, room *Room, crewID string) error {
	g := a.state

	items := make([]Item, len(room.Loot))
	copy(items, room.Loot)

	roomSuccess := false
	for _, item := range items {
		crew := g.CrewByID(crewID)
		if crew == nil {
			// Crew died mid-room; the room is abandoned.
			break
		}

		if len(crew.Inventory) > 0 {
			ok, err := g.TransferCarriedItems(crewID)
			if err != nil {
				return err
			}
			if !ok {
				a.stop(StopCargoFull)
				break
			}
		}

		result, err := g.AttemptSalvage(room.ID, item.ID, crewID)
		if err != nil {
			return err
		}
		if result.NoOp() {
			break
		}

		if result.Success {
			roomSuccess = true
			a.result.LootCollected++
			if !result.Stolen {
				a.result.CreditsEarned += result.Value
			}
		}
		if result.Damage > 0 {
			a.result.Injuries++
			if a.rules.StopOnInjury {
				if hurt := g.CrewByID(crewID); hurt == nil || hurt.HP < hurt.MaxHP/2 {
					a.stop(StopInjury)
					break
				}
			}
		}
		if g.Run.TimeRemaining <= 0 {
			break
		}

		if !a.pace(ctx) {
			a.stop(StopCancelled)
			break
		}
	}

	// Flush whatever is still carried after the room.
	if crew := g.CrewByID(crewID); crew != nil && len(crew.Inventory) > 0 {
		ok, err := g.TransferCarriedItems(crewID)
		if err != nil {
			return err
		}
		if !ok {
			a.stop(StopCargoFull)
		}
	}

	if roomSuccess {
		a.result.RoomsSalvaged++
	}
	return nil
}

// firstSealedRoom finds an unlooted sealed room within the hazard ceiling.
func firstSealedRoom(wreck *Wreck, maxHazard int) *Room {
	for i := range wreck.Rooms {
		room := &wreck.Rooms[i]
		if room.Sealed && !room.Looted && room.HazardLevel <= maxHazard {
			return room
		}
	}
	return nil
}

// pickRoom selects the next open, unlooted room within the hazard ceiling,
// honoring the ordered priority categories. The first category with a match
// wins; "any" (or no category matching) falls back to the first available
// room.
func (a *AutoSalvage) pickRoom(wreck *Wreck) *Room {
	var available []*Room
	for i := range wreck.Rooms {
		room := &wreck.Rooms[i]
		if !room.Looted && !room.Sealed && len(room.Loot) > 0 && room.HazardLevel <= a.rules.MaxHazardLevel {
			available = append(available, room)
		}
	}
	if len(available) == 0 {
		return nil
	}

	for _, priority := range a.rules.PriorityRooms {
		if priority == PriorityAny {
			break
		}
		for _, room := range available {
			if strings.Contains(strings.ToLower(room.Name), strings.ToLower(priority)) {
				return room
			}
		}
	}
	return available[0]
}

// pickCrew selects the best eligible crew member for a room: strongest
// matching skill for the hazard, ties broken by best overall skill. The
// rules' stamina/sanity floors override the looser global settings.
func (a *AutoSalvage) pickCrew(room Room) *CrewMember {
	g := a.state
	thresholds := g.Settings
	if a.rules.StopOnLowStamina > thresholds.MinCrewStamina {
		thresholds.MinCrewStamina = a.rules.StopOnLowStamina
	}
	if a.rules.StopOnLowSanity > thresholds.MinCrewSanity {
		thresholds.MinCrewSanity = a.rules.StopOnLowSanity
	}

	matching := room.HazardType.MatchingSkill()

	var best *CrewMember
	bestFit, bestOverall := -1, -1
	for i := range g.Roster {
		crew := &g.Roster[i]
		if avail := crew.CheckAvailability(thresholds); !avail.Available {
			continue
		}
		if !crew.WorkCapable() {
			continue
		}
		skills := crew.EffectiveSkills()
		fit := skills.Level(matching)
		overall := skills.Best()
		if fit > bestFit || (fit == bestFit && overall > bestOverall) {
			best, bestFit, bestOverall = crew, fit, overall
		}
	}
	return best
}
