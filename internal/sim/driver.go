package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/appengine-ltd/ship-breakers/internal/game"
)

// ExpeditionReport summarizes one full expedition cycle.
type ExpeditionReport struct {
	WreckName     string
	StopReason    game.StopReason
	RoomsSalvaged int
	LootCollected int
	CreditsEarned int
	Injuries      int
	FuelSpent     int
	DaysElapsed   int
	CrewLost      int
}

// Driver runs complete expeditions headlessly: start, fly out, auto-salvage,
// fly back, bank the loot.
type Driver struct {
	state *game.GameState
	log   *slog.Logger
}

// NewDriver wraps a game state. A nil logger discards output.
func NewDriver(state *game.GameState, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Driver{state: state, log: log}
}

// RunExpedition drives one wreck end to end under the given scheduler rules.
func (d *Driver) RunExpedition(ctx context.Context, wreckID string, rules game.AutoSalvageRules, speed game.Speed) (ExpeditionReport, error) {
	g := d.state
	wreck := g.WreckByID(wreckID)
	if wreck == nil {
		return ExpeditionReport{}, fmt.Errorf("%w: %s", game.ErrWreckNotFound, wreckID)
	}

	startDay := g.Day
	startRoster := len(g.Roster)
	report := ExpeditionReport{WreckName: wreck.Name}

	if err := g.StartRun(wreckID); err != nil {
		return report, fmt.Errorf("start run: %w", err)
	}
	d.log.Info("expedition started",
		"wreck", wreck.Name,
		"tier", wreck.Tier,
		"distance_au", wreck.Distance,
		"crew", len(g.Roster))

	if err := g.TravelToWreck(); err != nil {
		return report, fmt.Errorf("travel: %w", err)
	}

	result, err := g.RunAutoSalvage(ctx, rules, speed)
	if err != nil {
		return report, fmt.Errorf("auto salvage: %w", err)
	}
	report.StopReason = result.StopReason
	report.RoomsSalvaged = result.RoomsSalvaged
	report.LootCollected = result.LootCollected
	report.Injuries = result.Injuries
	d.log.Info("salvage finished",
		"stop_reason", string(result.StopReason),
		"rooms", result.RoomsSalvaged,
		"loot", result.LootCollected,
		"injuries", result.Injuries)

	if err := g.ReturnToStation(); err != nil {
		return report, fmt.Errorf("return: %w", err)
	}
	report.FuelSpent = g.Run.Stats.FuelSpent

	earned, err := g.CompleteRun()
	if err != nil {
		return report, fmt.Errorf("complete run: %w", err)
	}
	report.CreditsEarned = earned
	report.DaysElapsed = g.Day - startDay
	report.CrewLost = startRoster - len(g.Roster)
	d.log.Info("expedition complete",
		"credits", earned,
		"days", report.DaysElapsed,
		"crew_lost", report.CrewLost,
		"fuel_remaining", g.Fuel)
	return report, nil
}
