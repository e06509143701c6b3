// Package metrics exposes engine activity as Prometheus collectors. The Sink
// implements game.EventSink so the core stays unaware of instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/appengine-ltd/ship-breakers/internal/game"
)

// Sink counts engine signals. Register it once per process.
type Sink struct {
	itemsSalvaged   *prometheus.CounterVec
	salvageValue    prometheus.Counter
	attemptsFailed  *prometheus.CounterVec
	damageTaken     prometheus.Counter
	narrativeEvents *prometheus.CounterVec
	crewDown        *prometheus.CounterVec
}

// NewSink builds the collectors and registers them with reg.
func NewSink(reg prometheus.Registerer) *Sink {
	s := &Sink{
		itemsSalvaged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shipbreakers",
			Name:      "items_salvaged_total",
			Help:      "Items successfully pulled out of wrecks.",
		}, []string{"rarity"}),
		salvageValue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shipbreakers",
			Name:      "salvage_value_credits_total",
			Help:      "Total appraised value of salvaged items.",
		}),
		attemptsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shipbreakers",
			Name:      "salvage_attempts_failed_total",
			Help:      "Failed hazard rolls, by hazard type.",
		}, []string{"hazard"}),
		damageTaken: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shipbreakers",
			Name:      "crew_damage_total",
			Help:      "HP lost to failed salvage attempts.",
		}),
		narrativeEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shipbreakers",
			Name:      "narrative_events_total",
			Help:      "Narrative events surfaced, by trigger.",
		}, []string{"trigger"}),
		crewDown: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shipbreakers",
			Name:      "crew_down_total",
			Help:      "Crew knocked out of action, by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(s.itemsSalvaged, s.salvageValue, s.attemptsFailed, s.damageTaken, s.narrativeEvents, s.crewDown)
	return s
}

func (s *Sink) ItemSalvaged(_ game.CrewMember, item game.Item, value int) {
	s.itemsSalvaged.WithLabelValues(string(item.Rarity)).Inc()
	s.salvageValue.Add(float64(value))
}

func (s *Sink) AttemptFailed(_ game.CrewMember, room game.Room, damage int) {
	s.attemptsFailed.WithLabelValues(string(room.HazardType)).Inc()
	s.damageTaken.Add(float64(damage))
}

func (s *Sink) NarrativeEvent(trigger game.EventTrigger, _ game.CrewMember) {
	s.narrativeEvents.WithLabelValues(string(trigger)).Inc()
}

func (s *Sink) CrewDown(_ game.CrewMember, outcome game.CrewDownOutcome) {
	s.crewDown.WithLabelValues(string(outcome)).Inc()
}
