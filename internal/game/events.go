package game

// EventTrigger classifies when a narrative event surfaced.
type EventTrigger string

const (
	TriggerSalvage EventTrigger = "salvage"
	TriggerTravel  EventTrigger = "travel"
	TriggerDaily   EventTrigger = "daily"
)

// EventSink receives signals from the core. Rendering, sound, and narrative
// content live entirely behind this boundary.
type EventSink interface {
	// ItemSalvaged fires when an item lands in a crew member's hands.
	ItemSalvaged(crew CrewMember, item Item, value int)
	// AttemptFailed fires when a hazard roll is lost.
	AttemptFailed(crew CrewMember, room Room, damage int)
	// NarrativeEvent asks the collaborator to surface an event.
	NarrativeEvent(trigger EventTrigger, crew CrewMember)
	// CrewDown reports a death or injury outcome.
	CrewDown(crew CrewMember, outcome CrewDownOutcome)
}

// NopSink discards every signal.
type NopSink struct{}

func (NopSink) ItemSalvaged(CrewMember, Item, int)      {}
func (NopSink) AttemptFailed(CrewMember, Room, int)     {}
func (NopSink) NarrativeEvent(EventTrigger, CrewMember) {}
func (NopSink) CrewDown(CrewMember, CrewDownOutcome)    {}

// MultiSink fans signals out to several sinks.
type MultiSink []EventSink

func (m MultiSink) ItemSalvaged(crew CrewMember, item Item, value int) {
	for _, s := range m {
		s.ItemSalvaged(crew, item, value)
	}
}

func (m MultiSink) AttemptFailed(crew CrewMember, room Room, damage int) {
	for _, s := range m {
		s.AttemptFailed(crew, room, damage)
	}
}

func (m MultiSink) NarrativeEvent(trigger EventTrigger, crew CrewMember) {
	for _, s := range m {
		s.NarrativeEvent(trigger, crew)
	}
}

func (m MultiSink) CrewDown(crew CrewMember, outcome CrewDownOutcome) {
	for _, s := range m {
		s.CrewDown(crew, outcome)
	}
}
