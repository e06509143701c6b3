package game

// InjuryType names one of the injuries a downed crew member can sustain.
type InjuryType string

const (
	InjuryBrokenArm         InjuryType = "broken_arm"
	InjuryBrokenLeg         InjuryType = "broken_leg"
	InjuryConcussion        InjuryType = "concussion"
	InjuryRadiationSickness InjuryType = "radiation_sickness"
	InjuryBurns             InjuryType = "burns"
	InjuryTrauma            InjuryType = "trauma"
	InjuryInternalBleeding  InjuryType = "internal_bleeding"
)

// InjurySeverity scales recovery time and effects.
type InjurySeverity string

const (
	SeverityMinor    InjurySeverity = "minor"
	SeverityMajor    InjurySeverity = "major"
	SeverityCritical InjurySeverity = "critical"
)

// InjuryCause selects the weight table for the injury type roll.
type InjuryCause string

const (
	CauseSalvage  InjuryCause = "salvage"
	CauseCombat   InjuryCause = "combat"
	CauseAccident InjuryCause = "accident"
	CauseEvent    InjuryCause = "event"
)

// InjuryEffects are the penalties an injury applies while it lasts.
type InjuryEffects struct {
	SkillPenalty    map[SkillType]int
	StaminaModifier int
	WorkDisabled    bool
}

// Injury is an active injury on a crew member. Decremented once per elapsed
// day; cleared (with HP floored at 50% of max) at zero.
type Injury struct {
	Type          InjuryType
	Severity      InjurySeverity
	DaysRemaining int
	Effects       InjuryEffects
}

type injuryConfig struct {
	name         string
	severityDays map[InjurySeverity]int
	effects      map[InjurySeverity]InjuryEffects
}

var injuryConfigs = map[InjuryType]injuryConfig{
	InjuryBrokenArm: {
		name:         "Broken Arm",
		severityDays: map[InjurySeverity]int{SeverityMinor: 3, SeverityMajor: 7, SeverityCritical: 14},
		effects: map[InjurySeverity]InjuryEffects{
			SeverityMinor:    {SkillPenalty: map[SkillType]int{SkillTechnical: -1}},
			SeverityMajor:    {SkillPenalty: map[SkillType]int{SkillTechnical: -2, SkillSalvage: -1}},
			SeverityCritical: {SkillPenalty: map[SkillType]int{SkillTechnical: -3, SkillSalvage: -2}, WorkDisabled: true},
		},
	},
	InjuryBrokenLeg: {
		name:         "Broken Leg",
		severityDays: map[InjurySeverity]int{SeverityMinor: 4, SeverityMajor: 10, SeverityCritical: 18},
		effects: map[InjurySeverity]InjuryEffects{
			SeverityMinor:    {SkillPenalty: map[SkillType]int{SkillPiloting: -1}, StaminaModifier: -20},
			SeverityMajor:    {SkillPenalty: map[SkillType]int{SkillPiloting: -2}, StaminaModifier: -40},
			SeverityCritical: {WorkDisabled: true, StaminaModifier: -60},
		},
	},
	InjuryConcussion: {
		name:         "Concussion",
		severityDays: map[InjurySeverity]int{SeverityMinor: 2, SeverityMajor: 5, SeverityCritical: 10},
		effects: map[InjurySeverity]InjuryEffects{
			SeverityMinor:    {SkillPenalty: map[SkillType]int{SkillCombat: -1}},
			SeverityMajor:    {SkillPenalty: map[SkillType]int{SkillCombat: -2, SkillTechnical: -1}},
			SeverityCritical: {SkillPenalty: map[SkillType]int{SkillCombat: -3, SkillTechnical: -2}, WorkDisabled: true},
		},
	},
	InjuryRadiationSickness: {
		name:         "Radiation Sickness",
		severityDays: map[InjurySeverity]int{SeverityMinor: 3, SeverityMajor: 8, SeverityCritical: 15},
		effects: map[InjurySeverity]InjuryEffects{
			SeverityMinor:    {StaminaModifier: -15},
			SeverityMajor:    {StaminaModifier: -30, SkillPenalty: map[SkillType]int{SkillSalvage: -1}},
			SeverityCritical: {StaminaModifier: -50, WorkDisabled: true},
		},
	},
	InjuryBurns: {
		name:         "Burns",
		severityDays: map[InjurySeverity]int{SeverityMinor: 2, SeverityMajor: 6, SeverityCritical: 12},
		effects: map[InjurySeverity]InjuryEffects{
			SeverityMinor:    {SkillPenalty: map[SkillType]int{SkillTechnical: -1}},
			SeverityMajor:    {SkillPenalty: map[SkillType]int{SkillTechnical: -1, SkillSalvage: -1}, StaminaModifier: -20},
			SeverityCritical: {WorkDisabled: true, StaminaModifier: -40},
		},
	},
	InjuryTrauma: {
		name:         "Psychological Trauma",
		severityDays: map[InjurySeverity]int{SeverityMinor: 3, SeverityMajor: 7, SeverityCritical: 14},
		effects: map[InjurySeverity]InjuryEffects{
			SeverityMinor:    {SkillPenalty: map[SkillType]int{SkillCombat: -1}},
			SeverityMajor:    {SkillPenalty: map[SkillType]int{SkillCombat: -2}},
			SeverityCritical: {WorkDisabled: true},
		},
	},
	InjuryInternalBleeding: {
		name:         "Internal Bleeding",
		severityDays: map[InjurySeverity]int{SeverityMinor: 4, SeverityMajor: 9, SeverityCritical: 16},
		effects: map[InjurySeverity]InjuryEffects{
			SeverityMinor:    {StaminaModifier: -25},
			SeverityMajor:    {StaminaModifier: -50, WorkDisabled: true},
			SeverityCritical: {WorkDisabled: true, StaminaModifier: -70},
		},
	},
}

// injuryTypeOrder gives weighted sampling a stable iteration order.
var injuryTypeOrder = []InjuryType{
	InjuryBrokenArm, InjuryBrokenLeg, InjuryConcussion, InjuryRadiationSickness,
	InjuryBurns, InjuryTrauma, InjuryInternalBleeding,
}

// Cause-specific weights. Types absent from a cause's table weigh 1.
var injuryCauseWeights = map[InjuryCause]map[InjuryType]float64{
	CauseSalvage: {
		InjuryBrokenArm:         2,
		InjuryBurns:             2,
		InjuryRadiationSickness: 1.5,
		InjuryConcussion:        1,
	},
	CauseCombat: {
		InjuryBrokenLeg:        1.5,
		InjuryInternalBleeding: 2,
		InjuryConcussion:       2,
		InjuryTrauma:           1,
	},
	CauseAccident: {
		InjuryBrokenArm:  2,
		InjuryBrokenLeg:  2,
		InjuryConcussion: 1.5,
		InjuryBurns:      1,
	},
	CauseEvent: {
		InjuryTrauma:            2,
		InjuryBurns:             1,
		InjuryRadiationSickness: 1.5,
	},
}

// InjuryName is the display name for an injury type.
func InjuryName(t InjuryType) string {
	if cfg, ok := injuryConfigs[t]; ok {
		return cfg.name
	}
	return string(t)
}

// RollInjuryType samples an injury type with cause-specific weights.
func RollInjuryType(rng Rand, cause InjuryCause) InjuryType {
	weights := injuryCauseWeights[cause]
	total := 0.0
	for _, t := range injuryTypeOrder {
		w, ok := weights[t]
		if !ok {
			w = 1
		}
		total += w
	}

	roll := rng.Float64() * total
	for _, t := range injuryTypeOrder {
		w, ok := weights[t]
		if !ok {
			w = 1
		}
		roll -= w
		if roll < 0 {
			return t
		}
	}
	return injuryTypeOrder[len(injuryTypeOrder)-1]
}

// RollInjurySeverity picks a severity: critical when the critical roll already
// succeeded, otherwise major with the configured chance, else minor.
func RollInjurySeverity(rng Rand, constants Constants, isCritical bool) InjurySeverity {
	if isCritical {
		return SeverityCritical
	}
	if rng.Float64() < constants.MajorInjuryChance {
		return SeverityMajor
	}
	return SeverityMinor
}

// NewInjury constructs an injury from the static configuration.
func NewInjury(t InjuryType, severity InjurySeverity) Injury {
	cfg := injuryConfigs[t]
	return Injury{
		Type:          t,
		Severity:      severity,
		DaysRemaining: cfg.severityDays[severity],
		Effects:       cfg.effects[severity],
	}
}

// CrewDownOutcome classifies what happened to a crew member at 0 HP.
type CrewDownOutcome string

const (
	OutcomeDeath          CrewDownOutcome = "death"
	OutcomeCriticalInjury CrewDownOutcome = "critical_injury"
	OutcomeInjury         CrewDownOutcome = "injury"
)

// DeadCrewMember is the immutable archival record of a death.
type DeadCrewMember struct {
	ID           string
	FirstName    string
	LastName     string
	Name         string
	Background   string
	Traits       []TraitID
	DiedOnDay    int
	CauseOfDeath string
	DaysEmployed int
}

// MoraleImpact is a pending morale change for a surviving crew member.
type MoraleImpact struct {
	CrewID string
	Amount int
	Reason string
}

// CrewDownResult carries the outcome of resolving a crew member at 0 HP.
type CrewDownResult struct {
	Outcome       CrewDownOutcome
	Injury        *Injury
	DeadRecord    *DeadCrewMember
	MoraleImpacts []MoraleImpact
}

// HandleCrewDown rolls death against injury when a crew member hits 0 HP.
// On death it archives the member and computes morale penalties for the rest
// of the roster (heavier for close friends, relationship level >= 8). On
// survival it rolls severity and a cause-weighted injury type. The caller
// applies the result to state.
func HandleCrewDown(
	rng Rand,
	constants Constants,
	crew CrewMember,
	cause InjuryCause,
	causeDetail string,
	day int,
	relationships []Relationship,
	otherCrewIDs []string,
) CrewDownResult {
	if rng.Float64() < constants.DeathChanceOnZeroHP {
		record := DeadCrewMember{
			ID:           crew.ID,
			FirstName:    crew.FirstName,
			LastName:     crew.LastName,
			Name:         crew.Name,
			Background:   crew.Background,
			Traits:       crew.Traits,
			DiedOnDay:    day,
			CauseOfDeath: causeDetail,
			DaysEmployed: max(0, day-crew.HiredDay),
		}

		impacts := make([]MoraleImpact, 0, len(otherCrewIDs))
		for _, otherID := range otherCrewIDs {
			loss := constants.MoraleLossOnDeath
			if RelationshipValue(relationships, constants, crew.ID, otherID) >= 8 {
				loss += constants.MoraleLossCloseFriend
			}
			impacts = append(impacts, MoraleImpact{
				CrewID: otherID,
				Amount: -loss,
				Reason: "Lost " + crew.Name,
			})
		}

		return CrewDownResult{
			Outcome:       OutcomeDeath,
			DeadRecord:    &record,
			MoraleImpacts: impacts,
		}
	}

	isCritical := rng.Float64() < constants.CriticalInjuryChance
	severity := RollInjurySeverity(rng, constants, isCritical)
	injury := NewInjury(RollInjuryType(rng, cause), severity)

	outcome := OutcomeInjury
	if isCritical {
		outcome = OutcomeCriticalInjury
	}
	return CrewDownResult{Outcome: outcome, Injury: &injury}
}

// ProcessInjuryRecovery advances every injury by one day. Members reaching
// zero days are cleared, set active, and have HP floored at half max. The
// input roster is not mutated; an unchanged roster comes back as-is with an
// empty recovered list.
func ProcessInjuryRecovery(roster []CrewMember) (updated []CrewMember, recovered []string) {
	updated = make([]CrewMember, len(roster))
	copy(updated, roster)

	for i := range updated {
		if updated[i].Injury == nil {
			continue
		}
		remaining := updated[i].Injury.DaysRemaining - 1
		if remaining <= 0 {
			recovered = append(recovered, updated[i].Name)
			updated[i].Injury = nil
			updated[i].Status = StatusActive
			if floor := updated[i].MaxHP / 2; updated[i].HP < floor {
				updated[i].HP = floor
			}
			continue
		}
		injury := *updated[i].Injury
		injury.DaysRemaining = remaining
		updated[i].Injury = &injury
	}
	return updated, recovered
}
