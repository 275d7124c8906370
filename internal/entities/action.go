package entities

// ActionID identifies an action in the action catalog
type ActionID uint32

// ChoiceID identifies a choice within an action (e.g. which fish to cook). Zero means none.
type ChoiceID uint32

// ItemAmount is an item flow expressed per hour of productive time
type ItemAmount struct {
	ItemID  ItemID `json:"item_id" yaml:"item_id"`
	PerHour uint64 `json:"per_hour" yaml:"per_hour"`
}

// ActionConfig is a static catalog record describing how an action converts time into
// experience and items. Choices override the rate, level requirement and item flows.
type ActionConfig struct {
	ID       ActionID `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Skill    Skill    `json:"skill" yaml:"skill"`
	MinLevel uint32   `json:"min_level" yaml:"min_level"`
	// XPPerHour is the base experience rate
	XPPerHour uint64 `json:"xp_per_hour" yaml:"xp_per_hour"`
	// UnitSeconds, when set, credits time in whole units only (one kill, one catch)
	UnitSeconds uint64         `json:"unit_seconds" yaml:"unit_seconds"`
	Inputs      []ItemAmount   `json:"inputs,omitempty" yaml:"inputs"`
	Outputs     []ItemAmount   `json:"outputs,omitempty" yaml:"outputs"`
	Choices     []ChoiceConfig `json:"choices,omitempty" yaml:"choices"`
}

// ChoiceConfig is one selectable variant of an action
type ChoiceConfig struct {
	ID        ChoiceID     `json:"id" yaml:"id"`
	Name      string       `json:"name" yaml:"name"`
	MinLevel  uint32       `json:"min_level" yaml:"min_level"`
	XPPerHour uint64       `json:"xp_per_hour" yaml:"xp_per_hour"`
	Inputs    []ItemAmount `json:"inputs,omitempty" yaml:"inputs"`
	Outputs   []ItemAmount `json:"outputs,omitempty" yaml:"outputs"`
}

// Choice looks up a choice by id
func (a *ActionConfig) Choice(id ChoiceID) (*ChoiceConfig, bool) {
	for i := range a.Choices {
		if a.Choices[i].ID == id {
			return &a.Choices[i], true
		}
	}
	return nil, false
}

// Rates is the resolved rate table of an action/choice pair
type Rates struct {
	Skill       Skill
	MinLevel    uint32
	XPPerHour   uint64
	UnitSeconds uint64
	Inputs      []ItemAmount
	Outputs     []ItemAmount
}

// Resolve merges the action with an optional choice. ok is false when the choice
// does not belong to the action.
func (a *ActionConfig) Resolve(choiceID ChoiceID) (Rates, bool) {
	rates := Rates{
		Skill:       a.Skill,
		MinLevel:    a.MinLevel,
		XPPerHour:   a.XPPerHour,
		UnitSeconds: a.UnitSeconds,
		Inputs:      a.Inputs,
		Outputs:     a.Outputs,
	}
	if choiceID == 0 {
		return rates, true
	}
	choice, ok := a.Choice(choiceID)
	if !ok {
		return Rates{}, false
	}
	rates.MinLevel = choice.MinLevel
	rates.XPPerHour = choice.XPPerHour
	rates.Inputs = choice.Inputs
	rates.Outputs = choice.Outputs
	return rates, true
}

// RollTier grants Rolls battle rolls to combatants at or above MinLevel
type RollTier struct {
	MinLevel uint32 `json:"min_level" yaml:"min_level"`
	Rolls    uint32 `json:"rolls" yaml:"rolls"`
}
