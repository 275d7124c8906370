package queue

import "github.com/KirkDiggler/rpg-progression/internal/entities"

// Mode selects how new actions are combined with the existing queue
type Mode int

// Queue modes
const (
	ModeAppend Mode = iota
	ModeOverwrite
)

// ActionInput describes one action to queue
type ActionInput struct {
	ActionID entities.ActionID
	ChoiceID entities.ChoiceID
	Duration uint64
	Boost    *entities.Boost
	// CompanionID binds a companion when non-zero
	CompanionID uint64
}

// EnqueueInput contains the actions to add to a character's queue
type EnqueueInput struct {
	Character  *entities.Character
	Actions    []ActionInput
	Mode       Mode
	Now        uint64
	Companions map[uint64]*entities.Companion
}

// EnqueueOutput contains the updated character and the new queue entries
type EnqueueOutput struct {
	Character *entities.Character
	Queued    []*entities.QueuedAction
}

// AdvanceInput contains the character and the elapsed time to process
type AdvanceInput struct {
	Character *entities.Character
	Elapsed   uint64
	// Companions holds the current registry records of every companion bound in the queue
	Companions map[uint64]*entities.Companion
}

// AdvanceOutput reports what processing produced
type AdvanceOutput struct {
	Character *entities.Character
	XP        map[entities.Skill]uint64
	Consumed  map[entities.ItemID]uint64
	Produced  map[entities.ItemID]uint64
	Actions   []ActionResult
	// Completed lists the queue ids that finished and were removed
	Completed            []string
	RemainingQueueLength int
	// Discarded is elapsed time beyond the end of the queue
	Discarded uint64
}

// ActionResult is the per-action outcome of one advance call
type ActionResult struct {
	QueueID    string
	ActionID   entities.ActionID
	Skill      entities.Skill
	Advanced   uint64
	Productive uint64
	XP         uint64
	// Starved is set when an input ran out during the slice
	Starved bool
	// CompanionIneligible is set when a bound companion did not cover the whole slice
	CompanionIneligible bool
	Completed           bool
}
