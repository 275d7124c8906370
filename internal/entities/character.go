package entities

import "strconv"

// ItemID identifies an item kind in the item catalog
type ItemID uint32

// Character is a player character: per-skill experience, an inventory and the FIFO action queue.
// ID zero is reserved for "no character".
type Character struct {
	ID        uint64            `json:"id"`
	OwnerID   string            `json:"owner_id"`
	XP        map[Skill]uint64  `json:"xp,omitempty"`
	Inventory map[ItemID]uint64 `json:"inventory,omitempty"`
	Queue     []*QueuedAction   `json:"queue,omitempty"`
	// Version is bumped by the repository on every successful write
	Version uint64 `json:"version"`
}

// GetID returns the character id in string form
func (c *Character) GetID() string {
	return strconv.FormatUint(c.ID, 10)
}

// GetType returns the entity type
func (c *Character) GetType() string {
	return "character"
}

// SkillXP returns the accumulated experience for a skill
func (c *Character) SkillXP(skill Skill) uint64 {
	if c.XP == nil {
		return 0
	}
	return c.XP[skill]
}

// QueueEnd returns the timestamp at which the last queued action is scheduled to finish.
func (c *Character) QueueEnd() uint64 {
	if len(c.Queue) == 0 {
		return 0
	}
	last := c.Queue[len(c.Queue)-1]
	return last.StartTime + last.Duration
}

// RemainingQueueTime is the sum of remaining durations across the queue
func (c *Character) RemainingQueueTime() uint64 {
	var total uint64
	for _, qa := range c.Queue {
		total += qa.Remaining()
	}
	return total
}

// Clone returns a deep copy so that processing can run against a scratch copy.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := &Character{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		XP:        make(map[Skill]uint64, len(c.XP)),
		Inventory: make(map[ItemID]uint64, len(c.Inventory)),
		Queue:     make([]*QueuedAction, 0, len(c.Queue)),
		Version:   c.Version,
	}
	for k, v := range c.XP {
		out.XP[k] = v
	}
	for k, v := range c.Inventory {
		out.Inventory[k] = v
	}
	for _, qa := range c.Queue {
		out.Queue = append(out.Queue, qa.Clone())
	}
	return out
}

// QueuedAction is one entry of a character's action queue.
// Elapsed never exceeds Duration; an entry with Elapsed == Duration is complete.
type QueuedAction struct {
	ID        string            `json:"id"`
	ActionID  ActionID          `json:"action_id"`
	ChoiceID  ChoiceID          `json:"choice_id,omitempty"`
	Duration  uint64            `json:"duration"`
	Elapsed   uint64            `json:"elapsed"`
	StartTime uint64            `json:"start_time"`
	Boost     *Boost            `json:"boost,omitempty"`
	Companion *CompanionBinding `json:"companion,omitempty"`
	Progress  ActionProgress    `json:"progress"`
}

// Remaining returns the unprocessed part of the requested duration
func (q *QueuedAction) Remaining() uint64 {
	if q.Elapsed >= q.Duration {
		return 0
	}
	return q.Duration - q.Elapsed
}

// Complete reports whether the full requested duration has been processed
func (q *QueuedAction) Complete() bool {
	return q.Elapsed >= q.Duration
}

// Clone returns a deep copy of the queued action
func (q *QueuedAction) Clone() *QueuedAction {
	out := *q
	if q.Boost != nil {
		b := *q.Boost
		out.Boost = &b
	}
	if q.Companion != nil {
		cb := *q.Companion
		out.Companion = &cb
	}
	out.Progress = q.Progress.clone()
	return &out
}

// ActionProgress holds the cumulative counters of a queued action.
// Yields are derived from these totals so that splitting elapsed time over several
// calls produces the same result as a single call.
type ActionProgress struct {
	// Productive is time during which every input was available
	Productive uint64 `json:"productive"`
	// Boosted is the part of Productive covered by the boost window
	Boosted uint64 `json:"boosted"`
	// Assisted is the part of Productive during which the companion was eligible
	Assisted uint64 `json:"assisted"`
	// AwardedXP is all experience credited so far, CompanionXP the companion's part of it
	AwardedXP   uint64            `json:"awarded_xp"`
	CompanionXP uint64            `json:"companion_xp"`
	Consumed    map[ItemID]uint64 `json:"consumed,omitempty"`
	Produced    map[ItemID]uint64 `json:"produced,omitempty"`
}

func (p ActionProgress) clone() ActionProgress {
	out := p
	out.Consumed = copyItems(p.Consumed)
	out.Produced = copyItems(p.Produced)
	return out
}

func copyItems(in map[ItemID]uint64) map[ItemID]uint64 {
	if in == nil {
		return nil
	}
	out := make(map[ItemID]uint64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Boost is a time-bounded XP bonus attached to a queued action when it is queued.
// Magnitude is a percentage of the base rate.
type Boost struct {
	Start     uint64 `json:"start"`
	Duration  uint64 `json:"duration"`
	Magnitude uint32 `json:"magnitude"`
}

// CompanionBinding ties a queued action to a companion. Only the creation time is stored;
// ownership is always read from the companion registry.
type CompanionBinding struct {
	CompanionID uint64 `json:"companion_id"`
	BoundAt     uint64 `json:"bound_at"`
}
