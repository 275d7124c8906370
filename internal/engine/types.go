package engine

import (
	"github.com/KirkDiggler/rpg-progression/internal/engine/battle"
	"github.com/KirkDiggler/rpg-progression/internal/engine/queue"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// EnqueueActionsInput contains the actions to queue
type EnqueueActionsInput = queue.EnqueueInput

// EnqueueActionsOutput contains the updated character
type EnqueueActionsOutput = queue.EnqueueOutput

// AdvanceQueueInput contains the character and elapsed time
type AdvanceQueueInput = queue.AdvanceInput

// AdvanceQueueOutput reports experience and item deltas
type AdvanceQueueOutput = queue.AdvanceOutput

// CancelActionInput identifies the queue entry to cancel
type CancelActionInput struct {
	Character *entities.Character
	QueueID   string
}

// CancelActionOutput contains the updated character
type CancelActionOutput struct {
	Character *entities.Character
}

// ResolveBattleInput contains both rosters. Tiers are taken from the catalog when unset.
type ResolveBattleInput = battle.Input

// ResolveBattleOutput is the battle result
type ResolveBattleOutput = battle.Result

// QueueAction describes one action to queue
type QueueAction = queue.ActionInput
