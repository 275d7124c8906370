package progression

import (
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/engine/queue"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// CreateCharacterInput defines the request for registering a character
type CreateCharacterInput struct {
	ID      uint64
	OwnerID string
	XP      map[entities.Skill]uint64
}

// CreateCharacterOutput contains the stored character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput defines the request for an account's characters
type ListCharactersInput struct {
	OwnerID string
}

// ListCharactersOutput contains the characters ordered by id
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// DeleteCharacterInput defines the request for removing a character
type DeleteCharacterInput struct {
	CharacterID uint64
}

// DeleteCharacterOutput is empty on success
type DeleteCharacterOutput struct{}

// RegisterCompanionInput defines the request for registering a companion
type RegisterCompanionInput struct {
	Companion *entities.Companion
}

// RegisterCompanionOutput contains the stored companion
type RegisterCompanionOutput struct {
	Companion *entities.Companion
}

// ListCompanionsInput defines the request for an account's companions
type ListCompanionsInput struct {
	OwnerID string
}

// ListCompanionsOutput contains the companions ordered by id
type ListCompanionsOutput struct {
	Companions []*entities.Companion
}

// StartActionsInput defines the request for queueing actions
type StartActionsInput struct {
	CharacterID uint64
	Actions     []engine.QueueAction
	Mode        queue.Mode
}

// StartActionsOutput contains the persisted character and its new queue entries
type StartActionsOutput struct {
	Character *entities.Character
	Queued    []*entities.QueuedAction
}

// AdvanceInput defines the request for processing elapsed time
type AdvanceInput struct {
	CharacterID uint64
	Elapsed     uint64
}

// AdvanceOutput contains the persisted character and the processing report
type AdvanceOutput struct {
	Character *entities.Character
	Result    *engine.AdvanceQueueOutput
}

// CancelActionInput defines the request for removing a queued action
type CancelActionInput struct {
	CharacterID uint64
	QueueID     string
}

// CancelActionOutput contains the persisted character
type CancelActionOutput struct {
	Character *entities.Character
}

// TransferCompanionInput defines an ownership change, stamped with the current time
type TransferCompanionInput struct {
	CompanionID uint64
	NewOwnerID  string
}

// TransferCompanionOutput contains the companion after the transfer
type TransferCompanionOutput struct {
	Companion     *entities.Companion
	PreviousOwner string
}

// GetLevelInput defines the request for a skill level
type GetLevelInput struct {
	CharacterID uint64
	Skill       entities.Skill
}

// GetLevelOutput contains the experience and derived level of a skill
type GetLevelOutput struct {
	XP    uint64
	Level uint32
}
