// Package progression loads characters and companions, runs them through the engine and
// persists the result
package progression

//go:generate mockgen -destination=mock/mock_service.go -package=progressionmock github.com/KirkDiggler/rpg-progression/internal/orchestrators/progression Service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	characterrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	companionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/companion"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/lease"
)

// Service defines the progression operations
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	RegisterCompanion(ctx context.Context, input *RegisterCompanionInput) (*RegisterCompanionOutput, error)
	ListCompanions(ctx context.Context, input *ListCompanionsInput) (*ListCompanionsOutput, error)

	// Queue operations on a stored character
	StartActions(ctx context.Context, input *StartActionsInput) (*StartActionsOutput, error)
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)
	CancelAction(ctx context.Context, input *CancelActionInput) (*CancelActionOutput, error)

	TransferCompanion(ctx context.Context, input *TransferCompanionInput) (*TransferCompanionOutput, error)
	GetLevel(ctx context.Context, input *GetLevelInput) (*GetLevelOutput, error)
}

// Config holds the dependencies for the progression orchestrator
type Config struct {
	Engine        engine.Engine
	CharacterRepo characterrepo.Repository
	CompanionRepo companionrepo.Repository
	LeaseRepo     lease.Repository
	Clock         clock.Clock

	// LeaseTTL bounds how long a crashed caller keeps a character locked; defaults to lease.DefaultTTL
	LeaseTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.CompanionRepo == nil {
		vb.RequiredField("CompanionRepo")
	}
	if c.LeaseRepo == nil {
		vb.RequiredField("LeaseRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	engine        engine.Engine
	characterRepo characterrepo.Repository
	companionRepo companionrepo.Repository
	leaseRepo     lease.Repository
	clock         clock.Clock
	leaseTTL      time.Duration
}

// NewOrchestrator creates a new progression orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:        cfg.Engine,
		characterRepo: cfg.CharacterRepo,
		companionRepo: cfg.CompanionRepo,
		leaseRepo:     cfg.LeaseRepo,
		clock:         cfg.Clock,
		leaseTTL:      cfg.LeaseTTL,
	}, nil
}

// acquire leases a character for the duration of one operation. Leases are shared between
// processes, so a second CLI invocation is excluded as well. The returned release must be
// called when done.
func (o *orchestrator) acquire(ctx context.Context, characterID uint64) (func(), error) {
	name := "character:" + strconv.FormatUint(characterID, 10)
	held, err := o.leaseRepo.Acquire(ctx, lease.AcquireInput{Name: name, TTL: o.leaseTTL})
	if err != nil {
		if errors.IsAborted(err) {
			return nil, errors.Abortedf("character %d is already being processed", characterID).
				WithMeta("character_id", characterID)
		}
		return nil, errors.Wrapf(err, "failed to lock character %d", characterID)
	}

	return func() {
		if _, err := o.leaseRepo.Release(ctx, lease.ReleaseInput{Name: name, Token: held.Token}); err != nil {
			slog.WarnContext(ctx, "Failed to release character lease",
				"character_id", characterID,
				"error", err)
		}
	}, nil
}

func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == 0 {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	char := &entities.Character{
		ID:        input.ID,
		OwnerID:   input.OwnerID,
		XP:        make(map[entities.Skill]uint64, len(input.XP)),
		Inventory: make(map[entities.ItemID]uint64),
	}
	for skill, xp := range input.XP {
		if !skill.Valid() {
			return nil, errors.InvalidArgumentf("unknown skill %q", skill)
		}
		char.XP[skill] = xp
	}

	out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.Info("Character created", "character_id", out.Character.ID, "owner_id", out.Character.OwnerID)
	return &CreateCharacterOutput{Character: out.Character}, nil
}

func (o *orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	out, err := o.characterRepo.ListByOwnerID(ctx, characterrepo.ListByOwnerIDInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	return &ListCharactersOutput{Characters: out.Characters}, nil
}

func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == 0 {
		return nil, errors.InvalidArgument("character ID is required")
	}

	release, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer release()

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %d", input.CharacterID)
	}

	slog.Info("Character deleted", "character_id", input.CharacterID)
	return &DeleteCharacterOutput{}, nil
}

func (o *orchestrator) RegisterCompanion(ctx context.Context, input *RegisterCompanionInput) (*RegisterCompanionOutput, error) {
	if input == nil || input.Companion == nil {
		return nil, errors.InvalidArgument("companion is required")
	}

	comp := input.Companion.Clone()
	if comp.LastAssignment == 0 {
		comp.LastAssignment = clock.Unix(o.clock)
		comp.Transfers = append(comp.Transfers, comp.LastAssignment)
	}

	out, err := o.companionRepo.Create(ctx, companionrepo.CreateInput{Companion: comp})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register companion")
	}

	slog.Info("Companion registered", "companion_id", out.Companion.ID, "owner_id", out.Companion.OwnerID)
	return &RegisterCompanionOutput{Companion: out.Companion}, nil
}

func (o *orchestrator) ListCompanions(ctx context.Context, input *ListCompanionsInput) (*ListCompanionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	out, err := o.companionRepo.ListByOwnerID(ctx, companionrepo.ListByOwnerIDInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companions")
	}
	return &ListCompanionsOutput{Companions: out.Companions}, nil
}

func (o *orchestrator) StartActions(ctx context.Context, input *StartActionsInput) (*StartActionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == 0 {
		return nil, errors.InvalidArgument("character ID is required")
	}

	release, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer release()

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(input.Actions))
	for _, action := range input.Actions {
		if action.CompanionID != 0 {
			ids = append(ids, action.CompanionID)
		}
	}
	companions, err := o.loadCompanions(ctx, ids)
	if err != nil {
		return nil, err
	}

	queued, err := o.engine.EnqueueActions(ctx, &engine.EnqueueActionsInput{
		Character:  char,
		Actions:    input.Actions,
		Mode:       input.Mode,
		Now:        clock.Unix(o.clock),
		Companions: companions,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to queue actions")
	}

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: queued.Character})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save character")
	}

	slog.Info("Actions queued",
		"character_id", input.CharacterID,
		"count", len(queued.Queued),
		"queue_length", len(saved.Character.Queue))

	return &StartActionsOutput{
		Character: saved.Character,
		Queued:    queued.Queued,
	}, nil
}

func (o *orchestrator) Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == 0 {
		return nil, errors.InvalidArgument("character ID is required")
	}

	release, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer release()

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0)
	for _, qa := range char.Queue {
		if qa.Companion != nil {
			ids = append(ids, qa.Companion.CompanionID)
		}
	}
	companions, err := o.loadCompanions(ctx, ids)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.AdvanceQueue(ctx, &engine.AdvanceQueueInput{
		Character:  char,
		Elapsed:    input.Elapsed,
		Companions: companions,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to advance character %d", input.CharacterID)
	}

	for _, action := range result.Actions {
		if action.Starved {
			slog.Warn("Action ran out of inputs",
				"character_id", input.CharacterID,
				"queue_id", action.QueueID,
				"action_id", action.ActionID)
		}
		if action.CompanionIneligible {
			slog.Warn("Companion bonus withheld",
				"character_id", input.CharacterID,
				"queue_id", action.QueueID,
				"action_id", action.ActionID)
		}
	}

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: result.Character})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save character")
	}
	result.Character = saved.Character

	slog.Info("Actions advanced",
		"character_id", input.CharacterID,
		"elapsed", input.Elapsed,
		"completed", len(result.Completed),
		"remaining", result.RemainingQueueLength,
		"discarded", result.Discarded)

	return &AdvanceOutput{
		Character: saved.Character,
		Result:    result,
	}, nil
}

func (o *orchestrator) CancelAction(ctx context.Context, input *CancelActionInput) (*CancelActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == 0 {
		return nil, errors.InvalidArgument("character ID is required")
	}

	release, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer release()

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	cancelled, err := o.engine.CancelAction(ctx, &engine.CancelActionInput{
		Character: char,
		QueueID:   input.QueueID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel action")
	}

	saved, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: cancelled.Character})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save character")
	}

	slog.Info("Action cancelled", "character_id", input.CharacterID, "queue_id", input.QueueID)
	return &CancelActionOutput{Character: saved.Character}, nil
}

func (o *orchestrator) TransferCompanion(ctx context.Context, input *TransferCompanionInput) (*TransferCompanionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CompanionID == 0 {
		return nil, errors.InvalidArgument("companion ID is required")
	}
	if input.NewOwnerID == "" {
		return nil, errors.InvalidArgument("new owner ID is required")
	}

	out, err := o.companionRepo.Transfer(ctx, companionrepo.TransferInput{
		ID:         input.CompanionID,
		NewOwnerID: input.NewOwnerID,
		At:         clock.Unix(o.clock),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to transfer companion")
	}

	slog.Info("Companion transferred",
		"companion_id", input.CompanionID,
		"from", out.PreviousOwner,
		"to", out.Companion.OwnerID,
		"at", out.Companion.LastAssignment)

	return &TransferCompanionOutput{
		Companion:     out.Companion,
		PreviousOwner: out.PreviousOwner,
	}, nil
}

func (o *orchestrator) GetLevel(ctx context.Context, input *GetLevelInput) (*GetLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Skill.Valid() {
		return nil, errors.InvalidArgumentf("unknown skill %q", input.Skill)
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	xp := char.SkillXP(input.Skill)
	return &GetLevelOutput{
		XP:    xp,
		Level: o.engine.LevelForXP(xp),
	}, nil
}

func (o *orchestrator) loadCharacter(ctx context.Context, id uint64) (*entities.Character, error) {
	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %d", id)
	}
	return out.Character, nil
}

func (o *orchestrator) loadCompanions(ctx context.Context, ids []uint64) (map[uint64]*entities.Companion, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	out, err := o.companionRepo.GetMany(ctx, companionrepo.GetManyInput{IDs: ids})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load companions")
	}
	return out.Companions, nil
}
