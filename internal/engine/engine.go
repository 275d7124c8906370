package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/engine/battle"
	"github.com/KirkDiggler/rpg-progression/internal/engine/levels"
	"github.com/KirkDiggler/rpg-progression/internal/engine/overlap"
	"github.com/KirkDiggler/rpg-progression/internal/engine/queue"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
)

// Catalog is the static configuration the engine reads
type Catalog interface {
	queue.ActionCatalog
	// RollTiers returns the battle roll tiers for skill, nil for the default table
	RollTiers(skill entities.Skill) []entities.RollTier
}

// Config configures the engine
type Config struct {
	Catalog         Catalog
	IDGenerator     idgen.Generator
	MaxQueueSeconds uint64
}

// Validate checks the engine dependencies
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if cfg.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type engine struct {
	catalog   Catalog
	processor *queue.Processor
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	processor, err := queue.NewProcessor(&queue.Config{
		Catalog:         cfg.Catalog,
		IDGenerator:     cfg.IDGenerator,
		MaxQueueSeconds: cfg.MaxQueueSeconds,
	})
	if err != nil {
		return nil, err
	}

	return &engine{
		catalog:   cfg.Catalog,
		processor: processor,
	}, nil
}

func (e *engine) LevelForXP(xp uint64) uint32 {
	return levels.LevelForXP(xp)
}

func (e *engine) XPForLevel(level uint32) (uint64, error) {
	return levels.XPForLevel(level)
}

func (e *engine) BoostedTime(actionStart, actionDuration, boostStart, boostDuration uint64) uint64 {
	return overlap.BoostedTime(actionStart, actionDuration, boostStart, boostDuration)
}

func (e *engine) EnqueueActions(_ context.Context, input *EnqueueActionsInput) (*EnqueueActionsOutput, error) {
	return e.processor.Enqueue(input)
}

func (e *engine) AdvanceQueue(_ context.Context, input *AdvanceQueueInput) (*AdvanceQueueOutput, error) {
	return e.processor.Advance(input)
}

func (e *engine) CancelAction(_ context.Context, input *CancelActionInput) (*CancelActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char, err := e.processor.Cancel(input.Character, input.QueueID)
	if err != nil {
		return nil, err
	}
	return &CancelActionOutput{Character: char}, nil
}

func (e *engine) ResolveBattle(_ context.Context, input *ResolveBattleInput) (*ResolveBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	resolved := *input
	if len(resolved.Tiers) == 0 {
		resolved.Tiers = e.catalog.RollTiers(input.Skill)
	}
	return battle.Resolve(&resolved)
}
