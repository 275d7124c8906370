// Package engine exposes the progression rules: level lookup, boost overlap, queue processing
// and clan battle resolution.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-progression/internal/engine Engine

import (
	"context"
)

// Engine provides the progression rules over externally owned state
type Engine interface {
	// Pure utilities
	LevelForXP(xp uint64) uint32
	XPForLevel(level uint32) (uint64, error)
	BoostedTime(actionStart, actionDuration, boostStart, boostDuration uint64) uint64

	// Queue processing
	EnqueueActions(ctx context.Context, input *EnqueueActionsInput) (*EnqueueActionsOutput, error)
	AdvanceQueue(ctx context.Context, input *AdvanceQueueInput) (*AdvanceQueueOutput, error)
	CancelAction(ctx context.Context, input *CancelActionInput) (*CancelActionOutput, error)

	// Clan battles
	ResolveBattle(ctx context.Context, input *ResolveBattleInput) (*ResolveBattleOutput, error)
}
