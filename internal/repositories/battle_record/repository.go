// Package battlerecord keeps the outcome of resolved clan battles for a limited time
package battlerecord

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/engine/battle"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=battlerecordmock github.com/KirkDiggler/rpg-progression/internal/repositories/battle_record Repository

// Record is one resolved clan battle
type Record struct {
	ID string `json:"id"`

	// Attacking and defending clans
	ClanA string `json:"clan_a"`
	ClanB string `json:"clan_b"`

	Skill entities.Skill `json:"skill"`

	// The random words both sides fought with, enough to replay the battle
	WordA uint64 `json:"word_a"`
	WordB uint64 `json:"word_b"`

	DidAWin  bool             `json:"did_a_win"`
	WinsA    int              `json:"wins_a"`
	WinsB    int              `json:"wins_b"`
	Walkover bool             `json:"walkover"`
	Matchups []battle.Matchup `json:"matchups,omitempty"`

	ResolvedAt time.Time `json:"resolved_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// CreateInput contains the record to store
type CreateInput struct {
	Record *Record
	TTL    time.Duration // How long the record should live
}

// CreateOutput contains the stored record with its timestamps set
type CreateOutput struct {
	Record *Record
}

// GetInput identifies a record
type GetInput struct {
	ID string
}

// GetOutput contains the record
type GetOutput struct {
	Record *Record
}

// ListByClanInput selects the most recent battles of a clan
type ListByClanInput struct {
	ClanID string
	Limit  int
}

// ListByClanOutput contains records newest first
type ListByClanOutput struct {
	Records []*Record
}

// Repository stores battle records
type Repository interface {
	// Create stores a record with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a record by ID
	// Returns errors.NotFound if the record doesn't exist or has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByClan returns recent records where the clan fought on either side
	ListByClan(ctx context.Context, input ListByClanInput) (*ListByClanOutput, error)
}
