// Package companion provides the authoritative companion registry
package companion

//go:generate mockgen -destination=mock/mock_repository.go -package=companionmock github.com/KirkDiggler/rpg-progression/internal/repositories/companion Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Repository stores companions keyed by id. Reads always return the latest ownership state.
type Repository interface {
	// Create registers a newly minted companion
	// Returns errors.AlreadyExists if the id is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a companion by ID
	// Returns errors.NotFound if the companion doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetMany retrieves several companions at once; unknown ids are left out of the result
	GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error)

	// Transfer changes the owner and moves the last assignment time in one atomic write
	// Returns errors.NotFound if the companion doesn't exist
	// Returns errors.Aborted if the companion changed during the transfer
	Transfer(ctx context.Context, input TransferInput) (*TransferOutput, error)

	// ListByOwnerID retrieves the companions of an account
	ListByOwnerID(ctx context.Context, input ListByOwnerIDInput) (*ListByOwnerIDOutput, error)
}

// CreateInput defines the input for registering a companion
type CreateInput struct {
	Companion *entities.Companion
}

// CreateOutput defines the output for registering a companion
type CreateOutput struct {
	Companion *entities.Companion
}

// GetInput defines the input for getting a companion
type GetInput struct {
	ID uint64
}

// GetOutput defines the output for getting a companion
type GetOutput struct {
	Companion *entities.Companion
}

// GetManyInput lists the companions to load
type GetManyInput struct {
	IDs []uint64
}

// GetManyOutput maps companion id to record
type GetManyOutput struct {
	Companions map[uint64]*entities.Companion
}

// TransferInput defines an ownership change
type TransferInput struct {
	ID         uint64
	NewOwnerID string
	At         uint64
}

// TransferOutput contains the companion after the transfer
type TransferOutput struct {
	Companion     *entities.Companion
	PreviousOwner string
}

// ListByOwnerIDInput defines the input for listing companions by account
type ListByOwnerIDInput struct {
	OwnerID string
}

// ListByOwnerIDOutput defines the output for listing companions by account
type ListByOwnerIDOutput struct {
	Companions []*entities.Companion
}
