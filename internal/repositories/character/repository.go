// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-progression/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character with version 1
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a character with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a character if its version still matches the stored one
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Aborted if the stored version moved on
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a character by ID
	// Returns errors.NotFound if the character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwnerID retrieves all characters of an account
	// Returns errors.InvalidArgument for an empty owner
	ListByOwnerID(ctx context.Context, input ListByOwnerIDInput) (*ListByOwnerIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID uint64
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// UpdateInput defines the input for updating a character.
// Character.Version must be the version that was read.
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput contains the stored character with its new version
type UpdateOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID uint64
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByOwnerIDInput defines the input for listing characters by account
type ListByOwnerIDInput struct {
	OwnerID string
}

// ListByOwnerIDOutput defines the output for listing characters by account
type ListByOwnerIDOutput struct {
	Characters []*entities.Character
}
