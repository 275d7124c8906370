// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &entities.Character{
			ID:        1,
			OwnerID:   "owner-test-123",
			XP:        map[entities.Skill]uint64{},
			Inventory: map[entities.ItemID]uint64{},
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id uint64) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithOwner sets the owning account
func (b *CharacterBuilder) WithOwner(ownerID string) *CharacterBuilder {
	b.character.OwnerID = ownerID
	return b
}

// WithXP sets the experience of one skill
func (b *CharacterBuilder) WithXP(skill entities.Skill, xp uint64) *CharacterBuilder {
	b.character.XP[skill] = xp
	return b
}

// WithItem sets an inventory balance
func (b *CharacterBuilder) WithItem(item entities.ItemID, amount uint64) *CharacterBuilder {
	b.character.Inventory[item] = amount
	return b
}

// WithQueuedAction appends an entry to the queue
func (b *CharacterBuilder) WithQueuedAction(qa *entities.QueuedAction) *CharacterBuilder {
	b.character.Queue = append(b.character.Queue, qa)
	return b
}

// WithVersion sets the stored version
func (b *CharacterBuilder) WithVersion(version uint64) *CharacterBuilder {
	b.character.Version = version
	return b
}

// Build returns a copy of the built character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character.Clone()
}
