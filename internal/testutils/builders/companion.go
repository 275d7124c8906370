package builders

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// CompanionBuilder provides a fluent interface for building test companions
type CompanionBuilder struct {
	companion *entities.Companion
}

// NewCompanionBuilder creates a companion minted at time zero
func NewCompanionBuilder() *CompanionBuilder {
	return &CompanionBuilder{
		companion: &entities.Companion{
			ID:         1,
			OwnerID:    "owner-test-123",
			TemplateID: 1,
		},
	}
}

// WithID sets the companion ID
func (b *CompanionBuilder) WithID(id uint64) *CompanionBuilder {
	b.companion.ID = id
	return b
}

// WithOwner sets the owning account
func (b *CompanionBuilder) WithOwner(ownerID string) *CompanionBuilder {
	b.companion.OwnerID = ownerID
	return b
}

// AssignedAt records an assignment at the given time
func (b *CompanionBuilder) AssignedAt(at uint64) *CompanionBuilder {
	b.companion.LastAssignment = at
	b.companion.Transfers = append(b.companion.Transfers, at)
	return b
}

// WithEnhancement adds a skill enhancement whose rolled values sit at the top of their ranges
func (b *CompanionBuilder) WithEnhancement(skill entities.Skill, fixed, percent uint32) *CompanionBuilder {
	b.companion.Enhancements = append(b.companion.Enhancements, entities.SkillEnhancement{
		Skill:      skill,
		FixedMax:   fixed,
		Fixed:      fixed,
		PercentMax: percent,
		Percent:    percent,
	})
	return b
}

// Build returns a copy of the built companion
func (b *CompanionBuilder) Build() *entities.Companion {
	return b.companion.Clone()
}
