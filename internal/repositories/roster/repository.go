// Package roster stores clan battle rosters
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=rostermock github.com/KirkDiggler/rpg-progression/internal/repositories/roster Repository

import "context"

// Repository stores the ordered member list of each clan.
// A member id of zero marks an empty slot.
type Repository interface {
	// SetMembers replaces the roster of a clan
	SetMembers(ctx context.Context, input SetMembersInput) (*SetMembersOutput, error)

	// GetMembers returns the roster of a clan in slot order
	// Returns errors.NotFound if the clan has no roster
	GetMembers(ctx context.Context, input GetMembersInput) (*GetMembersOutput, error)

	// AddMember appends a character to a roster
	// Returns errors.AlreadyExists if the character is already listed
	AddMember(ctx context.Context, input AddMemberInput) (*AddMemberOutput, error)

	// RemoveMember removes a character from a roster
	// Returns errors.NotFound if the character is not listed
	RemoveMember(ctx context.Context, input RemoveMemberInput) (*RemoveMemberOutput, error)
}

// SetMembersInput defines a full roster replacement
type SetMembersInput struct {
	ClanID    string
	MemberIDs []uint64
}

// SetMembersOutput defines the output of a roster replacement
type SetMembersOutput struct{}

// GetMembersInput defines the input for reading a roster
type GetMembersInput struct {
	ClanID string
}

// GetMembersOutput contains the roster in slot order
type GetMembersOutput struct {
	MemberIDs []uint64
}

// AddMemberInput defines the input for adding a member
type AddMemberInput struct {
	ClanID      string
	CharacterID uint64
}

// AddMemberOutput contains the roster size after the add
type AddMemberOutput struct {
	Size int
}

// RemoveMemberInput defines the input for removing a member
type RemoveMemberInput struct {
	ClanID      string
	CharacterID uint64
}

// RemoveMemberOutput defines the output of a member removal
type RemoveMemberOutput struct{}
