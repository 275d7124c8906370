// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	mockclock "github.com/KirkDiggler/rpg-progression/internal/pkg/clock/mock"
	characterrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	charactermock "github.com/KirkDiggler/rpg-progression/internal/repositories/character/mock"
	companionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/companion"
	companionmock "github.com/KirkDiggler/rpg-progression/internal/repositories/companion/mock"
)

// ExpectCharacterGet sets up a mock expectation for loading a character by ID
func ExpectCharacterGet(
	ctx context.Context, mockRepo *charactermock.MockRepository,
	id uint64, char *entities.Character, err error,
) *gomock.Call {
	var out *characterrepo.GetOutput
	if err == nil {
		out = &characterrepo.GetOutput{Character: char.Clone()}
	}
	return mockRepo.EXPECT().
		Get(ctx, characterrepo.GetInput{ID: id}).
		Return(out, err)
}

// ExpectCharacterUpdate sets up a mock expectation for a versioned write. The stored
// character is captured into saved and echoed back with its version bumped.
func ExpectCharacterUpdate(
	ctx context.Context, mockRepo *charactermock.MockRepository, saved **entities.Character,
) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			stored := input.Character.Clone()
			stored.Version++
			if saved != nil {
				*saved = stored
			}
			return &characterrepo.UpdateOutput{Character: stored}, nil
		})
}

// ExpectCompanionsGetMany sets up a mock expectation for loading companions by ID
func ExpectCompanionsGetMany(
	ctx context.Context, mockRepo *companionmock.MockRepository,
	ids []uint64, companions ...*entities.Companion,
) *gomock.Call {
	found := make(map[uint64]*entities.Companion, len(companions))
	for _, comp := range companions {
		found[comp.ID] = comp.Clone()
	}
	return mockRepo.EXPECT().
		GetMany(ctx, companionrepo.GetManyInput{IDs: ids}).
		Return(&companionrepo.GetManyOutput{Companions: found}, nil)
}

// ExpectClockAt pins a mock clock to the given unix second
func ExpectClockAt(mockClock *mockclock.MockClock, unix int64) *gomock.Call {
	return mockClock.EXPECT().
		Now().
		Return(time.Unix(unix, 0)).
		AnyTimes()
}
