package companion_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/engine/companion"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

type CompanionTestSuite struct {
	suite.Suite
	character *entities.Character
	pet       *entities.Companion
}

func (s *CompanionTestSuite) SetupTest() {
	s.character = &entities.Character{
		ID:      1,
		OwnerID: "alice",
		Queue: []*entities.QueuedAction{
			{ID: "qa-1", ActionID: 1, Duration: 3600, StartTime: 100},
			{ID: "qa-2", ActionID: 1, Duration: 3600, StartTime: 3700},
		},
	}
	s.pet = &entities.Companion{
		ID:             7,
		OwnerID:        "alice",
		LastAssignment: 50,
		Transfers:      []uint64{50},
	}
}

func (s *CompanionTestSuite) TestBind() {
	binding, err := companion.Bind(s.character, 0, s.pet, 100)
	s.Require().NoError(err)
	s.Equal(uint64(7), binding.CompanionID)
	s.Equal(uint64(100), binding.BoundAt)
	s.Same(binding, s.character.Queue[0].Companion)
}

func (s *CompanionTestSuite) TestBind_Rejections() {
	s.Run("not owned", func() {
		s.pet.OwnerID = "bob"
		_, err := companion.Bind(s.character, 0, s.pet, 100)
		s.True(errors.IsInvalidArgument(err))
		s.pet.OwnerID = "alice"
	})

	s.Run("reassigned after bind time", func() {
		_, err := companion.Bind(s.character, 0, s.pet, 49)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("slot out of range", func() {
		_, err := companion.Bind(s.character, 5, s.pet, 100)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Nil(s.character.Queue[0].Companion)
}

func (s *CompanionTestSuite) TestIsEligible_NoTransfer() {
	binding, err := companion.Bind(s.character, 0, s.pet, 100)
	s.Require().NoError(err)

	s.True(companion.IsEligible(binding, 100, s.pet, "alice", 100))
	s.True(companion.IsEligible(binding, 100, s.pet, "alice", 1_000_000))
	s.False(companion.IsEligible(binding, 100, s.pet, "alice", 99))
}

func (s *CompanionTestSuite) TestIsEligible_RoundTripVoidsBinding() {
	binding, err := companion.Bind(s.character, 0, s.pet, 100)
	s.Require().NoError(err)

	s.Require().NoError(companion.Transfer(s.pet, "bob", 500))
	s.Require().NoError(companion.Transfer(s.pet, "alice", 600))

	s.Equal("alice", s.pet.OwnerID)
	s.Equal(uint64(600), s.pet.LastAssignment)

	s.True(companion.IsEligible(binding, 100, s.pet, "alice", 499))
	s.False(companion.IsEligible(binding, 100, s.pet, "alice", 500))
	s.False(companion.IsEligible(binding, 100, s.pet, "alice", 700))

	window := companion.EligibleWindow(binding, 100, s.pet, "alice")
	s.Equal(uint64(100), window.Start)
	s.Equal(uint64(400), window.Duration)
}

func (s *CompanionTestSuite) TestIsEligible_TransferBeforeActionStart() {
	// bound at 100 for the second action which only starts at 3700
	binding, err := companion.Bind(s.character, 1, s.pet, 100)
	s.Require().NoError(err)

	s.Require().NoError(companion.Transfer(s.pet, "bob", 500))
	s.Require().NoError(companion.Transfer(s.pet, "alice", 600))

	s.True(companion.IsEligible(binding, 3700, s.pet, "alice", 3700))
	s.True(companion.IsEligible(binding, 3700, s.pet, "alice", 7000))
}

func (s *CompanionTestSuite) TestIsEligible_TransferAway() {
	binding, err := companion.Bind(s.character, 0, s.pet, 100)
	s.Require().NoError(err)
	s.Require().NoError(companion.Transfer(s.pet, "bob", 500))

	s.True(companion.IsEligible(binding, 100, s.pet, "alice", 200))
	s.False(companion.IsEligible(binding, 100, s.pet, "alice", 500))
	s.Equal(uint64(400), companion.EligibleWindow(binding, 100, s.pet, "alice").Duration)
}

func (s *CompanionTestSuite) TestIsEligible_OwnedByOtherAccountAtStart() {
	binding, err := companion.Bind(s.character, 1, s.pet, 100)
	s.Require().NoError(err)
	s.Require().NoError(companion.Transfer(s.pet, "bob", 500))

	s.False(companion.IsEligible(binding, 3700, s.pet, "alice", 4000))
	s.True(companion.EligibleWindow(binding, 3700, s.pet, "alice").Empty())
}

func (s *CompanionTestSuite) TestIsEligible_WrongCompanion() {
	binding := &entities.CompanionBinding{CompanionID: 99, BoundAt: 100}
	s.False(companion.IsEligible(binding, 100, s.pet, "alice", 200))
}

func (s *CompanionTestSuite) TestEligibleWindow_TruncatedHistory() {
	binding, err := companion.Bind(s.character, 0, s.pet, 100)
	s.Require().NoError(err)

	owners := []string{"bob", "alice"}
	for i := 0; i < companion.MaxTransferHistory+2; i++ {
		s.Require().NoError(companion.Transfer(s.pet, owners[i%2], uint64(1000+i)))
	}
	s.True(s.pet.HistoryTruncated)
	s.Len(s.pet.Transfers, companion.MaxTransferHistory)
	s.Equal("alice", s.pet.OwnerID)

	s.True(companion.EligibleWindow(binding, 100, s.pet, "alice").Empty())

	// a binding made after the retained history starts is still resolvable
	late := &entities.CompanionBinding{CompanionID: 7, BoundAt: s.pet.LastAssignment}
	s.True(companion.IsEligible(late, 0, s.pet, "alice", s.pet.LastAssignment+10))
}

func (s *CompanionTestSuite) TestTransfer_Rejections() {
	s.True(errors.IsInvalidArgument(companion.Transfer(s.pet, "alice", 100)))
	s.True(errors.IsInvalidArgument(companion.Transfer(s.pet, "", 100)))
	s.True(errors.IsFailedPrecondition(companion.Transfer(s.pet, "bob", 10)))
	s.Equal("alice", s.pet.OwnerID)
}

func (s *CompanionTestSuite) TestBonusFor_ClampsRolledValues() {
	s.pet.Enhancements = []entities.SkillEnhancement{
		{Skill: entities.SkillFishing, FixedMin: 10, FixedMax: 20, Fixed: 35, PercentMin: 5, PercentMax: 10, Percent: 2},
		{Skill: entities.SkillMining, FixedMin: 0, FixedMax: 50, Fixed: 25, PercentMin: 0, PercentMax: 20, Percent: 15},
	}

	fixed, percent := s.pet.BonusFor(entities.SkillFishing)
	s.Equal(uint32(20), fixed)
	s.Equal(uint32(5), percent)

	fixed, percent = s.pet.BonusFor(entities.SkillMining)
	s.Equal(uint32(25), fixed)
	s.Equal(uint32(15), percent)

	fixed, percent = s.pet.BonusFor(entities.SkillCooking)
	s.Zero(fixed)
	s.Zero(percent)
}

func TestCompanionTestSuite(t *testing.T) {
	suite.Run(t, new(CompanionTestSuite))
}
