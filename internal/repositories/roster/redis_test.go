package roster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/engine/battle"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/roster"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    roster.Repository
	ctx     context.Context
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := roster.NewRedis(&roster.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestSetAndGet_KeepsOrderAndEmptySlots() {
	_, err := s.repo.SetMembers(s.ctx, roster.SetMembersInput{ClanID: "red", MemberIDs: []uint64{5, 0, 3}})
	s.Require().NoError(err)

	out, err := s.repo.GetMembers(s.ctx, roster.GetMembersInput{ClanID: "red"})
	s.Require().NoError(err)
	s.Equal([]uint64{5, 0, 3}, out.MemberIDs)

	// replacing shrinks the list
	_, err = s.repo.SetMembers(s.ctx, roster.SetMembersInput{ClanID: "red", MemberIDs: []uint64{9}})
	s.Require().NoError(err)

	out, err = s.repo.GetMembers(s.ctx, roster.GetMembersInput{ClanID: "red"})
	s.Require().NoError(err)
	s.Equal([]uint64{9}, out.MemberIDs)
}

func (s *RedisRepositoryTestSuite) TestSetMembers_Rejections() {
	_, err := s.repo.SetMembers(s.ctx, roster.SetMembersInput{MemberIDs: []uint64{1}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.SetMembers(s.ctx, roster.SetMembersInput{
		ClanID:    "red",
		MemberIDs: make([]uint64, battle.MaxRosterSize+1),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestSetMembers_EmptyClears() {
	_, err := s.repo.SetMembers(s.ctx, roster.SetMembersInput{ClanID: "red", MemberIDs: []uint64{1}})
	s.Require().NoError(err)
	_, err = s.repo.SetMembers(s.ctx, roster.SetMembersInput{ClanID: "red"})
	s.Require().NoError(err)

	_, err = s.repo.GetMembers(s.ctx, roster.GetMembersInput{ClanID: "red"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetMembers_NotFound() {
	_, err := s.repo.GetMembers(s.ctx, roster.GetMembersInput{ClanID: "nobody"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestAddAndRemoveMember() {
	out, err := s.repo.AddMember(s.ctx, roster.AddMemberInput{ClanID: "red", CharacterID: 4})
	s.Require().NoError(err)
	s.Equal(1, out.Size)

	out, err = s.repo.AddMember(s.ctx, roster.AddMemberInput{ClanID: "red", CharacterID: 8})
	s.Require().NoError(err)
	s.Equal(2, out.Size)

	_, err = s.repo.AddMember(s.ctx, roster.AddMemberInput{ClanID: "red", CharacterID: 4})
	s.True(errors.IsAlreadyExists(err))

	_, err = s.repo.RemoveMember(s.ctx, roster.RemoveMemberInput{ClanID: "red", CharacterID: 4})
	s.Require().NoError(err)

	members, err := s.repo.GetMembers(s.ctx, roster.GetMembersInput{ClanID: "red"})
	s.Require().NoError(err)
	s.Equal([]uint64{8}, members.MemberIDs)

	_, err = s.repo.RemoveMember(s.ctx, roster.RemoveMemberInput{ClanID: "red", CharacterID: 4})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestAddMember_Full() {
	ids := make([]uint64, battle.MaxRosterSize)
	for i := range ids {
		ids[i] = uint64(i + 1)
	}
	_, err := s.repo.SetMembers(s.ctx, roster.SetMembersInput{ClanID: "red", MemberIDs: ids})
	s.Require().NoError(err)

	_, err = s.repo.AddMember(s.ctx, roster.AddMemberInput{ClanID: "red", CharacterID: 1000})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *RedisRepositoryTestSuite) TestAddMember_Rejections() {
	_, err := s.repo.AddMember(s.ctx, roster.AddMemberInput{CharacterID: 1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.AddMember(s.ctx, roster.AddMemberInput{ClanID: "red"})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
