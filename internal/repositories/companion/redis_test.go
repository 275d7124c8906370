package companion_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/companion"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/builders"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    companion.Repository
	ctx     context.Context
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := companion.NewRedis(&companion.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) create(id uint64, owner string, at uint64) *entities.Companion {
	comp := builders.NewCompanionBuilder().
		WithID(id).
		WithOwner(owner).
		AssignedAt(at).
		WithEnhancement(entities.SkillFishing, 10, 20).
		Build()
	out, err := s.repo.Create(s.ctx, companion.CreateInput{Companion: comp})
	s.Require().NoError(err)
	return out.Companion
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created := s.create(7, "alice", 100)

	got, err := s.repo.Get(s.ctx, companion.GetInput{ID: 7})
	s.Require().NoError(err)
	s.Equal(created, got.Companion)
	s.Equal(uint64(100), got.Companion.LastAssignment)
}

func (s *RedisRepositoryTestSuite) TestCreate_Errors() {
	_, err := s.repo.Create(s.ctx, companion.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, companion.CreateInput{Companion: &entities.Companion{ID: 1}})
	s.True(errors.IsInvalidArgument(err))

	tooMany := builders.NewCompanionBuilder().
		WithEnhancement(entities.SkillFishing, 1, 1).
		WithEnhancement(entities.SkillMining, 1, 1).
		WithEnhancement(entities.SkillCooking, 1, 1).
		Build()
	_, err = s.repo.Create(s.ctx, companion.CreateInput{Companion: tooMany})
	s.True(errors.IsInvalidArgument(err))

	s.create(1, "alice", 0)
	_, err = s.repo.Create(s.ctx, companion.CreateInput{
		Companion: builders.NewCompanionBuilder().WithID(1).WithOwner("bob").Build(),
	})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, companion.GetInput{ID: 404})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetMany_SkipsUnknown() {
	s.create(1, "alice", 0)
	s.create(2, "bob", 0)

	out, err := s.repo.GetMany(s.ctx, companion.GetManyInput{IDs: []uint64{1, 2, 3}})
	s.Require().NoError(err)
	s.Len(out.Companions, 2)
	s.Equal("alice", out.Companions[1].OwnerID)
	s.Equal("bob", out.Companions[2].OwnerID)

	empty, err := s.repo.GetMany(s.ctx, companion.GetManyInput{})
	s.Require().NoError(err)
	s.Empty(empty.Companions)
}

func (s *RedisRepositoryTestSuite) TestTransfer() {
	s.create(7, "alice", 100)

	out, err := s.repo.Transfer(s.ctx, companion.TransferInput{ID: 7, NewOwnerID: "bob", At: 500})
	s.Require().NoError(err)
	s.Equal("alice", out.PreviousOwner)
	s.Equal("bob", out.Companion.OwnerID)
	s.Equal(uint64(500), out.Companion.LastAssignment)
	s.Equal([]uint64{100, 500}, out.Companion.Transfers)

	got, err := s.repo.Get(s.ctx, companion.GetInput{ID: 7})
	s.Require().NoError(err)
	s.Equal(out.Companion, got.Companion)

	alice, err := s.repo.ListByOwnerID(s.ctx, companion.ListByOwnerIDInput{OwnerID: "alice"})
	s.Require().NoError(err)
	s.Empty(alice.Companions)

	bob, err := s.repo.ListByOwnerID(s.ctx, companion.ListByOwnerIDInput{OwnerID: "bob"})
	s.Require().NoError(err)
	s.Require().Len(bob.Companions, 1)
	s.Equal(uint64(7), bob.Companions[0].ID)
}

func (s *RedisRepositoryTestSuite) TestTransfer_Rejections() {
	s.create(7, "alice", 100)

	_, err := s.repo.Transfer(s.ctx, companion.TransferInput{ID: 404, NewOwnerID: "bob", At: 500})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Transfer(s.ctx, companion.TransferInput{ID: 7, NewOwnerID: "alice", At: 500})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Transfer(s.ctx, companion.TransferInput{ID: 7, NewOwnerID: "bob", At: 50})
	s.True(errors.IsFailedPrecondition(err))

	got, err := s.repo.Get(s.ctx, companion.GetInput{ID: 7})
	s.Require().NoError(err)
	s.Equal("alice", got.Companion.OwnerID)
}

func (s *RedisRepositoryTestSuite) TestListByOwnerID_Sorted() {
	for _, id := range []uint64{3, 1, 2} {
		s.create(id, "alice", 0)
	}

	out, err := s.repo.ListByOwnerID(s.ctx, companion.ListByOwnerIDInput{OwnerID: "alice"})
	s.Require().NoError(err)
	s.Require().Len(out.Companions, 3)
	s.Equal(uint64(1), out.Companions[0].ID)
	s.Equal(uint64(3), out.Companions[2].ID)

	_, err = s.repo.ListByOwnerID(s.ctx, companion.ListByOwnerIDInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
