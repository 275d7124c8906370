package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/builders"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    character.Repository
	ctx     context.Context
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) newCharacter(id uint64, owner string) *entities.Character {
	return builders.NewCharacterBuilder().
		WithID(id).
		WithOwner(owner).
		WithXP(entities.SkillFishing, 1000).
		WithItem(201, 12).
		WithQueuedAction(&entities.QueuedAction{
			ID:        "qa_1",
			ActionID:  2,
			Duration:  3600,
			StartTime: 100,
			Boost:     &entities.Boost{Start: 100, Duration: 600, Magnitude: 20},
			Companion: &entities.CompanionBinding{CompanionID: 7, BoundAt: 100},
		}).
		Build()
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(42, "alice")})
	s.Require().NoError(err)
	s.Equal(uint64(1), created.Character.Version)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: 42})
	s.Require().NoError(err)
	s.Equal(created.Character, got.Character)
	s.Equal(uint64(1000), got.Character.SkillXP(entities.SkillFishing))
	s.Equal(uint64(12), got.Character.Inventory[201])
	s.Require().Len(got.Character.Queue, 1)
	s.Equal(uint64(7), got.Character.Queue[0].Companion.CompanionID)
}

func (s *RedisRepositoryTestSuite) TestCreate_Errors() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(1, "alice")})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(1, "bob")})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: 404})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate_Versioned() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(42, "alice")})
	s.Require().NoError(err)

	first := created.Character.Clone()
	first.XP[entities.SkillFishing] = 2000
	updated, err := s.repo.Update(s.ctx, character.UpdateInput{Character: first})
	s.Require().NoError(err)
	s.Equal(uint64(2), updated.Character.Version)

	// a writer holding the old version loses
	stale := created.Character.Clone()
	stale.XP[entities.SkillFishing] = 5
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: stale})
	s.True(errors.IsAborted(err))

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: 42})
	s.Require().NoError(err)
	s.Equal(uint64(2000), got.Character.SkillXP(entities.SkillFishing))
	s.Equal(uint64(2), got.Character.Version)
}

func (s *RedisRepositoryTestSuite) TestUpdate_NotFound() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: s.newCharacter(9, "alice")})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate_MovesOwnerIndex() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(42, "alice")})
	s.Require().NoError(err)

	moved := created.Character.Clone()
	moved.OwnerID = "bob"
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: moved})
	s.Require().NoError(err)

	alice, err := s.repo.ListByOwnerID(s.ctx, character.ListByOwnerIDInput{OwnerID: "alice"})
	s.Require().NoError(err)
	s.Empty(alice.Characters)

	bob, err := s.repo.ListByOwnerID(s.ctx, character.ListByOwnerIDInput{OwnerID: "bob"})
	s.Require().NoError(err)
	s.Require().Len(bob.Characters, 1)
	s.Equal(uint64(42), bob.Characters[0].ID)
}

func (s *RedisRepositoryTestSuite) TestListByOwnerID() {
	for _, id := range []uint64{3, 1, 2} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(id, "alice")})
		s.Require().NoError(err)
	}
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(4, "bob")})
	s.Require().NoError(err)

	out, err := s.repo.ListByOwnerID(s.ctx, character.ListByOwnerIDInput{OwnerID: "alice"})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 3)
	s.Equal(uint64(1), out.Characters[0].ID)
	s.Equal(uint64(3), out.Characters[2].ID)

	_, err = s.repo.ListByOwnerID(s.ctx, character.ListByOwnerIDInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.newCharacter(42, "alice")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: 42})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: 42})
	s.True(errors.IsNotFound(err))

	out, err := s.repo.ListByOwnerID(s.ctx, character.ListByOwnerIDInput{OwnerID: "alice"})
	s.Require().NoError(err)
	s.Empty(out.Characters)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: 42})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
