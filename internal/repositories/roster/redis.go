package roster

import (
	"context"
	"strconv"

	"github.com/KirkDiggler/rpg-progression/internal/engine/battle"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
)

const (
	rosterKeyPrefix = "roster:"

	errClanIDEmpty     = "clan ID cannot be empty"
	errCharacterIDZero = "character ID cannot be zero"
)

type redisRepository struct {
	client redisclient.Client
}

var _ Repository = (*redisRepository)(nil)

// RedisConfig contains configuration for the Redis roster repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed roster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func rosterKey(clanID string) string {
	return rosterKeyPrefix + clanID
}

func (r *redisRepository) SetMembers(ctx context.Context, input SetMembersInput) (*SetMembersOutput, error) {
	if input.ClanID == "" {
		return nil, errors.InvalidArgument(errClanIDEmpty)
	}
	if len(input.MemberIDs) > battle.MaxRosterSize {
		return nil, errors.InvalidArgumentf("roster holds at most %d members, got %d", battle.MaxRosterSize, len(input.MemberIDs))
	}

	key := rosterKey(input.ClanID)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(input.MemberIDs) > 0 {
		values := make([]interface{}, len(input.MemberIDs))
		for i, id := range input.MemberIDs {
			values[i] = id
		}
		pipe.RPush(ctx, key, values...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to set roster for clan %s", input.ClanID)
	}

	return &SetMembersOutput{}, nil
}

func (r *redisRepository) GetMembers(ctx context.Context, input GetMembersInput) (*GetMembersOutput, error) {
	if input.ClanID == "" {
		return nil, errors.InvalidArgument(errClanIDEmpty)
	}

	raw, err := r.client.LRange(ctx, rosterKey(input.ClanID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get roster for clan %s", input.ClanID)
	}
	if len(raw) == 0 {
		return nil, errors.NotFoundf("clan %s has no roster", input.ClanID)
	}

	ids := make([]uint64, len(raw))
	for i, v := range raw {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid member %q in roster %s", v, input.ClanID)
		}
		ids[i] = id
	}
	return &GetMembersOutput{MemberIDs: ids}, nil
}

func (r *redisRepository) AddMember(ctx context.Context, input AddMemberInput) (*AddMemberOutput, error) {
	if input.ClanID == "" {
		return nil, errors.InvalidArgument(errClanIDEmpty)
	}
	if input.CharacterID == 0 {
		return nil, errors.InvalidArgument(errCharacterIDZero)
	}

	key := rosterKey(input.ClanID)
	member := strconv.FormatUint(input.CharacterID, 10)

	current, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read roster for clan %s", input.ClanID)
	}
	for _, v := range current {
		if v == member {
			return nil, errors.AlreadyExistsf("character %d already in clan %s", input.CharacterID, input.ClanID)
		}
	}
	if len(current) >= battle.MaxRosterSize {
		return nil, errors.FailedPreconditionf("clan %s roster is full", input.ClanID)
	}

	newSize, err := r.client.RPush(ctx, key, member).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add member to clan %s", input.ClanID)
	}

	return &AddMemberOutput{Size: int(newSize)}, nil
}

func (r *redisRepository) RemoveMember(ctx context.Context, input RemoveMemberInput) (*RemoveMemberOutput, error) {
	if input.ClanID == "" {
		return nil, errors.InvalidArgument(errClanIDEmpty)
	}
	if input.CharacterID == 0 {
		return nil, errors.InvalidArgument(errCharacterIDZero)
	}

	removed, err := r.client.LRem(ctx, rosterKey(input.ClanID), 0, strconv.FormatUint(input.CharacterID, 10)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to remove member from clan %s", input.ClanID)
	}
	if removed == 0 {
		return nil, errors.NotFoundf("character %d not in clan %s", input.CharacterID, input.ClanID)
	}

	return &RemoveMemberOutput{}, nil
}
