package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	ownerIndexPrefix   = "character:owner:"

	errCharacterNil    = "character cannot be nil"
	errCharacterIDZero = "character ID cannot be zero"
	errOwnerIDEmpty    = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

var _ Repository = (*redisRepository)(nil)

// RedisConfig contains configuration for the Redis character repository.
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

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func characterKey(id uint64) string {
	return characterKeyPrefix + strconv.FormatUint(id, 10)
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == 0 {
		return nil, errors.InvalidArgument(errCharacterIDZero)
	}

	stored := input.Character.Clone()
	stored.Version = 1

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	key := characterKey(stored.ID)
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}
	if !created {
		return nil, errors.AlreadyExistsf("character with ID %d already exists", stored.ID)
	}

	if stored.OwnerID != "" {
		if err := r.client.SAdd(ctx, ownerIndexPrefix+stored.OwnerID, stored.ID).Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to index character")
		}
	}

	return &CreateOutput{Character: stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errCharacterIDZero)
	}

	char, err := r.load(ctx, r.client, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: char}, nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *redisRepository) load(ctx context.Context, cmd getter, id uint64) (*entities.Character, error) {
	result, err := cmd.Get(ctx, characterKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %d not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var char entities.Character
	if err := json.Unmarshal([]byte(result), &char); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character data")
	}
	return &char, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == 0 {
		return nil, errors.InvalidArgument(errCharacterIDZero)
	}

	key := characterKey(input.Character.ID)
	stored := input.Character.Clone()
	stored.Version = input.Character.Version + 1

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		existing, err := r.load(ctx, tx, input.Character.ID)
		if err != nil {
			return err
		}
		if existing.Version != input.Character.Version {
			return errors.Abortedf("character %d changed: have version %d, stored %d",
				input.Character.ID, input.Character.Version, existing.Version)
		}

		data, err := json.Marshal(stored)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal character")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			if existing.OwnerID != stored.OwnerID {
				if existing.OwnerID != "" {
					pipe.SRem(ctx, ownerIndexPrefix+existing.OwnerID, stored.ID)
				}
				if stored.OwnerID != "" {
					pipe.SAdd(ctx, ownerIndexPrefix+stored.OwnerID, stored.ID)
				}
			}
			return nil
		})
		return err
	}, key)

	if err != nil {
		if err == redis.TxFailedErr {
			return nil, errors.Abortedf("character %d was modified concurrently", input.Character.ID)
		}
		var domainErr *errors.Error
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errCharacterIDZero)
	}

	existing, err := r.load(ctx, r.client, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKey(input.ID))
	if existing.OwnerID != "" {
		pipe.SRem(ctx, ownerIndexPrefix+existing.OwnerID, input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwnerID(ctx context.Context, input ListByOwnerIDInput) (*ListByOwnerIDOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}

	characters := make([]*entities.Character, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			slog.WarnContext(ctx, "invalid character id in owner index",
				"index_key", indexKey,
				"value", raw)
			continue
		}

		char, err := r.load(ctx, r.client, id)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, raw)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %d", id)
		}
		characters = append(characters, char)
	}

	sort.Slice(characters, func(i, j int) bool { return characters[i].ID < characters[j].ID })
	return &ListByOwnerIDOutput{Characters: characters}, nil
}
