package companion

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	companionrules "github.com/KirkDiggler/rpg-progression/internal/engine/companion"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
)

const (
	companionKeyPrefix = "companion:"
	ownerIndexPrefix   = "companion:owner:"

	errCompanionNil    = "companion cannot be nil"
	errCompanionIDZero = "companion ID cannot be zero"
	errOwnerIDEmpty    = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

var _ Repository = (*redisRepository)(nil)

// RedisConfig contains configuration for the Redis companion registry.
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

// NewRedis creates a new Redis-backed companion registry
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func companionKey(id uint64) string {
	return companionKeyPrefix + strconv.FormatUint(id, 10)
}

func decode(id uint64, raw string) (*entities.Companion, error) {
	var comp entities.Companion
	if err := json.Unmarshal([]byte(raw), &comp); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal companion %d", id)
	}
	return &comp, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Companion == nil {
		return nil, errors.InvalidArgument(errCompanionNil)
	}
	if input.Companion.ID == 0 {
		return nil, errors.InvalidArgument(errCompanionIDZero)
	}
	if input.Companion.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if len(input.Companion.Enhancements) > entities.MaxEnhancements {
		return nil, errors.InvalidArgumentf("a companion enhances at most %d skills", entities.MaxEnhancements)
	}

	comp := input.Companion.Clone()
	data, err := json.Marshal(comp)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal companion")
	}

	created, err := r.client.SetNX(ctx, companionKey(comp.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create companion")
	}
	if !created {
		return nil, errors.AlreadyExistsf("companion with ID %d already exists", comp.ID)
	}
	if err := r.client.SAdd(ctx, ownerIndexPrefix+comp.OwnerID, comp.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index companion")
	}

	return &CreateOutput{Companion: comp}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errCompanionIDZero)
	}

	raw, err := r.client.Get(ctx, companionKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("companion with ID %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get companion")
	}

	comp, err := decode(input.ID, raw)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Companion: comp}, nil
}

func (r *redisRepository) GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error) {
	out := &GetManyOutput{Companions: make(map[uint64]*entities.Companion, len(input.IDs))}
	if len(input.IDs) == 0 {
		return out, nil
	}

	keys := make([]string, len(input.IDs))
	for i, id := range input.IDs {
		keys[i] = companionKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get companions")
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		comp, err := decode(input.IDs[i], raw)
		if err != nil {
			return nil, err
		}
		out.Companions[comp.ID] = comp
	}
	return out, nil
}

func (r *redisRepository) Transfer(ctx context.Context, input TransferInput) (*TransferOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument(errCompanionIDZero)
	}

	key := companionKey(input.ID)
	var out *TransferOutput

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("companion with ID %d not found", input.ID)
			}
			return errors.Wrapf(err, "failed to get companion")
		}

		comp, err := decode(input.ID, raw)
		if err != nil {
			return err
		}
		previous := comp.OwnerID

		if err := companionrules.Transfer(comp, input.NewOwnerID, input.At); err != nil {
			return err
		}

		data, err := json.Marshal(comp)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal companion")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.SRem(ctx, ownerIndexPrefix+previous, comp.ID)
			pipe.SAdd(ctx, ownerIndexPrefix+comp.OwnerID, comp.ID)
			return nil
		})
		if err != nil {
			return err
		}

		out = &TransferOutput{Companion: comp, PreviousOwner: previous}
		return nil
	}, key)

	if err != nil {
		if err == redis.TxFailedErr {
			return nil, errors.Abortedf("companion %d was modified concurrently", input.ID)
		}
		var domainErr *errors.Error
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to transfer companion")
	}

	return out, nil
}

func (r *redisRepository) ListByOwnerID(ctx context.Context, input ListByOwnerIDInput) (*ListByOwnerIDOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	members, err := r.client.SMembers(ctx, ownerIndexPrefix+input.OwnerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list companions")
	}

	ids := make([]uint64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	many, err := r.GetMany(ctx, GetManyInput{IDs: ids})
	if err != nil {
		return nil, err
	}

	out := &ListByOwnerIDOutput{Companions: make([]*entities.Companion, 0, len(ids))}
	for _, id := range ids {
		if comp, ok := many.Companions[id]; ok {
			out.Companions = append(out.Companions, comp)
		}
	}
	return out, nil
}
