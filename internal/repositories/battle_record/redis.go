package battlerecord

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
)

const (
	// Key patterns: battle_record:{id} and battle_record:clan:{clan_id}
	recordKeyPrefix = "battle_record:"
	clanIndexPrefix = "battle_record:clan:"

	// DefaultTTL is how long a record lives when no TTL is given
	DefaultTTL = 7 * 24 * time.Hour

	// MaxClanHistory bounds the per-clan index
	MaxClanHistory = 50

	errRecordNil   = "record cannot be nil"
	errIDEmpty     = "record ID cannot be empty"
	errClanIDEmpty = "clan ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for battle records
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	record := *input.Record
	record.ResolvedAt = r.clock.Now()
	record.ExpiresAt = record.ResolvedAt.Add(ttl)

	data, err := json.Marshal(&record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle record")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, recordKeyPrefix+record.ID, data, ttl)
	for _, clanID := range []string{record.ClanA, record.ClanB} {
		if clanID == "" {
			continue
		}
		pipe.LPush(ctx, clanIndexPrefix+clanID, record.ID)
		pipe.LTrim(ctx, clanIndexPrefix+clanID, 0, MaxClanHistory-1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store battle record")
	}

	return &CreateOutput{Record: &record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := recordKeyPrefix + input.ID
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("battle record %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get battle record")
	}

	var record Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal battle record")
	}

	if r.clock.Now().After(record.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("battle record %s has expired", input.ID)
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) ListByClan(ctx context.Context, input ListByClanInput) (*ListByClanOutput, error) {
	if input.ClanID == "" {
		return nil, errors.InvalidArgument(errClanIDEmpty)
	}

	limit := input.Limit
	if limit <= 0 || limit > MaxClanHistory {
		limit = MaxClanHistory
	}

	ids, err := r.client.LRange(ctx, clanIndexPrefix+input.ClanID, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list battles of clan %s", input.ClanID)
	}

	out := &ListByClanOutput{Records: make([]*Record, 0, len(ids))}
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		out.Records = append(out.Records, got.Record)
	}
	return out, nil
}
