package lease

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-progression/internal/redis"
)

const (
	leaseKeyPrefix = "lease:"

	// DefaultTTL bounds how long a crashed holder can block others
	DefaultTTL = 30 * time.Second

	errNameEmpty = "lease name cannot be empty"
)

// Config holds the configuration for the Redis lease repository
type Config struct {
	Client      redisclient.Client
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	idGen  idgen.Generator
}

var _ Repository = (*redisRepository)(nil)

// NewRedisRepository creates a lease repository backed by SET NX
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		idGen:  cfg.IDGenerator,
	}, nil
}

func leaseKey(name string) string {
	return leaseKeyPrefix + name
}

func (r *redisRepository) Acquire(ctx context.Context, input AcquireInput) (*AcquireOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	token := r.idGen.Generate()
	ok, err := r.client.SetNX(ctx, leaseKey(input.Name), token, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to acquire lease %s", input.Name)
	}
	if !ok {
		return nil, errors.Abortedf("lease %s is held by another caller", input.Name).
			WithMeta("lease", input.Name)
	}

	return &AcquireOutput{Token: token}, nil
}

func (r *redisRepository) Release(ctx context.Context, input ReleaseInput) (*ReleaseOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if input.Token == "" {
		return nil, errors.InvalidArgument("lease token cannot be empty")
	}

	key := leaseKey(input.Name)
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		holder, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("lease %s has expired", input.Name)
			}
			return errors.Wrapf(err, "failed to read lease %s", input.Name)
		}
		if holder != input.Token {
			return errors.Abortedf("lease %s was taken over", input.Name)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		})
		return err
	}, key)

	if err != nil {
		if err == redis.TxFailedErr {
			return nil, errors.Abortedf("lease %s changed while releasing", input.Name)
		}
		var domainErr *errors.Error
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to release lease %s", input.Name)
	}

	return &ReleaseOutput{}, nil
}
