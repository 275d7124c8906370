package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories do not depend on a concrete client type
type Client interface {
	redis.UniversalClient
}
