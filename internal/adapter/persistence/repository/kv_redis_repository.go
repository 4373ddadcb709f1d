package repository

import (
	"context"
	"errors"

	"nardoo_storefront/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "storefront:"

// KeyValueRedisRepository keeps each collection document under prefix+key.
// Documents never expire.

type KeyValueRedisRepository struct {
	rdb    *redis.Client
	prefix string
}

var _ interfaces.IKeyValueStore = (*KeyValueRedisRepository)(nil)

func NewKeyValueRedisRepository(rdb *redis.Client) *KeyValueRedisRepository {
	return &KeyValueRedisRepository{
		rdb:    rdb,
		prefix: getenvDefault("REDIS_KEY_PREFIX", defaultRedisKeyPrefix),
	}
}

func (r *KeyValueRedisRepository) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *KeyValueRedisRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, r.prefix+key, value, 0).Err()
}
