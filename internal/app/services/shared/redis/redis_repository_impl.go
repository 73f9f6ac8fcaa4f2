package redis

import (
	"context"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/pkg/exceptions"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type redisRepository struct {
	Client *goredis.Client
}

func NewRedisRepository(client *goredis.Client) contracts.RedisRepository {
	return &redisRepository{
		Client: client,
	}
}

func (repo *redisRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := repo.Client.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}
	return value, nil
}

func (repo *redisRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	err := repo.Client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (repo *redisRepository) Delete(ctx context.Context, key string) error {
	err := repo.Client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (repo *redisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	pipe := repo.Client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	if err != nil {
		return 0, exceptions.ErrRedisIncrement(err)
	}
	return int(incr.Val()), nil
}
