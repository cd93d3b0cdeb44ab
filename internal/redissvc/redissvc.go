package redissvc

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

// Connect creates a client for the given address and verifies the
// connection before handing the service out.
func Connect(ctx context.Context, addr string) (*RedisService, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisService{rdb: rdb, ctx: ctx}, nil
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{rdb: rdb, ctx: ctx}
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Ctx() context.Context {
	return a.ctx
}

func (a *RedisService) Close() error {
	return a.rdb.Close()
}
