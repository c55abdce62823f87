package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Expire(ctx context.Context, key string, exp time.Duration) (bool, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
