package repository

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const loginTokenPrefix = "login_token:"

// RedisLoginTokenStore keeps magic-link tokens in Redis. TTL expiry is the
// store's own purge mechanism, and GETDEL makes consumption atomic, so a
// token racing its own expiry or a concurrent verify is redeemed at most
// once.
type RedisLoginTokenStore struct {
	client *redis.Client
}

func NewRedisLoginTokenStore(client *redis.Client) *RedisLoginTokenStore {
	return &RedisLoginTokenStore{client: client}
}

func (s *RedisLoginTokenStore) Save(ctx context.Context, token, email string, ttl time.Duration) error {
	return s.client.Set(ctx, loginTokenPrefix+token, email, ttl).Err()
}

func (s *RedisLoginTokenStore) Consume(ctx context.Context, token string) (string, error) {
	email, err := s.client.GetDel(ctx, loginTokenPrefix+token).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return email, nil
}
