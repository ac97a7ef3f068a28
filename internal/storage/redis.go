package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessions stores admin session tokens as marker keys with a TTL, so
// sessions survive process restarts and can be shared across instances.
type RedisSessions struct {
	Client *redis.Client
}

func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{Client: client}
}

var _ SessionStore = (*RedisSessions)(nil)

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisSessions) Create(ctx context.Context, token string, ttl time.Duration) error {
	return s.Client.Set(ctx, sessionKey(token), "1", ttl).Err()
}

func (s *RedisSessions) Exists(ctx context.Context, token string) (bool, error) {
	res, err := s.Client.Exists(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (s *RedisSessions) Delete(ctx context.Context, token string) error {
	return s.Client.Del(ctx, sessionKey(token)).Err()
}
