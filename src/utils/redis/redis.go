package redis_utils

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio-server/src/config"
)

// SessionStore keeps the IDs of revoked tokens until their natural expiry.
// A token whose jti is present here is no longer accepted, which gives
// logout a server-side effect instead of relying on client cleanup alone.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore connects to Redis and verifies the connection.
func NewSessionStore(cfg *config.Config) (*SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Databases.Redis.Host + ":" + cfg.Databases.Redis.Port,
		Username: cfg.Databases.Redis.Username,
		Password: cfg.Databases.Redis.Password,
		DB:       cfg.Databases.Redis.Database,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &SessionStore{client: client}, nil
}

func revocationKey(tokenID string) string {
	return "revoked:" + tokenID
}

// Revoke marks a token ID as invalid until its expiry time passes.
func (s *SessionStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Already expired, nothing to track.
		return nil
	}
	return s.client.Set(ctx, revocationKey(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether the token ID has been revoked.
func (s *SessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	count, err := s.client.Exists(ctx, revocationKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return count > 0, nil
}

// Close closes the Redis client connection.
func (s *SessionStore) Close() error {
	return s.client.Close()
}
