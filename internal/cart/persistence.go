package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yasminebk/beautyuniverse-backend/pkg/logger"
)

// snapshotKeyPrefix namespaces every persisted cart in the shared keyspace
const snapshotKeyPrefix = "cart:snapshot:"

// SnapshotStore persists the serialized cart of one guest under a fixed
// namespaced key. Save is best-effort: callers log failures and move on,
// the in-memory cart stays authoritative for the session. Load returns an
// empty list on cold start or corruption, never an error the cart cannot
// absorb.
type SnapshotStore interface {
	Save(ctx context.Context, token string, items []LineItem) error
	Load(ctx context.Context, token string) ([]LineItem, error)
	Delete(ctx context.Context, token string) error
}

type redisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotStore returns a SnapshotStore backed by Redis. Each write
// refreshes the TTL so active carts survive and abandoned ones age out.
func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) SnapshotStore {
	return &redisSnapshotStore{client: client, ttl: ttl}
}

func (s *redisSnapshotStore) key(token string) string {
	return fmt.Sprintf("%s%s", snapshotKeyPrefix, token)
}

func (s *redisSnapshotStore) Save(ctx context.Context, token string, items []LineItem) error {
	data, err := EncodeSnapshot(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	if err := s.client.Set(ctx, s.key(token), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cart snapshot: %w", err)
	}
	return nil
}

func (s *redisSnapshotStore) Load(ctx context.Context, token string) ([]LineItem, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err == redis.Nil {
		// First visit - no saved cart
		return nil, nil
	}
	if err != nil {
		logger.Error("Failed to read cart snapshot", err, map[string]interface{}{
			"cart_token": token,
		})
		return nil, err
	}

	return DecodeSnapshot(data), nil
}

func (s *redisSnapshotStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}
