package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"chorepool/contexts/community-experience/scoring-engine/domain/entities"

	"github.com/redis/go-redis/v9"
)

// Cache is a TTL-bounded leaderboard cache. It stores the fully ranked entry
// slice as one JSON value per pool; mutating scoring operations invalidate the
// pool key so readers never see a stale ranking longer than the TTL.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) GetLeaderboard(ctx context.Context, poolID string) ([]entities.LeaderboardEntry, bool, error) {
	payload, err := c.client.Get(ctx, leaderboardKey(poolID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var entries []entities.LeaderboardEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

func (c *Cache) PutLeaderboard(ctx context.Context, poolID string, entries []entities.LeaderboardEntry, ttl time.Duration) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, leaderboardKey(poolID), payload, ttl).Err()
}

func (c *Cache) InvalidatePool(ctx context.Context, poolID string) error {
	return c.client.Del(ctx, leaderboardKey(poolID)).Err()
}

func leaderboardKey(poolID string) string {
	return "leaderboard:" + poolID
}
