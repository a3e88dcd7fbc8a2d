package ports

import (
	"context"
	"time"

	"chorepool/contexts/community-experience/scoring-engine/domain/entities"
)

// StatsRepository owns the statistics map. ListStatsByPool must return records
// in creation order so leaderboard ties keep their original relative order.
type StatsRepository interface {
	GetStats(ctx context.Context, userID string, poolID string) (entities.UserPoolStats, bool, error)
	SaveStats(ctx context.Context, stats entities.UserPoolStats) error
	ListStatsByPool(ctx context.Context, poolID string) ([]entities.UserPoolStats, error)
}

// LeaderboardCache is an optional read-side cache in front of the repository.
// Cache failures are never surfaced to callers; the service falls back to the
// repository and logs.
type LeaderboardCache interface {
	GetLeaderboard(ctx context.Context, poolID string) ([]entities.LeaderboardEntry, bool, error)
	PutLeaderboard(ctx context.Context, poolID string, entries []entities.LeaderboardEntry, ttl time.Duration) error
	InvalidatePool(ctx context.Context, poolID string) error
}

type Clock interface {
	Now() time.Time
}
