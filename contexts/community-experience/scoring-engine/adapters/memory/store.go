package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domainerrors "chorepool/contexts/community-experience/scoring-engine/domain/errors"
	"chorepool/contexts/community-experience/scoring-engine/domain/entities"
)

// Store keeps the statistics map in process memory. Records are returned by
// value with cloned achievement slices, and creation order is tracked so pool
// listings preserve the tie-break order the leaderboard depends on.
type Store struct {
	mu    sync.RWMutex
	stats map[string]entities.UserPoolStats
	order []string
}

func NewStore() *Store {
	return &Store{
		stats: make(map[string]entities.UserPoolStats),
		order: make([]string, 0),
	}
}

func (s *Store) GetStats(_ context.Context, userID string, poolID string) (entities.UserPoolStats, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.stats[entities.StatsKey(strings.TrimSpace(userID), strings.TrimSpace(poolID))]
	if !ok {
		return entities.UserPoolStats{}, false, nil
	}
	return cloneStats(item), true, nil
}

func (s *Store) SaveStats(_ context.Context, stats entities.UserPoolStats) error {
	if strings.TrimSpace(stats.UserID) == "" || strings.TrimSpace(stats.PoolID) == "" {
		return domainerrors.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := entities.StatsKey(stats.UserID, stats.PoolID)
	if _, ok := s.stats[key]; !ok {
		s.order = append(s.order, key)
	}
	s.stats[key] = cloneStats(stats)
	return nil
}

func (s *Store) ListStatsByPool(_ context.Context, poolID string) ([]entities.UserPoolStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	poolID = strings.TrimSpace(poolID)
	items := make([]entities.UserPoolStats, 0)
	for _, key := range s.order {
		item := s.stats[key]
		if item.PoolID == poolID {
			items = append(items, cloneStats(item))
		}
	}
	return items, nil
}

// Snapshot exports the full statistics map in its durable shape, keyed
// userId-poolId. The persistence collaborator round-trips this without loss.
func (s *Store) Snapshot() map[string]entities.UserPoolStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]entities.UserPoolStats, len(s.stats))
	for key, item := range s.stats {
		out[key] = cloneStats(item)
	}
	return out
}

// Restore replaces the store content with a previously exported snapshot.
// Creation order after a restore is the sorted key order, which keeps
// leaderboard tie-breaks deterministic across restarts.
func (s *Store) Restore(snapshot map[string]entities.UserPoolStats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = make(map[string]entities.UserPoolStats, len(snapshot))
	s.order = make([]string, 0, len(snapshot))
	for key, item := range snapshot {
		s.stats[key] = cloneStats(item)
		s.order = append(s.order, key)
	}
	sort.Strings(s.order)
}

func (s *Store) Now() time.Time {
	return time.Now()
}

func cloneStats(stats entities.UserPoolStats) entities.UserPoolStats {
	out := stats
	out.Achievements = append([]entities.UnlockedAchievement(nil), stats.Achievements...)
	if stats.LastActivityDate != nil {
		activity := *stats.LastActivityDate
		out.LastActivityDate = &activity
	}
	return out
}
