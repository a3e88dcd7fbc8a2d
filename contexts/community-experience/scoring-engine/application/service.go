package application

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"chorepool/contexts/community-experience/scoring-engine/domain/catalog"
	"chorepool/contexts/community-experience/scoring-engine/domain/entities"
	"chorepool/contexts/community-experience/scoring-engine/ports"
)

// Service is the scoring engine. Every event operation loads one stats record,
// applies all of its sub-updates (points, level, streak, achievement unlocks)
// to that copy, and saves once, so no caller can observe a partially applied
// event.
type Service struct {
	Repo           ports.StatsRepository
	Cache          ports.LeaderboardCache
	Clock          ports.Clock
	LeaderboardTTL time.Duration
	Logger         *slog.Logger
}

// GetStats returns the record for the pair, lazily creating and persisting a
// zeroed one on first contact.
func (s Service) GetStats(ctx context.Context, userID string, poolID string) (entities.UserPoolStats, error) {
	return s.loadOrCreate(ctx, strings.TrimSpace(userID), strings.TrimSpace(poolID))
}

// AddPoints applies a direct point adjustment and recomputes the level. It
// never triggers achievement checks. Non-positive deltas are a logged no-op:
// points are monotonic and no deduction path exists.
func (s Service) AddPoints(ctx context.Context, userID string, poolID string, delta int) error {
	userID = strings.TrimSpace(userID)
	poolID = strings.TrimSpace(poolID)
	if delta <= 0 {
		resolveLogger(s.Logger).Warn("non-positive point delta ignored",
			"event", "scoring_point_delta_rejected",
			"module", "community-experience/scoring-engine",
			"layer", "application",
			"user_id", userID,
			"pool_id", poolID,
			"delta", delta,
		)
		return nil
	}
	stats, err := s.loadOrCreate(ctx, userID, poolID)
	if err != nil {
		return err
	}
	addPoints(&stats, delta)
	return s.saveStats(ctx, stats)
}

// RecordPost registers a posted request: counter, post bonus, and the
// first_post unlock applied synchronously within the same operation.
func (s Service) RecordPost(ctx context.Context, userID string, poolID string) error {
	stats, err := s.loadOrCreate(ctx, strings.TrimSpace(userID), strings.TrimSpace(poolID))
	if err != nil {
		return err
	}
	now := s.now()

	stats.TasksPosted++
	addPoints(&stats, catalog.PointsTaskPost)
	if stats.TasksPosted == 1 {
		unlock(&stats, catalog.AchievementFirstPost, now)
	}

	if err := s.saveStats(ctx, stats); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("post recorded",
		"event", "scoring_post_recorded",
		"module", "community-experience/scoring-engine",
		"layer", "application",
		"user_id", stats.UserID,
		"pool_id", stats.PoolID,
		"tasks_posted", stats.TasksPosted,
		"total_points", stats.Points,
	)
	return nil
}

// RecordClaim registers a claimed request. Claims within an hour of the post
// earn the quick-claim bonus on top of the base claim award.
func (s Service) RecordClaim(ctx context.Context, userID string, poolID string, postedAt time.Time) error {
	stats, err := s.loadOrCreate(ctx, strings.TrimSpace(userID), strings.TrimSpace(poolID))
	if err != nil {
		return err
	}
	now := s.now()

	stats.TasksClaimed++
	awarded := catalog.PointsTaskClaim
	if now.Sub(postedAt) <= time.Hour {
		awarded += catalog.PointsQuickClaim
	}
	addPoints(&stats, awarded)

	if err := s.saveStats(ctx, stats); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("claim recorded",
		"event", "scoring_claim_recorded",
		"module", "community-experience/scoring-engine",
		"layer", "application",
		"user_id", stats.UserID,
		"pool_id", stats.PoolID,
		"tasks_claimed", stats.TasksClaimed,
		"awarded_points", awarded,
	)
	return nil
}

// RecordCompletion registers a completed request: streak update, completion
// points, time-of-day unlocks, counter, and the milestone sweep, in that
// order, all against the same record.
func (s Service) RecordCompletion(ctx context.Context, userID string, poolID string, completionTime time.Time, isEarly bool) error {
	stats, err := s.loadOrCreate(ctx, strings.TrimSpace(userID), strings.TrimSpace(poolID))
	if err != nil {
		return err
	}
	now := s.now()

	switch {
	case stats.LastActivityDate == nil:
		stats.CurrentStreak = 1
	case calendarDaysBetween(*stats.LastActivityDate, now) == 0:
		// repeat completion on the same calendar day leaves the streak alone
	case calendarDaysBetween(*stats.LastActivityDate, now) == 1:
		stats.CurrentStreak++
	default:
		stats.CurrentStreak = 1
	}
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}

	awarded := catalog.PointsTaskComplete
	if isEarly {
		awarded += catalog.PointsEarlyComplete
	}
	addPoints(&stats, awarded)

	// early_bird and night_owl are mutually exclusive per completion
	hour := completionTime.Hour()
	if hour < catalog.EarlyBirdBeforeHour {
		unlock(&stats, catalog.AchievementEarlyBird, now)
	} else if hour >= catalog.NightOwlFromHour {
		unlock(&stats, catalog.AchievementNightOwl, now)
	}

	stats.TasksCompleted++
	activity := now.UTC()
	stats.LastActivityDate = &activity

	sweepMilestones(&stats, now)

	if err := s.saveStats(ctx, stats); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("completion recorded",
		"event", "scoring_completion_recorded",
		"module", "community-experience/scoring-engine",
		"layer", "application",
		"user_id", stats.UserID,
		"pool_id", stats.PoolID,
		"tasks_completed", stats.TasksCompleted,
		"current_streak", stats.CurrentStreak,
		"total_points", stats.Points,
	)
	return nil
}

// UnlockAchievement awards a single achievement by id. Unknown ids and
// repeated unlocks are no-ops; a successful unlock adds the catalog points and
// recomputes the level but never runs a further sweep.
func (s Service) UnlockAchievement(ctx context.Context, userID string, poolID string, achievementID string) error {
	stats, err := s.loadOrCreate(ctx, strings.TrimSpace(userID), strings.TrimSpace(poolID))
	if err != nil {
		return err
	}
	if !unlock(&stats, strings.TrimSpace(achievementID), s.now()) {
		return nil
	}
	return s.saveStats(ctx, stats)
}

// Leaderboard returns the full pool ranking, descending by points. Ties keep
// the relative order the records were created in, so an earlier record with
// equal points ranks above a later one.
func (s Service) Leaderboard(ctx context.Context, poolID string) ([]entities.LeaderboardEntry, error) {
	poolID = strings.TrimSpace(poolID)
	if s.Cache != nil {
		entries, found, err := s.Cache.GetLeaderboard(ctx, poolID)
		if err != nil {
			resolveLogger(s.Logger).Warn("leaderboard cache read failed",
				"event", "scoring_leaderboard_cache_read_failed",
				"module", "community-experience/scoring-engine",
				"layer", "application",
				"pool_id", poolID,
				"error", err.Error(),
			)
		} else if found {
			return entries, nil
		}
	}

	stats, err := s.Repo.ListStatsByPool(ctx, poolID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Points > stats[j].Points
	})
	entries := make([]entities.LeaderboardEntry, 0, len(stats))
	for i, item := range stats {
		entries = append(entries, entities.LeaderboardEntry{
			UserID:         item.UserID,
			Points:         item.Points,
			Level:          item.Level,
			TasksCompleted: item.TasksCompleted,
			Rank:           i + 1,
		})
	}

	if s.Cache != nil {
		if err := s.Cache.PutLeaderboard(ctx, poolID, entries, s.leaderboardTTL()); err != nil {
			resolveLogger(s.Logger).Warn("leaderboard cache write failed",
				"event", "scoring_leaderboard_cache_write_failed",
				"module", "community-experience/scoring-engine",
				"layer", "application",
				"pool_id", poolID,
				"error", err.Error(),
			)
		}
	}
	return entries, nil
}

// LevelFromPoints exposes the pure level computation on the service surface.
func (s Service) LevelFromPoints(points int) catalog.LevelInfo {
	return catalog.LevelFromPoints(points)
}

func (s Service) loadOrCreate(ctx context.Context, userID string, poolID string) (entities.UserPoolStats, error) {
	stats, found, err := s.Repo.GetStats(ctx, userID, poolID)
	if err != nil {
		return entities.UserPoolStats{}, err
	}
	if found {
		return stats, nil
	}
	stats = entities.NewUserPoolStats(userID, poolID)
	if err := s.Repo.SaveStats(ctx, stats); err != nil {
		return entities.UserPoolStats{}, err
	}
	return stats, nil
}

func (s Service) saveStats(ctx context.Context, stats entities.UserPoolStats) error {
	if err := s.Repo.SaveStats(ctx, stats); err != nil {
		return err
	}
	if s.Cache != nil {
		if err := s.Cache.InvalidatePool(ctx, stats.PoolID); err != nil {
			resolveLogger(s.Logger).Warn("leaderboard cache invalidation failed",
				"event", "scoring_leaderboard_cache_invalidate_failed",
				"module", "community-experience/scoring-engine",
				"layer", "application",
				"pool_id", stats.PoolID,
				"error", err.Error(),
			)
		}
	}
	return nil
}

// now intentionally does not normalize to UTC: the clock's location drives the
// calendar-day and time-of-day rules.
func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

func (s Service) leaderboardTTL() time.Duration {
	if s.LeaderboardTTL <= 0 {
		return 30 * time.Second
	}
	return s.LeaderboardTTL
}

func addPoints(stats *entities.UserPoolStats, delta int) {
	stats.Points += delta
	stats.Level = catalog.LevelFromPoints(stats.Points).Level
}

func unlock(stats *entities.UserPoolStats, achievementID string, now time.Time) bool {
	if stats.HasAchievement(achievementID) {
		return false
	}
	achievement, ok := catalog.FindAchievement(achievementID)
	if !ok {
		return false
	}
	addPoints(stats, achievement.Points)
	stats.Achievements = append(stats.Achievements, entities.UnlockedAchievement{
		ID:          achievement.ID,
		Title:       achievement.Title,
		Description: achievement.Description,
		Icon:        achievement.Icon,
		Points:      achievement.Points,
		UnlockedAt:  now.UTC(),
	})
	return true
}

// sweepMilestones runs against the already-updated stats and is idempotent:
// re-running with no newly crossed threshold changes nothing.
func sweepMilestones(stats *entities.UserPoolStats, now time.Time) {
	for _, milestone := range catalog.TaskMilestones {
		if stats.TasksCompleted >= milestone.Threshold {
			unlock(stats, milestone.AchievementID, now)
		}
	}
	for _, milestone := range catalog.StreakMilestones {
		if stats.CurrentStreak >= milestone.Threshold {
			unlock(stats, milestone.AchievementID, now)
		}
	}
}

// calendarDaysBetween counts whole calendar days in to's location. Rounding
// absorbs DST transitions that make a day 23 or 25 hours long.
func calendarDaysBetween(from time.Time, to time.Time) int {
	loc := to.Location()
	from = from.In(loc)
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc)
	return int(math.Round(end.Sub(start).Hours() / 24))
}
