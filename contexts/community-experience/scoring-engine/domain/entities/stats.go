package entities

import "time"

// UnlockedAchievement is a catalog achievement captured at unlock time. The
// catalog fields are copied in so the durable record stays readable even if
// the catalog changes later.
type UnlockedAchievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Points      int       `json:"points"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// UserPoolStats is the per-(user, pool) scoring record. Points and all task
// counters only ever increase, Level is always derived from Points, and
// Achievements holds each id at most once in unlock order.
type UserPoolStats struct {
	UserID           string                `json:"user_id"`
	PoolID           string                `json:"pool_id"`
	Points           int                   `json:"points"`
	Level            int                   `json:"level"`
	TasksCompleted   int                   `json:"tasks_completed"`
	TasksClaimed     int                   `json:"tasks_claimed"`
	TasksPosted      int                   `json:"tasks_posted"`
	CurrentStreak    int                   `json:"current_streak"`
	LongestStreak    int                   `json:"longest_streak"`
	LastActivityDate *time.Time            `json:"last_activity_date,omitempty"`
	Achievements     []UnlockedAchievement `json:"achievements"`
}

// NewUserPoolStats returns the zeroed record created lazily on first contact.
func NewUserPoolStats(userID string, poolID string) UserPoolStats {
	return UserPoolStats{
		UserID:       userID,
		PoolID:       poolID,
		Level:        1,
		Achievements: []UnlockedAchievement{},
	}
}

// HasAchievement reports unlock membership by id. The catalog is fixed at ten
// entries, so the scan is bounded.
func (s UserPoolStats) HasAchievement(id string) bool {
	for _, item := range s.Achievements {
		if item.ID == id {
			return true
		}
	}
	return false
}

// StatsKey is the composite key persistence collaborators store records under.
func StatsKey(userID string, poolID string) string {
	return userID + "-" + poolID
}

// LeaderboardEntry is derived on demand from pool stats and never stored.
type LeaderboardEntry struct {
	UserID         string `json:"user_id"`
	Points         int    `json:"points"`
	Level          int    `json:"level"`
	TasksCompleted int    `json:"tasks_completed"`
	Rank           int    `json:"rank"`
}
