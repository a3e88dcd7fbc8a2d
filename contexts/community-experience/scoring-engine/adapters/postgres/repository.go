package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"chorepool/contexts/community-experience/scoring-engine/domain/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// AutoMigrate creates or updates the stats table.
func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&userPoolStatsModel{})
}

func (r *Repository) GetStats(ctx context.Context, userID string, poolID string) (entities.UserPoolStats, bool, error) {
	key := entities.StatsKey(strings.TrimSpace(userID), strings.TrimSpace(poolID))
	var row userPoolStatsModel
	err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.UserPoolStats{}, false, nil
		}
		return entities.UserPoolStats{}, false, r.logError("scoring_repo_get_stats_failed", err, "stats_key", key)
	}
	stats, err := row.toEntity()
	if err != nil {
		return entities.UserPoolStats{}, false, r.logError("scoring_repo_decode_stats_failed", err, "stats_key", key)
	}
	return stats, true, nil
}

func (r *Repository) SaveStats(ctx context.Context, stats entities.UserPoolStats) error {
	row, err := statsModelFromEntity(stats)
	if err != nil {
		return r.logError("scoring_repo_encode_stats_failed", err, "stats_key", row.Key)
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"points":             row.Points,
			"level":              row.Level,
			"tasks_completed":    row.TasksCompleted,
			"tasks_claimed":      row.TasksClaimed,
			"tasks_posted":       row.TasksPosted,
			"current_streak":     row.CurrentStreak,
			"longest_streak":     row.LongestStreak,
			"last_activity_date": row.LastActivityDate,
			"achievements":       row.Achievements,
			"updated_at":         row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		return r.logError("scoring_repo_save_stats_failed", create.Error, "stats_key", row.Key)
	}
	return nil
}

func (r *Repository) ListStatsByPool(ctx context.Context, poolID string) ([]entities.UserPoolStats, error) {
	var rows []userPoolStatsModel
	if err := r.db.WithContext(ctx).
		Where("pool_id = ?", strings.TrimSpace(poolID)).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("scoring_repo_list_stats_failed", err, "pool_id", strings.TrimSpace(poolID))
	}
	items := make([]entities.UserPoolStats, 0, len(rows))
	for _, row := range rows {
		stats, err := row.toEntity()
		if err != nil {
			return nil, r.logError("scoring_repo_decode_stats_failed", err, "stats_key", row.Key)
		}
		items = append(items, stats)
	}
	return items, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "community-experience/scoring-engine",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("scoring repository operation failed", fields...)
	return err
}

type userPoolStatsModel struct {
	Key              string     `gorm:"column:key;primaryKey"`
	UserID           string     `gorm:"column:user_id"`
	PoolID           string     `gorm:"column:pool_id;index"`
	Points           int        `gorm:"column:points"`
	Level            int        `gorm:"column:level"`
	TasksCompleted   int        `gorm:"column:tasks_completed"`
	TasksClaimed     int        `gorm:"column:tasks_claimed"`
	TasksPosted      int        `gorm:"column:tasks_posted"`
	CurrentStreak    int        `gorm:"column:current_streak"`
	LongestStreak    int        `gorm:"column:longest_streak"`
	LastActivityDate *time.Time `gorm:"column:last_activity_date"`
	Achievements     []byte     `gorm:"column:achievements;type:jsonb"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (userPoolStatsModel) TableName() string {
	return "user_pool_stats"
}

func statsModelFromEntity(stats entities.UserPoolStats) (userPoolStatsModel, error) {
	achievements := stats.Achievements
	if achievements == nil {
		achievements = []entities.UnlockedAchievement{}
	}
	payload, err := json.Marshal(achievements)
	if err != nil {
		return userPoolStatsModel{}, err
	}
	now := time.Now().UTC()
	return userPoolStatsModel{
		Key:              entities.StatsKey(stats.UserID, stats.PoolID),
		UserID:           stats.UserID,
		PoolID:           stats.PoolID,
		Points:           stats.Points,
		Level:            stats.Level,
		TasksCompleted:   stats.TasksCompleted,
		TasksClaimed:     stats.TasksClaimed,
		TasksPosted:      stats.TasksPosted,
		CurrentStreak:    stats.CurrentStreak,
		LongestStreak:    stats.LongestStreak,
		LastActivityDate: stats.LastActivityDate,
		Achievements:     payload,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func (m userPoolStatsModel) toEntity() (entities.UserPoolStats, error) {
	achievements := []entities.UnlockedAchievement{}
	if len(m.Achievements) > 0 {
		if err := json.Unmarshal(m.Achievements, &achievements); err != nil {
			return entities.UserPoolStats{}, err
		}
	}
	return entities.UserPoolStats{
		UserID:           m.UserID,
		PoolID:           m.PoolID,
		Points:           m.Points,
		Level:            m.Level,
		TasksCompleted:   m.TasksCompleted,
		TasksClaimed:     m.TasksClaimed,
		TasksPosted:      m.TasksPosted,
		CurrentStreak:    m.CurrentStreak,
		LongestStreak:    m.LongestStreak,
		LastActivityDate: m.LastActivityDate,
		Achievements:     achievements,
	}, nil
}
