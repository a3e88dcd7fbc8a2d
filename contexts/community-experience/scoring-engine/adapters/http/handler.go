package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"chorepool/contexts/community-experience/scoring-engine/application"
	"chorepool/contexts/community-experience/scoring-engine/domain/catalog"
	"chorepool/contexts/community-experience/scoring-engine/domain/entities"
	httptransport "chorepool/contexts/community-experience/scoring-engine/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GetStatsHandler(ctx context.Context, userID string, poolID string) (httptransport.UserStatsResponse, error) {
	stats, err := h.Service.GetStats(ctx, userID, poolID)
	if err != nil {
		return httptransport.UserStatsResponse{}, err
	}
	return statsResponse(stats), nil
}

func (h Handler) AddPointsHandler(ctx context.Context, userID string, poolID string, req httptransport.AddPointsRequest) (httptransport.UserStatsResponse, error) {
	if err := h.Service.AddPoints(ctx, userID, poolID, req.Points); err != nil {
		return httptransport.UserStatsResponse{}, err
	}
	stats, err := h.Service.GetStats(ctx, userID, poolID)
	if err != nil {
		return httptransport.UserStatsResponse{}, err
	}
	return statsResponse(stats), nil
}

func (h Handler) UnlockAchievementHandler(ctx context.Context, userID string, poolID string, achievementID string) (httptransport.UserStatsResponse, error) {
	if err := h.Service.UnlockAchievement(ctx, userID, poolID, achievementID); err != nil {
		return httptransport.UserStatsResponse{}, err
	}
	stats, err := h.Service.GetStats(ctx, userID, poolID)
	if err != nil {
		return httptransport.UserStatsResponse{}, err
	}
	return statsResponse(stats), nil
}

func (h Handler) LeaderboardHandler(ctx context.Context, poolID string) (httptransport.LeaderboardResponse, error) {
	entries, err := h.Service.Leaderboard(ctx, poolID)
	if err != nil {
		return httptransport.LeaderboardResponse{}, err
	}
	resp := httptransport.LeaderboardResponse{
		Status: "success",
		Data:   make([]httptransport.LeaderboardEntryDTO, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.Data = append(resp.Data, httptransport.LeaderboardEntryDTO{
			Rank:           entry.Rank,
			UserID:         entry.UserID,
			Points:         entry.Points,
			Level:          entry.Level,
			TasksCompleted: entry.TasksCompleted,
		})
	}
	return resp, nil
}

func (h Handler) LevelFromPointsHandler(_ context.Context, points int) httptransport.LevelInfoResponse {
	info := h.Service.LevelFromPoints(points)
	resp := httptransport.LevelInfoResponse{Status: "success"}
	resp.Data.Level = info.Level
	resp.Data.Title = info.Title
	resp.Data.Color = info.Color
	resp.Data.CurrentLevelPoints = info.CurrentLevelPoints
	resp.Data.NextLevelPoints = info.NextLevelPoints
	return resp
}

func (h Handler) ListAchievementsHandler(_ context.Context) httptransport.AchievementCatalogResponse {
	resp := httptransport.AchievementCatalogResponse{
		Status: "success",
		Data:   make([]httptransport.AchievementDTO, 0, len(catalog.Achievements)),
	}
	for _, item := range catalog.Achievements {
		resp.Data = append(resp.Data, httptransport.AchievementDTO{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Icon:        item.Icon,
			Points:      item.Points,
		})
	}
	return resp
}

func (h Handler) ListLevelsHandler(_ context.Context) httptransport.LevelCatalogResponse {
	resp := httptransport.LevelCatalogResponse{
		Status: "success",
		Data:   make([]httptransport.LevelCatalogEntryDTO, 0, len(catalog.Levels)),
	}
	for _, item := range catalog.Levels {
		resp.Data = append(resp.Data, httptransport.LevelCatalogEntryDTO{
			Level:     item.Level,
			MinPoints: item.MinPoints,
			Title:     item.Title,
			Color:     item.Color,
		})
	}
	return resp
}

func statsResponse(stats entities.UserPoolStats) httptransport.UserStatsResponse {
	level := catalog.LevelFromPoints(stats.Points)
	resp := httptransport.UserStatsResponse{Status: "success"}
	resp.Data.UserID = stats.UserID
	resp.Data.PoolID = stats.PoolID
	resp.Data.Points = stats.Points
	resp.Data.Level = stats.Level
	resp.Data.LevelTitle = level.Title
	resp.Data.LevelColor = level.Color
	resp.Data.TasksCompleted = stats.TasksCompleted
	resp.Data.TasksClaimed = stats.TasksClaimed
	resp.Data.TasksPosted = stats.TasksPosted
	resp.Data.CurrentStreak = stats.CurrentStreak
	resp.Data.LongestStreak = stats.LongestStreak
	if stats.LastActivityDate != nil {
		resp.Data.LastActivityDate = stats.LastActivityDate.UTC().Format(time.RFC3339)
	}
	resp.Data.Achievements = make([]httptransport.AchievementDTO, 0, len(stats.Achievements))
	for _, item := range stats.Achievements {
		resp.Data.Achievements = append(resp.Data.Achievements, httptransport.AchievementDTO{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Icon:        item.Icon,
			Points:      item.Points,
			UnlockedAt:  item.UnlockedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp
}
