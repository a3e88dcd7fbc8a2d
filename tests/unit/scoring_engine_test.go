package unit

import (
	"context"
	"testing"
	"time"

	scoringengine "chorepool/contexts/community-experience/scoring-engine"
	scoringhttp "chorepool/contexts/community-experience/scoring-engine/transport/http"
)

func TestScoringStatsLazyCreateThroughHandler(t *testing.T) {
	module := scoringengine.NewInMemoryModule(nil)
	ctx := context.Background()

	resp, err := module.Handler.GetStatsHandler(ctx, "user-1", "pool-1")
	if err != nil {
		t.Fatalf("get stats failed: %v", err)
	}
	if resp.Data.Points != 0 || resp.Data.Level != 1 {
		t.Fatalf("fresh stats must start at zero points level 1, got %+v", resp.Data)
	}
	if resp.Data.Achievements == nil || len(resp.Data.Achievements) != 0 {
		t.Fatalf("fresh stats must carry an empty achievement list")
	}
}

func TestScoringAddPointsRecomputesLevel(t *testing.T) {
	module := scoringengine.NewInMemoryModule(nil)
	ctx := context.Background()

	resp, err := module.Handler.AddPointsHandler(ctx, "user-1", "pool-1", scoringhttp.AddPointsRequest{Points: 160})
	if err != nil {
		t.Fatalf("add points failed: %v", err)
	}
	if resp.Data.Points != 160 || resp.Data.Level != 3 {
		t.Fatalf("160 points must land on level 3, got points=%d level=%d", resp.Data.Points, resp.Data.Level)
	}

	// Non-positive deltas are ignored, not errors.
	resp, err = module.Handler.AddPointsHandler(ctx, "user-1", "pool-1", scoringhttp.AddPointsRequest{Points: -40})
	if err != nil {
		t.Fatalf("negative delta must not error: %v", err)
	}
	if resp.Data.Points != 160 {
		t.Fatalf("negative delta must be a no-op, got %d", resp.Data.Points)
	}
}

func TestScoringCompletionFlowThroughService(t *testing.T) {
	module := scoringengine.NewInMemoryModule(nil)
	ctx := context.Background()

	completionTime := time.Date(2026, time.April, 2, 7, 30, 0, 0, time.UTC)
	if err := module.Service.RecordCompletion(ctx, "user-1", "pool-1", completionTime, false); err != nil {
		t.Fatalf("record completion failed: %v", err)
	}

	resp, err := module.Handler.GetStatsHandler(ctx, "user-1", "pool-1")
	if err != nil {
		t.Fatalf("get stats failed: %v", err)
	}
	if resp.Data.TasksCompleted != 1 || resp.Data.CurrentStreak != 1 {
		t.Fatalf("unexpected counters: %+v", resp.Data)
	}

	unlocked := make(map[string]bool)
	for _, a := range resp.Data.Achievements {
		unlocked[a.ID] = true
	}
	if !unlocked["first_task"] || !unlocked["early_bird"] {
		t.Fatalf("7:30 completion must unlock first_task and early_bird, got %v", unlocked)
	}
}

func TestScoringLeaderboardRanksByPoints(t *testing.T) {
	module := scoringengine.NewInMemoryModule(nil)
	ctx := context.Background()

	if err := module.Service.AddPoints(ctx, "user-a", "pool-1", 50); err != nil {
		t.Fatalf("seed user-a failed: %v", err)
	}
	if err := module.Service.AddPoints(ctx, "user-b", "pool-1", 200); err != nil {
		t.Fatalf("seed user-b failed: %v", err)
	}

	resp, err := module.Handler.LeaderboardHandler(ctx, "pool-1")
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Data))
	}
	if resp.Data[0].UserID != "user-b" || resp.Data[0].Rank != 1 {
		t.Fatalf("user-b must rank first, got %+v", resp.Data[0])
	}
	if resp.Data[1].UserID != "user-a" || resp.Data[1].Rank != 2 {
		t.Fatalf("user-a must rank second, got %+v", resp.Data[1])
	}
}

func TestScoringCatalogEndpoints(t *testing.T) {
	module := scoringengine.NewInMemoryModule(nil)
	ctx := context.Background()

	achievements := module.Handler.ListAchievementsHandler(ctx)
	if len(achievements.Data) != 10 {
		t.Fatalf("expected 10 achievements, got %d", len(achievements.Data))
	}
	levels := module.Handler.ListLevelsHandler(ctx)
	if len(levels.Data) != 10 {
		t.Fatalf("expected 10 levels, got %d", len(levels.Data))
	}

	info := module.Handler.LevelFromPointsHandler(ctx, 5000)
	if info.Data.Level != 10 || info.Data.Title != "Ultimate" {
		t.Fatalf("5000 points must be level 10 Ultimate, got %+v", info.Data)
	}
}
