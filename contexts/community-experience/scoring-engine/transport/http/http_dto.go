package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AchievementDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
	UnlockedAt  string `json:"unlocked_at,omitempty"`
}

type UserStatsResponse struct {
	Status string `json:"status"`
	Data   struct {
		UserID           string           `json:"user_id"`
		PoolID           string           `json:"pool_id"`
		Points           int              `json:"points"`
		Level            int              `json:"level"`
		LevelTitle       string           `json:"level_title"`
		LevelColor       string           `json:"level_color"`
		TasksCompleted   int              `json:"tasks_completed"`
		TasksClaimed     int              `json:"tasks_claimed"`
		TasksPosted      int              `json:"tasks_posted"`
		CurrentStreak    int              `json:"current_streak"`
		LongestStreak    int              `json:"longest_streak"`
		LastActivityDate string           `json:"last_activity_date,omitempty"`
		Achievements     []AchievementDTO `json:"achievements"`
	} `json:"data"`
}

type AddPointsRequest struct {
	Points int `json:"points"`
}

type LeaderboardEntryDTO struct {
	Rank           int    `json:"rank"`
	UserID         string `json:"user_id"`
	UserName       string `json:"user_name,omitempty"`
	Points         int    `json:"points"`
	Level          int    `json:"level"`
	TasksCompleted int    `json:"tasks_completed"`
}

type LeaderboardResponse struct {
	Status string                `json:"status"`
	Data   []LeaderboardEntryDTO `json:"data"`
}

type LevelInfoResponse struct {
	Status string `json:"status"`
	Data   struct {
		Level              int    `json:"level"`
		Title              string `json:"title"`
		Color              string `json:"color"`
		CurrentLevelPoints int    `json:"current_level_points"`
		NextLevelPoints    int    `json:"next_level_points"`
	} `json:"data"`
}

type AchievementCatalogResponse struct {
	Status string           `json:"status"`
	Data   []AchievementDTO `json:"data"`
}

type LevelCatalogEntryDTO struct {
	Level     int    `json:"level"`
	MinPoints int    `json:"min_points"`
	Title     string `json:"title"`
	Color     string `json:"color"`
}

type LevelCatalogResponse struct {
	Status string                 `json:"status"`
	Data   []LevelCatalogEntryDTO `json:"data"`
}
