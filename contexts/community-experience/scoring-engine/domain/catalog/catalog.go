// Package catalog holds the static scoring tables: point awards per request
// lifecycle event, the ten-entry achievement catalog, and the ten-level
// progression table. Everything here is immutable data plus pure lookups.
package catalog

// Point awards per request lifecycle event.
const (
	PointsTaskComplete  = 20
	PointsTaskClaim     = 5
	PointsTaskPost      = 10
	PointsEarlyComplete = 10 // completed before the scheduled time
	PointsQuickClaim    = 5  // claimed within one hour of posting
)

// Local-hour boundaries for the time-of-day achievements.
const (
	EarlyBirdBeforeHour = 9
	NightOwlFromHour    = 22
)

// Achievement ids referenced by the engine's unlock rules.
const (
	AchievementFirstTask       = "first_task"
	AchievementFiveTasks       = "five_tasks"
	AchievementTenTasks        = "ten_tasks"
	AchievementTwentyFiveTasks = "twenty_five_tasks"
	AchievementFiftyTasks      = "fifty_tasks"
	AchievementFirstPost       = "first_post"
	AchievementWeekStreak      = "week_streak"
	AchievementMonthStreak     = "month_streak"
	AchievementEarlyBird       = "early_bird"
	AchievementNightOwl        = "night_owl"
)

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
}

// Achievements is the static catalog in display order.
var Achievements = []Achievement{
	{ID: AchievementFirstTask, Title: "Getting Started", Description: "Complete your first task", Icon: "checkmark-circle", Points: 10},
	{ID: AchievementFiveTasks, Title: "Helping Hand", Description: "Complete 5 tasks", Icon: "hand-left", Points: 25},
	{ID: AchievementTenTasks, Title: "Task Master", Description: "Complete 10 tasks", Icon: "trophy", Points: 50},
	{ID: AchievementTwentyFiveTasks, Title: "Super Helper", Description: "Complete 25 tasks", Icon: "star", Points: 100},
	{ID: AchievementFiftyTasks, Title: "Legend", Description: "Complete 50 tasks", Icon: "medal", Points: 200},
	{ID: AchievementFirstPost, Title: "Request Creator", Description: "Post your first request", Icon: "add-circle", Points: 10},
	{ID: AchievementWeekStreak, Title: "On Fire!", Description: "Complete tasks for 7 days in a row", Icon: "flame", Points: 75},
	{ID: AchievementMonthStreak, Title: "Consistency King", Description: "Complete tasks for 30 days in a row", Icon: "sparkles", Points: 250},
	{ID: AchievementEarlyBird, Title: "Early Bird", Description: "Complete a task before 9 AM", Icon: "sunny", Points: 15},
	{ID: AchievementNightOwl, Title: "Night Owl", Description: "Complete a task after 10 PM", Icon: "moon", Points: 15},
}

// FindAchievement looks up a catalog entry by id.
func FindAchievement(id string) (Achievement, bool) {
	for _, item := range Achievements {
		if item.ID == id {
			return item, true
		}
	}
	return Achievement{}, false
}

// Milestone pairs a counter threshold with the achievement it unlocks.
type Milestone struct {
	Threshold     int
	AchievementID string
}

// TaskMilestones are checked against tasksCompleted during the post-completion
// sweep; StreakMilestones against currentStreak.
var (
	TaskMilestones = []Milestone{
		{Threshold: 1, AchievementID: AchievementFirstTask},
		{Threshold: 5, AchievementID: AchievementFiveTasks},
		{Threshold: 10, AchievementID: AchievementTenTasks},
		{Threshold: 25, AchievementID: AchievementTwentyFiveTasks},
		{Threshold: 50, AchievementID: AchievementFiftyTasks},
	}
	StreakMilestones = []Milestone{
		{Threshold: 7, AchievementID: AchievementWeekStreak},
		{Threshold: 30, AchievementID: AchievementMonthStreak},
	}
)

type Level struct {
	Level     int    `json:"level"`
	MinPoints int    `json:"min_points"`
	Title     string `json:"title"`
	Color     string `json:"color"`
}

// Levels is the progression table. Thresholds are strictly increasing.
var Levels = []Level{
	{Level: 1, MinPoints: 0, Title: "Beginner", Color: "#9CA3AF"},
	{Level: 2, MinPoints: 50, Title: "Helper", Color: "#3B82F6"},
	{Level: 3, MinPoints: 150, Title: "Contributor", Color: "#10B981"},
	{Level: 4, MinPoints: 300, Title: "Pro", Color: "#8B5CF6"},
	{Level: 5, MinPoints: 500, Title: "Expert", Color: "#F59E0B"},
	{Level: 6, MinPoints: 800, Title: "Master", Color: "#EF4444"},
	{Level: 7, MinPoints: 1200, Title: "Champion", Color: "#EC4899"},
	{Level: 8, MinPoints: 1700, Title: "Legend", Color: "#F97316"},
	{Level: 9, MinPoints: 2500, Title: "Superhero", Color: "#6366F1"},
	{Level: 10, MinPoints: 5000, Title: "Ultimate", Color: "#FFD700"},
}

// LevelInfo is the resolved level plus the threshold pair callers use to draw
// progress bars. At the top level NextLevelPoints equals CurrentLevelPoints so
// progress reads as 100% without a division by zero.
type LevelInfo struct {
	Level              int    `json:"level"`
	Title              string `json:"title"`
	Color              string `json:"color"`
	CurrentLevelPoints int    `json:"current_level_points"`
	NextLevelPoints    int    `json:"next_level_points"`
}

// LevelFromPoints returns the highest level whose threshold the points reach.
// Negative input falls through to level 1.
func LevelFromPoints(points int) LevelInfo {
	for i := len(Levels) - 1; i >= 0; i-- {
		if points >= Levels[i].MinPoints {
			return levelInfoAt(i)
		}
	}
	return levelInfoAt(0)
}

func levelInfoAt(index int) LevelInfo {
	current := Levels[index]
	info := LevelInfo{
		Level:              current.Level,
		Title:              current.Title,
		Color:              current.Color,
		CurrentLevelPoints: current.MinPoints,
		NextLevelPoints:    current.MinPoints,
	}
	if index+1 < len(Levels) {
		info.NextLevelPoints = Levels[index+1].MinPoints
	}
	return info
}
