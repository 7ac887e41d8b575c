package engine

import (
	"fmt"
	"math"
	"time"
)

// StatKey names the cumulative statistic an achievement reads its progress
// from. The catalog is pure data keyed by these; adding an achievement never
// adds a code path.
type StatKey string

const (
	StatMealsLogged     StatKey = "meals_logged"
	StatCaloriesLogged  StatKey = "calories_logged"
	StatExerciseMinutes StatKey = "exercise_minutes"
	StatWaterMl         StatKey = "water_ml"
	StatStreakDays      StatKey = "streak_days"
	StatDaysActive      StatKey = "days_active"
	StatSocialPosts     StatKey = "social_posts"
	StatSocialLikes     StatKey = "social_likes"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// UserStats is a read-only snapshot of a user's cumulative history. The
// engine never mutates it; the caller owns aggregation and persistence.
type UserStats struct {
	MealsLogged     int
	CaloriesLogged  int
	ExerciseMinutes int
	WaterMl         int
	StreakDays      int
	DaysActive      int
	SocialPosts     int
	SocialLikes     int
	RegisteredAt    time.Time
}

func statValue(stats UserStats, key StatKey) (int, error) {
	switch key {
	case StatMealsLogged:
		return stats.MealsLogged, nil
	case StatCaloriesLogged:
		return stats.CaloriesLogged, nil
	case StatExerciseMinutes:
		return stats.ExerciseMinutes, nil
	case StatWaterMl:
		return stats.WaterMl, nil
	case StatStreakDays:
		return stats.StreakDays, nil
	case StatDaysActive:
		return stats.DaysActive, nil
	case StatSocialPosts:
		return stats.SocialPosts, nil
	case StatSocialLikes:
		return stats.SocialLikes, nil
	default:
		return 0, fmt.Errorf("%w: stat key %q", ErrInvalidEnum, key)
	}
}

// AchievementDef is one row of the static catalog: a threshold over a single
// named statistic. Unlocking is monotonic because stats only grow.
type AchievementDef struct {
	ID          string
	Name        string
	Description string
	Category    string
	Rarity      Rarity
	Points      int
	Stat        StatKey
	Threshold   int
}

// Progress reports how far a user is toward one achievement. Percentage is
// capped at 100 even when the stat has passed the threshold.
type Progress struct {
	AchievementID string
	Current       int
	Target        int
	Percentage    int
}

// Classification partitions the catalog for one stats snapshot. InProgress
// holds locked achievements with nonzero progress; Locked holds the rest.
type Classification struct {
	Unlocked   []AchievementDef
	InProgress []AchievementDef
	Locked     []AchievementDef
}

// AchievementEngine evaluates a catalog against cumulative stats snapshots.
type AchievementEngine struct {
	cfg *Config
}

func NewAchievementEngine(cfg *Config) *AchievementEngine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &AchievementEngine{cfg: cfg}
}

// Catalog returns the definitions in catalog order.
func (e *AchievementEngine) Catalog() []AchievementDef {
	return e.cfg.Achievements
}

// Definition returns the catalog row for id.
func (e *AchievementEngine) Definition(id string) (AchievementDef, error) {
	for _, def := range e.cfg.Achievements {
		if def.ID == id {
			return def, nil
		}
	}
	return AchievementDef{}, fmt.Errorf("unknown achievement %q", id)
}

// Unlocked returns the ids of every achievement whose stat has reached its
// threshold, in catalog order. Monotonic: stats that only grow can only
// extend the result. Definitions with an unknown stat key are skipped;
// Config.Validate rejects such catalogs up front.
func (e *AchievementEngine) Unlocked(stats UserStats) []string {
	ids := make([]string, 0)
	for _, def := range e.cfg.Achievements {
		current, err := statValue(stats, def.Stat)
		if err != nil {
			continue
		}
		if current >= def.Threshold {
			ids = append(ids, def.ID)
		}
	}
	return ids
}

// NewlyUnlocked returns ids unlocked by curr but not by prev. The caller must
// capture prev strictly before the event that produced curr, or unlock
// notifications will be missed or duplicated.
func (e *AchievementEngine) NewlyUnlocked(prev, curr UserStats) []string {
	before := make(map[string]bool)
	for _, id := range e.Unlocked(prev) {
		before[id] = true
	}
	fresh := make([]string, 0)
	for _, id := range e.Unlocked(curr) {
		if !before[id] {
			fresh = append(fresh, id)
		}
	}
	return fresh
}

// Progress reports current/target/percentage for one achievement.
func (e *AchievementEngine) Progress(id string, stats UserStats) (Progress, error) {
	def, err := e.Definition(id)
	if err != nil {
		return Progress{}, err
	}
	current, err := statValue(stats, def.Stat)
	if err != nil {
		return Progress{}, err
	}
	return Progress{
		AchievementID: def.ID,
		Current:       current,
		Target:        def.Threshold,
		Percentage:    progressPercentage(current, def.Threshold),
	}, nil
}

// progressPercentage rounds to the nearest whole percent, capped at 100.
func progressPercentage(current, threshold int) int {
	if threshold <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(current) / float64(threshold)))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Classify partitions the full catalog into unlocked, in-progress, and
// locked sets for one snapshot. In-progress means the rounded percentage
// Progress would report is nonzero, so the two views never disagree: a stat
// below half a percent of its threshold stays locked. Definitions with an
// unknown stat key are skipped; Config.Validate rejects such catalogs up
// front.
func (e *AchievementEngine) Classify(stats UserStats) Classification {
	var out Classification
	for _, def := range e.cfg.Achievements {
		current, err := statValue(stats, def.Stat)
		if err != nil {
			continue
		}
		switch {
		case current >= def.Threshold:
			out.Unlocked = append(out.Unlocked, def)
		case progressPercentage(current, def.Threshold) > 0:
			out.InProgress = append(out.InProgress, def)
		default:
			out.Locked = append(out.Locked, def)
		}
	}
	return out
}

// TotalPoints sums the points of the given achievement ids. Unknown ids
// contribute nothing.
func (e *AchievementEngine) TotalPoints(ids []string) int {
	points := make(map[string]int, len(e.cfg.Achievements))
	for _, def := range e.cfg.Achievements {
		points[def.ID] = def.Points
	}
	total := 0
	for _, id := range ids {
		total += points[id]
	}
	return total
}

func defaultAchievements() []AchievementDef {
	return []AchievementDef{
		{ID: "first_meal", Name: "First Bite", Description: "Log your first meal", Category: "logging", Rarity: RarityCommon, Points: 10, Stat: StatMealsLogged, Threshold: 1},
		{ID: "meals_25", Name: "Regular", Description: "Log 25 meals", Category: "logging", Rarity: RarityCommon, Points: 25, Stat: StatMealsLogged, Threshold: 25},
		{ID: "meals_100", Name: "Centurion", Description: "Log 100 meals", Category: "logging", Rarity: RarityRare, Points: 50, Stat: StatMealsLogged, Threshold: 100},
		{ID: "meals_500", Name: "Chronicler", Description: "Log 500 meals", Category: "logging", Rarity: RarityEpic, Points: 150, Stat: StatMealsLogged, Threshold: 500},
		{ID: "calories_10k", Name: "Counter", Description: "Log 10,000 calories in total", Category: "logging", Rarity: RarityCommon, Points: 20, Stat: StatCaloriesLogged, Threshold: 10000},
		{ID: "calories_100k", Name: "Bookkeeper", Description: "Log 100,000 calories in total", Category: "logging", Rarity: RarityRare, Points: 75, Stat: StatCaloriesLogged, Threshold: 100000},
		{ID: "water_10l", Name: "Sipper", Description: "Log 10 liters of water", Category: "hydration", Rarity: RarityCommon, Points: 15, Stat: StatWaterMl, Threshold: 10000},
		{ID: "water_100l", Name: "Hydro Homie", Description: "Log 100 liters of water", Category: "hydration", Rarity: RarityRare, Points: 60, Stat: StatWaterMl, Threshold: 100000},
		{ID: "water_500l", Name: "Aquifer", Description: "Log 500 liters of water", Category: "hydration", Rarity: RarityEpic, Points: 150, Stat: StatWaterMl, Threshold: 500000},
		{ID: "exercise_60", Name: "Warm-Up", Description: "Log 60 minutes of exercise", Category: "exercise", Rarity: RarityCommon, Points: 15, Stat: StatExerciseMinutes, Threshold: 60},
		{ID: "exercise_600", Name: "Grinder", Description: "Log 600 minutes of exercise", Category: "exercise", Rarity: RarityRare, Points: 60, Stat: StatExerciseMinutes, Threshold: 600},
		{ID: "exercise_3000", Name: "Iron Will", Description: "Log 3,000 minutes of exercise", Category: "exercise", Rarity: RarityEpic, Points: 150, Stat: StatExerciseMinutes, Threshold: 3000},
		{ID: "streak_3", Name: "Warming Up", Description: "Stay active 3 days in a row", Category: "streaks", Rarity: RarityCommon, Points: 15, Stat: StatStreakDays, Threshold: 3},
		{ID: "streak_7", Name: "One Week Wonder", Description: "Stay active 7 days in a row", Category: "streaks", Rarity: RarityRare, Points: 40, Stat: StatStreakDays, Threshold: 7},
		{ID: "streak_30", Name: "Habitual", Description: "Stay active 30 days in a row", Category: "streaks", Rarity: RarityEpic, Points: 120, Stat: StatStreakDays, Threshold: 30},
		{ID: "streak_100", Name: "Unbreakable", Description: "Stay active 100 days in a row", Category: "streaks", Rarity: RarityLegendary, Points: 300, Stat: StatStreakDays, Threshold: 100},
		{ID: "active_10", Name: "Showing Up", Description: "Be active on 10 different days", Category: "milestones", Rarity: RarityCommon, Points: 20, Stat: StatDaysActive, Threshold: 10},
		{ID: "active_100", Name: "Veteran", Description: "Be active on 100 different days", Category: "milestones", Rarity: RarityEpic, Points: 120, Stat: StatDaysActive, Threshold: 100},
		{ID: "social_first_post", Name: "Ice Breaker", Description: "Share your first post", Category: "social", Rarity: RarityCommon, Points: 10, Stat: StatSocialPosts, Threshold: 1},
		{ID: "social_liked_50", Name: "Crowd Favorite", Description: "Collect 50 likes", Category: "social", Rarity: RarityRare, Points: 50, Stat: StatSocialLikes, Threshold: 50},
	}
}
