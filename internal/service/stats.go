package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dareyes/vita-cli/internal/engine"
)

// ActiveDates returns the distinct calendar days with at least one meal log.
// Meal logging is the activity criterion for streaks and days-active.
func ActiveDates(db *sql.DB) ([]time.Time, error) {
	rows, err := db.Query(`
SELECT DISTINCT substr(consumed_at, 1, 10)
FROM meal_logs
ORDER BY 1 ASC
`)
	if err != nil {
		return nil, fmt.Errorf("query active dates: %w", err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan active date: %w", err)
		}
		day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse active date %q: %w", raw, err)
		}
		dates = append(dates, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active dates: %w", err)
	}
	return dates, nil
}

// CumulativeStats builds the engine's UserStats snapshot from every log in
// the store. The engine treats the snapshot as read-only; this is the single
// place it is assembled.
func CumulativeStats(db *sql.DB, now time.Time) (engine.UserStats, error) {
	var stats engine.UserStats

	err := db.QueryRow(`SELECT COUNT(1), IFNULL(SUM(calories), 0) FROM meal_logs`).
		Scan(&stats.MealsLogged, &stats.CaloriesLogged)
	if err != nil {
		return engine.UserStats{}, fmt.Errorf("aggregate meal totals: %w", err)
	}

	err = db.QueryRow(`SELECT IFNULL(SUM(amount_ml), 0) FROM water_logs`).Scan(&stats.WaterMl)
	if err != nil {
		return engine.UserStats{}, fmt.Errorf("aggregate water total: %w", err)
	}

	err = db.QueryRow(`SELECT IFNULL(SUM(duration_min), 0) FROM exercise_logs`).Scan(&stats.ExerciseMinutes)
	if err != nil {
		return engine.UserStats{}, fmt.Errorf("aggregate exercise total: %w", err)
	}

	err = db.QueryRow(`SELECT posts, likes FROM social_stats WHERE id = 1`).
		Scan(&stats.SocialPosts, &stats.SocialLikes)
	if err != nil && err != sql.ErrNoRows {
		return engine.UserStats{}, fmt.Errorf("load social stats: %w", err)
	}

	dates, err := ActiveDates(db)
	if err != nil {
		return engine.UserStats{}, err
	}
	stats.DaysActive = len(dates)
	stats.StreakDays = engine.CurrentStreak(dates, now)

	profile, err := GetProfile(db)
	if err != nil {
		return engine.UserStats{}, err
	}
	if profile != nil {
		stats.RegisteredAt = profile.RegisteredAt
	}
	return stats, nil
}

// AchievementStatus bundles the catalog partition with total unlocked points
// for display.
type AchievementStatus struct {
	Stats          engine.UserStats
	Classification engine.Classification
	UnlockedPoints int
}

func SummarizeAchievements(db *sql.DB, cfg *engine.Config, now time.Time) (*AchievementStatus, error) {
	stats, err := CumulativeStats(db, now)
	if err != nil {
		return nil, err
	}
	eng := engine.NewAchievementEngine(cfg)
	return &AchievementStatus{
		Stats:          stats,
		Classification: eng.Classify(stats),
		UnlockedPoints: eng.TotalPoints(eng.Unlocked(stats)),
	}, nil
}

// RecordSocial bumps the imported social counters, keeping achievement
// sources for posts and likes current.
func RecordSocial(db *sql.DB, posts, likes int) error {
	if err := validateNonNegativeInt("posts", posts); err != nil {
		return err
	}
	if err := validateNonNegativeInt("likes", likes); err != nil {
		return err
	}
	_, err := db.Exec(`
UPDATE social_stats
SET posts = posts + ?, likes = likes + ?, updated_at = CURRENT_TIMESTAMP
WHERE id = 1
`, posts, likes)
	if err != nil {
		return fmt.Errorf("record social stats: %w", err)
	}
	return nil
}
