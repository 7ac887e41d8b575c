package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dareyes/vita-cli/internal/engine"
)

// DayActuals aggregates one calendar day's raw logs into the record the
// scoring engine consumes.
func DayActuals(db *sql.DB, date time.Time) (engine.DailyActuals, error) {
	start := beginningOfDay(date).Format(time.RFC3339)
	end := beginningOfDay(date).Add(24 * time.Hour).Format(time.RFC3339)

	var actuals engine.DailyActuals
	err := db.QueryRow(`
SELECT IFNULL(SUM(calories), 0), COUNT(1)
FROM meal_logs
WHERE consumed_at >= ? AND consumed_at < ?
`, start, end).Scan(&actuals.CaloriesConsumed, &actuals.MealsLogged)
	if err != nil {
		return engine.DailyActuals{}, fmt.Errorf("aggregate meals: %w", err)
	}

	err = db.QueryRow(`
SELECT IFNULL(SUM(amount_ml), 0)
FROM water_logs
WHERE consumed_at >= ? AND consumed_at < ?
`, start, end).Scan(&actuals.WaterMl)
	if err != nil {
		return engine.DailyActuals{}, fmt.Errorf("aggregate water: %w", err)
	}

	err = db.QueryRow(`
SELECT IFNULL(SUM(duration_min), 0)
FROM exercise_logs
WHERE performed_at >= ? AND performed_at < ?
`, start, end).Scan(&actuals.ExerciseMinutes)
	if err != nil {
		return engine.DailyActuals{}, fmt.Errorf("aggregate exercise: %w", err)
	}
	return actuals, nil
}

// DayStatus is one day's actuals against the profile's targets, with the
// adherence score breakdown.
type DayStatus struct {
	Date    string
	Actuals engine.DailyActuals
	Targets engine.NutritionTargets
	Score   engine.DailyScore
}

// SummarizeDay computes targets from the stored profile, aggregates the
// day's logs, and scores them. The score is derived on demand and never
// persisted.
func SummarizeDay(db *sql.DB, cfg *engine.Config, date time.Time) (*DayStatus, error) {
	summary, err := SummarizeProfile(db, cfg)
	if err != nil {
		return nil, err
	}
	actuals, err := DayActuals(db, date)
	if err != nil {
		return nil, err
	}
	return &DayStatus{
		Date:    beginningOfDay(date).Format("2006-01-02"),
		Actuals: actuals,
		Targets: summary.Targets,
		Score:   engine.NewDailyScorer(cfg).Score(actuals, summary.Targets),
	}, nil
}
