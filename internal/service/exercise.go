package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dareyes/vita-cli/internal/engine"
	"github.com/dareyes/vita-cli/internal/model"
)

type AddExerciseInput struct {
	ExerciseType string
	Intensity    string
	DurationMin  int
	PerformedAt  time.Time
	Notes        string
}

// AddExercise estimates calories burned from the MET table and the stored
// profile's weight, then records the session. The exercise type and intensity
// must be known to the catalog; there is no default rate.
func AddExercise(db *sql.DB, cfg *engine.Config, in AddExerciseInput) (int64, int, error) {
	exercise, err := engine.ParseExerciseType(in.ExerciseType)
	if err != nil {
		return 0, 0, err
	}
	intensity := in.Intensity
	if strings.TrimSpace(intensity) == "" {
		intensity = string(engine.IntensityModerate)
	}
	parsedIntensity, err := engine.ParseIntensity(intensity)
	if err != nil {
		return 0, 0, err
	}
	if in.DurationMin <= 0 {
		return 0, 0, fmt.Errorf("duration must be > 0")
	}
	profile, err := requireProfile(db)
	if err != nil {
		return 0, 0, err
	}

	burned, err := engine.NewEnergyCalculator(cfg).CaloriesBurned(exercise, parsedIntensity, in.DurationMin, profile.WeightKg)
	if err != nil {
		return 0, 0, err
	}
	if in.PerformedAt.IsZero() {
		in.PerformedAt = time.Now()
	}

	res, err := db.Exec(`
INSERT INTO exercise_logs(exercise_type, intensity, duration_min, calories_burned, performed_at, notes)
VALUES(?, ?, ?, ?, ?, ?)
`, string(exercise), string(parsedIntensity), in.DurationMin, burned, in.PerformedAt.Format(time.RFC3339), strings.TrimSpace(in.Notes))
	if err != nil {
		return 0, 0, fmt.Errorf("add exercise log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, 0, fmt.Errorf("resolve exercise log id: %w", err)
	}
	return id, burned, nil
}

type ListExerciseFilter struct {
	Date         string
	FromDate     string
	ToDate       string
	ExerciseType string
	Limit        int
}

func ListExercise(db *sql.DB, f ListExerciseFilter) ([]model.ExerciseLog, error) {
	if strings.TrimSpace(f.Date) != "" && (strings.TrimSpace(f.FromDate) != "" || strings.TrimSpace(f.ToDate) != "") {
		return nil, fmt.Errorf("--date cannot be combined with --from or --to")
	}

	query := `SELECT id, exercise_type, intensity, duration_min, calories_burned, performed_at, IFNULL(notes, '') FROM exercise_logs WHERE 1=1`
	args := make([]any, 0)
	if strings.TrimSpace(f.Date) != "" {
		start, end, err := dayBounds(f.Date)
		if err != nil {
			return nil, err
		}
		query += ` AND performed_at >= ? AND performed_at < ?`
		args = append(args, start, end)
	}
	if strings.TrimSpace(f.FromDate) != "" {
		from, err := parseDateStart(f.FromDate)
		if err != nil {
			return nil, err
		}
		query += ` AND performed_at >= ?`
		args = append(args, from)
	}
	if strings.TrimSpace(f.ToDate) != "" {
		to, err := parseDateEndExclusive(f.ToDate)
		if err != nil {
			return nil, err
		}
		query += ` AND performed_at < ?`
		args = append(args, to)
	}
	if strings.TrimSpace(f.ExerciseType) != "" {
		query += ` AND exercise_type = ?`
		args = append(args, strings.ToLower(strings.TrimSpace(f.ExerciseType)))
	}

	query += ` ORDER BY performed_at DESC`
	if f.Limit <= 0 {
		f.Limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, f.Limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercise logs: %w", err)
	}
	defer rows.Close()

	items := make([]model.ExerciseLog, 0)
	for rows.Next() {
		var e model.ExerciseLog
		var performedRaw string
		if err := rows.Scan(&e.ID, &e.ExerciseType, &e.Intensity, &e.DurationMin, &e.CaloriesBurned, &performedRaw, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan exercise log: %w", err)
		}
		performed, err := time.Parse(time.RFC3339, performedRaw)
		if err != nil {
			return nil, fmt.Errorf("parse performed_at: %w", err)
		}
		e.PerformedAt = performed
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise logs: %w", err)
	}
	return items, nil
}

func DeleteExercise(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("exercise id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM exercise_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete exercise log %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("exercise log %d not found", id)
	}
	return nil
}
