package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dareyes/vita-cli/internal/model"
)

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

type AddMealInput struct {
	Name       string
	Calories   int
	ProteinG   float64
	CarbsG     float64
	FatG       float64
	MealType   string
	ConsumedAt time.Time
	Notes      string
}

type ListMealsFilter struct {
	Date     string
	FromDate string
	ToDate   string
	MealType string
	Limit    int
}

func AddMeal(db *sql.DB, in AddMealInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, fmt.Errorf("meal name is required")
	}
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("protein", in.ProteinG); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("carbs", in.CarbsG); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("fat", in.FatG); err != nil {
		return 0, err
	}
	mealType := strings.ToLower(strings.TrimSpace(in.MealType))
	if mealType == "" {
		mealType = "snack"
	}
	if !mealTypes[mealType] {
		return 0, fmt.Errorf("invalid meal type %q (use breakfast, lunch, dinner, or snack)", in.MealType)
	}
	if in.ConsumedAt.IsZero() {
		in.ConsumedAt = time.Now()
	}

	res, err := db.Exec(`
INSERT INTO meal_logs(name, calories, protein_g, carbs_g, fat_g, meal_type, consumed_at, notes)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, in.Name, in.Calories, in.ProteinG, in.CarbsG, in.FatG, mealType, in.ConsumedAt.Format(time.RFC3339), strings.TrimSpace(in.Notes))
	if err != nil {
		return 0, fmt.Errorf("add meal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve meal id: %w", err)
	}
	return id, nil
}

func ListMeals(db *sql.DB, f ListMealsFilter) ([]model.MealLog, error) {
	if strings.TrimSpace(f.Date) != "" && (strings.TrimSpace(f.FromDate) != "" || strings.TrimSpace(f.ToDate) != "") {
		return nil, fmt.Errorf("--date cannot be combined with --from or --to")
	}

	query := `SELECT id, name, calories, protein_g, carbs_g, fat_g, meal_type, consumed_at, IFNULL(notes, '') FROM meal_logs WHERE 1=1`
	args := make([]any, 0)
	if strings.TrimSpace(f.Date) != "" {
		start, end, err := dayBounds(f.Date)
		if err != nil {
			return nil, err
		}
		query += ` AND consumed_at >= ? AND consumed_at < ?`
		args = append(args, start, end)
	}
	if strings.TrimSpace(f.FromDate) != "" {
		from, err := parseDateStart(f.FromDate)
		if err != nil {
			return nil, err
		}
		query += ` AND consumed_at >= ?`
		args = append(args, from)
	}
	if strings.TrimSpace(f.ToDate) != "" {
		to, err := parseDateEndExclusive(f.ToDate)
		if err != nil {
			return nil, err
		}
		query += ` AND consumed_at < ?`
		args = append(args, to)
	}
	if strings.TrimSpace(f.MealType) != "" {
		query += ` AND meal_type = ?`
		args = append(args, strings.ToLower(strings.TrimSpace(f.MealType)))
	}

	query += ` ORDER BY consumed_at DESC`
	if f.Limit <= 0 {
		f.Limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, f.Limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	items := make([]model.MealLog, 0)
	for rows.Next() {
		var m model.MealLog
		var consumedRaw string
		if err := rows.Scan(&m.ID, &m.Name, &m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG, &m.MealType, &consumedRaw, &m.Notes); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		consumed, err := time.Parse(time.RFC3339, consumedRaw)
		if err != nil {
			return nil, fmt.Errorf("parse consumed_at: %w", err)
		}
		m.ConsumedAt = consumed
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}
	return items, nil
}

func DeleteMeal(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("meal id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM meal_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete meal %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("meal %d not found", id)
	}
	return nil
}
