package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dareyes/vita-cli/internal/model"
)

type AddWaterInput struct {
	AmountMl   int
	ConsumedAt time.Time
}

func AddWater(db *sql.DB, in AddWaterInput) (int64, error) {
	if in.AmountMl <= 0 {
		return 0, fmt.Errorf("water amount must be > 0")
	}
	if in.ConsumedAt.IsZero() {
		in.ConsumedAt = time.Now()
	}
	res, err := db.Exec(`
INSERT INTO water_logs(amount_ml, consumed_at)
VALUES(?, ?)
`, in.AmountMl, in.ConsumedAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("add water log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve water log id: %w", err)
	}
	return id, nil
}

func ListWater(db *sql.DB, date string, limit int) ([]model.WaterLog, error) {
	query := `SELECT id, amount_ml, consumed_at FROM water_logs WHERE 1=1`
	args := make([]any, 0)
	if strings.TrimSpace(date) != "" {
		start, end, err := dayBounds(date)
		if err != nil {
			return nil, err
		}
		query += ` AND consumed_at >= ? AND consumed_at < ?`
		args = append(args, start, end)
	}
	query += ` ORDER BY consumed_at DESC`
	if limit <= 0 {
		limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list water logs: %w", err)
	}
	defer rows.Close()

	items := make([]model.WaterLog, 0)
	for rows.Next() {
		var w model.WaterLog
		var consumedRaw string
		if err := rows.Scan(&w.ID, &w.AmountMl, &consumedRaw); err != nil {
			return nil, fmt.Errorf("scan water log: %w", err)
		}
		consumed, err := time.Parse(time.RFC3339, consumedRaw)
		if err != nil {
			return nil, fmt.Errorf("parse consumed_at: %w", err)
		}
		w.ConsumedAt = consumed
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate water logs: %w", err)
	}
	return items, nil
}

func DeleteWater(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("water log id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM water_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete water log %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("water log %d not found", id)
	}
	return nil
}
