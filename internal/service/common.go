package service

import (
	"fmt"
	"strings"
	"time"
)

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func dayBounds(date string) (string, string, error) {
	start, err := parseDateStart(date)
	if err != nil {
		return "", "", err
	}
	t, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return "", "", fmt.Errorf("parse RFC3339 %q: %w", start, err)
	}
	return start, t.Add(24 * time.Hour).Format(time.RFC3339), nil
}

func parseDateStart(value string) (string, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t.Format(time.RFC3339), nil
}

func parseDateEndExclusive(value string) (string, error) {
	start, err := parseDateStart(value)
	if err != nil {
		return "", err
	}
	t, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return "", fmt.Errorf("parse end date %q: %w", value, err)
	}
	return t.Add(24 * time.Hour).Format(time.RFC3339), nil
}
