package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dareyes/vita-cli/internal/db"
	"github.com/dareyes/vita-cli/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vita.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func setTestProfile(t *testing.T, sqldb *sql.DB) {
	t.Helper()
	err := service.SetProfile(sqldb, service.SetProfileInput{
		WeightKg:      70,
		HeightCm:      170,
		AgeYears:      25,
		Gender:        "male",
		ActivityLevel: "moderately_active",
		Goal:          "lose_weight",
	})
	if err != nil {
		t.Fatalf("set test profile: %v", err)
	}
}
