package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dareyes/vita-cli/internal/catalog"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "achievements.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
	return path
}

func TestLoadValidCatalog(t *testing.T) {
	t.Parallel()
	path := writeCatalog(t, `
achievements:
  - id: meals_5
    name: Getting Going
    description: Log 5 meals
    category: logging
    rarity: common
    points: 10
    stat: meals_logged
    threshold: 5
  - id: big_streak
    name: Big Streak
    description: 14 day streak
    category: streaks
    rarity: rare
    points: 40
    stat: streak_days
    threshold: 14
`)
	cfg, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(cfg.Achievements) != 2 {
		t.Fatalf("expected 2 achievements, got %d", len(cfg.Achievements))
	}
	if cfg.Achievements[0].ID != "meals_5" || cfg.Achievements[0].Threshold != 5 {
		t.Fatalf("unexpected first achievement %+v", cfg.Achievements[0])
	}
	// other tables stay at defaults
	if len(cfg.ActivityMultipliers) != 5 {
		t.Fatalf("expected default activity multipliers to survive")
	}
}

func TestLoadRejectsUnknownStat(t *testing.T) {
	t.Parallel()
	path := writeCatalog(t, `
achievements:
  - id: bad
    name: Bad
    stat: unknown_stat
    threshold: 5
`)
	if _, err := catalog.Load(path); err == nil {
		t.Fatalf("expected error for unknown stat key")
	}
}

func TestLoadRejectsEmptyAndMissingFiles(t *testing.T) {
	t.Parallel()
	path := writeCatalog(t, `achievements: []`)
	if _, err := catalog.Load(path); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
	if _, err := catalog.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()
	path := writeCatalog(t, `
achievements:
  - id: dup
    name: One
    stat: meals_logged
    threshold: 1
  - id: dup
    name: Two
    stat: meals_logged
    threshold: 2
`)
	if _, err := catalog.Load(path); err == nil {
		t.Fatalf("expected error for duplicate ids")
	}
}
