package service_test

import (
	"testing"
	"time"

	"github.com/dareyes/vita-cli/internal/service"
)

func TestCumulativeStatsAndStreak(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	setTestProfile(t, sqldb)
	today := time.Date(2026, 5, 12, 10, 0, 0, 0, time.Local)

	// three consecutive active days ending today, plus an older gapped day
	for _, offset := range []int{-5, -2, -1, 0} {
		day := today.AddDate(0, 0, offset)
		if _, err := service.AddMeal(sqldb, service.AddMealInput{
			Name:       "Meal",
			Calories:   600,
			ConsumedAt: day,
		}); err != nil {
			t.Fatalf("add meal at offset %d: %v", offset, err)
		}
	}
	if _, err := service.AddWater(sqldb, service.AddWaterInput{AmountMl: 2000, ConsumedAt: today}); err != nil {
		t.Fatalf("add water: %v", err)
	}
	if _, _, err := service.AddExercise(sqldb, nil, service.AddExerciseInput{
		ExerciseType: "cycling",
		Intensity:    "moderate",
		DurationMin:  45,
		PerformedAt:  today,
	}); err != nil {
		t.Fatalf("add exercise: %v", err)
	}

	stats, err := service.CumulativeStats(sqldb, today)
	if err != nil {
		t.Fatalf("cumulative stats: %v", err)
	}
	if stats.MealsLogged != 4 {
		t.Fatalf("expected 4 meals logged, got %d", stats.MealsLogged)
	}
	if stats.CaloriesLogged != 2400 {
		t.Fatalf("expected 2400 calories logged, got %d", stats.CaloriesLogged)
	}
	if stats.WaterMl != 2000 {
		t.Fatalf("expected 2000 ml water, got %d", stats.WaterMl)
	}
	if stats.ExerciseMinutes != 45 {
		t.Fatalf("expected 45 exercise minutes, got %d", stats.ExerciseMinutes)
	}
	if stats.DaysActive != 4 {
		t.Fatalf("expected 4 active days, got %d", stats.DaysActive)
	}
	if stats.StreakDays != 3 {
		t.Fatalf("expected streak of 3, got %d", stats.StreakDays)
	}
	if stats.RegisteredAt.IsZero() {
		t.Fatalf("expected registration date from profile")
	}
}

func TestSummarizeAchievements(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	today := time.Date(2026, 5, 12, 10, 0, 0, 0, time.Local)
	if _, err := service.AddMeal(sqldb, service.AddMealInput{Name: "First", Calories: 400, ConsumedAt: today}); err != nil {
		t.Fatalf("add meal: %v", err)
	}

	status, err := service.SummarizeAchievements(sqldb, nil, today)
	if err != nil {
		t.Fatalf("summarize achievements: %v", err)
	}
	unlocked := make(map[string]bool)
	for _, def := range status.Classification.Unlocked {
		unlocked[def.ID] = true
	}
	if !unlocked["first_meal"] {
		t.Fatalf("expected first_meal unlocked, got %v", unlocked)
	}
	if status.UnlockedPoints <= 0 {
		t.Fatalf("expected positive unlocked points, got %d", status.UnlockedPoints)
	}
}

func TestRecordSocialFeedsAchievements(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	if err := service.RecordSocial(sqldb, 1, 3); err != nil {
		t.Fatalf("record social: %v", err)
	}
	if err := service.RecordSocial(sqldb, 0, 2); err != nil {
		t.Fatalf("record more social: %v", err)
	}

	stats, err := service.CumulativeStats(sqldb, time.Now())
	if err != nil {
		t.Fatalf("cumulative stats: %v", err)
	}
	if stats.SocialPosts != 1 || stats.SocialLikes != 5 {
		t.Fatalf("expected 1 post and 5 likes, got %d/%d", stats.SocialPosts, stats.SocialLikes)
	}

	if err := service.RecordSocial(sqldb, -1, 0); err == nil {
		t.Fatalf("expected error for negative posts")
	}
}
