package engine_test

import (
	"testing"

	"github.com/dareyes/vita-cli/internal/engine"
)

func TestScoreFullAdherenceDay(t *testing.T) {
	t.Parallel()
	scorer := engine.NewDailyScorer(nil)
	targets := engine.NutritionTargets{CalorieGoal: 2095, WaterMl: 2450}
	actuals := engine.DailyActuals{
		CaloriesConsumed: 2100,
		WaterMl:          2400,
		ExerciseMinutes:  30,
		MealsLogged:      3,
	}
	score := scorer.Score(actuals, targets)
	if score.CaloriePoints != 40 {
		t.Fatalf("expected 40 calorie points, got %d", score.CaloriePoints)
	}
	if score.WaterPoints != 20 {
		t.Fatalf("expected 20 water points, got %d", score.WaterPoints)
	}
	if score.ExercisePoints != 20 {
		t.Fatalf("expected 20 exercise points, got %d", score.ExercisePoints)
	}
	if score.MealPoints != 15 {
		t.Fatalf("expected 15 meal points, got %d", score.MealPoints)
	}
	if score.Total != 95 {
		t.Fatalf("expected total 95, got %d", score.Total)
	}
}

func TestScoreCalorieTierBoundaries(t *testing.T) {
	t.Parallel()
	scorer := engine.NewDailyScorer(nil)
	targets := engine.NutritionTargets{CalorieGoal: 1000}
	cases := []struct {
		consumed int
		want     int
	}{
		{1000, 40},
		{1100, 40}, // exactly 1.1 counts for the tighter tier
		{900, 40},
		{1150, 30},
		{1200, 30}, // exactly 1.2
		{800, 30},
		{1250, 20},
		{1300, 20}, // exactly 1.3
		{700, 20},
		{1400, 10},
		{500, 10},
	}
	for _, tc := range cases {
		got := scorer.Score(engine.DailyActuals{CaloriesConsumed: tc.consumed}, targets)
		if got.CaloriePoints != tc.want {
			t.Fatalf("calorie points for %d/%d = %d, want %d", tc.consumed, targets.CalorieGoal, got.CaloriePoints, tc.want)
		}
	}
}

func TestScoreWaterCappedAtMax(t *testing.T) {
	t.Parallel()
	scorer := engine.NewDailyScorer(nil)
	targets := engine.NutritionTargets{WaterMl: 2000}
	score := scorer.Score(engine.DailyActuals{WaterMl: 5000}, targets)
	if score.WaterPoints != 20 {
		t.Fatalf("expected water points capped at 20, got %d", score.WaterPoints)
	}
}

func TestScoreExercisePartialCredit(t *testing.T) {
	t.Parallel()
	scorer := engine.NewDailyScorer(nil)
	score := scorer.Score(engine.DailyActuals{ExerciseMinutes: 15}, engine.NutritionTargets{})
	if score.ExercisePoints != 10 {
		t.Fatalf("expected 10 exercise points for 15 minutes, got %d", score.ExercisePoints)
	}
	over := scorer.Score(engine.DailyActuals{ExerciseMinutes: 90}, engine.NutritionTargets{})
	if over.ExercisePoints != 20 {
		t.Fatalf("expected exercise points capped at 20, got %d", over.ExercisePoints)
	}
}

func TestScoreMealPoints(t *testing.T) {
	t.Parallel()
	scorer := engine.NewDailyScorer(nil)
	for meals, want := range map[int]int{0: 0, 1: 5, 3: 15, 4: 20, 10: 20} {
		score := scorer.Score(engine.DailyActuals{MealsLogged: meals}, engine.NutritionTargets{})
		if score.MealPoints != want {
			t.Fatalf("meal points for %d meals = %d, want %d", meals, score.MealPoints, want)
		}
	}
}

func TestScoreZeroGoalsDoNotDivideByZero(t *testing.T) {
	t.Parallel()
	scorer := engine.NewDailyScorer(nil)
	score := scorer.Score(engine.DailyActuals{
		CaloriesConsumed: 1800,
		WaterMl:          2000,
		ExerciseMinutes:  30,
		MealsLogged:      2,
	}, engine.NutritionTargets{})
	if score.CaloriePoints != 0 {
		t.Fatalf("expected 0 calorie points with zero goal, got %d", score.CaloriePoints)
	}
	if score.WaterPoints != 0 {
		t.Fatalf("expected 0 water points with zero goal, got %d", score.WaterPoints)
	}
	if score.Total != 30 {
		t.Fatalf("expected total 30 (exercise + meals only), got %d", score.Total)
	}
}

func TestScoreTotalBounded(t *testing.T) {
	t.Parallel()
	scorer := engine.NewDailyScorer(nil)
	targets := engine.NutritionTargets{CalorieGoal: 2000, WaterMl: 2000}
	score := scorer.Score(engine.DailyActuals{
		CaloriesConsumed: 2000,
		WaterMl:          4000,
		ExerciseMinutes:  120,
		MealsLogged:      8,
	}, targets)
	if score.Total != 100 {
		t.Fatalf("expected perfect day to total 100, got %d", score.Total)
	}
	empty := scorer.Score(engine.DailyActuals{}, targets)
	if empty.Total != 10 {
		t.Fatalf("expected empty day to score the minimum calorie tier, got %d", empty.Total)
	}
}
