package engine

import "math"

// DailyActuals is what a user actually did on one calendar day, aggregated
// from raw logs by the caller.
type DailyActuals struct {
	CaloriesConsumed int
	WaterMl          int
	ExerciseMinutes  int
	MealsLogged      int
}

// DailyScore is the 0–100 adherence score with its sub-score breakdown. It is
// recomputed from actuals and targets on demand and never stored as a source
// of truth.
type DailyScore struct {
	Total          int
	CaloriePoints  int
	WaterPoints    int
	ExercisePoints int
	MealPoints     int
}

const (
	calorieMaxPoints  = 40
	waterMaxPoints    = 20
	exerciseMaxPoints = 20
	mealMaxPoints     = 20

	exerciseFullCreditMin = 30
	pointsPerMeal         = 5
)

// DailyScorer combines a day's actuals and targets into a single score.
type DailyScorer struct {
	cfg *Config
}

func NewDailyScorer(cfg *Config) *DailyScorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &DailyScorer{cfg: cfg}
}

// Score always returns a value in [0, 100]; a zero-valued goal scores that
// sub-score as 0% adherence rather than dividing by zero.
func (s *DailyScorer) Score(actuals DailyActuals, targets NutritionTargets) DailyScore {
	score := DailyScore{
		CaloriePoints:  caloriePoints(actuals.CaloriesConsumed, targets.CalorieGoal),
		WaterPoints:    ratioPoints(actuals.WaterMl, targets.WaterMl, waterMaxPoints),
		ExercisePoints: ratioPoints(actuals.ExerciseMinutes, exerciseFullCreditMin, exerciseMaxPoints),
		MealPoints:     minInt(mealMaxPoints, actuals.MealsLogged*pointsPerMeal),
	}
	total := score.CaloriePoints + score.WaterPoints + score.ExercisePoints + score.MealPoints
	if total > 100 {
		total = 100
	}
	score.Total = total
	return score
}

// caloriePoints awards full credit inside ±10% of the goal, then degrades by
// tier. A ratio exactly on a tier boundary counts for the higher-scoring
// tier, so the tightest band is checked first with inclusive bounds.
func caloriePoints(consumed, goal int) int {
	if goal <= 0 || consumed < 0 {
		return 0
	}
	ratio := float64(consumed) / float64(goal)
	switch {
	case ratio >= 0.9 && ratio <= 1.1:
		return calorieMaxPoints
	case ratio >= 0.8 && ratio <= 1.2:
		return 30
	case ratio >= 0.7 && ratio <= 1.3:
		return 20
	default:
		return 10
	}
}

func ratioPoints(actual, goal, maxPoints int) int {
	if goal <= 0 || actual <= 0 {
		return 0
	}
	pts := int(math.Round(float64(maxPoints) * float64(actual) / float64(goal)))
	return minInt(maxPoints, pts)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
