package engine

import (
	"fmt"
	"math"
)

// MinCalorieGoal is the floor applied to every calorie goal. A deficit that
// would push the goal below this is clamped so the engine never recommends an
// unsafe intake.
const MinCalorieGoal = 1200

// DefaultWeeklyRateKg is the weight-change pace assumed by TimeToGoal when
// the caller does not supply one.
const DefaultWeeklyRateKg = 0.5

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// MacroTargets are daily macro amounts in grams.
type MacroTargets struct {
	ProteinG int
	CarbsG   int
	FatG     int
}

// NutritionTargets bundles a day's goals: calories, macros, and water.
type NutritionTargets struct {
	CalorieGoal int
	Macros      MacroTargets
	WaterMl     int
}

// WeightRange is an ideal-weight band in whole kilograms.
type WeightRange struct {
	MinKg int
	MaxKg int
}

// NutritionPlanner turns TDEE and a stated objective into daily targets.
type NutritionPlanner struct {
	cfg *Config
}

func NewNutritionPlanner(cfg *Config) *NutritionPlanner {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &NutritionPlanner{cfg: cfg}
}

// CalorieGoal applies the goal's signed adjustment to TDEE, clamped at
// MinCalorieGoal.
func (p *NutritionPlanner) CalorieGoal(tdee int, goal Goal) (int, error) {
	if tdee <= 0 {
		return 0, fmt.Errorf("tdee must be > 0")
	}
	adj, ok := p.cfg.GoalAdjustments[goal]
	if !ok {
		return 0, fmt.Errorf("%w: goal %q", ErrInvalidEnum, goal)
	}
	target := tdee + adj
	if target < MinCalorieGoal {
		target = MinCalorieGoal
	}
	return target, nil
}

// Macros splits a calorie goal by the goal's preset fractions and converts to
// grams at 4/4/9 kcal per gram. Each gram value rounds independently, so
// reconstructing calories from the grams can differ from calorieGoal by a few
// kcal; that is expected, not a bug.
func (p *NutritionPlanner) Macros(calorieGoal int, goal Goal) (MacroTargets, error) {
	if calorieGoal <= 0 {
		return MacroTargets{}, fmt.Errorf("calorie goal must be > 0")
	}
	split, ok := p.cfg.MacroPresets[goal]
	if !ok {
		return MacroTargets{}, fmt.Errorf("%w: goal %q", ErrInvalidEnum, goal)
	}
	total := float64(calorieGoal)
	return MacroTargets{
		ProteinG: int(math.Round(total * split.Protein / kcalPerGramProtein)),
		CarbsG:   int(math.Round(total * split.Carbs / kcalPerGramCarbs)),
		FatG:     int(math.Round(total * split.Fat / kcalPerGramFat)),
	}, nil
}

// WaterGoal is 33 ml per kg of body weight plus a flat bonus per activity
// tier, in ml.
func (p *NutritionPlanner) WaterGoal(weightKg float64, level ActivityLevel) (int, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	bonus, ok := p.cfg.WaterBonusMl[level]
	if !ok {
		return 0, fmt.Errorf("%w: activity level %q", ErrInvalidEnum, level)
	}
	return int(math.Round(weightKg*p.cfg.WaterBaseMlPerKg)) + bonus, nil
}

// IdealWeightRange maps BMI 18.5–24.9 onto the given height, both ends
// rounded to the nearest kg.
func (p *NutritionPlanner) IdealWeightRange(heightCm float64) (WeightRange, error) {
	if heightCm <= 0 {
		return WeightRange{}, fmt.Errorf("height must be > 0")
	}
	heightM := heightCm / 100
	sq := heightM * heightM
	return WeightRange{
		MinKg: int(math.Round(p.cfg.IdealBMIMin * sq)),
		MaxKg: int(math.Round(p.cfg.IdealBMIMax * sq)),
	}, nil
}

// TimeToGoal estimates whole weeks to reach targetKg at weeklyRateKg per
// week (DefaultWeeklyRateKg when the rate is <= 0). Returns 0 when already
// at the target.
func (p *NutritionPlanner) TimeToGoal(currentKg, targetKg, weeklyRateKg float64) (int, error) {
	if currentKg <= 0 {
		return 0, fmt.Errorf("current weight must be > 0")
	}
	if targetKg <= 0 {
		return 0, fmt.Errorf("target weight must be > 0")
	}
	if weeklyRateKg <= 0 {
		weeklyRateKg = DefaultWeeklyRateKg
	}
	delta := math.Abs(currentKg - targetKg)
	if delta == 0 {
		return 0, nil
	}
	return int(math.Ceil(delta / weeklyRateKg)), nil
}

// Targets assembles a full NutritionTargets from TDEE, weight, activity, and
// goal in one call.
func (p *NutritionPlanner) Targets(tdee int, weightKg float64, level ActivityLevel, goal Goal) (NutritionTargets, error) {
	calories, err := p.CalorieGoal(tdee, goal)
	if err != nil {
		return NutritionTargets{}, err
	}
	macros, err := p.Macros(calories, goal)
	if err != nil {
		return NutritionTargets{}, err
	}
	water, err := p.WaterGoal(weightKg, level)
	if err != nil {
		return NutritionTargets{}, err
	}
	return NutritionTargets{CalorieGoal: calories, Macros: macros, WaterMl: water}, nil
}
