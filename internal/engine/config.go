package engine

import "fmt"

// MacroSplit is the fraction of total calories assigned to each macro.
// The three fractions sum to 1.0.
type MacroSplit struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

// BMIBounds are the lower bounds of the non-underweight categories. Each
// category is half-open [low, high); a value exactly on a bound belongs to
// the higher category.
type BMIBounds struct {
	Normal     float64
	Overweight float64
	Obese      float64
}

// Config holds every static table the engine consults. It is constructed
// explicitly (DefaultConfig or a test substitute) and passed into each
// component; the engine keeps no package-level state.
type Config struct {
	ActivityMultipliers map[ActivityLevel]float64
	GoalAdjustments     map[Goal]int
	MacroPresets        map[Goal]MacroSplit
	BMI                 BMIBounds
	IdealBMIMin         float64
	IdealBMIMax         float64
	WaterBaseMlPerKg    float64
	WaterBonusMl        map[ActivityLevel]int
	ExerciseRates       map[ExerciseType]map[Intensity]float64
	Achievements        []AchievementDef
}

// DefaultConfig returns a fresh copy of the built-in tables. Callers may
// mutate their copy (e.g. to swap the achievement catalog) without affecting
// other holders.
func DefaultConfig() *Config {
	return &Config{
		ActivityMultipliers: map[ActivityLevel]float64{
			ActivitySedentary:        1.2,
			ActivityLightlyActive:    1.375,
			ActivityModeratelyActive: 1.55,
			ActivityVeryActive:       1.725,
			ActivityExtremelyActive:  1.9,
		},
		GoalAdjustments: map[Goal]int{
			GoalLoseWeight:     -500,
			GoalMaintainWeight: 0,
			GoalGainWeight:     500,
			GoalBuildMuscle:    300,
		},
		MacroPresets: map[Goal]MacroSplit{
			GoalLoseWeight:     {Protein: 0.40, Carbs: 0.30, Fat: 0.30},
			GoalMaintainWeight: {Protein: 0.30, Carbs: 0.40, Fat: 0.30},
			GoalGainWeight:     {Protein: 0.25, Carbs: 0.50, Fat: 0.25},
			GoalBuildMuscle:    {Protein: 0.35, Carbs: 0.45, Fat: 0.20},
		},
		BMI:              BMIBounds{Normal: 18.5, Overweight: 25, Obese: 30},
		IdealBMIMin:      18.5,
		IdealBMIMax:      24.9,
		WaterBaseMlPerKg: 33,
		WaterBonusMl: map[ActivityLevel]int{
			ActivitySedentary:        0,
			ActivityLightlyActive:    250,
			ActivityModeratelyActive: 500,
			ActivityVeryActive:       750,
			ActivityExtremelyActive:  1000,
		},
		ExerciseRates: map[ExerciseType]map[Intensity]float64{
			ExerciseRunning:          {IntensityLow: 7.0, IntensityModerate: 9.8, IntensityHigh: 12.3},
			ExerciseCycling:          {IntensityLow: 5.8, IntensityModerate: 7.5, IntensityHigh: 10.0},
			ExerciseSwimming:         {IntensityLow: 5.5, IntensityModerate: 7.0, IntensityHigh: 9.8},
			ExerciseWalking:          {IntensityLow: 2.8, IntensityModerate: 3.5, IntensityHigh: 4.5},
			ExerciseStrengthTraining: {IntensityLow: 3.5, IntensityModerate: 5.0, IntensityHigh: 6.0},
			ExerciseYoga:             {IntensityLow: 2.3, IntensityModerate: 3.0, IntensityHigh: 4.0},
			ExerciseHIIT:             {IntensityLow: 8.0, IntensityModerate: 10.0, IntensityHigh: 12.5},
		},
		Achievements: defaultAchievements(),
	}
}

// Validate checks the structural invariants the rest of the engine relies on:
// every enum value has a table entry, multipliers are >1 and strictly
// increasing, macro presets sum to 1, and achievement ids are unique with
// positive thresholds.
func (c *Config) Validate() error {
	prev := 0.0
	for _, level := range ActivityLevels {
		mult, ok := c.ActivityMultipliers[level]
		if !ok {
			return fmt.Errorf("missing activity multiplier for %q", level)
		}
		if mult <= 1 {
			return fmt.Errorf("activity multiplier for %q must be > 1, got %.3f", level, mult)
		}
		if mult <= prev {
			return fmt.Errorf("activity multipliers must increase, %q breaks the order", level)
		}
		prev = mult
		if _, ok := c.WaterBonusMl[level]; !ok {
			return fmt.Errorf("missing water bonus for %q", level)
		}
	}
	for _, goal := range Goals {
		if _, ok := c.GoalAdjustments[goal]; !ok {
			return fmt.Errorf("missing calorie adjustment for %q", goal)
		}
		split, ok := c.MacroPresets[goal]
		if !ok {
			return fmt.Errorf("missing macro preset for %q", goal)
		}
		sum := split.Protein + split.Carbs + split.Fat
		if sum < 0.999 || sum > 1.001 {
			return fmt.Errorf("macro preset for %q must sum to 1.0, got %.3f", goal, sum)
		}
	}
	seen := make(map[string]bool, len(c.Achievements))
	for _, def := range c.Achievements {
		if def.ID == "" {
			return fmt.Errorf("achievement with empty id")
		}
		if seen[def.ID] {
			return fmt.Errorf("duplicate achievement id %q", def.ID)
		}
		seen[def.ID] = true
		if def.Threshold <= 0 {
			return fmt.Errorf("achievement %q threshold must be > 0", def.ID)
		}
		if _, err := statValue(UserStats{}, def.Stat); err != nil {
			return fmt.Errorf("achievement %q: %w", def.ID, err)
		}
	}
	return nil
}
