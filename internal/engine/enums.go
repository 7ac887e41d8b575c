package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnum marks a value that is not part of a closed enumeration
// (activity level, goal, exercise type, intensity, gender). Lookups never
// substitute a default for an unknown value; callers get this error instead.
var ErrInvalidEnum = errors.New("invalid enum value")

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// ActivityLevels lists all levels in ascending multiplier order.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLightlyActive,
	ActivityModeratelyActive,
	ActivityVeryActive,
	ActivityExtremelyActive,
}

type Goal string

const (
	GoalLoseWeight     Goal = "lose_weight"
	GoalMaintainWeight Goal = "maintain_weight"
	GoalGainWeight     Goal = "gain_weight"
	GoalBuildMuscle    Goal = "build_muscle"
)

var Goals = []Goal{GoalLoseWeight, GoalMaintainWeight, GoalGainWeight, GoalBuildMuscle}

type ExerciseType string

const (
	ExerciseRunning          ExerciseType = "running"
	ExerciseCycling          ExerciseType = "cycling"
	ExerciseSwimming         ExerciseType = "swimming"
	ExerciseWalking          ExerciseType = "walking"
	ExerciseStrengthTraining ExerciseType = "strength_training"
	ExerciseYoga             ExerciseType = "yoga"
	ExerciseHIIT             ExerciseType = "hiit"
)

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

func normalizeEnum(value string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "-", "_")
}

func ParseGender(value string) (Gender, error) {
	switch g := Gender(normalizeEnum(value)); g {
	case GenderMale, GenderFemale:
		return g, nil
	default:
		return "", fmt.Errorf("%w: gender %q (use male or female)", ErrInvalidEnum, value)
	}
}

func ParseActivityLevel(value string) (ActivityLevel, error) {
	switch l := ActivityLevel(normalizeEnum(value)); l {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive,
		ActivityVeryActive, ActivityExtremelyActive:
		return l, nil
	default:
		return "", fmt.Errorf("%w: activity level %q", ErrInvalidEnum, value)
	}
}

func ParseGoal(value string) (Goal, error) {
	switch g := Goal(normalizeEnum(value)); g {
	case GoalLoseWeight, GoalMaintainWeight, GoalGainWeight, GoalBuildMuscle:
		return g, nil
	default:
		return "", fmt.Errorf("%w: goal %q", ErrInvalidEnum, value)
	}
}

func ParseExerciseType(value string) (ExerciseType, error) {
	switch t := ExerciseType(normalizeEnum(value)); t {
	case ExerciseRunning, ExerciseCycling, ExerciseSwimming, ExerciseWalking,
		ExerciseStrengthTraining, ExerciseYoga, ExerciseHIIT:
		return t, nil
	default:
		return "", fmt.Errorf("%w: exercise type %q", ErrInvalidEnum, value)
	}
}

func ParseIntensity(value string) (Intensity, error) {
	switch i := Intensity(normalizeEnum(value)); i {
	case IntensityLow, IntensityModerate, IntensityHigh:
		return i, nil
	default:
		return "", fmt.Errorf("%w: intensity %q (use low, moderate, or high)", ErrInvalidEnum, value)
	}
}
