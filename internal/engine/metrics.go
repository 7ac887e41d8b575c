package engine

import (
	"fmt"
	"math"
)

// MetricsCalculator derives body metrics (BMI, BMR, TDEE) from measurements.
type MetricsCalculator struct {
	cfg *Config
}

func NewMetricsCalculator(cfg *Config) *MetricsCalculator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &MetricsCalculator{cfg: cfg}
}

// BMI returns weight/height² rounded to one decimal. A non-positive weight or
// height yields 0, the documented "undefined" sentinel; callers render that
// as missing data, never as a real BMI.
func (c *MetricsCalculator) BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*10) / 10
}

// BMICategory places a BMI into its category. Categories are half-open
// [low, high): a value exactly on a bound belongs to the higher category,
// so 18.5 is normal and 25 is overweight.
func (c *MetricsCalculator) BMICategory(bmi float64) BMICategory {
	switch {
	case bmi >= c.cfg.BMI.Obese:
		return BMIObese
	case bmi >= c.cfg.BMI.Overweight:
		return BMIOverweight
	case bmi >= c.cfg.BMI.Normal:
		return BMINormal
	default:
		return BMIUnderweight
	}
}

// BMR computes basal metabolic rate via Mifflin–St Jeor:
// 10·w + 6.25·h − 5·a, plus 5 for male or minus 161 for female, rounded to
// the nearest kcal.
func (c *MetricsCalculator) BMR(weightKg, heightCm float64, ageYears int, gender Gender) (int, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	if heightCm <= 0 {
		return 0, fmt.Errorf("height must be > 0")
	}
	if ageYears <= 0 {
		return 0, fmt.Errorf("age must be > 0")
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	switch gender {
	case GenderMale:
		bmr += 5
	case GenderFemale:
		bmr -= 161
	default:
		return 0, fmt.Errorf("%w: gender %q", ErrInvalidEnum, gender)
	}
	return int(math.Round(bmr)), nil
}

// TDEE scales BMR by the activity multiplier. An activity level missing from
// the table is an error, never a silent default.
func (c *MetricsCalculator) TDEE(bmr int, level ActivityLevel) (int, error) {
	if bmr <= 0 {
		return 0, fmt.Errorf("bmr must be > 0")
	}
	mult, ok := c.cfg.ActivityMultipliers[level]
	if !ok {
		return 0, fmt.Errorf("%w: activity level %q", ErrInvalidEnum, level)
	}
	return int(math.Round(float64(bmr) * mult)), nil
}
