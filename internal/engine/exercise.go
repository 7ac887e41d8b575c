package engine

import (
	"fmt"
	"math"
)

// EnergyCalculator estimates calories burned for logged activities using the
// MET-like rate table.
type EnergyCalculator struct {
	cfg *Config
}

func NewEnergyCalculator(cfg *Config) *EnergyCalculator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &EnergyCalculator{cfg: cfg}
}

// CaloriesBurned computes rate × weight × hours, rounded to the nearest kcal.
// An exercise type or intensity missing from the table is an error; nothing
// falls back to a default rate.
func (c *EnergyCalculator) CaloriesBurned(exercise ExerciseType, intensity Intensity, durationMin int, weightKg float64) (int, error) {
	if durationMin <= 0 {
		return 0, fmt.Errorf("duration must be > 0")
	}
	if weightKg <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	rates, ok := c.cfg.ExerciseRates[exercise]
	if !ok {
		return 0, fmt.Errorf("%w: exercise type %q", ErrInvalidEnum, exercise)
	}
	rate, ok := rates[intensity]
	if !ok {
		return 0, fmt.Errorf("%w: intensity %q for exercise %q", ErrInvalidEnum, intensity, exercise)
	}
	return int(math.Round(rate * weightKg * float64(durationMin) / 60)), nil
}
