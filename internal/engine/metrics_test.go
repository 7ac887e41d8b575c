package engine_test

import (
	"errors"
	"testing"

	"github.com/dareyes/vita-cli/internal/engine"
)

func TestBMIKnownValue(t *testing.T) {
	t.Parallel()
	calc := engine.NewMetricsCalculator(nil)
	if got := calc.BMI(70, 170); got != 24.2 {
		t.Fatalf("expected BMI 24.2, got %v", got)
	}
}

func TestBMIInvalidInputReturnsSentinel(t *testing.T) {
	t.Parallel()
	calc := engine.NewMetricsCalculator(nil)
	if got := calc.BMI(0, 170); got != 0 {
		t.Fatalf("expected 0 for zero weight, got %v", got)
	}
	if got := calc.BMI(70, -1); got != 0 {
		t.Fatalf("expected 0 for negative height, got %v", got)
	}
}

func TestBMIMonotonicity(t *testing.T) {
	t.Parallel()
	calc := engine.NewMetricsCalculator(nil)
	if calc.BMI(70, 160) <= calc.BMI(70, 180) {
		t.Fatalf("BMI should decrease as height increases")
	}
	if calc.BMI(60, 170) >= calc.BMI(90, 170) {
		t.Fatalf("BMI should increase as weight increases")
	}
}

func TestBMICategoryBoundaries(t *testing.T) {
	t.Parallel()
	calc := engine.NewMetricsCalculator(nil)
	cases := []struct {
		bmi  float64
		want engine.BMICategory
	}{
		{18.49, engine.BMIUnderweight},
		{18.5, engine.BMINormal},
		{24.9, engine.BMINormal},
		{25, engine.BMIOverweight},
		{29.9, engine.BMIOverweight},
		{30, engine.BMIObese},
	}
	for _, tc := range cases {
		if got := calc.BMICategory(tc.bmi); got != tc.want {
			t.Fatalf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestBMRKnownValues(t *testing.T) {
	t.Parallel()
	calc := engine.NewMetricsCalculator(nil)
	male, err := calc.BMR(70, 170, 25, engine.GenderMale)
	if err != nil {
		t.Fatalf("male bmr: %v", err)
	}
	if male != 1643 {
		t.Fatalf("expected male BMR 1643, got %d", male)
	}
	female, err := calc.BMR(70, 170, 25, engine.GenderFemale)
	if err != nil {
		t.Fatalf("female bmr: %v", err)
	}
	if female != 1477 {
		t.Fatalf("expected female BMR 1477, got %d", female)
	}
}

func TestBMRDecreasesWithAge(t *testing.T) {
	t.Parallel()
	calc := engine.NewMetricsCalculator(nil)
	young, err := calc.BMR(70, 170, 25, engine.GenderMale)
	if err != nil {
		t.Fatalf("bmr at 25: %v", err)
	}
	old, err := calc.BMR(70, 170, 50, engine.GenderMale)
	if err != nil {
		t.Fatalf("bmr at 50: %v", err)
	}
	if young <= old {
		t.Fatalf("BMR should decrease with age: got %d at 25 vs %d at 50", young, old)
	}
}

func TestBMRRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	calc := engine.NewMetricsCalculator(nil)
	if _, err := calc.BMR(0, 170, 25, engine.GenderMale); err == nil {
		t.Fatalf("expected error for zero weight")
	}
	if _, err := calc.BMR(70, 170, 0, engine.GenderMale); err == nil {
		t.Fatalf("expected error for zero age")
	}
	if _, err := calc.BMR(70, 170, 25, engine.Gender("other")); !errors.Is(err, engine.ErrInvalidEnum) {
		t.Fatalf("expected ErrInvalidEnum for unknown gender, got %v", err)
	}
}

func TestTDEEKnownValue(t *testing.T) {
	t.Parallel()
	calc := engine.NewMetricsCalculator(nil)
	got, err := calc.TDEE(1650, engine.ActivitySedentary)
	if err != nil {
		t.Fatalf("tdee: %v", err)
	}
	if got != 1980 {
		t.Fatalf("expected TDEE 1980 for sedentary, got %d", got)
	}
}

func TestTDEERejectsUnknownActivityLevel(t *testing.T) {
	t.Parallel()
	calc := engine.NewMetricsCalculator(nil)
	if _, err := calc.TDEE(1650, engine.ActivityLevel("couch")); !errors.Is(err, engine.ErrInvalidEnum) {
		t.Fatalf("expected ErrInvalidEnum, got %v", err)
	}
}
