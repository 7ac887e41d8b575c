package engine_test

import (
	"errors"
	"testing"

	"github.com/dareyes/vita-cli/internal/engine"
)

func TestCalorieGoalAdjustments(t *testing.T) {
	t.Parallel()
	planner := engine.NewNutritionPlanner(nil)
	cases := []struct {
		goal engine.Goal
		want int
	}{
		{engine.GoalLoseWeight, 2000},
		{engine.GoalMaintainWeight, 2500},
		{engine.GoalGainWeight, 3000},
		{engine.GoalBuildMuscle, 2800},
	}
	for _, tc := range cases {
		got, err := planner.CalorieGoal(2500, tc.goal)
		if err != nil {
			t.Fatalf("calorie goal for %q: %v", tc.goal, err)
		}
		if got != tc.want {
			t.Fatalf("calorie goal for %q = %d, want %d", tc.goal, got, tc.want)
		}
	}
}

func TestCalorieGoalFloor(t *testing.T) {
	t.Parallel()
	planner := engine.NewNutritionPlanner(nil)
	got, err := planner.CalorieGoal(1500, engine.GoalLoseWeight)
	if err != nil {
		t.Fatalf("calorie goal: %v", err)
	}
	if got != engine.MinCalorieGoal {
		t.Fatalf("expected clamp to %d, got %d", engine.MinCalorieGoal, got)
	}
}

func TestCalorieGoalRejectsUnknownGoal(t *testing.T) {
	t.Parallel()
	planner := engine.NewNutritionPlanner(nil)
	if _, err := planner.CalorieGoal(2500, engine.Goal("bulk")); !errors.Is(err, engine.ErrInvalidEnum) {
		t.Fatalf("expected ErrInvalidEnum, got %v", err)
	}
}

func TestMacrosReconstructWithinTolerance(t *testing.T) {
	t.Parallel()
	planner := engine.NewNutritionPlanner(nil)
	for _, goal := range engine.Goals {
		macros, err := planner.Macros(2000, goal)
		if err != nil {
			t.Fatalf("macros for %q: %v", goal, err)
		}
		kcal := macros.ProteinG*4 + macros.CarbsG*4 + macros.FatG*9
		if kcal < 1995 || kcal > 2005 {
			t.Fatalf("macros for %q reconstruct to %d kcal, want 2000±5", goal, kcal)
		}
	}
}

func TestMacrosLoseWeightSplit(t *testing.T) {
	t.Parallel()
	planner := engine.NewNutritionPlanner(nil)
	macros, err := planner.Macros(2000, engine.GoalLoseWeight)
	if err != nil {
		t.Fatalf("macros: %v", err)
	}
	if macros.ProteinG != 200 || macros.CarbsG != 150 || macros.FatG != 67 {
		t.Fatalf("unexpected macros %+v", macros)
	}
}

func TestWaterGoalPerTier(t *testing.T) {
	t.Parallel()
	planner := engine.NewNutritionPlanner(nil)
	sedentary, err := planner.WaterGoal(70, engine.ActivitySedentary)
	if err != nil {
		t.Fatalf("sedentary water goal: %v", err)
	}
	if sedentary != 2310 {
		t.Fatalf("expected 2310 ml for sedentary 70kg, got %d", sedentary)
	}
	moderate, err := planner.WaterGoal(70, engine.ActivityModeratelyActive)
	if err != nil {
		t.Fatalf("moderate water goal: %v", err)
	}
	if moderate != 2810 {
		t.Fatalf("expected 2810 ml for moderately active 70kg, got %d", moderate)
	}
}

func TestIdealWeightRange(t *testing.T) {
	t.Parallel()
	planner := engine.NewNutritionPlanner(nil)
	r, err := planner.IdealWeightRange(170)
	if err != nil {
		t.Fatalf("ideal weight range: %v", err)
	}
	if r.MinKg != 53 || r.MaxKg != 72 {
		t.Fatalf("expected 53–72 kg for 170cm, got %d–%d", r.MinKg, r.MaxKg)
	}
	if _, err := planner.IdealWeightRange(0); err == nil {
		t.Fatalf("expected error for zero height")
	}
}

func TestTimeToGoal(t *testing.T) {
	t.Parallel()
	planner := engine.NewNutritionPlanner(nil)
	weeks, err := planner.TimeToGoal(80, 75, 0.5)
	if err != nil {
		t.Fatalf("time to goal: %v", err)
	}
	if weeks != 10 {
		t.Fatalf("expected 10 weeks, got %d", weeks)
	}
	same, err := planner.TimeToGoal(75, 75, 0.5)
	if err != nil {
		t.Fatalf("time to goal at target: %v", err)
	}
	if same != 0 {
		t.Fatalf("expected 0 weeks at target, got %d", same)
	}
	defaulted, err := planner.TimeToGoal(80, 75, 0)
	if err != nil {
		t.Fatalf("time to goal with default rate: %v", err)
	}
	if defaulted != 10 {
		t.Fatalf("expected default rate of %.1f kg/week to give 10 weeks, got %d", engine.DefaultWeeklyRateKg, defaulted)
	}
}

func TestTargetsAssemblesAllGoals(t *testing.T) {
	t.Parallel()
	planner := engine.NewNutritionPlanner(nil)
	targets, err := planner.Targets(2595, 70, engine.ActivityModeratelyActive, engine.GoalLoseWeight)
	if err != nil {
		t.Fatalf("targets: %v", err)
	}
	if targets.CalorieGoal != 2095 {
		t.Fatalf("expected calorie goal 2095, got %d", targets.CalorieGoal)
	}
	if targets.WaterMl != 2810 {
		t.Fatalf("expected water goal 2810, got %d", targets.WaterMl)
	}
	if targets.Macros.ProteinG <= 0 || targets.Macros.CarbsG <= 0 || targets.Macros.FatG <= 0 {
		t.Fatalf("expected positive macros, got %+v", targets.Macros)
	}
}
