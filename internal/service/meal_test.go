package service_test

import (
	"testing"
	"time"

	"github.com/dareyes/vita-cli/internal/service"
)

func TestAddAndListMeals(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	when := time.Date(2026, 5, 10, 8, 0, 0, 0, time.Local)
	id, err := service.AddMeal(sqldb, service.AddMealInput{
		Name:       "Oatmeal",
		Calories:   350,
		ProteinG:   12,
		CarbsG:     60,
		FatG:       6,
		MealType:   "breakfast",
		ConsumedAt: when,
	})
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive meal id, got %d", id)
	}
	if _, err := service.AddMeal(sqldb, service.AddMealInput{
		Name:       "Chicken salad",
		Calories:   520,
		MealType:   "lunch",
		ConsumedAt: when.Add(5 * time.Hour),
	}); err != nil {
		t.Fatalf("add second meal: %v", err)
	}

	meals, err := service.ListMeals(sqldb, service.ListMealsFilter{Date: "2026-05-10"})
	if err != nil {
		t.Fatalf("list meals: %v", err)
	}
	if len(meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(meals))
	}
	if meals[0].Name != "Chicken salad" {
		t.Fatalf("expected newest meal first, got %q", meals[0].Name)
	}

	lunches, err := service.ListMeals(sqldb, service.ListMealsFilter{Date: "2026-05-10", MealType: "lunch"})
	if err != nil {
		t.Fatalf("list lunches: %v", err)
	}
	if len(lunches) != 1 || lunches[0].MealType != "lunch" {
		t.Fatalf("expected one lunch, got %+v", lunches)
	}
}

func TestAddMealValidation(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	if _, err := service.AddMeal(sqldb, service.AddMealInput{Name: "", Calories: 100}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := service.AddMeal(sqldb, service.AddMealInput{Name: "Toast", Calories: -1}); err == nil {
		t.Fatalf("expected error for negative calories")
	}
	if _, err := service.AddMeal(sqldb, service.AddMealInput{Name: "Toast", Calories: 100, MealType: "brunch"}); err == nil {
		t.Fatalf("expected error for unknown meal type")
	}
}

func TestDeleteMeal(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	defer sqldb.Close()

	id, err := service.AddMeal(sqldb, service.AddMealInput{Name: "Toast", Calories: 180})
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if err := service.DeleteMeal(sqldb, id); err != nil {
		t.Fatalf("delete meal: %v", err)
	}
	if err := service.DeleteMeal(sqldb, id); err == nil {
		t.Fatalf("expected error deleting missing meal")
	}
}
