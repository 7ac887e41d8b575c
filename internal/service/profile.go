package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dareyes/vita-cli/internal/engine"
	"github.com/dareyes/vita-cli/internal/model"
)

type SetProfileInput struct {
	WeightKg       float64
	HeightCm       float64
	AgeYears       int
	Gender         string
	ActivityLevel  string
	Goal           string
	TargetWeightKg *float64
}

// SetProfile validates and upserts the single profile row. Enum fields are
// parsed through the engine so an unknown value is rejected here, at the
// boundary, with the offending input in the error.
func SetProfile(db *sql.DB, in SetProfileInput) error {
	if in.WeightKg <= 0 {
		return fmt.Errorf("weight must be > 0")
	}
	if in.HeightCm <= 0 {
		return fmt.Errorf("height must be > 0")
	}
	if in.AgeYears <= 0 {
		return fmt.Errorf("age must be > 0")
	}
	gender, err := engine.ParseGender(in.Gender)
	if err != nil {
		return err
	}
	level, err := engine.ParseActivityLevel(in.ActivityLevel)
	if err != nil {
		return err
	}
	goal, err := engine.ParseGoal(in.Goal)
	if err != nil {
		return err
	}
	if in.TargetWeightKg != nil && *in.TargetWeightKg <= 0 {
		return fmt.Errorf("target weight must be > 0")
	}

	_, err = db.Exec(`
INSERT INTO profiles(id, weight_kg, height_cm, age_years, gender, activity_level, goal, target_weight_kg)
VALUES(1, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  weight_kg=excluded.weight_kg,
  height_cm=excluded.height_cm,
  age_years=excluded.age_years,
  gender=excluded.gender,
  activity_level=excluded.activity_level,
  goal=excluded.goal,
  target_weight_kg=excluded.target_weight_kg,
  updated_at=CURRENT_TIMESTAMP
`, in.WeightKg, in.HeightCm, in.AgeYears, string(gender), string(level), string(goal), in.TargetWeightKg)
	if err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

// GetProfile returns the stored profile, or nil when none has been set.
func GetProfile(db *sql.DB) (*model.Profile, error) {
	var p model.Profile
	var target sql.NullFloat64
	var registeredRaw, updatedRaw string
	err := db.QueryRow(`
SELECT weight_kg, height_cm, age_years, gender, activity_level, goal, target_weight_kg, registered_at, updated_at
FROM profiles
WHERE id = 1
`).Scan(&p.WeightKg, &p.HeightCm, &p.AgeYears, &p.Gender, &p.ActivityLevel, &p.Goal, &target, &registeredRaw, &updatedRaw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if target.Valid {
		v := target.Float64
		p.TargetWeightKg = &v
	}
	p.RegisteredAt, _ = parseStoredTime(registeredRaw)
	p.UpdatedAt, _ = parseStoredTime(updatedRaw)
	return &p, nil
}

func requireProfile(db *sql.DB) (*model.Profile, error) {
	profile, err := GetProfile(db)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile set (run 'vita profile set' first)")
	}
	return profile, nil
}

// sqlite stores DEFAULT CURRENT_TIMESTAMP values in its own layout, while
// values we write go through RFC3339. Accept both.
func parseStoredTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02 15:04:05", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %w", raw, err)
	}
	return t, nil
}

// ProfileSummary is everything derived from the stored profile: body metrics
// and the daily targets that follow from them.
type ProfileSummary struct {
	Profile     model.Profile
	BMI         float64
	BMICategory engine.BMICategory
	BMR         int
	TDEE        int
	IdealWeight engine.WeightRange
	Targets     engine.NutritionTargets
	WeeksToGoal *int
}

// SummarizeProfile runs the stored profile through the engine. WeeksToGoal is
// nil when no target weight is set.
func SummarizeProfile(db *sql.DB, cfg *engine.Config) (*ProfileSummary, error) {
	profile, err := requireProfile(db)
	if err != nil {
		return nil, err
	}
	metrics := engine.NewMetricsCalculator(cfg)
	planner := engine.NewNutritionPlanner(cfg)

	bmr, err := metrics.BMR(profile.WeightKg, profile.HeightCm, profile.AgeYears, engine.Gender(profile.Gender))
	if err != nil {
		return nil, err
	}
	tdee, err := metrics.TDEE(bmr, engine.ActivityLevel(profile.ActivityLevel))
	if err != nil {
		return nil, err
	}
	ideal, err := planner.IdealWeightRange(profile.HeightCm)
	if err != nil {
		return nil, err
	}
	targets, err := planner.Targets(tdee, profile.WeightKg, engine.ActivityLevel(profile.ActivityLevel), engine.Goal(profile.Goal))
	if err != nil {
		return nil, err
	}

	summary := &ProfileSummary{
		Profile:     *profile,
		BMI:         metrics.BMI(profile.WeightKg, profile.HeightCm),
		BMR:         bmr,
		TDEE:        tdee,
		IdealWeight: ideal,
		Targets:     targets,
	}
	summary.BMICategory = metrics.BMICategory(summary.BMI)

	if profile.TargetWeightKg != nil {
		weeks, err := planner.TimeToGoal(profile.WeightKg, *profile.TargetWeightKg, engine.DefaultWeeklyRateKg)
		if err != nil {
			return nil, err
		}
		summary.WeeksToGoal = &weeks
	}
	return summary, nil
}
