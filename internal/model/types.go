package model

import "time"

type Profile struct {
	WeightKg       float64
	HeightCm       float64
	AgeYears       int
	Gender         string
	ActivityLevel  string
	Goal           string
	TargetWeightKg *float64
	RegisteredAt   time.Time
	UpdatedAt      time.Time
}

type MealLog struct {
	ID         int64
	Name       string
	Calories   int
	ProteinG   float64
	CarbsG     float64
	FatG       float64
	MealType   string
	ConsumedAt time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type WaterLog struct {
	ID         int64
	AmountMl   int
	ConsumedAt time.Time
	CreatedAt  time.Time
}

type ExerciseLog struct {
	ID             int64
	ExerciseType   string
	Intensity      string
	DurationMin    int
	CaloriesBurned int
	PerformedAt    time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type SocialStats struct {
	Posts     int
	Likes     int
	UpdatedAt time.Time
}
