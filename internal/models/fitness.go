package models

import "time"

type FitnessProfile struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"not null;index" json:"user_id"`
	Age                 int       `json:"age"`
	Gender              string    `json:"gender"`
	Height              float64   `json:"height"`
	Weight              float64   `json:"weight"`
	ActivityLevel       string    `json:"activity_level"`
	FitnessGoals        string    `json:"fitness_goals"`
	MedicalConditions   string    `json:"medical_conditions"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
	CreatedAt           time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time `gorm:"not null" json:"updated_at"`
}

const DefaultPlanDurationWeeks = 4

type DietPlan struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	FitnessProfileID uint      `gorm:"not null" json:"fitness_profile_id"`
	PlanName         string    `json:"plan_name"`
	PlanType         string    `json:"plan_type"`
	DailyCalories    int       `json:"daily_calories"`
	Macronutrients   string    `json:"macronutrients"`
	MealPlan         string    `json:"meal_plan"`
	DurationWeeks    int       `gorm:"not null;default:4" json:"duration_weeks"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
}

type ExerciseRoutine struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	FitnessProfileID uint      `gorm:"not null" json:"fitness_profile_id"`
	RoutineName      string    `json:"routine_name"`
	RoutineType      string    `json:"routine_type"`
	Exercises        string    `json:"exercises"`
	DurationMinutes  int       `json:"duration_minutes"`
	DifficultyLevel  string    `json:"difficulty_level"`
	FrequencyPerWeek int       `json:"frequency_per_week"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
}
