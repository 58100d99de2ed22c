package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/wellspring-health/wellspring/internal/advisor"
	"github.com/wellspring-health/wellspring/internal/models"
)

var ErrProfileNotFound = errors.New("fitness profile not found")

const (
	defaultDietPlanName = "Personalized Diet Plan"
	defaultDietPlanType = "Balanced"
	defaultRoutineName  = "Personalized Exercise Routine"
	defaultRoutineType  = "Mixed"
)

type FitnessRepository interface {
	CreateProfile(profile *models.FitnessProfile) error
	SaveProfile(profile *models.FitnessProfile) error
	FindProfileByIDForUser(profileID uint, userID uint) (models.FitnessProfile, bool, error)
	ListProfilesByUser(userID uint) ([]models.FitnessProfile, error)
	SavePlans(dietPlan *models.DietPlan, routine *models.ExerciseRoutine) error
	ListDietPlansByUser(userID uint) ([]models.DietPlan, error)
	ListRoutinesByUser(userID uint) ([]models.ExerciseRoutine, error)
}

type FitnessProfileInput struct {
	Age                 int
	Gender              string
	Height              float64
	Weight              float64
	ActivityLevel       string
	FitnessGoals        string
	MedicalConditions   json.RawMessage
	DietaryRestrictions json.RawMessage
}

type FitnessService struct {
	records FitnessRepository
	advisor advisor.Advisor
}

func NewFitnessService(records FitnessRepository, adv advisor.Advisor) *FitnessService {
	return &FitnessService{records: records, advisor: adv}
}

func (service *FitnessService) CreateProfile(userID uint, input FitnessProfileInput) (models.FitnessProfile, error) {
	profile := models.FitnessProfile{
		UserID:              userID,
		Age:                 input.Age,
		Gender:              input.Gender,
		Height:              input.Height,
		Weight:              input.Weight,
		ActivityLevel:       input.ActivityLevel,
		FitnessGoals:        input.FitnessGoals,
		MedicalConditions:   string(input.MedicalConditions),
		DietaryRestrictions: string(input.DietaryRestrictions),
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}
	if err := service.records.CreateProfile(&profile); err != nil {
		return models.FitnessProfile{}, err
	}
	return profile, nil
}

func (service *FitnessService) UpdateProfile(userID uint, profileID uint, input FitnessProfileInput) (models.FitnessProfile, error) {
	profile, found, err := service.records.FindProfileByIDForUser(profileID, userID)
	if err != nil {
		return models.FitnessProfile{}, err
	}
	if !found {
		return models.FitnessProfile{}, ErrProfileNotFound
	}

	profile.Age = input.Age
	profile.Gender = input.Gender
	profile.Height = input.Height
	profile.Weight = input.Weight
	profile.ActivityLevel = input.ActivityLevel
	profile.FitnessGoals = input.FitnessGoals
	profile.MedicalConditions = string(input.MedicalConditions)
	profile.DietaryRestrictions = string(input.DietaryRestrictions)
	profile.UpdatedAt = time.Now()

	if err := service.records.SaveProfile(&profile); err != nil {
		return models.FitnessProfile{}, err
	}
	return profile, nil
}

func (service *FitnessService) ListProfiles(userID uint) ([]models.FitnessProfile, error) {
	return service.records.ListProfilesByUser(userID)
}

// Recommend asks the advisor for a diet plan and exercise routine generated
// from the named profile snapshot and persists both against it.
func (service *FitnessService) Recommend(ctx context.Context, userID uint, profileID uint) (models.DietPlan, models.ExerciseRoutine, advisor.FitnessResult, error) {
	profile, found, err := service.records.FindProfileByIDForUser(profileID, userID)
	if err != nil {
		return models.DietPlan{}, models.ExerciseRoutine{}, advisor.FitnessResult{}, err
	}
	if !found {
		return models.DietPlan{}, models.ExerciseRoutine{}, advisor.FitnessResult{}, ErrProfileNotFound
	}

	if service.advisor == nil {
		return models.DietPlan{}, models.ExerciseRoutine{}, advisor.FitnessResult{}, advisor.ErrUnavailable
	}
	result, err := service.advisor.RecommendFitness(ctx, advisor.FitnessRequest{
		Age:                 profile.Age,
		Gender:              profile.Gender,
		Height:              profile.Height,
		Weight:              profile.Weight,
		ActivityLevel:       profile.ActivityLevel,
		FitnessGoals:        profile.FitnessGoals,
		MedicalConditions:   json.RawMessage(profile.MedicalConditions),
		DietaryRestrictions: json.RawMessage(profile.DietaryRestrictions),
	})
	if err != nil {
		return models.DietPlan{}, models.ExerciseRoutine{}, advisor.FitnessResult{}, err
	}

	dietPlan := models.DietPlan{
		UserID:           userID,
		FitnessProfileID: profile.ID,
		PlanName:         stringOrDefault(result.DietPlan.PlanName, defaultDietPlanName),
		PlanType:         stringOrDefault(result.DietPlan.PlanType, defaultDietPlanType),
		DailyCalories:    result.DietPlan.DailyCalories,
		Macronutrients:   string(result.DietPlan.Macronutrients),
		MealPlan:         string(result.DietPlan.MealPlan),
		DurationWeeks:    result.DietPlan.DurationWeeks,
		CreatedAt:        time.Now(),
	}
	if dietPlan.DurationWeeks <= 0 {
		dietPlan.DurationWeeks = models.DefaultPlanDurationWeeks
	}

	routine := models.ExerciseRoutine{
		UserID:           userID,
		FitnessProfileID: profile.ID,
		RoutineName:      stringOrDefault(result.ExercisePlan.RoutineName, defaultRoutineName),
		RoutineType:      stringOrDefault(result.ExercisePlan.RoutineType, defaultRoutineType),
		Exercises:        string(result.ExercisePlan.Exercises),
		DurationMinutes:  result.ExercisePlan.DurationMinutes,
		DifficultyLevel:  result.ExercisePlan.Intensity,
		FrequencyPerWeek: result.ExercisePlan.FrequencyPerWeek,
		CreatedAt:        time.Now(),
	}

	if err := service.records.SavePlans(&dietPlan, &routine); err != nil {
		return models.DietPlan{}, models.ExerciseRoutine{}, advisor.FitnessResult{}, err
	}
	return dietPlan, routine, result, nil
}

func (service *FitnessService) ListDietPlans(userID uint) ([]models.DietPlan, error) {
	return service.records.ListDietPlansByUser(userID)
}

func (service *FitnessService) ListRoutines(userID uint) ([]models.ExerciseRoutine, error) {
	return service.records.ListRoutinesByUser(userID)
}

func stringOrDefault(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
