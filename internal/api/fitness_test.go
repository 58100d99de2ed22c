package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-health/wellspring/internal/models"
)

func fitnessProfilePayload() fiber.Map {
	return fiber.Map{
		"age":            29,
		"gender":         "female",
		"height":         165.0,
		"weight":         62.0,
		"activity_level": "moderate",
		"fitness_goals":  "build strength",
	}
}

func createFitnessProfile(t *testing.T, app *fiber.App, token string) uint {
	t.Helper()

	response := performRequest(t, app, fiber.MethodPost, "/api/fitness/profile", token, fitnessProfilePayload())
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("create profile: expected 201, got %d", response.StatusCode)
	}
	return uint(decodeBody(t, response)["profile_id"].(float64))
}

func TestCreateAndUpdateFitnessProfile(t *testing.T) {
	app, database := newTestApp(t)
	account := registerAndLogin(t, app)
	profileID := createFitnessProfile(t, app, account.SessionToken)

	payload := fitnessProfilePayload()
	payload["weight"] = 60.0
	response := performRequest(t, app, fiber.MethodPut, "/api/fitness/profile/1", account.SessionToken, payload)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("update profile: expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	var profile models.FitnessProfile
	if err := database.First(&profile, profileID).Error; err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.Weight != 60.0 {
		t.Fatalf("expected updated weight 60, got %v", profile.Weight)
	}

	response = performRequest(t, app, fiber.MethodPut, "/api/fitness/profile/999", account.SessionToken, payload)
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown profile, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestUpdateRejectsOtherUsersProfile(t *testing.T) {
	app, _ := newTestApp(t)
	owner := registerAndLogin(t, app)
	profileID := createFitnessProfile(t, app, owner.SessionToken)

	response := performRequest(t, app, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "intruder",
		"email":    "intruder@example.com",
		"password": "StrongPass1",
	})
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("register second user: expected 201, got %d", response.StatusCode)
	}
	response.Body.Close()
	response = performRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "intruder",
		"password": "StrongPass1",
	})
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("login second user: expected 200, got %d", response.StatusCode)
	}
	intruderToken := decodeBody(t, response)["session_token"].(string)

	response = performRequest(t, app, fiber.MethodPut, "/api/fitness/profile/1", intruderToken, fitnessProfilePayload())
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for another user's profile %d, got %d", profileID, response.StatusCode)
	}
	response.Body.Close()
}

func TestFitnessRecommendationsPersistPlans(t *testing.T) {
	app, database := newTestApp(t)
	account := registerAndLogin(t, app)
	profileID := createFitnessProfile(t, app, account.SessionToken)

	response := performRequest(t, app, fiber.MethodPost, "/api/fitness/recommendations", account.SessionToken, fiber.Map{
		"profile_id": profileID,
	})
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("recommendations: expected 200, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)
	if payload["diet_plan_id"].(float64) == 0 || payload["exercise_routine_id"].(float64) == 0 {
		t.Fatalf("expected persisted plan ids, got %v", payload)
	}

	var dietPlan models.DietPlan
	if err := database.Where("fitness_profile_id = ?", profileID).First(&dietPlan).Error; err != nil {
		t.Fatalf("load diet plan: %v", err)
	}
	if dietPlan.PlanName != "Lean Bulk" || dietPlan.DailyCalories != 2400 {
		t.Fatalf("diet plan does not match advisor output: %+v", dietPlan)
	}

	var routine models.ExerciseRoutine
	if err := database.Where("fitness_profile_id = ?", profileID).First(&routine).Error; err != nil {
		t.Fatalf("load routine: %v", err)
	}
	if routine.RoutineName != "Push Pull Legs" || routine.FrequencyPerWeek != 4 {
		t.Fatalf("routine does not match advisor output: %+v", routine)
	}
}

func TestFitnessRecommendationsRequireProfile(t *testing.T) {
	app, _ := newTestApp(t)
	account := registerAndLogin(t, app)

	response := performRequest(t, app, fiber.MethodPost, "/api/fitness/recommendations", account.SessionToken, fiber.Map{
		"profile_id": 42,
	})
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown profile, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestListFitnessProfiles(t *testing.T) {
	app, _ := newTestApp(t)
	account := registerAndLogin(t, app)
	createFitnessProfile(t, app, account.SessionToken)
	createFitnessProfile(t, app, account.SessionToken)

	response := performRequest(t, app, fiber.MethodGet, "/api/fitness/profiles", account.SessionToken, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("profiles: expected 200, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)
	profiles := payload["profiles"].([]any)
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
}
