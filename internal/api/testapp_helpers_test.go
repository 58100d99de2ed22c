package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-health/wellspring/internal/advisor"
	"github.com/wellspring-health/wellspring/internal/db"
	"gorm.io/gorm"
)

// stubAdvisor returns canned results so handler tests never depend on an
// external prediction service.
type stubAdvisor struct {
	disease    advisor.DiseaseResult
	assessment advisor.AssessmentResult
	sentiment  advisor.SentimentResult
	fitness    advisor.FitnessResult
	combined   advisor.CombinedResult
	err        error
}

func newStubAdvisor() *stubAdvisor {
	return &stubAdvisor{
		disease: advisor.DiseaseResult{
			PredictedDiseases: []string{"hypertension"},
			RiskLevel:         "high",
			ConfidenceScore:   0.91,
			Recommendations:   []string{"reduce sodium", "see a physician"},
		},
		assessment: advisor.AssessmentResult{
			RiskLevel: "medium",
			Recommendations: []advisor.WellnessRecommendation{
				{Category: "sleep", Text: "Keep a regular bedtime", Priority: 1},
				{Category: "stress", Text: "Try a breathing exercise", Priority: 2},
			},
		},
		sentiment: advisor.SentimentResult{
			Sentiment: "negative",
			Score:     -0.6,
			Keywords:  []string{"tired", "overwhelmed"},
			Summary:   "Signs of stress in the text",
		},
		fitness: advisor.FitnessResult{
			DietPlan: advisor.DietPlanResult{
				PlanName:       "Lean Bulk",
				PlanType:       "High Protein",
				DailyCalories:  2400,
				Macronutrients: json.RawMessage(`{"protein":40,"carbs":40,"fat":20}`),
				MealPlan:       json.RawMessage(`{"breakfast":"oats"}`),
				DurationWeeks:  6,
			},
			ExercisePlan: advisor.ExercisePlanResult{
				RoutineName:      "Push Pull Legs",
				RoutineType:      "Strength",
				Exercises:        json.RawMessage(`[{"name":"squat","sets":5}]`),
				DurationMinutes:  60,
				Intensity:        "moderate",
				FrequencyPerWeek: 4,
			},
		},
		combined: advisor.CombinedResult{
			PhysicalHealthScore: 62.5,
			MentalHealthScore:   71.0,
			OverallHealthScore:  66.75,
			Recommendations:     "Focus on sleep and cardio this month",
		},
	}
}

func (stub *stubAdvisor) PredictDisease(ctx context.Context, request advisor.DiseaseRequest) (advisor.DiseaseResult, error) {
	if stub.err != nil {
		return advisor.DiseaseResult{}, stub.err
	}
	return stub.disease, nil
}

func (stub *stubAdvisor) AssessMentalHealth(ctx context.Context, request advisor.AssessmentRequest) (advisor.AssessmentResult, error) {
	if stub.err != nil {
		return advisor.AssessmentResult{}, stub.err
	}
	return stub.assessment, nil
}

func (stub *stubAdvisor) AnalyzeSentiment(ctx context.Context, request advisor.SentimentRequest) (advisor.SentimentResult, error) {
	if stub.err != nil {
		return advisor.SentimentResult{}, stub.err
	}
	return stub.sentiment, nil
}

func (stub *stubAdvisor) RecommendFitness(ctx context.Context, request advisor.FitnessRequest) (advisor.FitnessResult, error) {
	if stub.err != nil {
		return advisor.FitnessResult{}, stub.err
	}
	return stub.fitness, nil
}

func (stub *stubAdvisor) CombineHealth(ctx context.Context, request advisor.CombinedRequest) (advisor.CombinedResult, error) {
	if stub.err != nil {
		return advisor.CombinedResult{}, stub.err
	}
	return stub.combined, nil
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWithAdvisor(t, newStubAdvisor())
}

func newTestAppWithAdvisor(t *testing.T, adv advisor.Advisor) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "wellspring-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, Config{
		SecretKey:  "test-secret-key",
		SessionTTL: time.Hour,
		Advisor:    adv,
	})
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func performRequest(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()

	defer response.Body.Close()
	var payload map[string]any
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}

type testAccount struct {
	UserID       uint
	Username     string
	Password     string
	SessionToken string
	RecoveryCode string
}

func registerAndLogin(t *testing.T, app *fiber.App) testAccount {
	t.Helper()

	account := testAccount{Username: "casey", Password: "StrongPass1"}

	response := performRequest(t, app, fiber.MethodPost, "/api/auth/register", "", fiber.Map{
		"username":  account.Username,
		"email":     account.Username + "@example.com",
		"password":  account.Password,
		"full_name": "Casey Lane",
	})
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("register: expected 201, got %d", response.StatusCode)
	}
	registered := decodeBody(t, response)
	account.UserID = uint(registered["user_id"].(float64))
	account.RecoveryCode = registered["recovery_code"].(string)

	response = performRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": account.Username,
		"password": account.Password,
	})
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("login: expected 200, got %d", response.StatusCode)
	}
	account.SessionToken = decodeBody(t, response)["session_token"].(string)
	return account
}
