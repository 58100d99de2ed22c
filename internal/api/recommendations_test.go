package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-health/wellspring/internal/models"
)

func TestCombineRequiresPriorData(t *testing.T) {
	app, _ := newTestApp(t)
	account := registerAndLogin(t, app)

	response := performRequest(t, app, fiber.MethodPost, "/api/recommendations/combined", account.SessionToken, nil)
	if response.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 without prediction or assessment, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestCombineCreatesRecommendationRow(t *testing.T) {
	app, database := newTestApp(t)
	account := registerAndLogin(t, app)

	response := performRequest(t, app, fiber.MethodPost, "/api/health/predict-disease", account.SessionToken, predictDiseasePayload())
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("predict-disease: expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performRequest(t, app, fiber.MethodPost, "/api/recommendations/combined", account.SessionToken, nil)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("combined: expected 201, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)
	if payload["overall_health_score"].(float64) != 66.75 {
		t.Fatalf("expected advisor overall score to pass through, got %v", payload["overall_health_score"])
	}

	var records []models.CombinedRecommendation
	if err := database.Where("user_id = ?", account.UserID).Find(&records).Error; err != nil {
		t.Fatalf("load combined recommendations: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 combined recommendation, got %d", len(records))
	}
	if records[0].Recommendations != "Focus on sleep and cardio this month" {
		t.Fatalf("unexpected stored recommendations: %q", records[0].Recommendations)
	}
}

func TestCombinedHistoryAppends(t *testing.T) {
	app, _ := newTestApp(t)
	account := registerAndLogin(t, app)

	response := performRequest(t, app, fiber.MethodPost, "/api/health/predict-disease", account.SessionToken, predictDiseasePayload())
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("predict-disease: expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	for i := 0; i < 2; i++ {
		response = performRequest(t, app, fiber.MethodPost, "/api/recommendations/combined", account.SessionToken, nil)
		if response.StatusCode != fiber.StatusCreated {
			t.Fatalf("combined: expected 201, got %d", response.StatusCode)
		}
		response.Body.Close()
	}

	response = performRequest(t, app, fiber.MethodGet, "/api/recommendations/combined", account.SessionToken, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("combined history: expected 200, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)
	records := payload["recommendations"].([]any)
	if len(records) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(records))
	}
}
