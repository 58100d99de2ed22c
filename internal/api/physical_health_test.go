package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-health/wellspring/internal/models"
)

func predictDiseasePayload() fiber.Map {
	return fiber.Map{
		"age":            45,
		"gender":         "male",
		"height":         178.0,
		"weight":         92.0,
		"bp_systolic":    150,
		"bp_diastolic":   95,
		"cholesterol":    240.0,
		"blood_sugar":    110.0,
		"symptoms":       []string{"headache", "fatigue"},
		"family_history": "heart disease",
	}
}

func TestPredictDiseasePersistsInputAndPrediction(t *testing.T) {
	app, database := newTestApp(t)
	account := registerAndLogin(t, app)

	response := performRequest(t, app, fiber.MethodPost, "/api/health/predict-disease", account.SessionToken, predictDiseasePayload())
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("predict-disease: expected 200, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)
	if payload["risk_level"] != "high" {
		t.Fatalf("expected advisor risk level to pass through, got %v", payload["risk_level"])
	}
	if payload["confidence_score"].(float64) != 0.91 {
		t.Fatalf("expected advisor confidence to pass through, got %v", payload["confidence_score"])
	}

	var inputs []models.PhysicalHealthInput
	if err := database.Where("user_id = ?", account.UserID).Find(&inputs).Error; err != nil {
		t.Fatalf("load inputs: %v", err)
	}
	if len(inputs) != 1 {
		t.Fatalf("expected 1 health input, got %d", len(inputs))
	}
	if inputs[0].Age != 45 || inputs[0].BloodPressureSystolic != 150 {
		t.Fatalf("input row does not match submission: %+v", inputs[0])
	}

	var predictions []models.DiseasePrediction
	if err := database.Where("user_id = ?", account.UserID).Find(&predictions).Error; err != nil {
		t.Fatalf("load predictions: %v", err)
	}
	if len(predictions) != 1 {
		t.Fatalf("expected 1 prediction, got %d", len(predictions))
	}
	if predictions[0].HealthInputID != inputs[0].ID {
		t.Fatal("expected prediction to reference the stored input")
	}
	if predictions[0].RiskLevel != "high" {
		t.Fatalf("expected stored risk level high, got %s", predictions[0].RiskLevel)
	}
}

func TestPredictDiseaseWithoutAdvisorKeepsInput(t *testing.T) {
	app, database := newTestAppWithAdvisor(t, nil)
	account := registerAndLogin(t, app)

	response := performRequest(t, app, fiber.MethodPost, "/api/health/predict-disease", account.SessionToken, predictDiseasePayload())
	if response.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503 without an advisor, got %d", response.StatusCode)
	}
	response.Body.Close()

	// The submission itself is never lost.
	var inputs int64
	if err := database.Model(&models.PhysicalHealthInput{}).Where("user_id = ?", account.UserID).Count(&inputs).Error; err != nil {
		t.Fatalf("count inputs: %v", err)
	}
	if inputs != 1 {
		t.Fatalf("expected the input row to survive, got %d", inputs)
	}
	var predictions int64
	if err := database.Model(&models.DiseasePrediction{}).Where("user_id = ?", account.UserID).Count(&predictions).Error; err != nil {
		t.Fatalf("count predictions: %v", err)
	}
	if predictions != 0 {
		t.Fatalf("expected no prediction rows, got %d", predictions)
	}
}

func TestLastPredictionEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	account := registerAndLogin(t, app)

	response := performRequest(t, app, fiber.MethodGet, "/api/health/last-prediction", account.SessionToken, nil)
	if response.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 before any prediction, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performRequest(t, app, fiber.MethodPost, "/api/health/predict-disease", account.SessionToken, predictDiseasePayload())
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("predict-disease: expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performRequest(t, app, fiber.MethodGet, "/api/health/last-prediction", account.SessionToken, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("last-prediction: expected 200, got %d", response.StatusCode)
	}
	stored := decodeBody(t, response)
	if stored["risk_level"] != "high" {
		t.Fatalf("expected stored advisor payload, got %v", stored)
	}
}

func TestPredictionHistoryPairsInputsWithPredictions(t *testing.T) {
	app, _ := newTestApp(t)
	account := registerAndLogin(t, app)

	for i := 0; i < 2; i++ {
		response := performRequest(t, app, fiber.MethodPost, "/api/health/predict-disease", account.SessionToken, predictDiseasePayload())
		if response.StatusCode != fiber.StatusOK {
			t.Fatalf("predict-disease: expected 200, got %d", response.StatusCode)
		}
		response.Body.Close()
	}

	response := performRequest(t, app, fiber.MethodGet, "/api/health/history", account.SessionToken, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("history: expected 200, got %d", response.StatusCode)
	}
	payload := decodeBody(t, response)
	history := payload["history"].([]any)
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	first := history[0].(map[string]any)
	if first["prediction"] == nil {
		t.Fatal("expected history entry to carry its prediction")
	}
}
