package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-health/wellspring/internal/advisor"
	"github.com/wellspring-health/wellspring/internal/services"
)

func (handler *Handler) PredictDisease(c *fiber.Ctx) error {
	var input predictDiseaseInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user := currentUser(c)
	prediction, result, err := handler.physicalHealthService.Predict(c.Context(), user.ID, services.HealthSubmission{
		Age:                    input.Age,
		Gender:                 input.Gender,
		Height:                 input.Height,
		Weight:                 input.Weight,
		BloodPressureSystolic:  input.BloodPressureSystolic,
		BloodPressureDiastolic: input.BloodPressureDiastolic,
		CholesterolLevel:       input.CholesterolLevel,
		BloodSugarLevel:        input.BloodSugarLevel,
		Symptoms:               input.Symptoms,
		FamilyHistory:          input.FamilyHistory,
		LifestyleFactors:       input.LifestyleFactors,
	})
	if err != nil {
		if errors.Is(err, advisor.ErrUnavailable) {
			return apiError(c, fiber.StatusServiceUnavailable, "prediction service unavailable")
		}
		return apiError(c, fiber.StatusBadGateway, "prediction failed")
	}

	return c.JSON(fiber.Map{
		"prediction_id":      prediction.ID,
		"predicted_diseases": result.PredictedDiseases,
		"risk_level":         prediction.RiskLevel,
		"confidence_score":   prediction.ConfidenceScore,
		"recommendations":    result.Recommendations,
	})
}

func (handler *Handler) LastPrediction(c *fiber.Ctx) error {
	user := currentUser(c)
	prediction, found, err := handler.physicalHealthService.LastPrediction(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load prediction")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no previous predictions")
	}

	// recommendations holds the full advisor payload as stored.
	var payload json.RawMessage
	if json.Unmarshal([]byte(prediction.Recommendations), &payload) != nil {
		payload = json.RawMessage(`null`)
	}
	return c.JSON(payload)
}

func (handler *Handler) PredictionHistory(c *fiber.Ctx) error {
	user := currentUser(c)
	entries, err := handler.physicalHealthService.History(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load history")
	}
	return c.JSON(fiber.Map{"history": entries})
}
