package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wellspring-health/wellspring/internal/advisor"
	"github.com/wellspring-health/wellspring/internal/models"
)

type PhysicalHealthRepository interface {
	CreateInput(input *models.PhysicalHealthInput) error
	CreatePrediction(prediction *models.DiseasePrediction) error
	ListInputsByUser(userID uint) ([]models.PhysicalHealthInput, error)
	ListPredictionsByUser(userID uint) ([]models.DiseasePrediction, error)
	LatestPredictionByUser(userID uint) (models.DiseasePrediction, bool, error)
}

type HealthSubmission struct {
	Age                    int
	Gender                 string
	Height                 float64
	Weight                 float64
	BloodPressureSystolic  int
	BloodPressureDiastolic int
	CholesterolLevel       float64
	BloodSugarLevel        float64
	Symptoms               []string
	FamilyHistory          string
	LifestyleFactors       json.RawMessage
}

type PhysicalHealthService struct {
	records PhysicalHealthRepository
	advisor advisor.Advisor
}

func NewPhysicalHealthService(records PhysicalHealthRepository, adv advisor.Advisor) *PhysicalHealthService {
	return &PhysicalHealthService{records: records, advisor: adv}
}

// Predict persists the submitted snapshot, delegates to the external advisor,
// and persists its opaque output. The input row survives even when the
// advisor call fails, so the submission is never lost.
func (service *PhysicalHealthService) Predict(ctx context.Context, userID uint, submission HealthSubmission) (models.DiseasePrediction, advisor.DiseaseResult, error) {
	symptoms := submission.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	symptomsJSON, err := json.Marshal(symptoms)
	if err != nil {
		return models.DiseasePrediction{}, advisor.DiseaseResult{}, err
	}

	input := models.PhysicalHealthInput{
		UserID:                 userID,
		Age:                    submission.Age,
		Gender:                 submission.Gender,
		Height:                 submission.Height,
		Weight:                 submission.Weight,
		BloodPressureSystolic:  submission.BloodPressureSystolic,
		BloodPressureDiastolic: submission.BloodPressureDiastolic,
		CholesterolLevel:       submission.CholesterolLevel,
		BloodSugarLevel:        submission.BloodSugarLevel,
		Symptoms:               string(symptomsJSON),
		FamilyHistory:          submission.FamilyHistory,
		LifestyleFactors:       string(submission.LifestyleFactors),
		CreatedAt:              time.Now(),
	}
	if err := service.records.CreateInput(&input); err != nil {
		return models.DiseasePrediction{}, advisor.DiseaseResult{}, err
	}

	if service.advisor == nil {
		return models.DiseasePrediction{}, advisor.DiseaseResult{}, advisor.ErrUnavailable
	}

	result, err := service.advisor.PredictDisease(ctx, advisor.DiseaseRequest{
		Age:                    submission.Age,
		Gender:                 submission.Gender,
		Height:                 submission.Height,
		Weight:                 submission.Weight,
		BloodPressureSystolic:  submission.BloodPressureSystolic,
		BloodPressureDiastolic: submission.BloodPressureDiastolic,
		CholesterolLevel:       submission.CholesterolLevel,
		BloodSugarLevel:        submission.BloodSugarLevel,
		Symptoms:               symptoms,
		FamilyHistory:          submission.FamilyHistory,
		LifestyleFactors:       submission.LifestyleFactors,
	})
	if err != nil {
		return models.DiseasePrediction{}, advisor.DiseaseResult{}, err
	}

	riskLevel := result.RiskLevel
	if riskLevel == "" {
		riskLevel = models.RiskMedium
	}
	predictedJSON, err := json.Marshal(result.PredictedDiseases)
	if err != nil {
		return models.DiseasePrediction{}, advisor.DiseaseResult{}, err
	}
	fullResultJSON, err := json.Marshal(result)
	if err != nil {
		return models.DiseasePrediction{}, advisor.DiseaseResult{}, err
	}

	prediction := models.DiseasePrediction{
		UserID:            userID,
		HealthInputID:     input.ID,
		PredictedDiseases: string(predictedJSON),
		RiskLevel:         riskLevel,
		ConfidenceScore:   result.ConfidenceScore,
		Recommendations:   string(fullResultJSON),
		CreatedAt:         time.Now(),
	}
	if err := service.records.CreatePrediction(&prediction); err != nil {
		return models.DiseasePrediction{}, advisor.DiseaseResult{}, err
	}

	return prediction, result, nil
}

func (service *PhysicalHealthService) LastPrediction(userID uint) (models.DiseasePrediction, bool, error) {
	return service.records.LatestPredictionByUser(userID)
}

type PredictionHistoryEntry struct {
	Input      models.PhysicalHealthInput `json:"input"`
	Prediction *models.DiseasePrediction  `json:"prediction,omitempty"`
}

// History pairs every submitted input with its prediction, newest first.
// Inputs whose advisor call failed appear without a prediction.
func (service *PhysicalHealthService) History(userID uint) ([]PredictionHistoryEntry, error) {
	inputs, err := service.records.ListInputsByUser(userID)
	if err != nil {
		return nil, err
	}
	predictions, err := service.records.ListPredictionsByUser(userID)
	if err != nil {
		return nil, err
	}

	predictionsByInput := make(map[uint]models.DiseasePrediction, len(predictions))
	for _, prediction := range predictions {
		predictionsByInput[prediction.HealthInputID] = prediction
	}

	entries := make([]PredictionHistoryEntry, 0, len(inputs))
	for _, input := range inputs {
		entry := PredictionHistoryEntry{Input: input}
		if prediction, ok := predictionsByInput[input.ID]; ok {
			entry.Prediction = &prediction
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
