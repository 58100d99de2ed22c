package services

import (
	"context"
	"errors"
	"time"

	"github.com/wellspring-health/wellspring/internal/advisor"
	"github.com/wellspring-health/wellspring/internal/models"
)

var ErrInsufficientData = errors.New("no prediction or assessment on record")

type CombinedRecommendationRepository interface {
	CreateCombined(record *models.CombinedRecommendation) error
	ListCombinedByUser(userID uint) ([]models.CombinedRecommendation, error)
}

type RecommendationService struct {
	combined       CombinedRecommendationRepository
	physicalHealth PhysicalHealthRepository
	mentalHealth   MentalHealthRepository
	advisor        advisor.Advisor
}

func NewRecommendationService(
	combined CombinedRecommendationRepository,
	physicalHealth PhysicalHealthRepository,
	mentalHealth MentalHealthRepository,
	adv advisor.Advisor,
) *RecommendationService {
	return &RecommendationService{
		combined:       combined,
		physicalHealth: physicalHealth,
		mentalHealth:   mentalHealth,
		advisor:        adv,
	}
}

// Combine rolls the user's latest disease prediction and mental health
// assessment up into one combined_recommendations row. The scores come back
// opaque from the advisor; each call appends a new history row.
func (service *RecommendationService) Combine(ctx context.Context, userID uint) (models.CombinedRecommendation, error) {
	prediction, hasPrediction, err := service.physicalHealth.LatestPredictionByUser(userID)
	if err != nil {
		return models.CombinedRecommendation{}, err
	}
	assessment, hasAssessment, err := service.mentalHealth.LatestAssessmentByUser(userID)
	if err != nil {
		return models.CombinedRecommendation{}, err
	}
	if !hasPrediction && !hasAssessment {
		return models.CombinedRecommendation{}, ErrInsufficientData
	}

	if service.advisor == nil {
		return models.CombinedRecommendation{}, advisor.ErrUnavailable
	}
	result, err := service.advisor.CombineHealth(ctx, advisor.CombinedRequest{
		PhysicalRiskLevel:  prediction.RiskLevel,
		PhysicalConfidence: prediction.ConfidenceScore,
		MentalTotalScore:   assessment.TotalScore,
		MentalRiskLevel:    assessment.RiskLevel,
	})
	if err != nil {
		return models.CombinedRecommendation{}, err
	}

	record := models.CombinedRecommendation{
		UserID:              userID,
		PhysicalHealthScore: result.PhysicalHealthScore,
		MentalHealthScore:   result.MentalHealthScore,
		OverallHealthScore:  result.OverallHealthScore,
		Recommendations:     result.Recommendations,
		CreatedAt:           time.Now(),
	}
	if err := service.combined.CreateCombined(&record); err != nil {
		return models.CombinedRecommendation{}, err
	}
	return record, nil
}

func (service *RecommendationService) History(userID uint) ([]models.CombinedRecommendation, error) {
	return service.combined.ListCombinedByUser(userID)
}
