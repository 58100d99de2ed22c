package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/wellspring-health/wellspring/internal/advisor"
	"github.com/wellspring-health/wellspring/internal/models"
)

var (
	ErrUnknownQuestion    = errors.New("unknown question")
	ErrAssessmentNotFound = errors.New("assessment not found")
)

const AssessmentTypeGeneral = "general"

type MentalHealthRepository interface {
	ListQuestions() ([]models.MentalHealthQuestion, error)
	SaveQuizResults(
		responses []models.MentalHealthResponse,
		assessment *models.MentalHealthAssessment,
		recommendations []models.MentalWellnessRecommendation,
	) error
	ListAssessmentsByUser(userID uint) ([]models.MentalHealthAssessment, error)
	LatestAssessmentByUser(userID uint) (models.MentalHealthAssessment, bool, error)
	FindAssessmentByIDForUser(assessmentID uint, userID uint) (models.MentalHealthAssessment, bool, error)
	ListRecommendationsByAssessment(assessmentID uint) ([]models.MentalWellnessRecommendation, error)
}

type QuizResponseInput struct {
	QuestionID uint
	Answer     string
	Score      int
}

type MentalHealthService struct {
	records MentalHealthRepository
	advisor advisor.Advisor
}

func NewMentalHealthService(records MentalHealthRepository, adv advisor.Advisor) *MentalHealthService {
	return &MentalHealthService{records: records, advisor: adv}
}

func (service *MentalHealthService) Questions() ([]models.MentalHealthQuestion, error) {
	return service.records.ListQuestions()
}

// SubmitQuiz stores one response row per answer and an aggregated assessment.
// The total score is the sum of the submitted per-answer scores; risk level
// and recommendations come back opaque from the advisor.
func (service *MentalHealthService) SubmitQuiz(ctx context.Context, userID uint, inputs []QuizResponseInput) (models.MentalHealthAssessment, []models.MentalWellnessRecommendation, error) {
	questions, err := service.records.ListQuestions()
	if err != nil {
		return models.MentalHealthAssessment{}, nil, err
	}
	categoriesByID := make(map[uint]string, len(questions))
	for _, question := range questions {
		categoriesByID[question.ID] = question.Category
	}

	totalScore := 0
	responses := make([]models.MentalHealthResponse, 0, len(inputs))
	answers := make([]advisor.QuizAnswer, 0, len(inputs))
	for _, input := range inputs {
		category, known := categoriesByID[input.QuestionID]
		if !known {
			return models.MentalHealthAssessment{}, nil, ErrUnknownQuestion
		}
		totalScore += input.Score
		responses = append(responses, models.MentalHealthResponse{
			UserID:     userID,
			QuestionID: input.QuestionID,
			Answer:     input.Answer,
			Score:      input.Score,
			CreatedAt:  time.Now(),
		})
		answers = append(answers, advisor.QuizAnswer{
			QuestionID: input.QuestionID,
			Category:   category,
			Answer:     input.Answer,
			Score:      input.Score,
		})
	}

	if service.advisor == nil {
		return models.MentalHealthAssessment{}, nil, advisor.ErrUnavailable
	}
	result, err := service.advisor.AssessMentalHealth(ctx, advisor.AssessmentRequest{
		TotalScore: totalScore,
		Answers:    answers,
	})
	if err != nil {
		return models.MentalHealthAssessment{}, nil, err
	}

	recommendationsJSON, err := json.Marshal(result.Recommendations)
	if err != nil {
		return models.MentalHealthAssessment{}, nil, err
	}

	assessment := models.MentalHealthAssessment{
		UserID:          userID,
		TotalScore:      totalScore,
		AssessmentType:  AssessmentTypeGeneral,
		RiskLevel:       result.RiskLevel,
		Recommendations: string(recommendationsJSON),
		CreatedAt:       time.Now(),
	}

	wellness := make([]models.MentalWellnessRecommendation, 0, len(result.Recommendations))
	for _, recommendation := range result.Recommendations {
		wellness = append(wellness, models.MentalWellnessRecommendation{
			UserID:             userID,
			Category:           recommendation.Category,
			RecommendationText: recommendation.Text,
			Priority:           recommendation.Priority,
			CreatedAt:          time.Now(),
		})
	}

	if err := service.records.SaveQuizResults(responses, &assessment, wellness); err != nil {
		return models.MentalHealthAssessment{}, nil, err
	}
	return assessment, wellness, nil
}

// AnalyzeText forwards free-form journal text to the advisor's sentiment
// analysis and returns the result without storing it.
func (service *MentalHealthService) AnalyzeText(ctx context.Context, text string) (advisor.SentimentResult, error) {
	if service.advisor == nil {
		return advisor.SentimentResult{}, advisor.ErrUnavailable
	}
	return service.advisor.AnalyzeSentiment(ctx, advisor.SentimentRequest{Text: text})
}

func (service *MentalHealthService) Assessments(userID uint) ([]models.MentalHealthAssessment, error) {
	return service.records.ListAssessmentsByUser(userID)
}

// AssessmentDetail loads one of the user's assessments together with the
// wellness recommendation rows stored alongside it.
func (service *MentalHealthService) AssessmentDetail(userID uint, assessmentID uint) (models.MentalHealthAssessment, []models.MentalWellnessRecommendation, error) {
	assessment, found, err := service.records.FindAssessmentByIDForUser(assessmentID, userID)
	if err != nil {
		return models.MentalHealthAssessment{}, nil, err
	}
	if !found {
		return models.MentalHealthAssessment{}, nil, ErrAssessmentNotFound
	}
	recommendations, err := service.records.ListRecommendationsByAssessment(assessment.ID)
	if err != nil {
		return models.MentalHealthAssessment{}, nil, err
	}
	return assessment, recommendations, nil
}
