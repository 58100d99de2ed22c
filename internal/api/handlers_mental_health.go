package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-health/wellspring/internal/advisor"
	"github.com/wellspring-health/wellspring/internal/services"
)

func (handler *Handler) MentalHealthQuestions(c *fiber.Ctx) error {
	questions, err := handler.mentalHealthService.Questions()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load questions")
	}

	payload := make([]fiber.Map, 0, len(questions))
	for _, question := range questions {
		options, err := question.OptionLabels()
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to decode question options")
		}
		payload = append(payload, fiber.Map{
			"id":       question.ID,
			"question": question.QuestionText,
			"category": question.Category,
			"options":  options,
		})
	}
	return c.JSON(fiber.Map{"questions": payload})
}

func (handler *Handler) SubmitMentalHealthQuiz(c *fiber.Ctx) error {
	var input submitQuizInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if len(input.Responses) == 0 {
		return apiError(c, fiber.StatusBadRequest, "no responses submitted")
	}

	responses := make([]services.QuizResponseInput, 0, len(input.Responses))
	for _, response := range input.Responses {
		responses = append(responses, services.QuizResponseInput{
			QuestionID: response.QuestionID,
			Answer:     response.Answer,
			Score:      response.Score,
		})
	}

	user := currentUser(c)
	assessment, recommendations, err := handler.mentalHealthService.SubmitQuiz(c.Context(), user.ID, responses)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownQuestion):
			return apiError(c, fiber.StatusBadRequest, "unknown question id")
		case errors.Is(err, advisor.ErrUnavailable):
			return apiError(c, fiber.StatusServiceUnavailable, "assessment service unavailable")
		default:
			return apiError(c, fiber.StatusBadGateway, "assessment failed")
		}
	}

	recommendationPayload := make([]fiber.Map, 0, len(recommendations))
	for _, recommendation := range recommendations {
		recommendationPayload = append(recommendationPayload, fiber.Map{
			"category": recommendation.Category,
			"text":     recommendation.RecommendationText,
			"priority": recommendation.Priority,
		})
	}

	return c.JSON(fiber.Map{
		"assessment_id":   assessment.ID,
		"total_score":     assessment.TotalScore,
		"assessment_type": assessment.AssessmentType,
		"risk_level":      assessment.RiskLevel,
		"recommendations": recommendationPayload,
	})
}

func (handler *Handler) AnalyzeTextSentiment(c *fiber.Ctx) error {
	var input analyzeTextInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.Text) == "" {
		return apiError(c, fiber.StatusBadRequest, "missing text")
	}

	result, err := handler.mentalHealthService.AnalyzeText(c.Context(), input.Text)
	if err != nil {
		if errors.Is(err, advisor.ErrUnavailable) {
			return apiError(c, fiber.StatusServiceUnavailable, "sentiment service unavailable")
		}
		return apiError(c, fiber.StatusBadGateway, "sentiment analysis failed")
	}
	return c.JSON(result)
}

func (handler *Handler) MentalHealthAssessments(c *fiber.Ctx) error {
	user := currentUser(c)
	assessments, err := handler.mentalHealthService.Assessments(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load assessments")
	}
	return c.JSON(fiber.Map{"assessments": assessments})
}

func (handler *Handler) MentalHealthAssessmentDetail(c *fiber.Ctx) error {
	assessmentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assessment id")
	}

	user := currentUser(c)
	assessment, recommendations, err := handler.mentalHealthService.AssessmentDetail(user.ID, uint(assessmentID))
	if err != nil {
		if errors.Is(err, services.ErrAssessmentNotFound) {
			return apiError(c, fiber.StatusNotFound, "assessment not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load assessment")
	}

	return c.JSON(fiber.Map{
		"assessment":      assessment,
		"recommendations": recommendations,
	})
}
