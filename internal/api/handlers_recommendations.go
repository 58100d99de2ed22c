package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-health/wellspring/internal/advisor"
	"github.com/wellspring-health/wellspring/internal/services"
)

func (handler *Handler) CombineRecommendations(c *fiber.Ctx) error {
	user := currentUser(c)
	record, err := handler.recommendationService.Combine(c.Context(), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInsufficientData):
			return apiError(c, fiber.StatusConflict, "no prediction or assessment on record")
		case errors.Is(err, advisor.ErrUnavailable):
			return apiError(c, fiber.StatusServiceUnavailable, "recommendation service unavailable")
		default:
			return apiError(c, fiber.StatusBadGateway, "combined recommendation failed")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) CombinedHistory(c *fiber.Ctx) error {
	user := currentUser(c)
	records, err := handler.recommendationService.History(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load recommendations")
	}
	return c.JSON(fiber.Map{"recommendations": records})
}
