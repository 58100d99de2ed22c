package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-health/wellspring/internal/models"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentUser(c *fiber.Ctx) models.User {
	user, _ := c.Locals(contextUserKey).(models.User)
	return user
}
