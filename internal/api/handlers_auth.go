package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-health/wellspring/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if message := validateRegistration(input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	user, recoveryCode, err := handler.authService.Register(input.Username, input.Email, input.Password, input.FullName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserExists):
			return apiError(c, fiber.StatusConflict, "user already exists")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "weak password")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "User created successfully",
		"user_id":       user.ID,
		"recovery_code": recoveryCode,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if message := validateLogin(input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	user, err := handler.authService.Authenticate(input.Username, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	session, err := handler.sessionService.Issue(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.setSessionCookie(c, session)

	return c.JSON(fiber.Map{
		"message":       "Login successful",
		"session_token": session.SessionToken,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	if token := sessionToken(c); token != "" {
		if err := handler.sessionService.Revoke(token); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to end session")
		}
	}
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
