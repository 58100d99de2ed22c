package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspring-health/wellspring/internal/services"
)

func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	var input forgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.RecoveryCode == "" {
		return apiError(c, fiber.StatusBadRequest, "missing recovery code")
	}

	user, err := handler.authService.FindUserByRecoveryCode(input.RecoveryCode)
	if err != nil {
		if errors.Is(err, services.ErrRecoveryCodeNotFound) {
			return apiError(c, fiber.StatusUnauthorized, "invalid recovery code")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to verify recovery code")
	}

	token, err := handler.buildPasswordResetToken(user.ID, user.PasswordHash, passwordResetTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create reset token")
	}
	return c.JSON(fiber.Map{"reset_token": token})
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	var input resetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Token == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "missing required fields")
	}

	claims, err := handler.parsePasswordResetToken(input.Token)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired reset token")
	}

	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired reset token")
	}
	if passwordHashFingerprint(user.PasswordHash) != claims.Fingerprint {
		return apiError(c, fiber.StatusUnauthorized, "reset token already used")
	}

	if err := handler.authService.ResetPassword(user.ID, input.Password); err != nil {
		if errors.Is(err, services.ErrWeakPassword) {
			return apiError(c, fiber.StatusBadRequest, "weak password")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to reset password")
	}

	// Rotating the password invalidates every live session.
	if err := handler.sessionService.RevokeAllForUser(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to revoke sessions")
	}

	return c.JSON(fiber.Map{"message": "Password reset successfully"})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	var input changePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return apiError(c, fiber.StatusBadRequest, "missing required fields")
	}

	user := currentUser(c)
	if err := handler.authService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return apiError(c, fiber.StatusUnauthorized, "invalid current password")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "weak password")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to change password")
		}
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

func (handler *Handler) RegenerateRecoveryCode(c *fiber.Ctx) error {
	user := currentUser(c)
	recoveryCode, err := handler.authService.RegenerateRecoveryCode(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to regenerate recovery code")
	}
	return c.JSON(fiber.Map{"recovery_code": recoveryCode})
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	var input deleteAccountInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user := currentUser(c)
	if err := handler.authService.DeleteAccount(user.ID, input.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "invalid password")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Account deleted"})
}
