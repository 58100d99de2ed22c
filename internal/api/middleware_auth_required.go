package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired resolves the session token from the cookie or an
// Authorization: Bearer header against the user_sessions table. Expired rows
// are deleted during validation and treated as unauthenticated.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token := sessionToken(c)
	if token == "" {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	session, err := handler.sessionService.Validate(token)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	user, err := handler.authService.FindByID(session.UserID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "not authenticated")
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

func sessionToken(c *fiber.Ctx) string {
	if cookie := strings.TrimSpace(c.Cookies(sessionCookieName)); cookie != "" {
		return cookie
	}
	authorization := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(strings.ToLower(authorization), "bearer ") {
		return strings.TrimSpace(authorization[len("bearer "):])
	}
	return ""
}
