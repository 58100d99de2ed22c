package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestPasswordResetFlow(t *testing.T) {
	app, _ := newTestApp(t)
	account := registerAndLogin(t, app)

	response := performRequest(t, app, fiber.MethodPost, "/api/auth/forgot-password", "", fiber.Map{
		"recovery_code": account.RecoveryCode,
	})
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("forgot-password: expected 200, got %d", response.StatusCode)
	}
	resetToken := decodeBody(t, response)["reset_token"].(string)
	if resetToken == "" {
		t.Fatal("expected a reset token")
	}

	response = performRequest(t, app, fiber.MethodPost, "/api/auth/reset-password", "", fiber.Map{
		"token":    resetToken,
		"password": "BrandNewPass1",
	})
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("reset-password: expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	// The reset invalidates every live session.
	response = performRequest(t, app, fiber.MethodGet, "/api/mental-health/questions", account.SessionToken, nil)
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected old session to be revoked, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": account.Username,
		"password": "BrandNewPass1",
	})
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("login with new password: expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	// A reset token is single use; the password hash it was minted against
	// no longer matches.
	response = performRequest(t, app, fiber.MethodPost, "/api/auth/reset-password", "", fiber.Map{
		"token":    resetToken,
		"password": "AnotherPass1",
	})
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected reused reset token to be rejected, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestForgotPasswordRejectsUnknownRecoveryCode(t *testing.T) {
	app, _ := newTestApp(t)
	registerAndLogin(t, app)

	response := performRequest(t, app, fiber.MethodPost, "/api/auth/forgot-password", "", fiber.Map{
		"recovery_code": "NOTAREALCODE",
	})
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown recovery code, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestChangePasswordEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	account := registerAndLogin(t, app)

	response := performRequest(t, app, fiber.MethodPost, "/api/auth/change-password", account.SessionToken, fiber.Map{
		"current_password": "WrongPass1",
		"new_password":     "BrandNewPass1",
	})
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong current password, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performRequest(t, app, fiber.MethodPost, "/api/auth/change-password", account.SessionToken, fiber.Map{
		"current_password": account.Password,
		"new_password":     "BrandNewPass1",
	})
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("change-password: expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = performRequest(t, app, fiber.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": account.Username,
		"password": "BrandNewPass1",
	})
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("login with new password: expected 200, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestRegenerateRecoveryCodeEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	account := registerAndLogin(t, app)

	response := performRequest(t, app, fiber.MethodPost, "/api/auth/regenerate-recovery-code", account.SessionToken, nil)
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("regenerate-recovery-code: expected 200, got %d", response.StatusCode)
	}
	fresh := decodeBody(t, response)["recovery_code"].(string)
	if fresh == "" || fresh == account.RecoveryCode {
		t.Fatalf("expected a fresh recovery code, got %q", fresh)
	}

	response = performRequest(t, app, fiber.MethodPost, "/api/auth/forgot-password", "", fiber.Map{
		"recovery_code": account.RecoveryCode,
	})
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected old recovery code to stop working, got %d", response.StatusCode)
	}
	response.Body.Close()
}
