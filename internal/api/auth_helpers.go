package api

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/wellspring-health/wellspring/internal/models"
)

const passwordResetPurpose = "password_reset"

func (handler *Handler) setSessionCookie(c *fiber.Ctx, session models.UserSession) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    session.SessionToken,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  session.ExpiresAt,
	})
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

// buildPasswordResetToken signs a short-lived reset token bound to the
// current password hash, so the token stops working once the password
// changes.
func (handler *Handler) buildPasswordResetToken(userID uint, passwordHash string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := passwordResetClaims{
		UserID:      userID,
		Purpose:     passwordResetPurpose,
		Fingerprint: passwordHashFingerprint(passwordHash),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) parsePasswordResetToken(tokenString string) (passwordResetClaims, error) {
	claims := passwordResetClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return passwordResetClaims{}, errors.New("invalid reset token")
	}
	if claims.Purpose != passwordResetPurpose {
		return passwordResetClaims{}, errors.New("invalid reset token purpose")
	}
	return claims, nil
}

func passwordHashFingerprint(passwordHash string) string {
	digest := sha256.Sum256([]byte(passwordHash))
	return hex.EncodeToString(digest[:8])
}
