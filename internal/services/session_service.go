package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wellspring-health/wellspring/internal/models"
)

var ErrSessionNotFound = errors.New("session not found or expired")

const DefaultSessionTTL = 24 * time.Hour

type SessionRepository interface {
	Create(session *models.UserSession) error
	FindByToken(token string) (models.UserSession, bool, error)
	DeleteByToken(token string) error
	DeleteAllForUser(userID uint) error
	DeleteExpired(now time.Time) (int64, error)
}

type SessionService struct {
	sessions SessionRepository
	ttl      time.Duration
}

func NewSessionService(sessions SessionRepository, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{sessions: sessions, ttl: ttl}
}

func (service *SessionService) Issue(userID uint) (models.UserSession, error) {
	session := models.UserSession{
		UserID:       userID,
		SessionToken: uuid.NewString(),
		ExpiresAt:    time.Now().Add(service.ttl),
		CreatedAt:    time.Now(),
	}
	if err := service.sessions.Create(&session); err != nil {
		return models.UserSession{}, err
	}
	return session, nil
}

// Validate resolves a token to its live session. Expired rows are deleted on
// sight and reported as not found.
func (service *SessionService) Validate(token string) (models.UserSession, error) {
	if token == "" {
		return models.UserSession{}, ErrSessionNotFound
	}

	session, found, err := service.sessions.FindByToken(token)
	if err != nil {
		return models.UserSession{}, err
	}
	if !found {
		return models.UserSession{}, ErrSessionNotFound
	}
	if session.Expired(time.Now()) {
		if err := service.sessions.DeleteByToken(token); err != nil {
			return models.UserSession{}, err
		}
		return models.UserSession{}, ErrSessionNotFound
	}
	return session, nil
}

func (service *SessionService) Revoke(token string) error {
	return service.sessions.DeleteByToken(token)
}

func (service *SessionService) RevokeAllForUser(userID uint) error {
	return service.sessions.DeleteAllForUser(userID)
}

func (service *SessionService) PurgeExpired(now time.Time) (int64, error) {
	return service.sessions.DeleteExpired(now)
}
